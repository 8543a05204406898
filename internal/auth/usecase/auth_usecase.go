package usecase

import (
	"errors"
	"time"

	authdomain "github.com/voknelis/XSched/internal/auth/domain"
	authdto "github.com/voknelis/XSched/internal/auth/dto"
	"github.com/voknelis/XSched/internal/auth/repository"
	"github.com/voknelis/XSched/internal/auth/token"
	"github.com/voknelis/XSched/pkg/apperror"
)

type authUsecase struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	tokens      *token.Manager
}

func NewAuthUsecase(userRepo repository.UserRepository, sessionRepo repository.SessionRepository, tokens *token.Manager) AuthUsecase {
	return &authUsecase{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		tokens:      tokens,
	}
}

func (u *authUsecase) Register(req *authdto.RegisterRequest) (*authdomain.User, error) {
	user := &authdomain.User{
		Username: req.Username,
		Email:    req.Email,
	}
	if err := u.userRepo.Create(user, req.Password); err != nil {
		// Identity-provider failures are opaque to this layer; surface
		// the raw message as a server error.
		return nil, apperror.Internal(err.Error())
	}
	return user, nil
}

func (u *authUsecase) Login(user *authdomain.User, meta authdto.ClientMeta) (*authdto.TokenResponse, error) {
	roles, err := u.userRepo.GetRoles(user)
	if err != nil {
		return nil, err
	}

	claims := token.NewClaims(user.Username, roles)
	return u.issueTokenPair(user.ID, claims, meta)
}

func (u *authUsecase) RefreshToken(req *authdto.RefreshTokenRequest, meta authdto.ClientMeta) (*authdto.TokenResponse, error) {
	claims, err := u.tokens.ParseExpiredToken(req.AccessToken)
	if err != nil {
		return nil, ErrInvalidAccessToken
	}

	user, err := u.userRepo.FindByUsername(claims.Name)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	session, err := u.sessionRepo.FindByTokenAndFingerprint(req.RefreshToken, req.Fingerprint)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrInvalidRefreshSession
	}
	if !session.ExpiresIn.After(time.Now()) {
		return nil, ErrRefreshTokenExpired
	}

	// Re-issue from the extracted claims: same name, roles and jti,
	// fresh validity window.
	accessToken, err := u.tokens.IssueAccessToken(claims)
	if err != nil {
		return nil, err
	}
	refreshToken, err := u.tokens.IssueRefreshToken()
	if err != nil {
		return nil, err
	}

	newSession := newRefreshSession(user.ID, refreshToken, meta)
	if err := u.sessionRepo.Rotate(session, newSession); err != nil {
		return nil, err
	}

	return &authdto.TokenResponse{
		AccessToken:  accessToken.Token,
		RefreshToken: refreshToken.Secret,
		Expiration:   accessToken.ExpiresAt,
	}, nil
}

func (u *authUsecase) Logout(req *authdto.LogoutRequest) error {
	session, err := u.sessionRepo.FindByTokenAndFingerprint(req.RefreshToken, req.Fingerprint)
	if err != nil {
		return err
	}
	if session == nil {
		return ErrInvalidRefreshSession
	}
	return u.sessionRepo.Delete(session)
}

func (u *authUsecase) ValidateToken(tokenString string) (*authdomain.User, error) {
	claims, err := u.tokens.VerifyAccessToken(tokenString)
	if err != nil {
		return nil, errors.New("invalid or expired token")
	}

	user, err := u.userRepo.FindByUsername(claims.Name)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.New("user not found")
	}
	return user, nil
}

func (u *authUsecase) issueTokenPair(userID string, claims *token.Claims, meta authdto.ClientMeta) (*authdto.TokenResponse, error) {
	accessToken, err := u.tokens.IssueAccessToken(claims)
	if err != nil {
		return nil, err
	}
	refreshToken, err := u.tokens.IssueRefreshToken()
	if err != nil {
		return nil, err
	}

	session := newRefreshSession(userID, refreshToken, meta)
	if err := u.sessionRepo.Create(session); err != nil {
		return nil, err
	}

	return &authdto.TokenResponse{
		AccessToken:  accessToken.Token,
		RefreshToken: refreshToken.Secret,
		Expiration:   accessToken.ExpiresAt,
	}, nil
}

func newRefreshSession(userID string, refreshToken *token.RefreshToken, meta authdto.ClientMeta) *authdomain.RefreshSession {
	return &authdomain.RefreshSession{
		UserID:       userID,
		RefreshToken: refreshToken.Secret,
		Created:      time.Now(),
		ExpiresIn:    refreshToken.ExpiresAt,
		Fingerprint:  meta.Fingerprint,
		UserAgent:    meta.UserAgent,
		IP:           meta.IP,
	}
}
