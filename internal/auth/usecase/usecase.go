package usecase

import (
	authdomain "github.com/voknelis/XSched/internal/auth/domain"
	authdto "github.com/voknelis/XSched/internal/auth/dto"
	"github.com/voknelis/XSched/pkg/apperror"
)

// Errors surfaced by the authentication flow. Each carries the status
// and message contract of the HTTP API.
var (
	ErrUserExists            = apperror.BadRequest("User already exist")
	ErrUserNotFound          = apperror.BadRequest("User not found")
	ErrInvalidCredentials    = apperror.BadRequest("Invalid login or password")
	ErrInvalidAccessToken    = apperror.BadRequest("Invalid access token")
	ErrInvalidRefreshSession = apperror.BadRequest("Invalid refresh session")
	ErrRefreshTokenExpired   = apperror.BadRequest("Refresh token has expired")
)

// AuthUsecase orchestrates registration, login and the refresh-token
// lifecycle. Duplicate-username checking is deliberately NOT done
// here: the delivery layer pre-checks before calling Register.
type AuthUsecase interface {
	// Register creates the user through the identity collaborator and
	// returns it so the caller can provision a default profile.
	Register(req *authdto.RegisterRequest) (*authdomain.User, error)

	// Login issues an access/refresh pair and persists a refresh
	// session bound to the supplied client metadata.
	Login(user *authdomain.User, meta authdto.ClientMeta) (*authdto.TokenResponse, error)

	// RefreshToken rotates a refresh session: the presented refresh
	// secret is single-use and always invalidated.
	RefreshToken(req *authdto.RefreshTokenRequest, meta authdto.ClientMeta) (*authdto.TokenResponse, error)

	// Logout deletes the refresh session matching the presented
	// secret and fingerprint.
	Logout(req *authdto.LogoutRequest) error

	// ValidateToken fully validates an access token and resolves the
	// authenticated user. Used by the HTTP middleware.
	ValidateToken(tokenString string) (*authdomain.User, error)
}
