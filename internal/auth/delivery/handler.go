package delivery

import (
	"net/http"

	authdto "github.com/voknelis/XSched/internal/auth/dto"
	authrepo "github.com/voknelis/XSched/internal/auth/repository"
	"github.com/voknelis/XSched/internal/auth/usecase"
	profiledomain "github.com/voknelis/XSched/internal/profile/domain"
	profileUsecase "github.com/voknelis/XSched/internal/profile/usecase"
	"github.com/voknelis/XSched/pkg/apperror"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	userRepo    authrepo.UserRepository
	deviceRepo  authrepo.DeviceTokenRepository
	profiles    profileUsecase.ProfileUsecase
	logger      *zap.Logger
}

func NewAuthHandler(
	authUsecase usecase.AuthUsecase,
	userRepo authrepo.UserRepository,
	deviceRepo authrepo.DeviceTokenRepository,
	profiles profileUsecase.ProfileUsecase,
	logger *zap.Logger,
) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		userRepo:    userRepo,
		deviceRepo:  deviceRepo,
		profiles:    profiles,
		logger:      logger,
	}
}

// Register creates a new user. The duplicate-username check lives
// here, before the usecase is called; the usecase itself performs no
// such check.
func (h *AuthHandler) Register(c *gin.Context) {
	var req authdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperror.Abort(c, apperror.BadRequest(err.Error()))
		return
	}

	existing, err := h.userRepo.FindByUsername(req.Username)
	if err != nil {
		apperror.Abort(c, err)
		return
	}
	if existing != nil {
		apperror.Abort(c, usecase.ErrUserExists)
		return
	}

	user, err := h.authUsecase.Register(&req)
	if err != nil {
		apperror.Abort(c, err)
		return
	}

	// Best effort: a failure here must not fail the registration.
	defaultProfile := &profiledomain.UserProfile{
		Title:     "Default profile",
		IsDefault: true,
	}
	if err := h.profiles.CreateProfile(user, defaultProfile); err != nil {
		h.logger.Warn("failed to create default profile",
			zap.String("userId", user.ID), zap.Error(err))
	}

	c.Status(http.StatusOK)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req authdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperror.Abort(c, apperror.BadRequest(err.Error()))
		return
	}

	user, err := h.userRepo.FindByUsername(req.Username)
	if err != nil {
		apperror.Abort(c, err)
		return
	}
	if user == nil {
		apperror.Abort(c, usecase.ErrUserNotFound)
		return
	}
	if !h.userRepo.CheckPassword(user, req.Password) {
		apperror.Abort(c, usecase.ErrInvalidCredentials)
		return
	}

	response, err := h.authUsecase.Login(user, h.clientMeta(c, req.Fingerprint))
	if err != nil {
		apperror.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req authdto.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperror.Abort(c, apperror.BadRequest("Access and refresh token should be specified"))
		return
	}

	response, err := h.authUsecase.RefreshToken(&req, h.clientMeta(c, req.Fingerprint))
	if err != nil {
		apperror.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	var req authdto.LogoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperror.Abort(c, apperror.BadRequest(err.Error()))
		return
	}

	if err := h.authUsecase.Logout(&req); err != nil {
		apperror.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AuthHandler) Me(c *gin.Context) {
	c.JSON(http.StatusOK, CurrentUser(c))
}

func (h *AuthHandler) RegisterDeviceToken(c *gin.Context) {
	var req authdto.RegisterDeviceTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperror.Abort(c, apperror.BadRequest(err.Error()))
		return
	}

	user := CurrentUser(c)
	if err := h.deviceRepo.SaveToken(user.ID, req.Token, req.DeviceInfo); err != nil {
		apperror.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AuthHandler) UnregisterDeviceToken(c *gin.Context) {
	if err := h.deviceRepo.DeleteToken(c.Param("token")); err != nil {
		apperror.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// clientMeta builds the connection metadata bound to a refresh
// session. Lower layers never read request headers directly.
func (h *AuthHandler) clientMeta(c *gin.Context, fingerprint string) authdto.ClientMeta {
	return authdto.ClientMeta{
		Fingerprint: fingerprint,
		UserAgent:   c.GetHeader("User-Agent"),
		IP:          c.ClientIP(),
	}
}
