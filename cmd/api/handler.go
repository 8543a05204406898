package api

import (
	authDelivery "github.com/voknelis/XSched/internal/auth/delivery"
	authrepo "github.com/voknelis/XSched/internal/auth/repository"
	authUsecase "github.com/voknelis/XSched/internal/auth/usecase"
	calendarDelivery "github.com/voknelis/XSched/internal/calendar/delivery"
	calendarUsecase "github.com/voknelis/XSched/internal/calendar/usecase"
	profileDelivery "github.com/voknelis/XSched/internal/profile/delivery"
	profileUsecase "github.com/voknelis/XSched/internal/profile/usecase"
	"github.com/voknelis/XSched/pkg/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	authUsecase    authUsecase.AuthUsecase
	authHandler    *authDelivery.AuthHandler
	profileHandler *profileDelivery.ProfileHandler
	eventHandler   *calendarDelivery.EventHandler
	config         *config.Config
}

func NewHandler(
	authUc authUsecase.AuthUsecase,
	userRepo authrepo.UserRepository,
	deviceRepo authrepo.DeviceTokenRepository,
	profileUc profileUsecase.ProfileUsecase,
	eventUc calendarUsecase.EventUsecase,
	cfg *config.Config,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		authUsecase:    authUc,
		authHandler:    authDelivery.NewAuthHandler(authUc, userRepo, deviceRepo, profileUc, logger),
		profileHandler: profileDelivery.NewProfileHandler(profileUc),
		eventHandler:   calendarDelivery.NewEventHandler(eventUc),
		config:         cfg,
	}
}

func (h *Handler) Start(addr string) error {
	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()

	// CORS middleware
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	SetupRoutes(r, h.authUsecase, h.authHandler, h.profileHandler, h.eventHandler)

	return r.Run(addr)
}
