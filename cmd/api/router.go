package api

import (
	"net/http"

	authDelivery "github.com/voknelis/XSched/internal/auth/delivery"
	authUsecase "github.com/voknelis/XSched/internal/auth/usecase"
	calendarDelivery "github.com/voknelis/XSched/internal/calendar/delivery"
	profileDelivery "github.com/voknelis/XSched/internal/profile/delivery"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(
	r *gin.Engine,
	authUc authUsecase.AuthUsecase,
	authHandler *authDelivery.AuthHandler,
	profileHandler *profileDelivery.ProfileHandler,
	eventHandler *calendarDelivery.EventHandler,
) {
	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/refresh-token", authHandler.RefreshToken)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", authDelivery.AuthMiddleware(authUc), authHandler.Me)
		}

		// Device-token routes for push reminders (protected)
		fcm := api.Group("/fcm")
		fcm.Use(authDelivery.AuthMiddleware(authUc))
		{
			fcm.POST("/register", authHandler.RegisterDeviceToken)
			fcm.DELETE("/:token", authHandler.UnregisterDeviceToken)
		}
	}

	// Resource routes kept under the original OData-style prefix
	odata := r.Group("/odata")
	odata.Use(authDelivery.AuthMiddleware(authUc))
	{
		profiles := odata.Group("/profiles")
		{
			profiles.GET("", profileHandler.GetUserProfiles)
			profiles.GET("/:profileId", profileHandler.GetUserProfile)
			profiles.POST("", profileHandler.CreateUserProfile)
			profiles.PUT("/:profileId", profileHandler.UpsertUserProfile)
			profiles.PATCH("/:profileId", profileHandler.PartiallyUpdateUserProfile)
			profiles.DELETE("/:profileId", profileHandler.DeleteUserProfile)
		}

		events := odata.Group("/calendarEvents")
		{
			events.GET("", eventHandler.GetUserCalendarEvents)
			events.GET("/:eventId", eventHandler.GetUserCalendarEvent)
			events.POST("", eventHandler.CreateUserCalendarEvent)
			events.PUT("/:eventId", eventHandler.UpsertUserCalendarEvent)
			events.PATCH("/:eventId", eventHandler.PartiallyUpdateUserCalendarEvent)
			events.DELETE("/:eventId", eventHandler.DeleteUserCalendarEvent)
		}
	}
}
