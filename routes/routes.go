package routes

import (
	userRepo "wanderluxe/database/repository/user"
	"wanderluxe/handlers"
	"wanderluxe/middleware"

	"github.com/gin-gonic/gin"
)

// Handlers bundles the constructed handlers for route registration.
type Handlers struct {
	UserRepo       userRepo.UserRepository
	Auth           *handlers.AuthHandler
	Booking        *handlers.BookingHandler
	Destination    *handlers.DestinationHandler
	Commission     *handlers.CommissionHandler
	Recommendation *handlers.RecommendationHandler
	Notification   *handlers.NotificationHandler
}

// RegisterRoutes wires all endpoints onto the router.
func RegisterRoutes(r *gin.Engine, h *Handlers) {
	r.GET("/api/health", handlers.HealthHandler)

	auth := r.Group("/api/auth")
	{
		auth.POST("/register", h.Auth.RegisterHandler)
		auth.POST("/login", h.Auth.LoginHandler)
	}

	destinations := r.Group("/api/destinations")
	{
		destinations.GET("", h.Destination.ListDestinations)
		destinations.GET("/:id", h.Destination.GetDestination)
	}

	authed := r.Group("/api")
	authed.Use(middleware.JWTAuthMiddleware(h.UserRepo))
	{
		authed.PUT("/me/preferences", h.Auth.UpdatePreferencesHandler)
		authed.GET("/recommendations", h.Recommendation.GetRecommendations)
		authed.GET("/notifications", h.Notification.ListMyNotifications)
		authed.POST("/notifications/:id/read", h.Notification.MarkNotificationRead)

		bookings := authed.Group("/bookings")
		{
			bookings.POST("", h.Booking.CreateBooking)
			bookings.GET("", h.Booking.ListMyBookings)
			bookings.GET("/:id", h.Booking.GetBooking)
			bookings.PUT("/:id", h.Booking.UpdateBooking)
			bookings.POST("/:id/cancel", h.Booking.CancelBooking)

			// Confirmation and closeout are agent/webhook actions.
			agentOnly := bookings.Group("")
			agentOnly.Use(middleware.RequireAgent())
			agentOnly.POST("/:id/confirm", h.Booking.ConfirmBooking)
			agentOnly.POST("/:id/complete", h.Booking.CompleteBooking)
			agentOnly.POST("/:id/finalize", h.Booking.FinalizeBooking)
		}

		agents := authed.Group("/agents")
		agents.Use(middleware.RequireAgent())
		{
			agents.GET("/:id/commissions", h.Commission.ListAgentCommissions)
		}
	}
}
