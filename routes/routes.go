package routes

import (
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"studiobook-backend/config"
	"studiobook-backend/controllers"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000", "http://localhost:5173"}
	if env := os.Getenv("ALLOWED_ORIGINS"); env != "" {
		allowedOrigins = strings.Split(env, ",")
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	api := r.Group("/api")
	{
		// Service routes
		services := api.Group("/services")
		{
			services.GET("", controllers.GetServices)
			services.GET("/:slug", controllers.GetServiceBySlug)
		}

		// Availability and slot routes
		api.GET("/availability/:serviceId", controllers.GetAvailability)
		api.GET("/slots/:serviceId", controllers.GetSlots)

		// Booking routes
		bookings := api.Group("/bookings")
		{
			bookings.POST("", controllers.CreateBooking)
			bookings.GET("", controllers.GetBookings)
			bookings.PUT("/:id/status", controllers.UpdateBookingStatus)
		}

		// Contact form routes
		contact := api.Group("/contact")
		{
			contact.POST("", controllers.SubmitContact)
			contact.GET("", controllers.GetContacts)
		}

		api.POST("/seed-services", controllers.SeedServices)
	}

	return r
}
