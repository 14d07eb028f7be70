package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"studiobook-backend/config"
	"studiobook-backend/controllers"
	"studiobook-backend/models"
	"studiobook-backend/routes"
	"studiobook-backend/services"
	"studiobook-backend/store"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.Service{},
		&models.Availability{},
		&models.Booking{},
		&models.Contact{},
	)
}

func main() {
	controllers.Init(store.NewGormStore(config.DB))

	if config.RemindersEnabled() {
		services.NewReminderService(config.DB).StartScheduler()
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r := routes.SetupRouter()
	printRoutes(r)
	r.Run(":" + port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
