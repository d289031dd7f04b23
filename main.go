package main

import (
	"fmt"
	"log"
	"os"

	"crmadmin-backend/config"
	"crmadmin-backend/models"
	"crmadmin-backend/routes"
	"crmadmin-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.User{},
		&models.Customer{},
		&models.Review{},
		&models.Appointment{},
		&models.Payment{},
		&models.MessageLog{},
	)
}

func main() {

	reconciler := services.NewReconcileService(config.DB)
	reconciler.StartScheduler()

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
