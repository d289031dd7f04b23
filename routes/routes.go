package routes

import (
	"crmadmin-backend/config"
	"crmadmin-backend/controllers"
	"crmadmin-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"http://localhost:3000",
			"http://localhost:5173",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		// Customer routes
		customers := api.Group("/customers")
		{
			customers.POST("", controllers.CreateCustomer)
			customers.GET("", controllers.GetCustomers)
			customers.GET("/:id", controllers.GetCustomer)
			customers.PUT("/:id", controllers.UpdateCustomer)
			customers.DELETE("/:id", controllers.DeleteCustomer)

			// Detail view tabs
			customers.GET("/:id/reviews", controllers.GetCustomerReviews)
			customers.POST("/:id/reviews", controllers.CreateReview)
			customers.GET("/:id/appointments", controllers.GetCustomerAppointments)
			customers.POST("/:id/appointments", controllers.CreateAppointment)
			customers.GET("/:id/payments", controllers.GetCustomerPayments)
			customers.POST("/:id/payments", controllers.CreatePayment)

			// Direct chat
			customers.POST("/:id/message", controllers.SendDirectChat)
		}

		// Dashboard routes
		api.GET("/dashboard", controllers.GetDashboardOverview)
	}

	return r
}
