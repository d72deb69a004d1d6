package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Mellisa04m/University-Students-Accommodation-Finder/internal/app/controllers"
	"github.com/Mellisa04m/University-Students-Accommodation-Finder/internal/app/models"
	"github.com/Mellisa04m/University-Students-Accommodation-Finder/internal/middleware"
)

// Controllers bundles every controller the router mounts
type Controllers struct {
	Auth         *controllers.AuthController
	User         *controllers.UserController
	Listing      *controllers.ListingController
	Booking      *controllers.BookingController
	Message      *controllers.MessageController
	Verification *controllers.VerificationController
	Dashboard    *controllers.DashboardController
	System       *controllers.SystemController
}

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, c *Controllers, authMiddleware *middleware.AuthMiddleware) {
	router.Use(middleware.RequestLogger())
	router.Use(middleware.Metrics())
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Authorization"},
	}))

	// --- Public routes ---
	router.POST("/register", c.Auth.Register)
	router.POST("/login", c.Auth.Login)

	router.GET("/listings", c.Listing.List)
	router.GET("/listings/:id", c.Listing.Get)
	router.GET("/search", c.Listing.Search)

	router.GET("/health", c.System.Health)
	router.GET("/test-db", c.System.TestDB)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// --- Authenticated routes ---
	authenticated := router.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.GET("/profile", c.User.GetProfile)
		authenticated.GET("/users", authMiddleware.RoleRequired(models.RoleAdmin), c.User.ListUsers)

		// Listing management
		landlordListings := authenticated.Group("/listings")
		landlordListings.Use(authMiddleware.RoleRequired(models.RoleLandlord))
		{
			landlordListings.POST("", c.Listing.Create)
			landlordListings.PUT("/:id", c.Listing.Update)
			landlordListings.DELETE("/:id", c.Listing.Delete)
		}
		authenticated.PUT("/listings/:id/verify", authMiddleware.RoleRequired(models.RoleAdmin), c.Listing.Verify)

		// Bookings
		authenticated.GET("/bookings", c.Booking.List)
		authenticated.POST("/bookings", authMiddleware.RoleRequired(models.RoleStudent), c.Booking.Create)
		authenticated.PUT("/bookings/:id/confirm", authMiddleware.RoleRequired(models.RoleLandlord), c.Booking.Confirm)
		authenticated.PUT("/bookings/:id/cancel", c.Booking.Cancel)

		// Messaging
		messages := authenticated.Group("/messages")
		{
			messages.POST("", c.Message.Send)
			messages.GET("", c.Message.List)
			messages.GET("/conversations", c.Message.Conversations)
			messages.GET("/conversation/:otherUserId", c.Message.Conversation)
			messages.PUT("/conversation/:otherUserId/read", c.Message.MarkRead)
		}

		// Landlord verification (admin reviews landlord documents)
		authenticated.POST("/verifications", authMiddleware.RoleRequired(models.RoleLandlord), c.Verification.Submit)
		authenticated.GET("/verifications", authMiddleware.RoleRequired(models.RoleAdmin), c.Verification.List)
		authenticated.GET("/verifications/my", authMiddleware.RoleRequired(models.RoleLandlord), c.Verification.ListMine)

		// Legacy aliases kept for existing clients
		authenticated.POST("/verification/request", authMiddleware.RoleRequired(models.RoleLandlord), c.Verification.Submit)
		authenticated.PUT("/verification/:id/review", authMiddleware.RoleRequired(models.RoleAdmin), c.Verification.Review)

		// Student verification (landlord reviews student documents)
		studentVerification := authenticated.Group("/student-verification")
		{
			studentVerification.POST("/request", authMiddleware.RoleRequired(models.RoleStudent), c.Verification.SubmitStudent)
			studentVerification.GET("/requests", authMiddleware.RoleRequired(models.RoleLandlord), c.Verification.ListStudentRequests)
			studentVerification.GET("/my", authMiddleware.RoleRequired(models.RoleStudent), c.Verification.ListStudentMine)
			studentVerification.PUT("/:id/review", authMiddleware.RoleRequired(models.RoleLandlord), c.Verification.ReviewStudent)
		}

		// Dashboard
		authenticated.GET("/dashboard/stats", c.Dashboard.Stats)
	}
}
