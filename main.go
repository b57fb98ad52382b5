package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/hackmate/hackmate_backend/controllers"
	"github.com/hackmate/hackmate_backend/database"
	"github.com/hackmate/hackmate_backend/docs"
	"github.com/hackmate/hackmate_backend/middleware"
	"github.com/hackmate/hackmate_backend/websocket"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           HackMate API
// @version         1.0
// @description     API Server for the HackMate team matching platform
// @host            localhost:8080
// @BasePath        /
// @schemes         http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	// Initialize database
	database.Connect()
	database.Migrate()

	// Set up Swagger info
	docs.SwaggerInfo.Title = "HackMate API"
	docs.SwaggerInfo.Description = "API Server for the HackMate team matching platform"
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Host = "localhost:" + os.Getenv("PORT")
	if docs.SwaggerInfo.Host == "localhost:" {
		docs.SwaggerInfo.Host = "localhost:8080"
	}
	docs.SwaggerInfo.BasePath = "/"
	docs.SwaggerInfo.Schemes = []string{"http"}

	// Set up router
	router := gin.Default()

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Authentication routes
	auth := router.Group("/api")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
	}

	// Public catalog routes
	public := router.Group("/api")
	{
		public.GET("/hackathons", controllers.GetHackathons)
		public.POST("/hackathons", controllers.CreateHackathon)
		public.GET("/hackathons/search", controllers.SearchHackathons)
		public.GET("/hackathons/:id", controllers.GetHackathon)
	}

	// Protected routes
	api := router.Group("/api")
	api.Use(middleware.JWTAuth())
	{
		// Favorite routes
		api.GET("/hackathons/favorites", controllers.GetFavorites)
		api.POST("/hackathons/favorites", controllers.CreateFavorite)
		api.DELETE("/hackathons/favorites/:id", controllers.DeleteFavorite)

		// Team routes
		api.GET("/teams", controllers.GetTeams)
		api.POST("/teams", controllers.CreateTeam)
		api.GET("/teams/:id", controllers.GetTeam)
		api.PUT("/teams/:id", controllers.UpdateTeam)
		api.GET("/teams/:id/members", controllers.GetTeamMembers)
		api.DELETE("/teams/:id/members/:userID", controllers.RemoveTeamMember)

		// Invite routes
		api.GET("/invites/pending", controllers.GetPendingInvites)
		api.GET("/invites/sent", controllers.GetSentInvites)
		api.POST("/invites", controllers.SendInvite)
		api.POST("/invites/respond", controllers.RespondToInvite)
	}

	// WebSocket route
	router.GET("/ws", websocket.HandleConnection)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server running on port %s", port)
	log.Printf("Swagger documentation available at http://localhost:%s/swagger/index.html", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
