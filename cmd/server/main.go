// @title Issue Board API
// @version 1.0
// @description Backend API for a Jira-like issue board
// @termsOfService http://swagger.io/terms/
// @contact.name API Support
// @contact.email support@example.com
// @license.name MIT
// @license.url https://opensource.org/licenses/MIT
// @host localhost:8080
// @BasePath /api

package main

import (
	"issueboard-be/config"
	"issueboard-be/internal/database"
	"issueboard-be/internal/handlers"
	"issueboard-be/internal/middleware"
	"issueboard-be/internal/repository"
	"issueboard-be/internal/services"
	"log"

	"github.com/gin-gonic/gin"

	_ "issueboard-be/docs"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Connect to MongoDB
	mongodb, err := database.NewMongoDB(cfg.MongoDBURI, cfg.MongoDBDatabase)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongodb.Disconnect()

	// Initialize repositories
	projectRepo := repository.NewProjectRepository(mongodb.Database)
	columnRepo := repository.NewColumnRepository(mongodb.Database)
	ticketRepo := repository.NewTicketRepository(mongodb.Database)
	commentRepo := repository.NewCommentRepository(mongodb.Database)
	userRepo := repository.NewUserRepository(mongodb.Database)

	// Initialize services
	projectService := services.NewProjectService(projectRepo, columnRepo)
	ticketService := services.NewTicketService(ticketRepo, columnRepo, projectRepo, commentRepo, userRepo)
	columnService := services.NewColumnService(columnRepo, ticketRepo, projectRepo, ticketService)
	commentService := services.NewCommentService(commentRepo, ticketRepo, userRepo)
	userService := services.NewUserService(userRepo)

	// Initialize handlers
	projectHandler := handlers.NewProjectHandler(projectService)
	columnHandler := handlers.NewColumnHandler(columnService)
	ticketHandler := handlers.NewTicketHandler(ticketService)
	commentHandler := handlers.NewCommentHandler(commentService)
	userHandler := handlers.NewUserHandler(userService)
	searchHandler := handlers.NewSearchHandler(ticketService)

	// Initialize Gin
	r := gin.Default()

	// Apply CORS middleware
	r.Use(middleware.CORS(cfg))

	api := r.Group("/api")
	{
		// Health check
		api.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status":   "ok",
				"message":  "Issue Board API is running",
				"database": "MongoDB connected",
			})
		})

		// Project routes
		api.GET("/projects", projectHandler.List)
		api.POST("/projects", projectHandler.Create)
		api.GET("/projects/key/:key", projectHandler.GetByKey)
		api.GET("/projects/:id", projectHandler.Get)
		api.PUT("/projects/:id", projectHandler.Update)
		api.DELETE("/projects/:id", projectHandler.Delete)
		api.GET("/projects/:id/columns", columnHandler.ListByProject)
		api.GET("/projects/:id/tickets", ticketHandler.ListByProject)
		api.GET("/projects/:id/search", searchHandler.SearchTickets)

		// Column routes
		api.POST("/columns", columnHandler.Create)
		api.PUT("/columns/:id", columnHandler.Update)
		api.DELETE("/columns/:id", columnHandler.Delete)

		// Ticket routes
		api.POST("/tickets", ticketHandler.Create)
		api.GET("/tickets/:id", ticketHandler.Get)
		api.PUT("/tickets/:id", ticketHandler.Update)
		api.PATCH("/tickets/:id/move", ticketHandler.Move)
		api.DELETE("/tickets/:id", ticketHandler.Delete)
		api.GET("/tickets/:id/comments", commentHandler.ListByTicket)
		api.POST("/tickets/:id/comments", commentHandler.Create)

		// Comment routes
		api.PUT("/comments/:id", commentHandler.Update)
		api.DELETE("/comments/:id", commentHandler.Delete)

		// User routes
		api.GET("/users", userHandler.List)
		api.GET("/users/:id", userHandler.Get)
		api.POST("/users", userHandler.Create)
		api.PUT("/users/:id", userHandler.Update)
		api.DELETE("/users/:id", userHandler.Delete)
	}

	// Swagger route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	log.Printf("Connected to MongoDB: %s", cfg.MongoDBDatabase)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
