package main

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"prepquiz-service/internal/config"
	"prepquiz-service/internal/db"
	"prepquiz-service/internal/event"
	"prepquiz-service/internal/handlers"
	"prepquiz-service/internal/repository"
	"prepquiz-service/internal/selection"
	"prepquiz-service/internal/service"
)

func main() {
	// Load env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system env")
	}
	cfg := config.New()
	if cfg.MongoURI == "" {
		log.Fatal("MONGO_URI is required")
	}
	db.InitMongo(cfg.MongoURI)
	defer db.Disconnect()

	// RabbitMQ event publisher
	var publisher *event.Publisher
	if cfg.RabbitMQURI != "" && cfg.RabbitMQExchange != "" {
		var err error
		publisher, err = event.NewPublisher(cfg.RabbitMQURI, cfg.RabbitMQExchange)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
	} else {
		log.Println("RabbitMQ not configured, events will not be published")
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Content-Length", "Accept-Encoding", "Authorization", "accept", "origin", "Cache-Control", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	database := db.Client.Database(cfg.MongoDB)

	// Attempts: generation, submission, history
	attemptRepo := repository.NewAttemptRepository(database)
	quizService := service.NewQuizService(selection.NewSampler())
	attemptService := service.NewAttemptService(attemptRepo)
	quizHandler := handlers.NewQuizHandler(quizService, attemptService)

	// Analytics over the same attempts collection
	analyticsService := service.NewAnalyticsService(attemptRepo)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)

	// Bookmarks
	bookmarkRepo := repository.NewBookmarkRepository(database)
	bookmarkService := service.NewBookmarkService(bookmarkRepo)
	bookmarkHandler := handlers.NewBookmarkHandler(bookmarkService)

	// Status checks
	statusRepo := repository.NewStatusRepository(database)
	statusService := service.NewStatusService(statusRepo)
	statusHandler := handlers.NewStatusHandler(statusService)

	api := r.Group("/api")
	{
		api.GET("/", func(c *gin.Context) {
			c.JSON(200, gin.H{"message": "Hello World"})
		})
		api.POST("/status", func(c *gin.Context) {
			statusHandler.CreateStatusCheck(c)
			if publisher != nil {
				publisher.Publish(event.StatusRegistered, nil)
			}
		})
		api.GET("/status", statusHandler.ListStatusChecks)
	}

	quiz := r.Group("/api/quiz")
	{
		quiz.POST("/generate", func(c *gin.Context) {
			quizHandler.GenerateQuiz(c)
			if publisher != nil {
				publisher.Publish(event.QuizGenerated, gin.H{"timestamp": time.Now()})
			}
		})
		quiz.POST("/submit", func(c *gin.Context) {
			quizHandler.SubmitQuiz(c)
			if publisher != nil {
				publisher.Publish(event.QuizSubmitted, gin.H{"timestamp": time.Now()})
			}
		})
		quiz.GET("/history/:user_id", func(c *gin.Context) {
			quizHandler.GetHistory(c)
			if publisher != nil {
				publisher.Publish(event.HistoryViewed, gin.H{"user_id": c.Param("user_id")})
			}
		})
		quiz.GET("/analytics/:user_id", func(c *gin.Context) {
			analyticsHandler.GetAnalytics(c)
			if publisher != nil {
				publisher.Publish(event.AnalyticsViewed, gin.H{"user_id": c.Param("user_id")})
			}
		})
		quiz.POST("/bookmark", func(c *gin.Context) {
			bookmarkHandler.AddBookmark(c)
			if publisher != nil {
				publisher.Publish(event.BookmarkAdded, nil)
			}
		})
		quiz.GET("/bookmarks/:user_id", func(c *gin.Context) {
			bookmarkHandler.ListBookmarks(c)
			if publisher != nil {
				publisher.Publish(event.BookmarksListed, gin.H{"user_id": c.Param("user_id")})
			}
		})
	}

	r.Run(":" + cfg.Port)
}
