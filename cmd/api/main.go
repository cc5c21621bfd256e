package main

import (
	"context"
	"log"
	"time"

	"edumate_go_backend/cmd/api/config"
	"edumate_go_backend/internal/api"
	"edumate_go_backend/internal/auth"
	"edumate_go_backend/internal/database"
	"edumate_go_backend/internal/services"
	"edumate_go_backend/internal/services/mailer"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/generative-ai-go/genai"
	"github.com/joho/godotenv"
	"google.golang.org/api/option"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()

	database.InitDB()

	genaiClient, err := genai.NewClient(ctx, option.WithAPIKey(cfg.GenAIAPIKey))
	if err != nil {
		log.Fatalf("Failed to create GenAI client: %v", err)
	}
	defer genaiClient.Close()

	// Initialize internal services
	userService := services.NewUserService(database.DB)
	chatService := services.NewChatServiceDB(database.DB)
	fileService := services.NewFileServiceDB(database.DB)
	analyticsService := services.NewAnalyticsServiceDB(database.DB)
	supportService := services.NewSupportServiceDB(database.DB)

	aiService := services.NewAIService(services.NewGenAICompleter(genaiClient, cfg.GenAIModel), cfg.GenAIModel)
	assessmentService := services.NewAssessmentService(aiService, analyticsService)

	uploadService, err := services.NewUploadService(cfg.UploadDir)
	if err != nil {
		log.Fatalf("Failed to initialize upload storage: %v", err)
	}

	stripeService := services.NewStripeService(cfg.StripePublicKey, cfg.StripeSecretKey, cfg.StripeProductID, userService)

	var mail mailer.Mailer
	if cfg.SendgridAPIKey != "" {
		mail = mailer.NewSendgridMailer(cfg.SendgridAPIKey, cfg.MailFromName, cfg.MailFromEmail)
	} else {
		mail = mailer.NewConsoleMailer()
	}

	r := gin.Default()

	// CORS middleware configuration
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api.SetupRoutes(r,
		userService,
		chatService,
		fileService,
		analyticsService,
		supportService,
		aiService,
		assessmentService,
		uploadService,
		stripeService,
		mail,
		cfg.SupportInbox,
	)
	auth.SetupRoutes(r, userService)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
