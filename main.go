package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"oporun-backend/handlers"
	"oporun-backend/services"
	"oporun-backend/storage"
	"oporun-backend/utils"
	"oporun-backend/workers"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  No .env file found, reading environment variables directly")
	}

	app := fiber.New()

	// Load allowed origins from environment variable
	allowedOriginsEnv := os.Getenv("ALLOWED_ORIGINS")
	if allowedOriginsEnv == "" {
		log.Println("⚠️  ALLOWED_ORIGINS environment variable not set, using default: http://localhost:3000")
		allowedOriginsEnv = "http://localhost:3000"
	}
	allowedOriginsList := strings.Split(allowedOriginsEnv, ",")
	for i, origin := range allowedOriginsList {
		allowedOriginsList[i] = strings.TrimSpace(origin)
	}
	allowedOriginsString := strings.Join(allowedOriginsList, ",")

	app.Use(cors.New(cors.Config{
		AllowOrigins: allowedOriginsString,
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Accept-Language, Authorization",
		MaxAge:       86400,
	}))

	store, err := storage.NewFromEnv()
	if err != nil {
		log.Fatal("failed to open submission store: ", err)
	}
	defer store.Close()

	// R2 is only needed by the admin export; a missing config disables it
	// without touching the signup pipeline.
	if err := utils.InitR2(); err != nil {
		log.Printf("⚠️  R2 not available, submission export disabled: %v", err)
	}

	mailer := services.NewResendMailer()
	signupService := services.NewSignupService(store, mailer)
	contentService := services.NewContentService()

	handlers.SetupSignupRoutes(app, signupService)
	handlers.SetupContentRoutes(app, contentService)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	digestWorker := workers.NewSignupDigestWorker(store, mailer)
	digestWorker.Start(ctx)
	defer digestWorker.Stop()

	port := os.Getenv("PORT")
	if port == "" {
		port = "5100"
	}

	go func() {
		if err := app.Listen(":" + port); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	log.Printf("✅ Server running on http://localhost:%s", port)
	log.Println("✅ Signup digest worker running")
	log.Printf("✅ CORS configured for origins: %s", allowedOriginsString)

	<-ctx.Done()
	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
}
