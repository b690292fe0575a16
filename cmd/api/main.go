package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/learnhub-api/internal/config"
	"github.com/learnhub-api/internal/infrastructure/dynamo"
	s3infra "github.com/learnhub-api/internal/infrastructure/s3"
	"github.com/learnhub-api/internal/infrastructure/smtp"
	"github.com/learnhub-api/internal/infrastructure/sns"
	tokeninfra "github.com/learnhub-api/internal/infrastructure/token"
	transporthttp "github.com/learnhub-api/internal/transport/http"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading from environment")
	}

	cfg := config.Load()

	// Bootstrap DynamoDB tables (creates them if they don't exist).
	dynamoClient := dynamo.NewClient(cfg)
	dynamo.Bootstrap(context.Background(), dynamoClient, cfg.DynamoTables)

	tokenProvider, err := tokeninfra.NewProvider(cfg.JWTSecret, cfg.SessionTTL)
	if err != nil {
		log.Fatalf("session token provider: %v", err)
	}

	// S3 store for resume documents.
	s3Client := s3infra.NewClient(cfg)
	s3Store := s3infra.NewStore(s3Client, cfg.S3BucketName)

	// SMTP mailer for password-reset links.
	mailer := smtp.NewMailer(cfg)

	// SNS SMS sender (optional — alerts are skipped if unavailable).
	var smsSender sns.SMSSender
	if sender, err := sns.NewSender(cfg); err == nil {
		smsSender = sender
	} else {
		log.Printf("WARN: SNS sender not available: %v", err)
	}

	deps := &transporthttp.Deps{
		AccountRepo:   dynamo.NewAccountRepo(dynamoClient, cfg.DynamoTables.Accounts),
		DocumentRepo:  dynamo.NewDocumentRepo(dynamoClient, cfg.DynamoTables.Documents),
		ObjectStore:   s3Store,
		Mailer:        mailer,
		SMSSender:     smsSender,
		TokenProvider: tokenProvider,
	}

	router := transporthttp.NewRouter(cfg, deps)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.AppPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on :%s (env=%s)", cfg.AppPort, cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("forced shutdown: %v", err)
	}
	log.Println("Server stopped")
}
