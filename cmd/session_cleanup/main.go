package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"

	"motionklub/internal/config"
	"motionklub/internal/database"
	"motionklub/internal/repository"
)

// Removes database session records untouched for SESSION_RETENTION. Redis
// sessions are not affected.
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}

	before := time.Now().Add(-cfg.SessionRetention)
	n, err := repository.NewSessionRecordRepository(db).DeleteStale(context.Background(), before)
	if err != nil {
		log.Fatalf("cleanup session_records failed: %v", err)
	}

	log.Printf("session cleanup completed: session_records=%d before=%s", n, before.UTC().Format(time.RFC3339))
}
