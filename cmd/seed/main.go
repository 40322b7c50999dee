package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"motionklub/internal/config"
	"motionklub/internal/database"
	"motionklub/internal/repository"
	"motionklub/internal/seed"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	ctx := context.Background()
	log.Println("Running migrations...")
	if err := repository.Migrate(ctx, db); err != nil {
		log.Fatal("migrate failed:", err)
	}

	// Cleanup old data (children first)
	log.Println("Cleaning old data...")
	for _, table := range []string{
		"session_records",
		"bookings",
		"participants",
		"reservations",
		"events",
		"activities",
		"animators",
		"hotels",
	} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			log.Fatalf("cleanup %s failed: %v", table, err)
		}
	}

	log.Println("Loading demo dataset...")
	if err := seed.Apply(ctx, db); err != nil {
		log.Fatal("seed failed:", err)
	}
	if err := repository.ResetSequences(ctx, db); err != nil {
		log.Fatal("reset sequences failed:", err)
	}

	log.Printf("seed completed: reservations=%s,%s animator=%s", seed.DemoBNR, seed.SecondBNR, seed.DemoAnimatorID)
}
