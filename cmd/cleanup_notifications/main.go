package main

import (
	"context"
	"log"
	"os"
	"time"

	"tutorhive-be/internal/repository/implementation"
	"tutorhive-be/pkg/database"

	"github.com/joho/godotenv"
)

// Purges notifications past the 90-day retention window. Meant to run
// from cron; the API server also sweeps opportunistically at startup.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	repo := implementation.NewNotificationRepository(db)

	cutoff := time.Now().Add(-90 * 24 * time.Hour)
	deleted, err := repo.DeleteExpired(context.Background(), cutoff)
	if err != nil {
		log.Fatal("Error: cleanup failed:", err)
	}

	log.Printf("Deleted %d expired notifications (older than %s)", deleted, cutoff.Format(time.RFC3339))
}
