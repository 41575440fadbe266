package main

import (
	"log"
	"os"
	"time"

	"tutorhive-be/internal/model"
	"tutorhive-be/pkg/database"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

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

	color.Cyan("Seeding notification types...")
	SeedNotificationTypes(db)

	color.Cyan("Seeding demo accounts...")
	seedDemoAccounts(db)

	color.Green("Seed complete")
}

func seedDemoAccounts(db *gorm.DB) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	hashStr := string(hash)

	accounts := []struct {
		email    string
		name     string
		role     string
		headline string
		rate     float64
	}{
		{"student@demo.local", "Demo Student", "student", "", 0},
		{"tutor@demo.local", "Demo Tutor", "tutor", "Calculus and linear algebra", 45},
		{"admin@demo.local", "Demo Admin", "admin", "", 0},
	}

	for _, a := range accounts {
		var existing model.User
		err := db.Where("email = ?", a.email).First(&existing).Error
		if err == nil {
			color.Yellow("  - %s (exists)", a.email)
			continue
		}
		if err != gorm.ErrRecordNotFound {
			color.Red("  ✗ %s: %v", a.email, err)
			continue
		}

		user := model.User{
			Id:           uuid.New(),
			Email:        a.email,
			FullName:     a.name,
			PasswordHash: &hashStr,
			Role:         a.role,
			Status:       "active",
		}
		if err := db.Create(&user).Error; err != nil {
			color.Red("  ✗ %s: %v", a.email, err)
			continue
		}

		if a.role == "tutor" {
			headline := a.headline
			profile := model.TutorProfile{
				UserId:     user.Id,
				Headline:   &headline,
				HourlyRate: a.rate,
				Currency:   "USD",
			}
			if err := db.Create(&profile).Error; err != nil {
				color.Red("  ✗ profile for %s: %v", a.email, err)
				continue
			}

			// One open slot tomorrow so a fresh environment is bookable.
			start := time.Now().Add(24 * time.Hour).Truncate(time.Hour)
			slot := model.Availability{
				Id:        uuid.New(),
				TutorId:   user.Id,
				StartTime: start,
				EndTime:   start.Add(time.Hour),
			}
			if err := db.Create(&slot).Error; err != nil {
				color.Red("  ✗ slot for %s: %v", a.email, err)
				continue
			}
		}

		color.Green("  ✓ %s", a.email)
	}
}
