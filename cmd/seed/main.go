package main

import (
	"log"
	"os"

	"ai-onboarding-be/internal/model"
	"ai-onboarding-be/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	// Load Environment Variables
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

	color.Cyan("Seeding demo users...")
	seedUsers(db)

	color.Cyan("Seeding sample documents...")
	SeedDocuments(db)

	color.Green("✅ Seeding completed!")
}

func seedUsers(db *gorm.DB) {
	users := []struct {
		Username string
		Password string
		FullName string
		Role     string
	}{
		{Username: "admin", Password: "admin123", FullName: "System Administrator", Role: "admin"},
		{Username: "nazir", Password: "nazir123", FullName: "Nazir Muavini", Role: "minister"},
		{Username: "analitik", Password: "analitik123", FullName: "Data Analyst", Role: "analyst"},
	}

	for _, u := range users {
		var existing model.User
		if err := db.Where("username = ?", u.Username).First(&existing).Error; err == nil {
			color.Yellow("User '%s' already exists, skipping...", u.Username)
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("Error hashing password for '%s': %v", u.Username, err)
			continue
		}

		user := model.User{
			Username:     u.Username,
			PasswordHash: string(hash),
			FullName:     u.FullName,
			Role:         u.Role,
		}
		if err := db.Create(&user).Error; err != nil {
			log.Printf("Error creating user '%s': %v", u.Username, err)
		} else {
			color.Green("Created user: %s (%s)", u.Username, u.Role)
		}
	}
}
