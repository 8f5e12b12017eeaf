package main

import (
	"log"
	"os"
	"time"

	"ai-salesclone-be/internal/model"
	"ai-salesclone-be/pkg/database"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// Seeds a demo account with one clone per supported industry so a fresh
// environment has something to show on the dashboard.
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

	color.Cyan("Seeding demo data...")

	hash, err := bcrypt.GenerateFromPassword([]byte("demo-password"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Error: failed to hash demo password: %v", err)
	}

	var existing model.User
	if err := db.Where("email = ?", "demo@salesclone.dev").First(&existing).Error; err == nil {
		color.Yellow("Demo user already exists, skipping.")
		return
	}

	companyName := "SalesClone Demo"
	user := model.User{
		Id:           uuid.New(),
		Email:        "demo@salesclone.dev",
		PasswordHash: string(hash),
		FullName:     "Demo User",
		CompanyName:  &companyName,
		CreatedAt:    time.Now(),
	}
	if err := db.Create(&user).Error; err != nil {
		log.Fatalf("Error: failed to seed user: %v", err)
	}

	clones := []model.Clone{
		{
			Id:           uuid.New(),
			UserId:       user.Id,
			Name:         "Alex - Car Sales",
			IndustryType: "car_sales",
			Status:       "active",
			IsActive:     true,
			CreatedAt:    time.Now(),
		},
		{
			Id:           uuid.New(),
			UserId:       user.Id,
			Name:         "Morgan - Real Estate",
			IndustryType: "real_estate",
			Status:       "active",
			IsActive:     true,
			CreatedAt:    time.Now(),
		},
	}
	for i := range clones {
		if err := db.Create(&clones[i]).Error; err != nil {
			log.Fatalf("Error: failed to seed clone %s: %v", clones[i].Name, err)
		}
	}

	color.Green("Seed completed: demo@salesclone.dev / demo-password with %d clones.", len(clones))
}
