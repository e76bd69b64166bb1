package config

import (
	"fmt"
	"log"
	"os"
	"sync"

	"backend/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var (
	DB     *gorm.DB
	dbOnce sync.Once
)

// InitDB loads the environment and opens the shared gorm handle. Safe to call
// more than once; the connection is established on the first call and reused
// for the lifetime of the process.
func InitDB() {
	dbOnce.Do(func() {
		if err := godotenv.Load(); err != nil {
			log.Printf("no .env file loaded: %v", err)
		}

		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			os.Getenv("DB_HOST"),
			os.Getenv("DB_USER"),
			os.Getenv("DB_PASSWORD"),
			os.Getenv("DB_NAME"),
			os.Getenv("DB_PORT"),
		)

		conn, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}

		if err := conn.AutoMigrate(
			&models.User{},
			&models.Profile{},
			&models.ResetCode{},
		); err != nil {
			log.Fatalf("AutoMigrate failed: %v", err)
		}

		DB = conn
	})
}
