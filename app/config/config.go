package config

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

type Config struct {
	DB *sql.DB
}

var AppConfig *Config

// LoadEnv reads the .env file when present. Real deployments set variables
// through the environment, so a missing file is not an error.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
}

// GetEnv returns the value of an environment variable or the fallback when unset.
func GetEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// DatabaseURL builds the Postgres connection URL from the environment.
func DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		GetEnv("DB_USER", "postgres"),
		GetEnv("DB_PASSWORD", "postgres"),
		GetEnv("DB_HOST", "localhost"),
		GetEnv("DB_PORT", "5432"),
		GetEnv("DB_NAME", "scolatek"),
		GetEnv("DB_SSLMODE", "disable"),
	)
}

// InitDB opens the database connection pool and verifies it.
func InitDB() {
	psqlInfo := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s connect_timeout=10",
		GetEnv("DB_HOST", "localhost"),
		GetEnv("DB_PORT", "5432"),
		GetEnv("DB_USER", "postgres"),
		GetEnv("DB_PASSWORD", "postgres"),
		GetEnv("DB_NAME", "scolatek"),
		GetEnv("DB_SSLMODE", "disable"),
	)

	db, err := sql.Open("postgres", psqlInfo)
	if err != nil {
		log.Fatal("Failed to open database connection:", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	log.Println("Testing database connection...")
	if err = db.Ping(); err != nil {
		log.Fatal("Database connection failed:", err)
	}
	log.Printf("Connected to database %s at %s", GetEnv("DB_NAME", "scolatek"), GetEnv("DB_HOST", "localhost"))

	AppConfig = &Config{DB: db}
}

// GetDB returns the shared database handle.
func GetDB() *sql.DB {
	if AppConfig == nil {
		return nil
	}
	return AppConfig.DB
}
