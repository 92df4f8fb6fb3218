package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// Config holds all process-wide configuration. It is loaded once at
// startup and passed by reference into the services that need it.
type Config struct {
	Port        string
	Env         string
	JWTSecret   []byte
	DatabaseURL string
	BcryptCost  int
}

// Load reads configuration from the environment (and a .env file when
// present). JWT_SECRET and DATABASE_URL are required; starting without
// them is a configuration error, not something to discover per request.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is not set")
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		return nil, fmt.Errorf("DATABASE_URL is not set")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development"
	}

	cost := bcrypt.DefaultCost
	if v := os.Getenv("BCRYPT_COST"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("BCRYPT_COST must be an integer: %w", err)
		}
		cost = parsed
	}
	if cost < bcrypt.DefaultCost {
		cost = bcrypt.DefaultCost
	}

	return &Config{
		Port:        port,
		Env:         env,
		JWTSecret:   []byte(secret),
		DatabaseURL: dsn,
		BcryptCost:  cost,
	}, nil
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}
