package utils

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all environment-backed settings for the server
type Config struct {
	Port          string
	MongoURI      string
	JwtSecret     string
	StripeKey     string
	PostmarkToken string
	EmailSender   string
}

// LoadConfig reads .env (when present) and collects settings from the
// environment. MONGO_URI wins over the DB_USER/DB_PASS pair.
func LoadConfig() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Proceeding with environment variables.")
	}

	cfg := Config{
		Port:          os.Getenv("PORT"),
		MongoURI:      os.Getenv("MONGO_URI"),
		JwtSecret:     os.Getenv("SECRET_ACCESS_TOKEN"),
		StripeKey:     os.Getenv("PAYMENT_SECRET_KEY"),
		PostmarkToken: os.Getenv("POSTMARK_API_TOKEN"),
		EmailSender:   os.Getenv("EMAIL_SENDER"),
	}
	if cfg.Port == "" {
		cfg.Port = "5000"
	}
	if cfg.MongoURI == "" {
		cfg.MongoURI = fmt.Sprintf(
			"mongodb+srv://%s:%s@cluster0.phpiexj.mongodb.net/?retryWrites=true&w=majority",
			os.Getenv("DB_USER"), os.Getenv("DB_PASS"),
		)
	}
	return cfg
}
