package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	Port              string
	AppEnv            string
	JWTSecret         string
	PaystackSecretKey string
	PaystackBaseURL   string
	ClientURL         string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("no .env file found, using system ENV")
		}
	}

	Port = GetEnv("PORT", "5000")
	AppEnv = GetEnv("APP_ENV", "development")
	JWTSecret = GetEnv("JWT_SECRET")
	PaystackSecretKey = GetEnv("PAYSTACK_SECRET_KEY")
	PaystackBaseURL = GetEnv("PAYSTACK_BASE_URL", "https://api.paystack.co")
	ClientURL = GetEnv("CLIENT_URL", "http://localhost:5173")

	if JWTSecret == "" {
		log.Println("[WARN] JWT_SECRET is not set")
	}
	if PaystackSecretKey == "" {
		log.Println("[WARN] PAYSTACK_SECRET_KEY is not set")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}
