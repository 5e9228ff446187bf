package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	JWTSecret          string
	JWTRefreshSecret   string
	GoogleClientID     string
	GitHubClientID     string
	GitHubClientSecret string
	GitHubRedirectURI  string
	FrontendBaseURL    string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("[WARN] No .env file found, using system ENV")
		} else {
			log.Println("[INFO] .env file loaded")
		}
	} else {
		log.Println("[INFO] Running in Railway, using system ENV")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	JWTRefreshSecret = GetEnv("JWT_REFRESH_SECRET")
	GoogleClientID = GetEnv("GOOGLE_CLIENT_ID")
	GitHubClientID = GetEnv("GITHUB_CLIENT_ID")
	GitHubClientSecret = GetEnv("GITHUB_CLIENT_SECRET")
	GitHubRedirectURI = GetEnv("GITHUB_REDIRECT_URI")
	FrontendBaseURL = GetEnv("FRONTEND_BASE_URL", "http://localhost:5173")

	if JWTSecret == "" {
		log.Println("[ERROR] JWT_SECRET is not set!")
	}
	if JWTRefreshSecret == "" {
		log.Println("[ERROR] JWT_REFRESH_SECRET is not set!")
	}
	if GoogleClientID == "" {
		log.Println("[WARN] GOOGLE_CLIENT_ID is not set, Google sign-in disabled")
	}
	if GitHubClientID == "" {
		log.Println("[WARN] GITHUB_CLIENT_ID is not set, GitHub sign-in disabled")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}
