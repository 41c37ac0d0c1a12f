package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

var (
	Addr       = ":8080"
	DBPath     = "./data/noteva.db"
	ThemesDir  = "./themes"
	UploadsDir = "./uploads"
	UploadsURL = "/uploads"

	// Admin session settings
	SessionName   = "noteva_session"
	SessionSecret = "noteva-dev-secret"

	// List defaults
	PerPage = 10
)

func Init() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found or error loading it.")
	}

	// Helper to get env with default
	getEnv := func(key, fallback string) string {
		if v := os.Getenv(key); v != "" {
			return v
		}
		return fallback
	}

	Addr = getEnv("NOTEVA_ADDR", Addr)
	DBPath = getEnv("NOTEVA_DB_PATH", DBPath)
	ThemesDir = getEnv("NOTEVA_THEMES_DIR", ThemesDir)
	UploadsDir = getEnv("NOTEVA_UPLOADS_DIR", UploadsDir)
	SessionSecret = getEnv("SESSION_SECRET", SessionSecret)

	if pp := os.Getenv("NOTEVA_PER_PAGE"); pp != "" {
		if val, err := strconv.Atoi(pp); err == nil && val > 0 {
			PerPage = val
		}
	}
}
