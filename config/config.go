package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config carries the process configuration. Every field has a fixed default
// so the server comes up with no environment at all.
type Config struct {
	AdminUser     string
	AdminPassword string
	Port          string

	WinnersFile      string
	AnnouncementFile string
	PublicDir        string
	CertificatesDir  string
}

// Load reads .env if present and assembles the config from the environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[INFO] No .env file found, reading environment variables")
	}

	return &Config{
		AdminUser:        getEnv("ADMIN_USER", "techspace"),
		AdminPassword:    getEnv("ADMIN_PASSWORD", "veryhard69"),
		Port:             getEnv("PORT", "3000"),
		WinnersFile:      getEnv("WINNERS_FILE", "winners.json"),
		AnnouncementFile: getEnv("ANNOUNCEMENT_FILE", "announcement.json"),
		PublicDir:        getEnv("PUBLIC_DIR", "public"),
		CertificatesDir:  getEnv("CERTIFICATES_DIR", "certificates"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
