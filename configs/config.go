package configs

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBSource     string
	Port         string
	JWTSecret    string
	JWTTTL       time.Duration
	PublicOrigin string // base URL baked into table QR codes
	TaxRate      float64

	AdminEmail      string
	AdminPassword   string
	KitchenEmail    string
	KitchenPassword string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}

	taxRate := 0.12
	if v := os.Getenv("TAX_RATE"); v != "" {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil || parsed < 0 {
			log.Fatalf("bad TAX_RATE %q", v)
		}
		taxRate = parsed
	}

	return &Config{
		DBSource:        getEnv("DB_SOURCE", "pulsebite.db"),
		Port:            getEnv("PORT", "8000"),
		JWTSecret:       getEnv("JWT_SECRET", "changeme"),
		JWTTTL:          time.Duration(24) * time.Hour,
		PublicOrigin:    getEnv("PUBLIC_ORIGIN", "http://localhost:8000"),
		TaxRate:         taxRate,
		AdminEmail:      os.Getenv("ADMIN_EMAIL"),
		AdminPassword:   os.Getenv("ADMIN_PASSWORD"),
		KitchenEmail:    os.Getenv("KITCHEN_EMAIL"),
		KitchenPassword: os.Getenv("KITCHEN_PASSWORD"),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
