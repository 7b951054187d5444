package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr        string
	DBDSN       string
	TemplateDir string
	LogFile     string
}

func Load() Config {
	// .env is optional; env vars win either way.
	_ = godotenv.Load()

	cfg := Config{
		Addr:        getenv("ADDR", ":8080"),
		DBDSN:       getenv("DB_DSN", "laceadmin.db"),
		TemplateDir: getenv("TEMPLATE_DIR", "./web/templates"),
		LogFile:     getenv("LOG_FILE", "./laceadmin.log"),
	}
	log.Printf("[config] ADDR=%s DB_DSN=%s TEMPLATE_DIR=%s LOG_FILE=%s", cfg.Addr, cfg.DBDSN, cfg.TemplateDir, cfg.LogFile)
	return cfg
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
