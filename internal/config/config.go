package config

import (
	"errors"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"storefront/internal/notes"
)

type Config struct {
	Env         string
	Port        int
	DatabaseURL string
	JWTSecret   string
	CORSOrigins []string
	NotesFormat notes.Format

	R2 R2Config
}

type R2Config struct {
	Endpoint      string
	AccessKey     string
	SecretKey     string
	Bucket        string
	PublicBaseURL string
}

// Enabled is true only when every R2 setting is present.
func (r R2Config) Enabled() bool {
	return r.Endpoint != "" && r.AccessKey != "" && r.SecretKey != "" &&
		r.Bucket != "" && r.PublicBaseURL != ""
}

var defaultOrigins = []string{"http://localhost:3000", "http://localhost:5173"}

// Load reads .env outside production, then the process environment.
func Load() (Config, error) {
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from any getenv-style source.
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Config{
		Env:         getenv("APP_ENV"),
		DatabaseURL: getenv("DATABASE_URL"),
		JWTSecret:   getenv("JWT_SECRET"),
		NotesFormat: notes.ParseFormat(getenv("NOTES_FORMAT")),
		CORSOrigins: append([]string(nil), defaultOrigins...),
		R2: R2Config{
			Endpoint:      getenv("R2_ENDPOINT"),
			AccessKey:     getenv("R2_ACCESS_KEY"),
			SecretKey:     getenv("R2_SECRET_KEY"),
			Bucket:        getenv("R2_BUCKET_NAME"),
			PublicBaseURL: getenv("R2_PUBLIC_BASE_URL"),
		},
	}

	var missing []string
	if cfg.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}
	if cfg.JWTSecret == "" {
		missing = append(missing, "JWT_SECRET")
	}
	if len(missing) > 0 {
		return Config{}, errors.New("missing env vars: " + strings.Join(missing, ", "))
	}

	cfg.Port = 8000
	if p := getenv("PORT"); p != "" {
		port, err := strconv.Atoi(p)
		if err != nil || port <= 0 {
			return Config{}, errors.New("invalid PORT env variable")
		}
		cfg.Port = port
	}

	// An origin list that trims down to nothing keeps the defaults;
	// cors.New refuses an empty allow list.
	var origins []string
	for _, origin := range strings.Split(getenv("CORS_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) > 0 {
		cfg.CORSOrigins = origins
	}

	return cfg, nil
}
