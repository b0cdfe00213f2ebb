package config

import (
	"log"
	"os"
	"strings"
	"time"
)

// JWTConfig defines issuer/secret pair for auth verification.
type JWTConfig struct {
	Issuer string
	Secret []byte
}

// Config holds runtime configuration shared across the application.
type Config struct {
	Addr            string
	MongoURI        string
	MongoDatabase   string
	StoreCollection string
	PingCollection  string
	Timeout         time.Duration
	Timezone        string
	MallLink        string
	DirectoryPath   string
	FetchTimeout    time.Duration
	FetchUserAgent  string
	ServerLog       *log.Logger
	JWTConfigs      []JWTConfig
	JWTAudience     string
	AllowedOrigins  []string
}

// Load reads environment variables and returns a fully populated Config.
func Load() Config {
	timeout := 10 * time.Second
	if v := strings.TrimSpace(os.Getenv("MONGO_CONNECT_TIMEOUT")); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			timeout = parsed
		}
	}

	fetchTimeout := 10 * time.Second
	if v := strings.TrimSpace(os.Getenv("DIRECTORY_FETCH_TIMEOUT")); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			fetchTimeout = parsed
		}
	}

	var jwtConfigs []JWTConfig
	if secret := strings.TrimSpace(os.Getenv("ADMIN_JWT_SECRET")); secret != "" {
		jwtConfigs = append(jwtConfigs, JWTConfig{
			Issuer: envOrDefault("ADMIN_JWT_ISSUER", "mall-directory-auth"),
			Secret: []byte(secret),
		})
	}
	if len(jwtConfigs) == 0 {
		log.Fatal("JWT secret not configured. Set ADMIN_JWT_SECRET.")
	}

	cfg := Config{
		Addr:            envOrDefault("HTTP_ADDR", ":8080"),
		MongoURI:        envOrDefault("MONGO_URI", "mongodb://mongo:27017"),
		MongoDatabase:   envOrDefault("MONGO_DB", "mall-directory"),
		StoreCollection: envOrDefault("STORE_COLLECTION", "stores"),
		PingCollection:  envOrDefault("PING_COLLECTION", "pings"),
		Timeout:         timeout,
		Timezone:        envOrDefault("TIMEZONE", "Pacific/Honolulu"),
		MallLink:        envOrDefault("MALL_LINK", "https://www.alamoanacenter.com/"),
		DirectoryPath:   envOrDefault("DIRECTORY_PATH", "en/directory/"),
		FetchTimeout:    fetchTimeout,
		FetchUserAgent:  strings.TrimSpace(os.Getenv("DIRECTORY_FETCH_USER_AGENT")),
		ServerLog:       log.New(os.Stdout, "[mall-directory-api] ", log.LstdFlags|log.Lshortfile),
		JWTConfigs:      jwtConfigs,
		JWTAudience:     strings.TrimSpace(os.Getenv("ADMIN_JWT_AUDIENCE")),
		AllowedOrigins:  parseList("API_ALLOWED_ORIGINS", []string{"*"}),
	}

	cfg.ServerLog.Printf("loaded config: mallLink=%q directoryPath=%q timezone=%q", cfg.MallLink, cfg.DirectoryPath, cfg.Timezone)

	return cfg
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseList(key string, fallback []string) []string {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}

	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			values = append(values, part)
		}
	}

	if len(values) == 0 {
		return fallback
	}
	return values
}
