// config/config.go
package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"showcase/internal/curated"
	"showcase/internal/productapi"
)

// Project sources selectable with PROJECT_SOURCE.
const (
	SourceMock     = "mock"
	SourcePostgres = "postgres"
	SourceAPI      = "api"
)

type Config struct {
	DBURL      string
	DBHost     string
	DBPort     int
	DBUser     string
	DBPassword string
	DBName     string
	ServerPort int

	ProductsAPIURL    string
	ProjectSource     string
	ExplorePageSize   int
	FeaturedPageSize  int
	CuratedCategories []string
	FormRateLimit     int
	CORSOrigins       []string
	LogLevel          string
}

// UsesDatabase reports whether the configured project source needs postgres.
func (c *Config) UsesDatabase() bool {
	return c.ProjectSource == SourcePostgres
}

func LoadConfig() (*Config, error) {
	godotenv.Load()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		dbURL = fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
			os.Getenv("DB_USER"), os.Getenv("DB_PASSWORD"),
			envString("DB_HOST", "localhost"), envInt("DB_PORT", 5432), os.Getenv("DB_NAME"))
	}

	parsedDBURL, err := url.Parse(dbURL)
	if err != nil {
		return nil, fmt.Errorf("invalid database URL: %w", err)
	}
	dbPortParsed, _ := strconv.Atoi(parsedDBURL.Port())
	dbPassword, _ := parsedDBURL.User.Password()

	source := strings.ToLower(envString("PROJECT_SOURCE", SourceMock))
	switch source {
	case SourceMock, SourcePostgres, SourceAPI:
	default:
		return nil, fmt.Errorf("unknown PROJECT_SOURCE %q", source)
	}

	return &Config{
		DBURL:      dbURL,
		DBHost:     parsedDBURL.Hostname(),
		DBPort:     dbPortParsed,
		DBUser:     parsedDBURL.User.Username(),
		DBPassword: dbPassword,
		DBName:     strings.TrimPrefix(parsedDBURL.Path, "/"),
		ServerPort: envInt("SERVER_PORT", 8080),

		ProductsAPIURL:    envString("PRODUCTS_API_URL", productapi.DefaultURL),
		ProjectSource:     source,
		ExplorePageSize:   envInt("EXPLORE_PAGE_SIZE", 6),
		FeaturedPageSize:  envInt("FEATURED_PAGE_SIZE", 9),
		CuratedCategories: curated.ParseCategories(os.Getenv("CURATED_CATEGORIES")),
		FormRateLimit:     envInt("FORM_RATE_LIMIT", 10),
		CORSOrigins:       splitList(envString("CORS_ORIGINS", "*")),
		LogLevel:          envString("LOG_LEVEL", "info"),
	}, nil
}

func envString(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// envInt falls back on a missing, malformed or non-positive value.
func envInt(key string, fallback int) int {
	v, err := strconv.Atoi(strings.TrimSpace(os.Getenv(key)))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
