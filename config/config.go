package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
)

type Config struct {
	ServiceName string
	LoggerLevel string

	AppPort int

	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string

	GoogleMapsAPIKey string

	SupabaseURL     string
	SupabaseAnonKey string

	AuthDevBypass  bool
	DevBypassUser  string
	DevBypassEmail string

	NewRelicLicenseKey string
}

func Load() Config {
	_ = godotenv.Load(".env")

	cfg := Config{}

	cfg.ServiceName = cast.ToString(getOrReturnDefault("SERVICE_NAME", "tripkit-backend"))
	cfg.LoggerLevel = cast.ToString(getOrReturnDefault("LOGGER_LEVEL", "info"))
	cfg.AppPort = cast.ToInt(getOrReturnDefault("APP_PORT", 8080))

	cfg.PostgresHost = cast.ToString(getOrReturnDefault("POSTGRES_HOST", "localhost"))
	cfg.PostgresPort = cast.ToString(getOrReturnDefault("POSTGRES_PORT", "5432"))
	cfg.PostgresUser = cast.ToString(getOrReturnDefault("POSTGRES_USER", "postgres"))
	cfg.PostgresPassword = cast.ToString(getOrReturnDefault("POSTGRES_PASSWORD", "postgres"))
	cfg.PostgresDB = cast.ToString(getOrReturnDefault("POSTGRES_DB", "tripkit"))

	cfg.GoogleMapsAPIKey = cast.ToString(getOrReturnDefault("GOOGLE_MAPS_API_KEY", ""))

	cfg.SupabaseURL = cast.ToString(getOrReturnDefault("SUPABASE_URL", ""))
	cfg.SupabaseAnonKey = cast.ToString(getOrReturnDefault("SUPABASE_ANON_KEY", ""))

	cfg.AuthDevBypass = cast.ToBool(getOrReturnDefault("AUTH_DEV_BYPASS", false))
	cfg.DevBypassUser = cast.ToString(getOrReturnDefault("AUTH_DEV_BYPASS_USER", "dev-test-user"))
	cfg.DevBypassEmail = cast.ToString(getOrReturnDefault("AUTH_DEV_BYPASS_EMAIL", "dev@test.com"))

	cfg.NewRelicLicenseKey = cast.ToString(getOrReturnDefault("NEW_RELIC_LICENSE_KEY", ""))

	return cfg
}

func getOrReturnDefault(key string, defaultValue interface{}) interface{} {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return defaultValue
}
