package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL       string
	Port              string
	IsProduction      bool
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// CashFlowStartDate is the drawer cutover: transactions dated before it
	// are ignored by the cash-flow balance. It marks the last physical cash
	// recount.
	CashFlowStartDate time.Time

	// Default users seeded at startup when missing.
	DefaultAdminEmail        string
	DefaultAdminPassword     string
	DefaultReceptionEmail    string
	DefaultReceptionPassword string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "12h")
	viper.SetDefault("JWT_ISSUER", "salon-management-app")
	viper.SetDefault("CASH_FLOW_START_DATE", "2025-12-02T00:00:00Z")
	viper.SetDefault("DEFAULT_ADMIN_EMAIL", "admin@test.com")
	viper.SetDefault("DEFAULT_ADMIN_PASSWORD", "admin")
	viper.SetDefault("DEFAULT_RECEPTION_EMAIL", "recepcao@test.com")
	viper.SetDefault("DEFAULT_RECEPTION_PASSWORD", "recepcao")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET not set. Using default insecure key.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = 12 * time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration

	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cutoverStr := viper.GetString("CASH_FLOW_START_DATE")
	cutover, err := time.Parse(time.RFC3339, cutoverStr)
	if err != nil {
		return nil, err
	}
	cfg.CashFlowStartDate = cutover

	cfg.DefaultAdminEmail = viper.GetString("DEFAULT_ADMIN_EMAIL")
	cfg.DefaultAdminPassword = viper.GetString("DEFAULT_ADMIN_PASSWORD")
	cfg.DefaultReceptionEmail = viper.GetString("DEFAULT_RECEPTION_EMAIL")
	cfg.DefaultReceptionPassword = viper.GetString("DEFAULT_RECEPTION_PASSWORD")

	return cfg, nil
}
