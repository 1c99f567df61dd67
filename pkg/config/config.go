package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool

	// Storage backend selection
	StoreBackend string
	SQLiteDBPath string
	RedisURL     string
	DatabaseURL  string

	// Parent session tokens
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// Optional maturity notification broker
	AMQPURL      string
	AMQPExchange string
	AMQPQueue    string

	MaturationCheckInterval time.Duration
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("STORE_BACKEND", "sqlite")
	viper.SetDefault("SQLITE_DB_PATH", "data/pocket_money.db")
	viper.SetDefault("REDIS_URL", "")
	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "1h")
	viper.SetDefault("JWT_ISSUER", "pocket-money-app")
	viper.SetDefault("AMQP_URL", "")
	viper.SetDefault("AMQP_EXCHANGE", "pocket_money")
	viper.SetDefault("AMQP_QUEUE", "deposit_maturities")
	viper.SetDefault("MATURATION_CHECK_INTERVAL", "30s")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.StoreBackend = viper.GetString("STORE_BACKEND")
	cfg.SQLiteDBPath = viper.GetString("SQLITE_DB_PATH")
	cfg.RedisURL = viper.GetString("REDIS_URL")
	cfg.DatabaseURL = viper.GetString("PGSQL_URL")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = time.Hour * 1 // Default to 1 hour
		if jwtExpiryStr != "" {
			log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
		}
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.AMQPURL = viper.GetString("AMQP_URL")
	cfg.AMQPExchange = viper.GetString("AMQP_EXCHANGE")
	cfg.AMQPQueue = viper.GetString("AMQP_QUEUE")

	intervalStr := viper.GetString("MATURATION_CHECK_INTERVAL")
	interval, err := time.ParseDuration(intervalStr)
	if err != nil || interval <= 0 {
		interval = 30 * time.Second
		if intervalStr != "" {
			log.Printf("Warning: Invalid value for MATURATION_CHECK_INTERVAL ('%s'). Defaulting to %s.\n", intervalStr, interval.String())
		}
	}
	cfg.MaturationCheckInterval = interval

	return cfg, nil
}
