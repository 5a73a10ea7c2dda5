package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	Port        string `mapstructure:"PORT"`
	DatabaseURL string `mapstructure:"DATABASE_URL"`
	JWTSecret   string `mapstructure:"JWT_SECRET"`
	FrontendURL string `mapstructure:"FRONTEND_URL"`

	// Redis
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`

	// OAuth
	GoogleClientID     string `mapstructure:"GOOGLE_CLIENT_ID"`
	GoogleClientSecret string `mapstructure:"GOOGLE_CLIENT_SECRET"`
	GoogleCallbackURL  string `mapstructure:"GOOGLE_CALLBACK_URL"`

	// Redemption workflow
	// CollectionBonusPoints is credited once when a redemption is first
	// confirmed as collected.
	CollectionBonusPoints int `mapstructure:"COLLECTION_BONUS_POINTS"`
	// RedeemMaxRetries bounds internal retries on serialization conflicts
	// before surfacing a CONCURRENCY_CONFLICT to the caller.
	RedeemMaxRetries int `mapstructure:"REDEEM_MAX_RETRIES"`
}

var AppConfig *Config

func LoadConfig() {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	viper.SetDefault("COLLECTION_BONUS_POINTS", 5000)
	viper.SetDefault("REDEEM_MAX_RETRIES", 3)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Unable to decode config: %v", err)
	}
}
