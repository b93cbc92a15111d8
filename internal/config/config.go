package config

import (
	"log"

	// Load .env files before viper reads the environment.
	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/viper"
)

type Config struct {
	Port           string  `mapstructure:"PORT"`
	StoreBackend   string  `mapstructure:"STORE_BACKEND"`
	DBHost         string  `mapstructure:"DB_HOST"`
	DBPort         string  `mapstructure:"DB_PORT"`
	DBUsername     string  `mapstructure:"DB_USERNAME"`
	DBPassword     string  `mapstructure:"DB_PASSWORD"`
	DBDatabase     string  `mapstructure:"DB_DATABASE"`
	DBSchema       string  `mapstructure:"DB_SCHEMA"`
	MigrationsPath string  `mapstructure:"MIGRATIONS_PATH"`
	RateLimitRPS   float64 `mapstructure:"RATE_LIMIT_RPS"`
	RateLimitBurst int     `mapstructure:"RATE_LIMIT_BURST"`
}

func LoadConfig() *Config {
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("STORE_BACKEND", "memory")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_SCHEMA", "public")
	viper.SetDefault("MIGRATIONS_PATH", "migrations")
	viper.SetDefault("RATE_LIMIT_RPS", 1.0)
	viper.SetDefault("RATE_LIMIT_BURST", 3)

	viper.BindEnv("PORT")
	viper.BindEnv("STORE_BACKEND")
	viper.BindEnv("DB_HOST")
	viper.BindEnv("DB_PORT")
	viper.BindEnv("DB_USERNAME")
	viper.BindEnv("DB_PASSWORD")
	viper.BindEnv("DB_DATABASE")
	viper.BindEnv("DB_SCHEMA")
	viper.BindEnv("MIGRATIONS_PATH")
	viper.BindEnv("RATE_LIMIT_RPS")
	viper.BindEnv("RATE_LIMIT_BURST")

	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		log.Fatalf("Unable to decode config into struct, %v", err)
	}

	return &config
}
