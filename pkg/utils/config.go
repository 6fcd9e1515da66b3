package utils

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	JWT       JWTConfig
	Admin     AdminConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
	Upload    UploadConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	URI  string
	Name string
}

type JWTConfig struct {
	AccessSecret  string
	RefreshSecret string
	AccessExpiry  time.Duration
	RefreshExpiry time.Duration
}

type AdminConfig struct {
	Email    string
	Password string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type RateLimitConfig struct {
	Requests int
	Window   time.Duration
}

type UploadConfig struct {
	Dir string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	viper.SetDefault("MONGO_DB", "product_catalog")
	viper.SetDefault("JWT_EXPIRE_MINUTES", 15)
	viper.SetDefault("REFRESH_EXPIRE_DAYS", 7)
	viper.SetDefault("RATE_LIMIT", 100)
	viper.SetDefault("RATE_WINDOW_MINUTES", 15)
	viper.SetDefault("UPLOAD_DIR", "uploads/")
	viper.SetDefault("REDIS_DB", 0)

	if err := viper.ReadInConfig(); err != nil {
		// .env file is optional when everything comes from real env vars
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			URI:  viper.GetString("MONGO_URI"),
			Name: viper.GetString("MONGO_DB"),
		},
		JWT: JWTConfig{
			AccessSecret:  viper.GetString("JWT_SECRET"),
			RefreshSecret: viper.GetString("JWT_REFRESH_SECRET"),
			AccessExpiry:  time.Duration(viper.GetInt("JWT_EXPIRE_MINUTES")) * time.Minute,
			RefreshExpiry: time.Duration(viper.GetInt("REFRESH_EXPIRE_DAYS")) * 24 * time.Hour,
		},
		Admin: AdminConfig{
			Email:    viper.GetString("ADMIN_EMAIL"),
			Password: viper.GetString("ADMIN_PASSWORD"),
		},
		Redis: RedisConfig{
			Addr:     viper.GetString("REDIS_ADDR"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		RateLimit: RateLimitConfig{
			Requests: viper.GetInt("RATE_LIMIT"),
			Window:   time.Duration(viper.GetInt("RATE_WINDOW_MINUTES")) * time.Minute,
		},
		Upload: UploadConfig{
			Dir: viper.GetString("UPLOAD_DIR"),
		},
	}

	return config, nil
}
