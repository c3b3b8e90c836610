package utils

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Session  SessionConfig
	OMDB     OMDBConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

type SessionConfig struct {
	ExpiryHours int
}

type OMDBConfig struct {
	BaseURL string
	APIKey  string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("SESSION_EXPIRY_HOURS", 168)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("OMDB_BASE_URL", "https://www.omdbapi.com/")

	if err := viper.ReadInConfig(); err != nil {
		// .env file is optional when everything comes from the environment
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
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		Session: SessionConfig{
			ExpiryHours: viper.GetInt("SESSION_EXPIRY_HOURS"),
		},
		OMDB: OMDBConfig{
			BaseURL: viper.GetString("OMDB_BASE_URL"),
			APIKey:  viper.GetString("OMDB_API_KEY"),
		},
	}

	// Startup tanpa database config itu fatal
	if config.Database.Host == "" || config.Database.Name == "" {
		return nil, fmt.Errorf("missing required config: DB_HOST and DB_NAME must be set")
	}

	return config, nil
}
