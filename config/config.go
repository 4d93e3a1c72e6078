package config

import (
	"fmt"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"time"
)

type Config struct {
	ServiceName   string
	ServerAddress string

	Env         string
	LogLevel    string
	HTTPTimeout int32

	OpenWeatherAPIKey  string
	OpenWeatherBaseURL string
	OpenWeatherTimeout int32
}

func LoadConfig() (*Config, error) {
	return LoadConfigFrom(".")
}

// LoadConfigFrom reads an optional .env file from dir; environment variables win over it.
func LoadConfigFrom(dir string) (*Config, error) {
	v := viper.New()

	v.SetDefault("SERVICE_NAME", "weather-viewer")
	v.SetDefault("SERVER_ADDRESS", "0.0.0.0:3000")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("HTTP_TIMEOUT", 15)
	v.SetDefault("OPENWEATHER_BASE_URL", "https://api.openweathermap.org")
	v.SetDefault("OPENWEATHER_TIMEOUT", 10)

	v.AutomaticEnv()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(dir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Debug().Msg("No .env file found, using environment variables only")
		} else {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		log.Info().Str("file", v.ConfigFileUsed()).Msg("Config file loaded")
	}

	config := &Config{
		ServiceName:        v.GetString("SERVICE_NAME"),
		ServerAddress:      v.GetString("SERVER_ADDRESS"),
		Env:                v.GetString("ENV"),
		LogLevel:           v.GetString("LOG_LEVEL"),
		HTTPTimeout:        v.GetInt32("HTTP_TIMEOUT"),
		OpenWeatherAPIKey:  v.GetString("OPENWEATHER_API_KEY"),
		OpenWeatherBaseURL: v.GetString("OPENWEATHER_BASE_URL"),
		OpenWeatherTimeout: v.GetInt32("OPENWEATHER_TIMEOUT"),
	}

	return config, nil
}

func (c *Config) HTTPTimeoutDuration() time.Duration {
	return time.Duration(c.HTTPTimeout) * time.Second
}

// OpenWeatherTimeoutDuration reads OPENWEATHER_TIMEOUT as whole seconds, like HTTP_TIMEOUT.
func (c *Config) OpenWeatherTimeoutDuration() time.Duration {
	return time.Duration(c.OpenWeatherTimeout) * time.Second
}
