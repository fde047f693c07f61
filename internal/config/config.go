package config

import (
	"fmt"
	"os"
	"strconv"
)

// DatabaseConfig holds the MySQL connection settings.
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
}

// BrokerConfig holds the MQTT broker connection settings.
type BrokerConfig struct {
	URL      string
	ClientID string
}

// Config holds the complete process configuration.
type Config struct {
	Port     string
	Database DatabaseConfig
	Broker   BrokerConfig
}

// DSN returns a go-sql-driver/mysql connection string.
func (dc DatabaseConfig) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True",
		dc.User, dc.Password, dc.Host, dc.Port, dc.Name)
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{
		Port: getEnv("PORT", "3000"),
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     3306,
			User:     getEnv("DB_USER", "root"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     getEnv("DB_NAME", "MyDatabase"),
		},
		Broker: BrokerConfig{
			URL:      getEnv("MQTT_BROKER", "tcp://localhost:1883"),
			ClientID: getEnv("MQTT_CLIENT_ID", "sunless-api"),
		},
	}

	if portStr := os.Getenv("DB_PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return nil, fmt.Errorf("invalid DB_PORT %q: %w", portStr, err)
		}
		cfg.Database.Port = port
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
