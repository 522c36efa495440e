package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type SeedProduct struct {
	ID       int64   `yaml:"id"`
	Name     string  `yaml:"name"`
	Price    float64 `yaml:"price"`
	Stock    int64   `yaml:"stock"`
	Category string  `yaml:"category"`
	Discount float64 `yaml:"discount"`
}

type SeedCustomer struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
}

type Config struct {
	Port          string         `yaml:"port"`
	JWTSecret     string         `yaml:"jwt_secret"`
	TokenTTLHours int            `yaml:"token_ttl_hours"`
	AdminKey      string         `yaml:"admin_key"`
	MySQLDSN      string         `yaml:"mysql_dsn"`
	PostgresDSN   string         `yaml:"postgres_dsn"`
	Catalog       []SeedProduct  `yaml:"catalog"`
	Customers     []SeedCustomer `yaml:"customers"`
}

func defaults() Config {
	return Config{
		Port:          "8080",
		JWTSecret:     "dev-secret-change-me",
		TokenTTLHours: 24,
		AdminKey:      "dev-admin-key",
	}
}

// Load reads the optional YAML file at path, then applies environment
// overrides. A missing file is not an error; a malformed one is.
func Load(path string) (Config, error) {
	cfg := defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// run on defaults + env
		case err != nil:
			return cfg, err
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parse %s: %w", path, err)
			}
		}
	}

	cfg.Port = getenv("APP_PORT", cfg.Port)
	cfg.JWTSecret = getenv("JWT_SECRET", cfg.JWTSecret)
	cfg.AdminKey = getenv("ADMIN_KEY", cfg.AdminKey)
	cfg.MySQLDSN = getenv("MYSQL_DSN", cfg.MySQLDSN)
	cfg.PostgresDSN = getenv("PG_DSN", cfg.PostgresDSN)

	if cfg.TokenTTLHours <= 0 {
		cfg.TokenTTLHours = 24
	}
	return cfg, nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
