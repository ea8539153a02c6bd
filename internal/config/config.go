package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type AppConfig struct {
	API      *APIConfig      `mapstructure:"api"`
	Gin      *GinConfig      `mapstructure:"gin"`
	Postgres *PostgresConfig `mapstructure:"postgres"`
}

type APIConfig struct {
	Environment        string `mapstructure:"environment"`
	BaseURL            string `mapstructure:"base_url"`
	Port               string `mapstructure:"port"`
	JWTSigningKey      string `mapstructure:"jwt_signing_key"`
	AllowedCORSDomains string `mapstructure:"allowed_cors_domains"`
}

type GinConfig struct {
	Mode string `mapstructure:"mode"`
}

type PostgresConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DB       string `mapstructure:"db"`
}

// Load reads the YAML config at configPath. Selected keys can be
// overridden through environment variables, which is how deployed
// environments inject secrets.
func Load(configPath string) (*AppConfig, error) {
	viper.SetConfigFile(configPath)

	bindEnvs := map[string]string{
		"api.environment":     "API_ENVIRONMENT",
		"api.base_url":        "API_BASE_URL",
		"api.port":            "PORT",
		"api.jwt_signing_key": "JWT_SIGNING_KEY",
		"gin.mode":            "GIN_MODE",
		"postgres.host":       "POSTGRES_HOST",
		"postgres.port":       "POSTGRES_PORT",
		"postgres.user":       "POSTGRES_USER",
		"postgres.password":   "POSTGRES_PASSWORD",
		"postgres.db":         "POSTGRES_DB",
	}
	for key, env := range bindEnvs {
		if err := viper.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("viper.BindEnv -> %w", err)
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("viper.ReadInConfig -> %w", err)
	}

	conf := &AppConfig{}
	if err := viper.Unmarshal(conf); err != nil {
		return nil, fmt.Errorf("viper.Unmarshal -> %w", err)
	}

	return conf, nil
}
