package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	envPath = ".env"

	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"

	defaultRunAddress   = ":8080"
	defaultDatabasePath = "disney.db"
	defaultDumpPath     = "disney_characters.sql"
	defaultLogLevel     = ""
	defaultSessionTTL   = 24 * time.Hour
	defaultAdminName    = "admin"
)

type Config struct {
	Env    string
	DB     DB
	Server Server
	Logger Logger
	Auth   Auth
	Import Import
}

type DB struct {
	Path string `mapstructure:"database_path"`
}

type Server struct {
	RunAddress string `mapstructure:"run_address"`
}

type Logger struct {
	LogLevel string `mapstructure:"log_level"`
	File     string `mapstructure:"log_file"`
}

type Auth struct {
	SessionTTL    time.Duration `mapstructure:"session_ttl"`
	AdminUsername string        `mapstructure:"admin_username"`
	AdminPassword string        `mapstructure:"admin_password"`
}

type Import struct {
	DumpPath string `mapstructure:"dump_path"`
}

// Load читает .env (если есть) и переменные окружения через viper.
func Load() (*Config, error) {
	if _, err := os.Stat(envPath); err == nil {
		if err := godotenv.Load(envPath); err != nil {
			log.Printf("failed to load %s: %v", envPath, err)
		}
	}

	viper.AutomaticEnv()

	viper.SetDefault("APP_ENV", EnvLocal)
	viper.SetDefault("RUN_ADDRESS", defaultRunAddress)
	viper.SetDefault("DATABASE_PATH", defaultDatabasePath)
	viper.SetDefault("DUMP_PATH", defaultDumpPath)
	viper.SetDefault("LOG_LEVEL", defaultLogLevel)
	viper.SetDefault("SESSION_TTL", defaultSessionTTL)
	viper.SetDefault("ADMIN_USERNAME", defaultAdminName)

	cfg := &Config{
		Env:    viper.GetString("APP_ENV"),
		DB:     DB{Path: viper.GetString("DATABASE_PATH")},
		Server: Server{RunAddress: viper.GetString("RUN_ADDRESS")},
		Logger: Logger{
			LogLevel: viper.GetString("LOG_LEVEL"),
			File:     viper.GetString("LOG_FILE"),
		},
		Auth: Auth{
			SessionTTL:    viper.GetDuration("SESSION_TTL"),
			AdminUsername: viper.GetString("ADMIN_USERNAME"),
			AdminPassword: viper.GetString("ADMIN_PASSWORD"),
		},
		Import: Import{DumpPath: viper.GetString("DUMP_PATH")},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// MustLoad как Load, но паникует при ошибке конфигурации.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("config: %v", err))
	}
	return cfg
}

func (c *Config) validate() error {
	switch c.Env {
	case EnvLocal, EnvDev, EnvProd:
	default:
		return fmt.Errorf("unknown app_env %q", c.Env)
	}
	if c.DB.Path == "" {
		return fmt.Errorf("database_path must not be empty")
	}
	if c.Server.RunAddress == "" {
		return fmt.Errorf("run_address must not be empty")
	}
	if c.Auth.SessionTTL <= 0 {
		return fmt.Errorf("session_ttl must be positive")
	}
	return nil
}

// IsLocal проверяет, local ли окружение
func (c *Config) IsLocal() bool {
	return c.Env == EnvLocal
}

// IsProd проверяет, prod ли окружение
func (c *Config) IsProd() bool {
	return c.Env == EnvProd
}
