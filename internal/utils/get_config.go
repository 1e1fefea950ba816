package utils

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/caarlos0/env/v11"
	"github.com/gofiber/fiber/v2/log"
	"gopkg.in/yaml.v2"
)

const (
	BackendFile     = "file"
	BackendS3       = "s3"
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
	BackendRedis    = "redis"
)

type Config struct {
	// Server configuration
	AppPort      string `yaml:"APP_PORT" env:"APP_PORT" validate:"required"`
	PublicDir    string `yaml:"PUBLIC_DIR" env:"PUBLIC_DIR"`
	LogDir       string `yaml:"LOG_DIR" env:"LOG_DIR"`
	RateLimitMax int    `yaml:"RATE_LIMIT_MAX" env:"RATE_LIMIT_MAX" validate:"gte=0"`

	// Storage backend
	StoreBackend string `yaml:"STORE_BACKEND" env:"STORE_BACKEND" validate:"required,oneof=file s3 postgres sqlite redis"`
	DataFile     string `yaml:"DATA_FILE" env:"DATA_FILE" validate:"required_if=StoreBackend file"`

	// Database configuration
	DBUser     string `yaml:"DB_USER" env:"DB_USER" validate:"required_if=StoreBackend postgres"`
	DBName     string `yaml:"DB_NAME" env:"DB_NAME" validate:"required_if=StoreBackend postgres"`
	DBPassword string `yaml:"DB_PASSWORD" env:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT" env:"DB_PORT" validate:"required_if=StoreBackend postgres"`
	DBHost     string `yaml:"DB_HOST" env:"DB_HOST" validate:"required_if=StoreBackend postgres"`
	SQLitePath string `yaml:"SQLITE_PATH" env:"SQLITE_PATH" validate:"required_if=StoreBackend sqlite"`

	// Redis configuration
	RedisAddr     string `yaml:"REDIS_ADDR" env:"REDIS_ADDR" validate:"required_if=StoreBackend redis"`
	RedisPassword string `yaml:"REDIS_PASSWORD" env:"REDIS_PASSWORD"`
	RedisDB       int    `yaml:"REDIS_DB" env:"REDIS_DB" validate:"gte=0"`
	RedisPrefix   string `yaml:"REDIS_PREFIX" env:"REDIS_PREFIX"`

	// AWS S3 configuration
	AWSS3Bucket    string `yaml:"AWS_S3_BUCKET" env:"AWS_S3_BUCKET" validate:"required_if=StoreBackend s3"`
	AWSS3Region    string `yaml:"AWS_S3_REGION" env:"AWS_S3_REGION" validate:"required_if=StoreBackend s3"`
	AWSAccessKey   string `yaml:"AWS_ACCESS_KEY" env:"AWS_ACCESS_KEY"`
	AWSSecretKey   string `yaml:"AWS_SECRET_KEY" env:"AWS_SECRET_KEY"`
	AWSS3Endpoint  string `yaml:"AWS_S3_ENDPOINT" env:"AWS_S3_ENDPOINT"`
	AWSS3ObjectKey string `yaml:"AWS_S3_OBJECT_KEY" env:"AWS_S3_OBJECT_KEY" validate:"required_if=StoreBackend s3"`
}

var config = defaultConfig()

func defaultConfig() Config {
	return Config{
		AppPort:        "3000",
		PublicDir:      "public",
		LogDir:         "logs",
		RateLimitMax:   20,
		StoreBackend:   BackendFile,
		DataFile:       "recipes.json",
		DBPort:         "5432",
		SQLitePath:     "recipes.db",
		RedisPrefix:    "recipes",
		AWSS3ObjectKey: "recipes.json",
	}
}

// LoadConfig reads the YAML file at path, applies environment overrides and
// validates the result. A missing file leaves the defaults in place.
func LoadConfig(path string) (*Config, error) {
	cfg := defaultConfig()

	file, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		log.Infof("config file %s not found, using defaults and environment", path)
	case err != nil:
		return nil, fmt.Errorf("error reading YAML file: %w", err)
	default:
		if err := yaml.Unmarshal(file, &cfg); err != nil {
			return nil, fmt.Errorf("error parsing YAML file: %w", err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("error parsing environment: %w", err)
	}

	InitValidator()
	if err := Validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	config = cfg
	return &cfg, nil
}

func GetConfig(key string) string {
	switch key {
	case "APP_PORT":
		return config.AppPort
	case "PUBLIC_DIR":
		return config.PublicDir
	case "LOG_DIR":
		return config.LogDir
	case "RATE_LIMIT_MAX":
		return strconv.Itoa(config.RateLimitMax)
	case "STORE_BACKEND":
		return config.StoreBackend
	case "DATA_FILE":
		return config.DataFile
	case "DB_USER":
		return config.DBUser
	case "DB_NAME":
		return config.DBName
	case "DB_PASSWORD":
		return config.DBPassword
	case "DB_PORT":
		return config.DBPort
	case "DB_HOST":
		return config.DBHost
	case "SQLITE_PATH":
		return config.SQLitePath
	case "REDIS_ADDR":
		return config.RedisAddr
	case "REDIS_PASSWORD":
		return config.RedisPassword
	case "REDIS_DB":
		return strconv.Itoa(config.RedisDB)
	case "REDIS_PREFIX":
		return config.RedisPrefix
	case "AWS_S3_BUCKET":
		return config.AWSS3Bucket
	case "AWS_S3_REGION":
		return config.AWSS3Region
	case "AWS_ACCESS_KEY":
		return config.AWSAccessKey
	case "AWS_SECRET_KEY":
		return config.AWSSecretKey
	case "AWS_S3_ENDPOINT":
		return config.AWSS3Endpoint
	case "AWS_S3_OBJECT_KEY":
		return config.AWSS3ObjectKey
	default:
		return ""
	}
}
