package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config holds every setting the server reads at startup.
type Config struct {
	Port string

	DB       DBConfig
	Auth     AuthConfig
	Storage  ObjectStorageConfig
	LogLevel string
	// LogFormat is "json" or "text".
	LogFormat string

	CORSOrigins       []string
	CropSweepSchedule string
}

type DBConfig struct {
	Host         string
	Port         string
	User         string
	Password     string
	Name         string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
}

// DSN returns the lib/pq connection string.
func (d DBConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

type AuthConfig struct {
	SecretKey       string
	RefreshSecret   string
	SessionTokenTTL time.Duration
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
}

// ObjectStorageConfig configures crop image uploads. An empty Bucket disables uploads.
type ObjectStorageConfig struct {
	Bucket    string
	Region    string
	Endpoint  string
	AccessKey string
	SecretKey string
	PublicURL string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "5000")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_DATABASE", "agri")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MAX_OPEN_CONNS", 20)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("SESSION_TOKEN_TTL", "1000h")
	v.SetDefault("ACCESS_TOKEN_TTL", "15m")
	v.SetDefault("REFRESH_TOKEN_TTL", "336h")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000")
	v.SetDefault("CROP_SWEEP_SCHEDULE", "30 0 * * *")
	v.SetDefault("AWS_S3_REGION", "ap-south-1")
}

// Load reads .env (when present) and the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug("no .env file, using process environment")
	}
	return FromViper(viper.New())
}

// FromViper builds a Config from v, binding it to the environment first.
func FromViper(v *viper.Viper) (*Config, error) {
	setDefaults(v)
	v.AutomaticEnv()

	cfg := &Config{
		Port: v.GetString("PORT"),
		DB: DBConfig{
			Host:         v.GetString("DB_HOST"),
			Port:         v.GetString("DB_PORT"),
			User:         v.GetString("DB_USER"),
			Password:     v.GetString("DB_PASSWORD"),
			Name:         v.GetString("DB_DATABASE"),
			SSLMode:      v.GetString("DB_SSLMODE"),
			MaxOpenConns: v.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns: v.GetInt("DB_MAX_IDLE_CONNS"),
		},
		Auth: AuthConfig{
			SecretKey:       v.GetString("SECRET_KEY"),
			RefreshSecret:   v.GetString("REFRESH_SECRET"),
			SessionTokenTTL: v.GetDuration("SESSION_TOKEN_TTL"),
			AccessTokenTTL:  v.GetDuration("ACCESS_TOKEN_TTL"),
			RefreshTokenTTL: v.GetDuration("REFRESH_TOKEN_TTL"),
		},
		Storage: ObjectStorageConfig{
			Bucket:    v.GetString("AWS_S3_BUCKET"),
			Region:    v.GetString("AWS_S3_REGION"),
			Endpoint:  v.GetString("AWS_S3_ENDPOINT"),
			AccessKey: v.GetString("AWS_ACCESS_KEY"),
			SecretKey: v.GetString("AWS_SECRET_KEY"),
			PublicURL: v.GetString("AWS_S3_PUBLIC_URL"),
		},
		LogLevel:          v.GetString("LOG_LEVEL"),
		LogFormat:         v.GetString("LOG_FORMAT"),
		CORSOrigins:       splitList(v.GetString("CORS_ORIGINS")),
		CropSweepSchedule: v.GetString("CROP_SWEEP_SCHEDULE"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	log.WithFields(log.Fields{"port": cfg.Port, "db_host": cfg.DB.Host}).Info("config parsed")
	return cfg, nil
}

func (c *Config) validate() error {
	var errs []error
	if c.Auth.SecretKey == "" {
		errs = append(errs, errors.New("SECRET_KEY is required"))
	}
	if c.Auth.RefreshSecret == "" {
		errs = append(errs, errors.New("REFRESH_SECRET is required"))
	}
	if c.Auth.AccessTokenTTL <= 0 || c.Auth.RefreshTokenTTL <= 0 || c.Auth.SessionTokenTTL <= 0 {
		errs = append(errs, errors.New("token lifetimes must be positive"))
	}
	if c.DB.MaxOpenConns < 1 {
		errs = append(errs, fmt.Errorf("DB_MAX_OPEN_CONNS must be at least 1, got %d", c.DB.MaxOpenConns))
	}
	return errors.Join(errs...)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// ConfigureLogging applies the log level and format to the standard logrus logger.
func ConfigureLogging(c *Config) {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)
	if c.LogFormat == "text" {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
		return
	}
	log.SetFormatter(&log.JSONFormatter{})
}
