package database

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// PostgresConfig holds the connection settings read from the environment.
type PostgresConfig struct {
	URL      string
	Host     string
	Port     string
	User     string
	Password string
	Database string
	SSLMode  string
	MaxConns int
	LogLevel logger.LogLevel
}

// PostgresConfigFromEnv reads DATABASE_URL, falling back to the DB_* variables.
func PostgresConfigFromEnv() PostgresConfig {
	maxConns, _ := strconv.Atoi(getenvDefault("DB_MAX_CONNS", "20"))
	level := logger.Silent
	switch os.Getenv("DB_LOG_LEVEL") {
	case "info":
		level = logger.Info
	case "warn":
		level = logger.Warn
	case "error":
		level = logger.Error
	}
	return PostgresConfig{
		URL:      os.Getenv("DATABASE_URL"),
		Host:     getenvDefault("DB_HOST", "localhost"),
		Port:     getenvDefault("DB_PORT", "5432"),
		User:     getenvDefault("DB_USER", "postgres"),
		Password: getenvDefault("DB_PASSWORD", "postgres"),
		Database: getenvDefault("DB_NAME", "insurance"),
		SSLMode:  getenvDefault("DB_SSLMODE", "disable"),
		MaxConns: maxConns,
		LogLevel: level,
	}
}

func (c PostgresConfig) DSN() string {
	if c.URL != "" {
		return c.URL
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode,
	)
}

// GormConfig translates driver errors so repositories can match
// gorm.ErrDuplicatedKey on unique violations.
func GormConfig(level logger.LogLevel) *gorm.Config {
	return &gorm.Config{
		TranslateError: true,
		Logger: logger.New(
			log.New(os.Stdout, "\r\n", log.LstdFlags),
			logger.Config{
				SlowThreshold:             time.Second,
				LogLevel:                  level,
				IgnoreRecordNotFoundError: true,
				Colorful:                  false,
			},
		),
	}
}

// ConnectPostgres opens and validates the GORM connection pool.
func ConnectPostgres(ctx context.Context, cfg PostgresConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), GormConfig(cfg.LogLevel))
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("gorm sql db: %w", err)
	}
	if cfg.MaxConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxConns)
		sqlDB.SetMaxIdleConns(cfg.MaxConns / 2)
	}
	sqlDB.SetConnMaxIdleTime(15 * time.Minute)
	sqlDB.SetConnMaxLifetime(time.Hour)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	log.Printf("[database] postgres connected host=%s db=%s", cfg.Host, cfg.Database)
	return db, nil
}
