package db

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Config struct {
	Driver   string // "mysql" or "sqlite"
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	Path     string // sqlite file path, ":memory:" for tests
}

// Connect opens the configured database. TranslateError maps driver-specific
// unique constraint violations to gorm.ErrDuplicatedKey so concurrent
// registrations surface as a duplicate-username failure.
func Connect(cfg Config) (*gorm.DB, error) {
	opts := &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	}
	switch cfg.Driver {
	case "sqlite":
		path := cfg.Path
		if path == "" {
			path = "ieltsim.db"
		}
		return gorm.Open(sqlite.Open(path), opts)
	case "", "mysql":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local", cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.DBName)
		return gorm.Open(mysql.Open(dsn), opts)
	default:
		return nil, fmt.Errorf("unsupported db driver %q", cfg.Driver)
	}
}
