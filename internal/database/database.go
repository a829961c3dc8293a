package database

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // PostgreSQL driver
	log "github.com/sirupsen/logrus"

	"socialnet/internal/config"
)

// Connect opens a pooled connection to the relational store and verifies it.
// The returned handle is passed explicitly to every repository; nothing in the
// module holds a package-level connection.
func Connect(cfg *config.Config) (*sqlx.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort, cfg.DBSSLMode)

	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	log.WithFields(log.Fields{"host": cfg.DBHost, "db": cfg.DBName}).Info("Connected to database")
	return db, nil
}
