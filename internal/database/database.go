package database

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"blogAPI/internal/config"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"github.com/sirupsen/logrus"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

type MethodsDB interface {
	CloseDB() error
	RunMigrations(ctx context.Context) error
	HealthCheck(ctx context.Context) error
}

type DB struct {
	*sqlx.DB
	log logrus.FieldLogger
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

func NewDB(db *sqlx.DB, log logrus.FieldLogger) *DB {
	return &DB{DB: db, log: log}
}

func ConnectDB(ctx context.Context, cfg *config.Config, log logrus.FieldLogger) (*DB, error) {
	log.WithFields(logrus.Fields{
		"host":   cfg.DB.DbHOST,
		"dbname": cfg.DB.DbNAME,
		"url":    cfg.DB.URL != "",
	}).Info("connecting to database")

	db, err := sqlx.ConnectContext(ctx, "postgres", cfg.DB.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(cfg.DB.MaxOpenConns)
	db.SetMaxIdleConns(cfg.DB.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.DB.ConnMaxLifetime)

	dbStruct := NewDB(db, log)

	if err := dbStruct.RunMigrations(ctx); err != nil {
		db.Close()
		return nil, err
	}

	if err := dbStruct.HealthCheck(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("database health check failed: %w", err)
	}

	log.Info("connected to PostgreSQL")
	return dbStruct, nil
}

func (db *DB) CloseDB() error {
	return db.DB.Close()
}

// RunMigrations applies the embedded goose migrations.
func (db *DB) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(embedMigrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set migration dialect: %w", err)
	}

	db.log.Info("applying migrations")

	if err := gooseUpContext(ctx, db.DB.DB, "migrations"); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	db.log.Info("migrations applied")
	return nil
}

func (db *DB) HealthCheck(ctx context.Context) error {
	if db == nil || db.DB == nil {
		return fmt.Errorf("database connection is not initialized")
	}

	return db.PingContext(ctx)
}
