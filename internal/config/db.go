package config

import (
	"context"
	"fmt"
	"time"

	"online_tuition/internal/repository"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// ConnectPostgres establishes a connection to the PostgreSQL database
func ConnectPostgres(ctx context.Context, cfg DBConfig, log zerolog.Logger) (*pgxpool.Pool, error) {
	var pool *pgxpool.Pool
	var err error

	// Retry connecting to the database a few times
	maxRetries := 5
	retryInterval := 5 * time.Second

	for i := 0; i < maxRetries; i++ {
		pool, err = pgxpool.New(ctx, cfg.DSN())
		if err == nil {
			err = pool.Ping(ctx)
			if err == nil {
				log.Info().Str("host", cfg.Host).Msg("connected to PostgreSQL")
				return pool, nil
			}
			pool.Close()
		}
		log.Warn().Err(err).Msgf("failed to connect to database (attempt %d/%d), retrying in %v", i+1, maxRetries, retryInterval)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(retryInterval):
		}
	}
	return nil, fmt.Errorf("unable to connect to database after %d attempts: %w", maxRetries, err)
}

// Schema holds the three tables. Emails carry no unique constraint.
const Schema = `
	CREATE TABLE IF NOT EXISTS students (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL DEFAULT '',
		email TEXT NOT NULL,
		phone TEXT NOT NULL,
		password_hash TEXT NOT NULL,
		created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS admins (
		id TEXT PRIMARY KEY,
		email TEXT NOT NULL,
		password_hash TEXT NOT NULL,
		is_admin BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS timetable (
		id TEXT PRIMARY KEY,
		student_name TEXT NOT NULL DEFAULT '',
		subject TEXT NOT NULL DEFAULT '',
		class_day TEXT NOT NULL DEFAULT '',
		class_time TEXT NOT NULL DEFAULT '',
		link TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	-- Indexes for login lookups
	CREATE INDEX IF NOT EXISTS idx_students_email ON students(email);
	CREATE INDEX IF NOT EXISTS idx_admins_email ON admins(email);
	`

// EnsureSchema creates tables if they don't exist
func EnsureSchema(ctx context.Context, db repository.DBTX, log zerolog.Logger) error {
	if _, err := db.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("unable to create schema: %w", err)
	}

	log.Info().Msg("schema ensured")
	return nil
}
