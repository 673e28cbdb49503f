package database

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"log"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

const migrationsLockKey = "leaguecatalog_migrations_lock"

//go:embed migrations/*.sql
var migrationFiles embed.FS

// RunMigrations applies all pending migrations to the database.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	// Advisory locks are bound to the session, so lock and unlock on the same connection.
	conn, err := db.Conn(ctx)
	if err != nil {
		return fmt.Errorf("could not get a connection for the migration lock: %w", err)
	}
	defer conn.Close()

	// Acquire an advisory lock to prevent concurrent migrations between replicas.
	var lockAcquired bool
	err = conn.QueryRowContext(ctx, "SELECT pg_try_advisory_lock(hashtext($1))", migrationsLockKey).Scan(&lockAcquired)
	if err != nil {
		return fmt.Errorf("could not acquire advisory lock: %w", err)
	}

	if !lockAcquired {
		log.Println("Another process is already running migrations, skipping...")
		return nil
	}

	defer func() {
		var lockReleased bool
		err := conn.QueryRowContext(context.Background(), "SELECT pg_advisory_unlock(hashtext($1))", migrationsLockKey).Scan(&lockReleased)
		if err != nil || !lockReleased {
			log.Printf("Could not release the migrations advisory lock: %v", err)
		}
	}()

	m, err := newMigrate(db)
	if err != nil {
		return err
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("could not run migrations: %w", err)
	}

	return nil
}

// newMigrate builds the migrate instance from the embedded files.
func newMigrate(db *sql.DB) (*migrate.Migrate, error) {
	source, err := iofs.New(migrationFiles, "migrations")
	if err != nil {
		return nil, fmt.Errorf("could not read embedded migrations: %w", err)
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return nil, fmt.Errorf("could not create migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return nil, fmt.Errorf("could not create migrate instance: %w", err)
	}

	return m, nil
}
