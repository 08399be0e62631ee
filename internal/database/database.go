package database

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
)

// NewPostgresConnection opens a Postgres connection pool, verifies it, and
// ensures the schema exists.
func NewPostgresConnection(databaseURL string) (*sql.DB, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}

// migrate applies the schema. Statements are idempotent so startup can run
// them every time.
func migrate(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS groups (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		currency CHAR(3) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		group_id BIGINT NOT NULL REFERENCES groups(id),
		username TEXT NOT NULL,
		name TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (group_id, username)
	);

	CREATE TABLE IF NOT EXISTS expenses (
		id BIGSERIAL PRIMARY KEY,
		group_id BIGINT NOT NULL REFERENCES groups(id),
		payer_id BIGINT NOT NULL REFERENCES users(id),
		description TEXT NOT NULL,
		amount DOUBLE PRECISION NOT NULL CHECK (amount > 0),
		category TEXT,
		split_type TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS expense_shares (
		id BIGSERIAL PRIMARY KEY,
		expense_id BIGINT NOT NULL REFERENCES expenses(id),
		user_id BIGINT NOT NULL REFERENCES users(id),
		share_amount DOUBLE PRECISION NOT NULL CHECK (share_amount >= 0)
	);

	CREATE TABLE IF NOT EXISTS settlements (
		id BIGSERIAL PRIMARY KEY,
		group_id BIGINT NOT NULL REFERENCES groups(id),
		payer_id BIGINT NOT NULL REFERENCES users(id),
		payee_id BIGINT NOT NULL REFERENCES users(id),
		amount DOUBLE PRECISION NOT NULL CHECK (amount > 0),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS idx_users_group ON users(group_id);
	CREATE INDEX IF NOT EXISTS idx_expenses_group ON expenses(group_id);
	CREATE INDEX IF NOT EXISTS idx_expense_shares_expense ON expense_shares(expense_id);
	CREATE INDEX IF NOT EXISTS idx_settlements_group ON settlements(group_id);
	`

	_, err := db.Exec(schema)
	return err
}
