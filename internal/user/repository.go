package user

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"
)

// Repository handles user data persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new user repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// uniqueViolation is the Postgres error code for unique constraint violations.
const uniqueViolation = "23505"

// Create inserts a new user into the database. Returns (nil, nil) when the
// username is already taken within the group.
func (r *Repository) Create(ctx context.Context, req *CreateUserRequest) (*User, error) {
	query := `
		INSERT INTO users (group_id, username, name)
		VALUES ($1, $2, $3)
		RETURNING id, group_id, username, name, created_at
	`

	user := &User{}
	err := r.db.QueryRowContext(ctx, query, req.GroupID, req.Username, req.Name).Scan(
		&user.ID,
		&user.GroupID,
		&user.Username,
		&user.Name,
		&user.CreatedAt,
	)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == uniqueViolation {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// GetByID retrieves a user by its ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*User, error) {
	query := `
		SELECT id, group_id, username, name, created_at
		FROM users
		WHERE id = $1
	`

	user := &User{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&user.ID,
		&user.GroupID,
		&user.Username,
		&user.Name,
		&user.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}

// GetByUsername retrieves a user by username within a group
func (r *Repository) GetByUsername(ctx context.Context, groupID int64, username string) (*User, error) {
	query := `
		SELECT id, group_id, username, name, created_at
		FROM users
		WHERE group_id = $1 AND username = $2
	`

	user := &User{}
	err := r.db.QueryRowContext(ctx, query, groupID, username).Scan(
		&user.ID,
		&user.GroupID,
		&user.Username,
		&user.Name,
		&user.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}

	return user, nil
}

// ListByGroupID retrieves all users in a group
func (r *Repository) ListByGroupID(ctx context.Context, groupID int64) ([]*User, error) {
	query := `
		SELECT id, group_id, username, name, created_at
		FROM users
		WHERE group_id = $1
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []*User
	for rows.Next() {
		user := &User{}
		if err := rows.Scan(
			&user.ID,
			&user.GroupID,
			&user.Username,
			&user.Name,
			&user.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate users: %w", err)
	}

	return users, nil
}

// NamesByID returns an id → display name lookup for the whole group.
func (r *Repository) NamesByID(ctx context.Context, groupID int64) (map[int64]string, error) {
	users, err := r.ListByGroupID(ctx, groupID)
	if err != nil {
		return nil, err
	}

	names := make(map[int64]string, len(users))
	for _, u := range users {
		names[u.ID] = u.Name
	}
	return names, nil
}
