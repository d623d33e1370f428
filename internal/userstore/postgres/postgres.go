package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq" // PostgreSQL driver for database/sql

	"github.com/haguru/torii/config"
	"github.com/haguru/torii/internal/interfaces"
	"github.com/haguru/torii/internal/models"
	"github.com/haguru/torii/internal/userstore"
)

const (
	UsersTable = "users"

	// 23505 is unique_violation
	pqUniqueViolation = "23505"

	createTableStmt = `CREATE TABLE IF NOT EXISTS users (
		id TEXT PRIMARY KEY,
		username TEXT NOT NULL UNIQUE,
		email TEXT NOT NULL DEFAULT '',
		password_hash TEXT NOT NULL
	)`
)

// PostgresUserStore implements UserStore on top of a users table with a
// unique constraint on username.
type PostgresUserStore struct {
	db *sql.DB
}

// NewPostgresUserStore opens a connection pool to PostgreSQL and returns a
// credential store backed by it.
func NewPostgresUserStore(ctx context.Context, cfg *config.PostgresConfig) (interfaces.UserStore, error) {
	if cfg.DSN == "" {
		return nil, fmt.Errorf("postgres DSN is empty")
	}

	db, err := sql.Open("postgres", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open PostgreSQL connection: %w", err)
	}

	if cfg.Options.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.Options.MaxOpenConns)
	}
	if cfg.Options.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.Options.MaxIdleConns)
	}
	if cfg.Options.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.Options.ConnMaxLifetime)
	}

	if err = db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping PostgreSQL server: %w", err)
	}

	return &PostgresUserStore{db: db}, nil
}

// Create inserts a new user row. The unique constraint on username keeps the
// check-and-insert atomic; unique_violation maps to ErrDuplicateUsername.
func (s *PostgresUserStore) Create(ctx context.Context, username, email, passwordHash string) (*models.User, error) {
	user := models.User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO users (id, username, email, password_hash) VALUES ($1, $2, $3, $4)`,
		user.ID, user.Username, user.Email, user.PasswordHash)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == pqUniqueViolation {
			return nil, userstore.ErrDuplicateUsername
		}
		return nil, fmt.Errorf("failed to add user to PostgreSQL: %w", err)
	}

	return &user, nil
}

// FindByUsername retrieves a user row by username.
func (s *PostgresUserStore) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User

	row := s.db.QueryRowContext(ctx,
		`SELECT id, username, email, password_hash FROM users WHERE username = $1`,
		username)
	if err := row.Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, userstore.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by username from PostgreSQL: %w", err)
	}

	return &user, nil
}

// EnsureIndices creates the users table and its unique constraint.
func (s *PostgresUserStore) EnsureIndices(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, createTableStmt); err != nil {
		return fmt.Errorf("failed to ensure users table: %w", err)
	}
	return nil
}

// Close closes the PostgreSQL connection pool.
func (s *PostgresUserStore) Close(ctx context.Context) error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
