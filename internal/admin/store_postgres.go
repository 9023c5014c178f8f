package admin

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"petitionpay/pkg/platform/sentinel"
)

// PostgresStore reads the admin roster from PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed admin store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) FindByCode(ctx context.Context, code string) (*Admin, error) {
	query := `
		SELECT name, admin_code
		FROM admins
		WHERE admin_code = $1
	`
	var a Admin
	err := s.db.QueryRowContext(ctx, query, code).Scan(&a.Name, &a.Code)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("admin not found: %w", sentinel.ErrNotFound)
		}
		return nil, fmt.Errorf("find admin by code: %w", err)
	}
	return &a, nil
}
