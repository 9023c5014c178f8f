package petitioner

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/lib/pq"

	"petitionpay/pkg/platform/sentinel"
)

// PostgresStore persists petitioners in PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed petitioner store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const petitionerColumns = `id, name, email, department, petitioner_number, petitioner_group,
		payment_confirmed, payment_id, confirmed_by, confirmed_at`

func (s *PostgresStore) Search(ctx context.Context, q string) ([]Petitioner, error) {
	query := `
		SELECT ` + petitionerColumns + `
		FROM petitioners
		WHERE name ILIKE '%' || $1 || '%'
	`
	args := []any{q}

	if number, err := strconv.Atoi(q); err == nil {
		query += ` OR petitioner_number = $2`
		args = append(args, number)
	}
	query += ` ORDER BY name ASC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("search petitioners: %w", err)
	}
	defer rows.Close() //nolint:errcheck // read-only cursor

	results := make([]Petitioner, 0)
	for rows.Next() {
		p, err := scanPetitioner(rows)
		if err != nil {
			return nil, fmt.Errorf("scan petitioner: %w", err)
		}
		results = append(results, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("search petitioners: %w", err)
	}
	return results, nil
}

// ConfirmPayment relies on the database evaluating the predicate and applying
// the write as one indivisible operation, so at most one of N simultaneous
// confirmations for the same id can match the payment_confirmed = false row.
func (s *PostgresStore) ConfirmPayment(ctx context.Context, id, paymentID, confirmedBy string, confirmedAt time.Time) (*Petitioner, error) {
	query := `
		UPDATE petitioners
		SET payment_confirmed = TRUE,
		    payment_id = $2,
		    confirmed_by = $3,
		    confirmed_at = $4
		WHERE id = $1 AND payment_confirmed = FALSE
		RETURNING ` + petitionerColumns

	p, err := scanPetitioner(s.db.QueryRowContext(ctx, query, id, paymentID, confirmedBy, confirmedAt))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("payment already confirmed or petitioner not found: %w", sentinel.ErrConflict)
		}
		return nil, fmt.Errorf("confirm payment: %w", err)
	}
	return p, nil
}

func (s *PostgresStore) Insert(ctx context.Context, p Petitioner) error {
	query := `
		INSERT INTO petitioners (` + petitionerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := s.db.ExecContext(ctx, query,
		p.ID,
		p.Name,
		p.Email,
		p.Department,
		p.PetitionerNumber,
		p.PetitionerGroup,
		p.PaymentConfirmed,
		p.PaymentID,
		p.ConfirmedBy,
		p.ConfirmedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("petitioner already exists: %w", sentinel.ErrConflict)
		}
		return fmt.Errorf("insert petitioner: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPetitioner(row rowScanner) (*Petitioner, error) {
	var p Petitioner
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Email,
		&p.Department,
		&p.PetitionerNumber,
		&p.PetitionerGroup,
		&p.PaymentConfirmed,
		&p.PaymentID,
		&p.ConfirmedBy,
		&p.ConfirmedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
