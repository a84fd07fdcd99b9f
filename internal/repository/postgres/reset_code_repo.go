package postgres

import (
	"context"
	"database/sql"
	"errors"

	"eventoslisting/internal/domain"
)

type resetCodeRepository struct {
	DB *sql.DB
}

// NewResetCodeRepository returns a domain.ResetCodeRepository implemented with Postgres.
func NewResetCodeRepository(db *sql.DB) domain.ResetCodeRepository {
	return &resetCodeRepository{DB: db}
}

func (r *resetCodeRepository) Create(ctx context.Context, c *domain.ResetCode) error {
	query := `
		INSERT INTO reset_codes (email, code, expires_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query, c.Email, c.Code, c.ExpiresAt).Scan(&c.ID)
}

func (r *resetCodeRepository) GetByEmailAndCode(ctx context.Context, email, code string) (*domain.ResetCode, error) {
	query := `
		SELECT id, email, code, expires_at
		FROM reset_codes
		WHERE email = $1 AND code = $2
	`
	c := &domain.ResetCode{}
	err := r.DB.QueryRowContext(ctx, query, email, code).Scan(&c.ID, &c.Email, &c.Code, &c.ExpiresAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrResetCodeInvalid
		}
		return nil, err
	}
	return c, nil
}

// DeleteByEmail removes any live code for the email. Deleting nothing is not
// an error, so issuing a fresh code is idempotent with respect to prior ones.
func (r *resetCodeRepository) DeleteByEmail(ctx context.Context, email string) error {
	query := `DELETE FROM reset_codes WHERE email = $1`
	_, err := r.DB.ExecContext(ctx, query, email)
	return err
}

func (r *resetCodeRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM reset_codes WHERE id = $1`
	_, err := r.DB.ExecContext(ctx, query, id)
	return err
}
