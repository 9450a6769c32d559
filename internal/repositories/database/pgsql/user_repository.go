package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/bizledger/internal/apperrors"
	"github.com/SscSPs/bizledger/internal/core/domain"
	portsrepo "github.com/SscSPs/bizledger/internal/core/ports/repositories"
	"github.com/SscSPs/bizledger/internal/models"
	"github.com/SscSPs/bizledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxUserRepository struct {
	BaseRepository
}

func newPgxUserRepository(pool *pgxpool.Pool) *PgxUserRepository {
	return &PgxUserRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

// SaveUser inserts a new user. Emails are unique.
func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	m := mapping.ToModelUser(user)
	query := `
		INSERT INTO users (user_id, email, name, password_hash, role, is_active, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.UserID,
		m.Email,
		m.Name,
		m.PasswordHash,
		m.Role,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: user with email %s already exists", apperrors.ErrDuplicate, m.Email)
		}
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

// FindUserByEmail looks a user up by lower-cased email.
func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
		SELECT user_id, email, name, password_hash, role, is_active, created_at, created_by, last_updated_at, last_updated_by
		FROM users
		WHERE email = $1;
	`
	var m models.User
	err := r.Pool.QueryRow(ctx, query, email).Scan(
		&m.UserID,
		&m.Email,
		&m.Name,
		&m.PasswordHash,
		&m.Role,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: user %s", apperrors.ErrNotFound, email)
		}
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	user := mapping.ToDomainUser(m)
	return &user, nil
}
