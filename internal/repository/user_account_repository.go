package repository

import (
	"context"
	"database/sql"

	"github.com/gsjs-tp/volunteer-service/internal/domain"
)

// UserAccountRepository defines persistence access for login accounts.
type UserAccountRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.UserAccount, error)
	GetByEmail(ctx context.Context, email string) (*domain.UserAccount, error)
}

type userAccountRepository struct {
	db *sql.DB
}

// NewUserAccountRepository returns a Postgres-backed implementation.
func NewUserAccountRepository(db *sql.DB) UserAccountRepository {
	return &userAccountRepository{db: db}
}

const userAccountSelect = `
        SELECT u.id, u.email, u.password_hash, u.role_id, r.nama AS role_nama
        FROM users u
        LEFT JOIN role r ON u.role_id = r.id`

func (r *userAccountRepository) GetByID(ctx context.Context, id int64) (*domain.UserAccount, error) {
	return r.fetchSingle(ctx, userAccountSelect+" WHERE u.id=$1", id)
}

func (r *userAccountRepository) GetByEmail(ctx context.Context, email string) (*domain.UserAccount, error) {
	return r.fetchSingle(ctx, userAccountSelect+" WHERE u.email=$1", email)
}

func (r *userAccountRepository) fetchSingle(ctx context.Context, query string, arg any) (*domain.UserAccount, error) {
	var (
		account  domain.UserAccount
		roleID   sql.NullInt64
		roleName sql.NullString
	)
	if err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&account.ID,
		&account.Email,
		&account.PasswordHash,
		&roleID,
		&roleName,
	); err != nil {
		return nil, err
	}
	if roleID.Valid {
		account.RoleID = &roleID.Int64
	}
	if roleName.Valid {
		account.RoleName = &roleName.String
	}
	return &account, nil
}
