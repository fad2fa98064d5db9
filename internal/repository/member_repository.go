package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/gsjs-tp/volunteer-service/internal/domain"
)

// MemberFilter captures optional list filters. All filters are applied
// conjunctively.
type MemberFilter struct {
	Search     *string
	DivisionID *int64
	Status     *domain.MemberStatus
}

// MemberRepository encapsulates volunteer persistence.
type MemberRepository interface {
	ListViews(ctx context.Context, filter MemberFilter) ([]domain.MemberView, error)
	GetViewByID(ctx context.Context, id int64) (*domain.MemberView, error)
	GetByID(ctx context.Context, id int64) (*domain.Member, error)
	UpdateStatus(ctx context.Context, id int64, status domain.MemberStatus) error
	Delete(ctx context.Context, id int64, userID *int64) error
	CreateWithAccount(ctx context.Context, member *domain.Member, account *domain.UserAccount) error
}

type memberRepository struct {
	db *sql.DB
}

// NewMemberRepository returns a Postgres-backed implementation.
func NewMemberRepository(db *sql.DB) MemberRepository {
	return &memberRepository{db: db}
}

const memberViewSelect = `
        SELECT m.id, m.foto, m.nama, m.divisi_id, d.nama AS divisi_nama,
               m.posisi, m.kontak, m.status, u.email, r.nama AS role_nama
        FROM members m
        LEFT JOIN divisi d ON m.divisi_id = d.id
        LEFT JOIN users u ON m.user_id = u.id
        LEFT JOIN role r ON u.role_id = r.id`

func (r *memberRepository) ListViews(ctx context.Context, filter MemberFilter) ([]domain.MemberView, error) {
	query := memberViewSelect
	clauses := []string{}
	args := []any{}

	if filter.Search != nil && strings.TrimSpace(*filter.Search) != "" {
		args = append(args, "%"+strings.ToLower(strings.TrimSpace(*filter.Search))+"%")
		clauses = append(clauses, fmt.Sprintf("LOWER(m.nama) LIKE $%d", len(args)))
	}
	if filter.DivisionID != nil {
		args = append(args, *filter.DivisionID)
		clauses = append(clauses, fmt.Sprintf("m.divisi_id=$%d", len(args)))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		clauses = append(clauses, fmt.Sprintf("m.status=$%d", len(args)))
	}
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY m.nama ASC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.MemberView
	for rows.Next() {
		view, err := scanMemberView(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *view)
	}
	return result, rows.Err()
}

func (r *memberRepository) GetViewByID(ctx context.Context, id int64) (*domain.MemberView, error) {
	query := memberViewSelect + " WHERE m.id=$1"
	return scanMemberView(r.db.QueryRowContext(ctx, query, id))
}

func (r *memberRepository) GetByID(ctx context.Context, id int64) (*domain.Member, error) {
	const query = `
        SELECT id, nama, foto, divisi_id, posisi, kontak, status, user_id
        FROM members WHERE id=$1`

	var (
		member domain.Member
		foto   sql.NullString
		divisi sql.NullInt64
		status sql.NullString
		userID sql.NullInt64
	)
	if err := r.db.QueryRowContext(ctx, query, id).Scan(
		&member.ID,
		&member.Name,
		&foto,
		&divisi,
		&member.Position,
		&member.Contact,
		&status,
		&userID,
	); err != nil {
		return nil, err
	}
	if foto.Valid {
		member.Photo = &foto.String
	}
	if divisi.Valid {
		member.DivisionID = &divisi.Int64
	}
	member.Status = domain.MemberStatus(status.String)
	if userID.Valid {
		member.UserID = &userID.Int64
	}
	return &member, nil
}

// UpdateStatus applies the transition with bound parameters for both the
// status value and the identifier. Zero affected rows surface as
// sql.ErrNoRows so the caller can treat the record as gone.
func (r *memberRepository) UpdateStatus(ctx context.Context, id int64, status domain.MemberStatus) error {
	const query = `UPDATE members SET status=$1 WHERE id=$2`

	res, err := r.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Delete removes the member row and, when userID is set, the linked user
// account row inside a single transaction. Any failure rolls back both
// deletes so no partial removal is ever observable.
func (r *memberRepository) Delete(ctx context.Context, id int64, userID *int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM members WHERE id=$1`, id); err != nil {
		_ = tx.Rollback()
		return err
	}
	if userID != nil {
		if _, err := tx.ExecContext(ctx, `DELETE FROM users WHERE id=$1`, *userID); err != nil {
			_ = tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

// CreateWithAccount inserts the user account and the member row atomically
// and backfills the generated identifiers.
func (r *memberRepository) CreateWithAccount(ctx context.Context, member *domain.Member, account *domain.UserAccount) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	if err := tx.QueryRowContext(ctx,
		`INSERT INTO users (email, password_hash, role_id) VALUES ($1,$2,$3) RETURNING id`,
		account.Email,
		account.PasswordHash,
		account.RoleID,
	).Scan(&account.ID); err != nil {
		_ = tx.Rollback()
		return err
	}

	member.UserID = &account.ID
	if err := tx.QueryRowContext(ctx,
		`INSERT INTO members (nama, foto, divisi_id, posisi, kontak, status, user_id)
         VALUES ($1,$2,$3,$4,$5,$6,$7) RETURNING id`,
		member.Name,
		member.Photo,
		member.DivisionID,
		member.Position,
		member.Contact,
		member.Status,
		member.UserID,
	).Scan(&member.ID); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMemberView(row rowScanner) (*domain.MemberView, error) {
	var (
		view       domain.MemberView
		foto       sql.NullString
		divisiID   sql.NullInt64
		divisiName sql.NullString
		status     sql.NullString
		email      sql.NullString
		roleName   sql.NullString
	)
	if err := row.Scan(
		&view.ID,
		&foto,
		&view.Name,
		&divisiID,
		&divisiName,
		&view.Position,
		&view.Contact,
		&status,
		&email,
		&roleName,
	); err != nil {
		return nil, err
	}
	if foto.Valid {
		view.Photo = &foto.String
	}
	if divisiID.Valid {
		view.DivisionID = &divisiID.Int64
	}
	if divisiName.Valid {
		view.Division = &divisiName.String
	}
	view.Status = domain.MemberStatus(status.String)
	if email.Valid {
		view.Email = &email.String
	}
	if roleName.Valid {
		view.Role = &roleName.String
	}
	return &view, nil
}
