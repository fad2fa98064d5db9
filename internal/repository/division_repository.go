package repository

import (
	"context"
	"database/sql"

	"github.com/gsjs-tp/volunteer-service/internal/domain"
)

// DivisionRepository manages division lookups.
type DivisionRepository interface {
	List(ctx context.Context) ([]domain.Division, error)
	GetByID(ctx context.Context, id int64) (*domain.Division, error)
}

type divisionRepository struct {
	db *sql.DB
}

// NewDivisionRepository builds the repository.
func NewDivisionRepository(db *sql.DB) DivisionRepository {
	return &divisionRepository{db: db}
}

func (r *divisionRepository) List(ctx context.Context) ([]domain.Division, error) {
	const query = `SELECT id, nama FROM divisi ORDER BY nama ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Division
	for rows.Next() {
		var div domain.Division
		if err := rows.Scan(&div.ID, &div.Name); err != nil {
			return nil, err
		}
		result = append(result, div)
	}
	return result, rows.Err()
}

func (r *divisionRepository) GetByID(ctx context.Context, id int64) (*domain.Division, error) {
	const query = `SELECT id, nama FROM divisi WHERE id=$1`

	var div domain.Division
	if err := r.db.QueryRowContext(ctx, query, id).Scan(&div.ID, &div.Name); err != nil {
		return nil, err
	}
	return &div, nil
}
