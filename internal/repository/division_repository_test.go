package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestDivisionRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("create sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewDivisionRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, nama FROM divisi ORDER BY nama ASC")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "nama"}).
			AddRow(1, "Multimedia").
			AddRow(2, "Usher"))

	divisions, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List returned err: %v", err)
	}
	if len(divisions) != 2 || divisions[0].Name != "Multimedia" {
		t.Fatalf("unexpected divisions: %+v", divisions)
	}
	verifyExpectations(t, mock)
}

func TestDivisionRepository_GetByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("create sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewDivisionRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, nama FROM divisi WHERE id=$1")).
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "nama"}))

	_, err = repo.GetByID(context.Background(), 99)
	if !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("expected sql.ErrNoRows, got %v", err)
	}
	verifyExpectations(t, mock)
}
