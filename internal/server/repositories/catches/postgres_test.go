package catches

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/dmitrijs2005/critterkeep/internal/common"
	"github.com/dmitrijs2005/critterkeep/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

const (
	insertQuery = `(?s)^INSERT\s+INTO\s+catches\s*\(id,\s*user_id,\s*creature_id\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3\)\s*RETURNING\s+caught_at\s*$`
	deleteQuery = `(?s)^DELETE\s+FROM\s+catches\s+WHERE\s+id\s*=\s*\$1\s+AND\s+user_id\s*=\s*\$2\s*$`
	listQuery   = `(?s)^SELECT\s+c\.id,\s*cr\.name,\s*c\.caught_at\s+FROM\s+catches\s+c\s+JOIN\s+creatures\s+cr\s+ON\s+cr\.id\s*=\s*c\.creature_id\s+WHERE\s+c\.user_id\s*=\s*\$1\s+ORDER\s+BY\s+c\.caught_at\s*$`
)

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	caught := time.Now()
	mock.ExpectQuery(insertQuery).
		WithArgs("r-1", "u-1", "c-1").
		WillReturnRows(sqlmock.NewRows([]string{"caught_at"}).AddRow(caught))

	rec := &models.CatchRecord{ID: "r-1", UserID: "u-1", CreatureID: "c-1"}
	got, err := repo.Create(context.Background(), rec)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if !got.CaughtAt.Equal(caught) {
		t.Fatalf("expected caught_at %v, got %v", caught, got.CaughtAt)
	}
}

func TestDeleteOwned_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(deleteQuery).
		WithArgs("r-1", "u-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.DeleteOwned(context.Background(), "r-1", "u-1"); err != nil {
		t.Fatalf("DeleteOwned error: %v", err)
	}
}

// Both "no such record" and "record owned by someone else" match zero rows
// and come back as the same error.
func TestDeleteOwned_ZeroRows(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(deleteQuery).
		WithArgs("r-1", "intruder").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteOwned(context.Background(), "r-1", "intruder")
	if !errors.Is(err, common.ErrorNotOwned) {
		t.Fatalf("expected common.ErrorNotOwned, got %v", err)
	}
}

func TestDeleteOwned_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(deleteQuery).
		WithArgs("r-1", "u-1").
		WillReturnError(errors.New("db down"))

	err := repo.DeleteOwned(context.Background(), "r-1", "u-1")
	if err == nil || errors.Is(err, common.ErrorNotOwned) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestListByUser_ReturnsRows(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	first := time.Now().Add(-time.Hour)
	second := time.Now()
	rows := sqlmock.NewRows([]string{"id", "name", "caught_at"}).
		AddRow("r-1", "pikachu", first).
		AddRow("r-2", "pikachu", second)
	mock.ExpectQuery(listQuery).
		WithArgs("u-1").
		WillReturnRows(rows)

	owned, err := repo.ListByUser(context.Background(), "u-1")
	if err != nil {
		t.Fatalf("ListByUser error: %v", err)
	}
	if len(owned) != 2 {
		t.Fatalf("expected 2 records, got %d", len(owned))
	}
	if owned[0].RecordID != "r-1" || owned[1].RecordID != "r-2" {
		t.Fatalf("unexpected order: %+v", owned)
	}
	if owned[0].Name != "pikachu" || owned[1].Name != "pikachu" {
		t.Fatalf("expected joined creature names, got %+v", owned)
	}
}

func TestListByUser_Empty(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(listQuery).
		WithArgs("u-lonely").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "caught_at"}))

	owned, err := repo.ListByUser(context.Background(), "u-lonely")
	if err != nil {
		t.Fatalf("ListByUser error: %v", err)
	}
	if owned == nil || len(owned) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", owned)
	}
}
