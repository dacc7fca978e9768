package sips

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/dmitrijs2005/hydrohabit/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestAdd_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^INSERT\s+INTO\s+sips\s*\(username,\s*ts,\s*amount_ml,\s*date\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3,\s*\$4\)\s*$`

	mock.ExpectExec(q).
		WithArgs("alice", sqlmock.AnyArg(), models.SipAmountML, "2024-06-01").
		WillReturnResult(sqlmock.NewResult(0, 1))

	sip := &models.Sip{Username: "alice", Timestamp: time.Now(), AmountML: models.SipAmountML, Date: "2024-06-01"}
	if err := repo.Add(context.Background(), sip); err != nil {
		t.Fatalf("Add error: %v", err)
	}
}

func TestAdd_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^INSERT\s+INTO\s+sips`

	mock.ExpectExec(q).
		WithArgs("alice", sqlmock.AnyArg(), models.SipAmountML, "2024-06-01").
		WillReturnError(errors.New("db down"))

	sip := &models.Sip{Username: "alice", Timestamp: time.Now(), AmountML: models.SipAmountML, Date: "2024-06-01"}
	err := repo.Add(context.Background(), sip)
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestCountByDate(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+count\(\*\)\s+FROM\s+sips\s+WHERE\s+username\s*=\s*\$1\s+AND\s+date\s*=\s*\$2\s*$`

	rows := sqlmock.NewRows([]string{"count"}).AddRow(3)
	mock.ExpectQuery(q).
		WithArgs("alice", "2024-06-01").
		WillReturnRows(rows)

	count, err := repo.CountByDate(context.Background(), "alice", "2024-06-01")
	if err != nil {
		t.Fatalf("CountByDate error: %v", err)
	}
	if count != 3 {
		t.Fatalf("want 3, got %d", count)
	}
}

func TestCountByDate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)^SELECT\s+count`).
		WithArgs("alice", "2024-06-01").
		WillReturnError(errors.New("db err"))

	_, err := repo.CountByDate(context.Background(), "alice", "2024-06-01")
	if err == nil || !regexp.MustCompile(`db error: .*db err`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestDayTotals(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+date,\s*sum\(amount_ml\)\s+FROM\s+sips\s+WHERE\s+username\s*=\s*\$1\s+GROUP\s+BY\s+date\s+ORDER\s+BY\s+date\s+DESC\s*$`

	rows := sqlmock.NewRows([]string{"date", "sum"}).
		AddRow("2024-06-02", 500).
		AddRow("2024-06-01", 750)
	mock.ExpectQuery(q).
		WithArgs("alice").
		WillReturnRows(rows)

	totals, err := repo.DayTotals(context.Background(), "alice")
	if err != nil {
		t.Fatalf("DayTotals error: %v", err)
	}
	if len(totals) != 2 || totals[0].Date != "2024-06-02" || totals[0].TotalML != 500 {
		t.Fatalf("unexpected totals: %+v", totals)
	}
}
