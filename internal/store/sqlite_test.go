package store

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func newMock(t *testing.T) (*SQLiteStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New(): %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return NewSQLiteStore(db), mock
}

func TestSQLiteStoreGet(t *testing.T) {
	s, mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(selectValueSQL)).
		WithArgs("display_mode").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(`"List"`))

	got, err := s.Get(context.Background(), "display_mode")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if string(got) != `"List"` {
		t.Errorf("Get() = %s", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestSQLiteStoreGetMissing(t *testing.T) {
	s, mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(selectValueSQL)).
		WithArgs("nope").
		WillReturnError(sql.ErrNoRows)

	if _, err := s.Get(context.Background(), "nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSQLiteStoreGetQueryError(t *testing.T) {
	s, mock := newMock(t)
	boom := errors.New("disk I/O error")

	mock.ExpectQuery(regexp.QuoteMeta(selectValueSQL)).
		WithArgs("k").
		WillReturnError(boom)

	_, err := s.Get(context.Background(), "k")
	if !errors.Is(err, boom) || errors.Is(err, ErrNotFound) {
		t.Fatalf("expected wrapped driver error, got %v", err)
	}
}

func TestSQLiteStoreSet(t *testing.T) {
	s, mock := newMock(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO kv")).
		WithArgs("selected_timezones", `["UTC"]`, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := s.Set(context.Background(), "selected_timezones", []byte(`["UTC"]`)); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestSQLiteStoreFileRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "prefs.db")

	s, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	if err := s.Set(ctx, "display_mode", []byte(`"Grid"`)); err != nil {
		t.Fatal(err)
	}
	if err := s.Set(ctx, "display_mode", []byte(`"Compact"`)); err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = reopened.Close() }()

	got, err := reopened.Get(ctx, "display_mode")
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != `"Compact"` {
		t.Errorf("value after reopen = %s", got)
	}
}

func TestOpenEmptyPathIsMemory(t *testing.T) {
	kv, err := Open("")
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := kv.(*MemoryStore); !ok {
		t.Errorf("expected *MemoryStore, got %T", kv)
	}
}
