package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-recipe-box/internal/logger"
	"github.com/MKhiriev/go-recipe-box/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// staticConn is a ConnProvider that always returns the same handle.
type staticConn struct {
	db *DB
}

func (s staticConn) Conn(context.Context) (*DB, error) {
	return s.db, nil
}

func newTestConn(t *testing.T) (ConnProvider, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	return staticConn{db: NewDB(db, logger.Nop())}, mock
}

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock) {
	conns, mock := newTestConn(t)
	return &userRepository{conns: conns, logger: logger.Nop()}, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

var userRowColumns = []string{"id", "email", "password", "is_admin", "created_at"}

func TestCreateUser_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	ctx := context.Background()
	user := models.User{Email: "chef@example.com", Password: "hash", IsAdmin: true}

	rows := sqlmock.NewRows(userRowColumns).
		AddRow(1, user.Email, user.Password, true, time.Now())

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(user.Email, user.Password, user.IsAdmin).
		WillReturnRows(rows)

	created, err := repo.CreateUser(ctx, user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != 1 {
		t.Errorf("expected ID=1, got %d", created.ID)
	}
	if created.Email != user.Email || !created.IsAdmin {
		t.Errorf("unexpected user %+v", created)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(context.Background(), models.User{Email: "chef@example.com"})
	if !errors.Is(err, ErrEmailAlreadyExists) {
		t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
	}
}

func TestCreateUser_UnexpectedDBError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateUser(context.Background(), models.User{Email: "chef@example.com"})
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}

func TestCreateUser_ScanError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	rows := sqlmock.
		NewRows([]string{"id"}). // intentionally wrong shape → scan error
		AddRow(1)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnRows(rows)

	_, err := repo.CreateUser(context.Background(), models.User{Email: "chef@example.com"})
	if err == nil {
		t.Fatal("expected scan error, got nil")
	}
}

func TestCreateUser_PoolNotInitialized(t *testing.T) {
	repo := &userRepository{conns: NewPool(testDBConfig(), false, logger.Nop()), logger: logger.Nop()}

	_, err := repo.CreateUser(context.Background(), models.User{Email: "chef@example.com"})
	if !errors.Is(err, ErrNotInitialized) {
		t.Fatalf("expected ErrNotInitialized, got %v", err)
	}
}

func TestFindUserByEmail_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	rows := sqlmock.NewRows(userRowColumns).
		AddRow(1, "chef@example.com", "hash", false, time.Now())

	mock.ExpectQuery("SELECT id, email, password, is_admin, created_at FROM users WHERE email = \\$1").
		WithArgs("chef@example.com").
		WillReturnRows(rows)

	found, err := repo.FindUserByEmail(context.Background(), "chef@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.Email != "chef@example.com" || found.Password != "hash" {
		t.Errorf("unexpected user %+v", found)
	}
}

func TestFindUserByEmail_NotFound(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("SELECT id").
		WithArgs("ghost@example.com").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindUserByEmail(context.Background(), "ghost@example.com")
	if !errors.Is(err, ErrNoUserWasFound) {
		t.Fatalf("expected ErrNoUserWasFound, got %v", err)
	}
}

func TestFindUserByEmail_EmptyResult(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("SELECT id").
		WithArgs("ghost@example.com").
		WillReturnRows(sqlmock.NewRows(userRowColumns))

	_, err := repo.FindUserByEmail(context.Background(), "ghost@example.com")
	if !errors.Is(err, ErrNoUserWasFound) {
		t.Fatalf("expected ErrNoUserWasFound, got %v", err)
	}
}

func TestFindUserByEmail_UnexpectedError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("SELECT id").
		WithArgs("chef@example.com").
		WillReturnError(errors.New("db failure"))

	_, err := repo.FindUserByEmail(context.Background(), "chef@example.com")
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}
