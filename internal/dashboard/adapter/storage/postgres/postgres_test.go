package postgres

import (
	"context"
	"errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/langowen/fxdash/internal/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"strings"
	"testing"
	"time"
)

type mockDB struct {
	mock.Mock
}

func (m *mockDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return m.Called(ctx, sql, args).Get(0).(pgx.Row)
}

func (m *mockDB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	a := m.Called(ctx, sql, args)
	return pgconn.NewCommandTag(a.String(0)), a.Error(1)
}

type row struct {
	value string
	err   error
}

func (r row) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*dest[0].(*string) = r.value
	return nil
}

func selectQuery(sql string) bool { return strings.Contains(sql, "SELECT value FROM preferences") }
func upsertQuery(sql string) bool { return strings.Contains(sql, "ON CONFLICT (key)") }

func TestGet(t *testing.T) {
	db := &mockDB{}
	db.On("QueryRow", mock.Anything, mock.MatchedBy(selectQuery), []any{"theme"}).Return(row{value: "dark"}).Once()

	value, err := NewStorage(db).Get(context.Background(), "theme")
	require.NoError(t, err)
	assert.Equal(t, "dark", value)
	db.AssertExpectations(t)
}

func TestGetMissingKey(t *testing.T) {
	db := &mockDB{}
	db.On("QueryRow", mock.Anything, mock.Anything, mock.Anything).Return(row{err: pgx.ErrNoRows})

	_, err := NewStorage(db).Get(context.Background(), "language")
	assert.ErrorIs(t, err, entities.ErrNotFound)
}

func TestGetQueryFailure(t *testing.T) {
	db := &mockDB{}
	db.On("QueryRow", mock.Anything, mock.Anything, mock.Anything).Return(row{err: errors.New("conn closed")})

	_, err := NewStorage(db).Get(context.Background(), "language")
	require.Error(t, err)
	assert.NotErrorIs(t, err, entities.ErrNotFound)
	assert.Contains(t, err.Error(), "storage.postgres.Get")
}

func TestSetUpserts(t *testing.T) {
	db := &mockDB{}
	db.On("Exec", mock.Anything, mock.MatchedBy(upsertQuery), []any{"language", "pt"}).Return("INSERT 0 1", nil).Once()

	require.NoError(t, NewStorage(db).Set(context.Background(), "language", "pt"))
	db.AssertExpectations(t)
}

func TestSetFailure(t *testing.T) {
	db := &mockDB{}
	db.On("Exec", mock.Anything, mock.Anything, mock.Anything).Return("", errors.New("read-only transaction"))

	err := NewStorage(db).Set(context.Background(), "theme", "dark")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "storage.postgres.Set")
}

func TestInitSchema(t *testing.T) {
	db := &mockDB{}
	db.On("Exec", mock.Anything, mock.MatchedBy(func(sql string) bool {
		return strings.Contains(sql, "CREATE TABLE IF NOT EXISTS preferences")
	}), mock.Anything).Return("CREATE TABLE", nil).Once()

	require.NoError(t, NewStorage(db).initSchema(context.Background()))
	db.AssertExpectations(t)
}

func TestInitStorageRejectsBadDSN(t *testing.T) {
	_, _, err := InitStorage(context.Background(), "port=notanumber", time.Second)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config failed")
}
