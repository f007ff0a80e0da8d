package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ozdilmelih/FlagGame/internal/domain/entities"
)

type fakeRows struct {
	pgx.Rows
	data [][2]string
	pos  int
	err  error
}

func (r *fakeRows) Next() bool {
	if r.pos >= len(r.data) {
		return false
	}
	r.pos++
	return true
}

func (r *fakeRows) Scan(dest ...any) error {
	row := r.data[r.pos-1]
	*dest[0].(*string) = row[0]
	*dest[1].(*string) = row[1]
	return nil
}

func (r *fakeRows) Err() error { return r.err }
func (r *fakeRows) Close()     {}

type fakeDB struct {
	pgx.Tx
	rows     *fakeRows
	queryErr error
	execs    []string
	execArgs [][]any
	execErr  error
}

func (db *fakeDB) Query(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
	if db.queryErr != nil {
		return nil, db.queryErr
	}
	return db.rows, nil
}

func (db *fakeDB) QueryRow(_ context.Context, _ string, _ ...any) pgx.Row {
	return nil
}

func (db *fakeDB) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	if db.execErr != nil {
		return pgconn.CommandTag{}, db.execErr
	}
	db.execs = append(db.execs, sql)
	db.execArgs = append(db.execArgs, args)
	return pgconn.NewCommandTag("UPDATE 1"), nil
}

func TestCountryRepository_GetAll(t *testing.T) {
	db := &fakeDB{rows: &fakeRows{data: [][2]string{{"Albania", "AL"}, {"Austria", "AT"}}}}
	repo := NewCountryRepository(db)

	got, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []entities.Country{{Name: "Albania", Code: "AL"}, {Name: "Austria", Code: "AT"}}, got)
}

func TestCountryRepository_GetAllErrors(t *testing.T) {
	boom := errors.New("boom")

	_, err := NewCountryRepository(&fakeDB{queryErr: boom}).GetAll(context.Background())
	assert.ErrorIs(t, err, boom)

	_, err = NewCountryRepository(&fakeDB{rows: &fakeRows{err: boom}}).GetAll(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestCountryRepository_ReplaceAll(t *testing.T) {
	tx := &fakeDB{}
	repo := NewCountryRepository(tx)

	err := repo.ReplaceAll(context.Background(), tx, []entities.Country{
		{Name: "Austria", Code: "AT"},
		{Name: "Andorra", Code: "AD"},
	})
	require.NoError(t, err)

	require.Len(t, tx.execs, 3)
	assert.Contains(t, tx.execs[0], "SET enabled = FALSE")
	assert.Equal(t, []any{"Austria", "AT"}, tx.execArgs[1])
	assert.Equal(t, []any{"Andorra", "AD"}, tx.execArgs[2])

	boom := errors.New("boom")
	err = repo.ReplaceAll(context.Background(), &fakeDB{execErr: boom}, nil)
	assert.ErrorIs(t, err, boom)
}
