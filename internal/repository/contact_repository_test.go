package repository

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"contacts/internal/db"
	apperrors "contacts/internal/errors"
	"contacts/internal/model"
)

func newTestRepository(t *testing.T) ContactRepository {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "contacts.db") + "?_pragma=busy_timeout(5000)"
	gormDB, err := db.Open("sqlite", dsn, db.Options{MaxOpenConns: 1})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gormDB, false))
	t.Cleanup(func() { _ = db.Close(gormDB) })
	return NewContactRepository(gormDB)
}

func strPtr(s string) *string { return &s }

func TestContactRepository_CreateAndFind(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	contact := &model.Contact{Name: "Alice", Email: "alice@example.com", Phone: "123", Note: strPtr("met at fair")}
	require.NoError(t, repo.Create(ctx, contact))
	assert.NotZero(t, contact.ID)

	found, err := repo.FindByID(ctx, contact.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", found.Name)
	assert.Equal(t, "alice@example.com", found.Email)
	assert.Equal(t, "123", found.Phone)
	require.NotNil(t, found.Note)
	assert.Equal(t, "met at fair", *found.Note)
}

func TestContactRepository_FindMissing(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.FindByID(context.Background(), 42)
	assert.ErrorIs(t, err, apperrors.ErrContactNotFound)
}

func TestContactRepository_ListOrderedByID(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	empty, err := repo.List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	for _, email := range []string{"b@example.com", "a@example.com", "c@example.com"} {
		require.NoError(t, repo.Create(ctx, &model.Contact{Name: email, Email: email}))
	}

	contacts, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, contacts, 3)
	assert.Equal(t, "b@example.com", contacts[0].Email)
	assert.Less(t, contacts[0].ID, contacts[1].ID)
	assert.Less(t, contacts[1].ID, contacts[2].ID)
}

func TestContactRepository_CreateDuplicateEmail(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &model.Contact{Name: "A", Email: "dup@example.com"}))

	err := repo.Create(ctx, &model.Contact{Name: "B", Email: "dup@example.com"})
	assert.ErrorIs(t, err, apperrors.ErrEmailConflict)

	// Uniqueness ignores case.
	err = repo.Create(ctx, &model.Contact{Name: "C", Email: "DUP@Example.com"})
	assert.ErrorIs(t, err, apperrors.ErrEmailConflict)

	contacts, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, contacts, 1)
}

func TestContactRepository_ConcurrentDuplicateCreates(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	const writers = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		created   int
		conflicts int
		others    []error
	)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			err := repo.Create(ctx, &model.Contact{Name: fmt.Sprintf("writer %d", i), Email: "race@example.com"})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				created++
			case errors.Is(err, apperrors.ErrEmailConflict):
				conflicts++
			default:
				others = append(others, err)
			}
		}(i)
	}
	wg.Wait()

	assert.Empty(t, others)
	assert.Equal(t, 1, created)
	assert.Equal(t, writers-1, conflicts)

	contacts, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, contacts, 1)
}

func TestContactRepository_Update(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	first := &model.Contact{Name: "First", Email: "first@example.com"}
	second := &model.Contact{Name: "Second", Email: "second@example.com", Note: strPtr("old")}
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	t.Run("overwrites every field", func(t *testing.T) {
		err := repo.Update(ctx, &model.Contact{ID: second.ID, Name: "Renamed", Email: "renamed@example.com", Phone: "555"})
		require.NoError(t, err)

		found, err := repo.FindByID(ctx, second.ID)
		require.NoError(t, err)
		assert.Equal(t, "Renamed", found.Name)
		assert.Equal(t, "renamed@example.com", found.Email)
		assert.Equal(t, "555", found.Phone)
		assert.Nil(t, found.Note)
	})

	t.Run("unchanged values still succeed", func(t *testing.T) {
		err := repo.Update(ctx, &model.Contact{ID: first.ID, Name: "First", Email: "first@example.com"})
		assert.NoError(t, err)
	})

	t.Run("missing id", func(t *testing.T) {
		err := repo.Update(ctx, &model.Contact{ID: 999, Name: "X", Email: "x@example.com"})
		assert.ErrorIs(t, err, apperrors.ErrContactNotFound)
	})

	t.Run("email taken by another contact", func(t *testing.T) {
		err := repo.Update(ctx, &model.Contact{ID: second.ID, Name: "Second", Email: "first@example.com"})
		assert.ErrorIs(t, err, apperrors.ErrEmailConflict)

		found, err := repo.FindByID(ctx, second.ID)
		require.NoError(t, err)
		assert.Equal(t, "renamed@example.com", found.Email)
	})
}

func TestContactRepository_Delete(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	contact := &model.Contact{Name: "Gone", Email: "gone@example.com"}
	require.NoError(t, repo.Create(ctx, contact))

	require.NoError(t, repo.Delete(ctx, contact.ID))
	_, err := repo.FindByID(ctx, contact.ID)
	assert.ErrorIs(t, err, apperrors.ErrContactNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, contact.ID), apperrors.ErrContactNotFound)

	// Identity keys are not reused after deletion.
	next := &model.Contact{Name: "Next", Email: "gone@example.com"}
	require.NoError(t, repo.Create(ctx, next))
	assert.Greater(t, next.ID, contact.ID)
}

func TestIsUniqueViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "gorm duplicated key", err: fmt.Errorf("insert: %w", gorm.ErrDuplicatedKey), want: true},
		{name: "mysql duplicate entry", err: &mysql.MySQLError{Number: 1062, Message: "Duplicate entry"}, want: true},
		{name: "mysql other error", err: &mysql.MySQLError{Number: 1045, Message: "Access denied"}, want: false},
		{name: "postgres unique violation", err: &pgconn.PgError{Code: "23505"}, want: true},
		{name: "postgres not null violation", err: &pgconn.PgError{Code: "23502"}, want: false},
		{name: "sqlite unique constraint", err: errors.New("constraint failed: UNIQUE constraint failed: contacts.email_key (2067)"), want: true},
		{name: "unrelated", err: errors.New("connection refused"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isUniqueViolation(tt.err))
		})
	}
}

func TestTranslate(t *testing.T) {
	assert.ErrorIs(t, translate(apperrors.ErrContactNotFound, "op"), apperrors.ErrContactNotFound)
	assert.ErrorIs(t, translate(gorm.ErrDuplicatedKey, "op"), apperrors.ErrEmailConflict)

	cause := errors.New("disk I/O error")
	err := translate(cause, "create contact")
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "create contact")
}
