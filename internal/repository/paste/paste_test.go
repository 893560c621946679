package paste

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/praython/djenofdjango/internal/database"
	"github.com/praython/djenofdjango/internal/models"
)

func newTestRepository(t *testing.T) Repository {
	t.Helper()

	db, err := database.Open(database.SQLite, filepath.Join(t.TempDir(), "pastes.db"))
	require.NoError(t, err)

	require.NoError(t, database.Migrate(db, database.SQLite))

	return New(db)
}

func strptr(s string) *string {
	return &s
}

func TestCreateAssignsIDAndTimestamps(t *testing.T) {
	repo := newTestRepository(t)

	paste, err := repo.Create(models.Paste{Text: "hello world"})
	require.NoError(t, err)

	require.NotZero(t, paste.ID)
	require.False(t, paste.CreatedOn.IsZero())
	require.True(t, paste.CreatedOn.Equal(paste.UpdatedOn))
}

func TestCreateIDsStrictlyIncreasing(t *testing.T) {
	repo := newTestRepository(t)

	var last uint64
	for i := 0; i < 5; i++ {
		paste, err := repo.Create(models.Paste{Text: "hello"})
		require.NoError(t, err)
		require.Greater(t, paste.ID, last)

		last = paste.ID
	}
}

func TestIDsNotReusedAfterDelete(t *testing.T) {
	repo := newTestRepository(t)

	first, err := repo.Create(models.Paste{Text: "one"})
	require.NoError(t, err)

	_, err = repo.Delete(first.ID)
	require.NoError(t, err)

	second, err := repo.Create(models.Paste{Text: "two"})
	require.NoError(t, err)
	require.Greater(t, second.ID, first.ID)
}

func TestGetByIDRoundTrip(t *testing.T) {
	repo := newTestRepository(t)

	created, err := repo.Create(models.Paste{Text: "hello", Name: strptr("greeting")})
	require.NoError(t, err)

	got, err := repo.GetByID(created.ID)
	require.NoError(t, err)
	require.Equal(t, "hello", got.Text)
	require.NotNil(t, got.Name)
	require.Equal(t, "greeting", *got.Name)
}

func TestGetByIDMissing(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.GetByID(12345)
	require.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestUpdateRefreshesOnlyUpdatedOn(t *testing.T) {
	repo := newTestRepository(t)

	created, err := repo.Create(models.Paste{Text: "hello world"})
	require.NoError(t, err)

	time.Sleep(20 * time.Millisecond)

	created.Text = "hello again"
	updated, err := repo.Update(created)
	require.NoError(t, err)

	require.Equal(t, created.ID, updated.ID)
	require.Equal(t, "hello again", updated.Text)
	require.True(t, updated.CreatedOn.Equal(created.CreatedOn))
	require.True(t, updated.UpdatedOn.After(updated.CreatedOn))
}

func TestUpdateClearsName(t *testing.T) {
	repo := newTestRepository(t)

	created, err := repo.Create(models.Paste{Text: "hello", Name: strptr("greeting")})
	require.NoError(t, err)

	created.Name = nil
	updated, err := repo.Update(created)
	require.NoError(t, err)
	require.Nil(t, updated.Name)
}

func TestUpdateMissing(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.Update(models.Paste{ID: 12345, Text: "hello"})
	require.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestDelete(t *testing.T) {
	repo := newTestRepository(t)

	created, err := repo.Create(models.Paste{Text: "hello"})
	require.NoError(t, err)

	deleted, err := repo.Delete(created.ID)
	require.NoError(t, err)
	require.Equal(t, created.ID, deleted.ID)

	_, err = repo.GetByID(created.ID)
	require.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestDeleteMissing(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.Delete(12345)
	require.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestList(t *testing.T) {
	repo := newTestRepository(t)

	for _, text := range []string{"one", "two", "three"} {
		_, err := repo.Create(models.Paste{Text: text})
		require.NoError(t, err)
	}

	pastes, err := repo.List()
	require.NoError(t, err)
	require.Len(t, pastes, 3)
	require.Equal(t, "one", pastes[0].Text)
	require.Equal(t, "three", pastes[2].Text)
}
