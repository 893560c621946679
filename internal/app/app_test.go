package app

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/praython/djenofdjango/internal/database"
)

func TestNewMigratesAndWires(t *testing.T) {
	a, err := New(Options{
		DatabaseType: database.SQLite,
		DatabaseURI:  filepath.Join(t.TempDir(), "pastes.db"),
	})
	require.NoError(t, err)
	defer a.Close()

	require.True(t, a.DB().Migrator().HasTable("pastes"))

	paste, err := a.Pastes.Create("hello world", nil)
	require.NoError(t, err)
	require.NotZero(t, paste.ID)
}

func TestNewUnknownDatabaseType(t *testing.T) {
	_, err := New(Options{
		DatabaseType: database.Type("oracle"),
		DatabaseURI:  "whatever",
	})
	require.Error(t, err)
}
