package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hance08/ledger/internal/config"
	"github.com/hance08/ledger/migrations"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	got, err := ExpandPath("~/books/ledger.db")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "books/ledger.db"), got)

	got, err = ExpandPath("/tmp/ledger.db")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/ledger.db", got)
}

func TestNewApp(t *testing.T) {
	cfg := config.NewDefault()
	cfg.Database.Path = filepath.Join(t.TempDir(), "nested", "ledger.db")

	application, cleanup, err := NewApp(cfg, migrations.FS)
	require.NoError(t, err)
	defer cleanup()

	assert.Equal(t, cfg.Database.Path, application.DBPath)
	assert.FileExists(t, cfg.Database.Path)
	assert.Empty(t, application.Service.Book().Accounts())
}

func TestNewAppRejectsBadLogLevel(t *testing.T) {
	cfg := config.NewDefault()
	cfg.Database.Path = filepath.Join(t.TempDir(), "ledger.db")
	cfg.Log.Level = "loud"

	_, _, err := NewApp(cfg, migrations.FS)
	assert.Error(t, err)
}
