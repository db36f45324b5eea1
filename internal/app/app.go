package app

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/hance08/ledger/internal/config"
	"github.com/hance08/ledger/internal/logger"
	"github.com/hance08/ledger/internal/service"
	"github.com/hance08/ledger/internal/store"
)

type App struct {
	Service *service.Service
	Store   store.Repository
	Config  *config.Config
	Logger  *zap.Logger
	DBPath  string
}

// NewApp initialize logger, database and services, then return App entity
func NewApp(cfg *config.Config, migrationFS fs.FS) (*App, func(), error) {
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		return nil, nil, err
	}

	dbPath, err := ResolveDBPath(cfg.Database.Path)
	if err != nil {
		return nil, nil, err
	}

	dbStore, err := store.NewStore(dbPath, migrationFS)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	svc, err := service.Open(dbStore, cfg, log)
	if err != nil {
		_ = dbStore.Close()
		return nil, nil, fmt.Errorf("failed to load ledger: %w", err)
	}

	cleanup := func() {
		if err := dbStore.Close(); err != nil {
			fmt.Printf("Error closing DB: %v\n", err)
		}
		_ = log.Sync()
	}

	return &App{
		Service: svc,
		Store:   dbStore,
		Config:  cfg,
		Logger:  log,
		DBPath:  dbPath,
	}, cleanup, nil
}

// ResolveDBPath expands "~" and falls back to ledger.db in the app data dir.
func ResolveDBPath(raw string) (string, error) {
	if raw == "" {
		appDir, err := GetAppDataDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(appDir, "ledger.db"), nil
	}
	return ExpandPath(raw)
}

func GetAppDataDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("unable to determine user home directory: %w", err)
		}
		return filepath.Join(home, ".ledger"), nil
	}

	return filepath.Join(configDir, "ledger"), nil
}

func ExpandPath(path string) (string, error) {
	if len(path) > 0 && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		if path == "~" {
			return home, nil
		}
		if len(path) > 1 && (path[1] == '/' || path[1] == '\\') {
			return filepath.Join(home, path[2:]), nil
		}
	}
	return path, nil
}
