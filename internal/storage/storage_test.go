package storage_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/marcelsud/booklend/config"
	"github.com/marcelsud/booklend/internal/storage"
	"github.com/marcelsud/booklend/library"
	"github.com/marcelsud/booklend/library/sqlite"
	"github.com/marcelsud/booklend/library/textfile"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenFileStore(t *testing.T) {
	ctx := context.Background()
	cfg := &config.Config{
		StoreDriver: config.DriverFile,
		MembersFile: filepath.Join(t.TempDir(), "members.txt"),
	}
	repo, err := storage.Open(ctx, cfg, zerolog.Nop())
	require.NoError(t, err)
	defer repo.Close(ctx)
	assert.IsType(t, &textfile.Repository{}, repo)

	require.NoError(t, repo.Insert(ctx, library.NewMember(7, "Smith, Jr.")))
	members, err := repo.SelectAll(ctx)
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, "Smith, Jr.", members[0].Name)
}

func TestOpenSQLiteStore(t *testing.T) {
	ctx := context.Background()
	cfg := &config.Config{
		StoreDriver: config.DriverSQLite,
		SQLitePath:  filepath.Join(t.TempDir(), "members.db"),
	}
	repo, err := storage.Open(ctx, cfg, zerolog.Nop())
	require.NoError(t, err)
	defer repo.Close(ctx)
	assert.IsType(t, &sqlite.Repository{}, repo)
}

func TestOpenRejectsBadSettings(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name string
		cfg  config.Config
	}{
		{"unknown driver", config.Config{StoreDriver: "mongo"}},
		{"file without path", config.Config{StoreDriver: config.DriverFile}},
		{"postgres without user", config.Config{StoreDriver: config.DriverPostgres, PostgresHost: "localhost", PostgresDB: "booklend"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, err := storage.Open(ctx, &tt.cfg, zerolog.Nop())
			assert.Error(t, err)
			assert.Nil(t, repo)
		})
	}
}
