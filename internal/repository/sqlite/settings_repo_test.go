package sqlite_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"masjid/internal/domain"
	"masjid/internal/port"
	"masjid/internal/repository/sqlite"
)

func newRepo(t *testing.T) port.SettingsRepository {
	t.Helper()
	db, err := sqlite.NewDB(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return sqlite.NewSettingsRepo(db)
}

func TestSettingsRepo_GetMissing(t *testing.T) {
	_, err := newRepo(t).Get(context.Background(), port.SettingContentScriptURL)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSettingsRepo_SetOverwrites(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, port.SettingContentScriptURL, "https://script.google.com/a"))
	require.NoError(t, repo.Set(ctx, port.SettingContentScriptURL, "https://script.google.com/b"))

	got, err := repo.Get(ctx, port.SettingContentScriptURL)
	require.NoError(t, err)
	assert.Equal(t, "https://script.google.com/b", got)
}

func TestSettingsRepo_Delete(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	require.NoError(t, repo.Set(ctx, "k", "v"))

	require.NoError(t, repo.Delete(ctx, "k"))
	require.NoError(t, repo.Delete(ctx, "k"))

	_, err := repo.Get(ctx, "k")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestNewDB_FilePersists(t *testing.T) {
	path := t.TempDir() + "/settings.db"
	ctx := context.Background()

	db, err := sqlite.NewDB(ctx, path)
	require.NoError(t, err)
	require.NoError(t, sqlite.NewSettingsRepo(db).Set(ctx, "k", "v"))
	require.NoError(t, db.Close())

	db, err = sqlite.NewDB(ctx, path)
	require.NoError(t, err)
	defer db.Close()
	got, err := sqlite.NewSettingsRepo(db).Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", got)
}
