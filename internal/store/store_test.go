package store_test

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/lingoflow/internal/store"
	"github.com/abhisek/lingoflow/internal/store/storetest"
)

func openTestStore(t *testing.T) *store.Store {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	s, err := store.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	require.NoError(t, err, "open test store")
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	assert.NotNil(t, s.Client())
	assert.NotNil(t, s.Repo())
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is covered by TestFileDatabase.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
		{"busy_timeout", "5000"},
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestFileDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lingoflow.db")
	s, err := store.Open(path)
	require.NoError(t, err)
	defer s.Close()

	var mode string
	require.NoError(t, s.DB().QueryRow("PRAGMA journal_mode").Scan(&mode))
	assert.Equal(t, "wal", mode)

	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)

	rows, err := s.DB().Query("SELECT name FROM sqlite_master WHERE type = 'table'")
	require.NoError(t, err)
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var name string
		require.NoError(t, rows.Scan(&name))
		tables = append(tables, name)
	}
	require.NoError(t, rows.Err())
	assert.GreaterOrEqual(t, len(tables), 8)
}

func TestDefaultDBPath(t *testing.T) {
	dir := t.TempDir()

	t.Setenv("LINGOFLOW_DB", filepath.Join(dir, "custom", "x.db"))
	p, err := store.DefaultDBPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "custom", "x.db"), p)
	assert.DirExists(t, filepath.Join(dir, "custom"))

	t.Setenv("LINGOFLOW_DB", "")
	t.Setenv("XDG_DATA_HOME", dir)
	p, err = store.DefaultDBPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "lingoflow", "lingoflow.db"), p)
}

func TestEntRepo(t *testing.T) {
	storetest.Run(t, func(t *testing.T) store.Repo {
		return openTestStore(t).Repo()
	})
}
