package rankstore

import (
	"os"
	"path/filepath"
	"testing"

	"djrank-backend/lib/scrapers/djmag"

	"github.com/stretchr/testify/require"
)

func TestDirStoreWriteYear(t *testing.T) {
	dir := t.TempDir()
	store, err := NewDirStore(dir)
	require.NoError(t, err)

	err = store.WriteYear(2023, []djmag.Ranking{
		{Year: 2023, Rank: 1, Name: "John Doe"},
		{Year: 2023, Rank: 2, Name: "Jane Roe"},
	})
	require.NoError(t, err)

	contents, err := os.ReadFile(filepath.Join(dir, "2023.csv"))
	require.NoError(t, err)
	require.Equal(t, "Year,Rank,Name\n2023,1,John Doe\n2023,2,Jane Roe\n", string(contents))
}

func TestDirStoreWriteConsolidated(t *testing.T) {
	dir := t.TempDir()
	store, err := NewDirStore(dir)
	require.NoError(t, err)

	err = store.WriteConsolidated(2004, 2024, []djmag.Ranking{
		{Year: 2024, Rank: 1, Name: "John Doe"},
		{Year: 2004, Rank: 1, Name: "Jane Roe"},
	})
	require.NoError(t, err)

	contents, err := os.ReadFile(filepath.Join(dir, "all (2004-2024).csv"))
	require.NoError(t, err)
	require.Equal(t, "Year,Rank,Name\n2024,1,John Doe\n2004,1,Jane Roe\n", string(contents))
}

func TestNewDirStoreCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "rankings")
	_, err := NewDirStore(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	require.True(t, info.IsDir())
}
