package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadInitialisesMissingCollection(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	var records []map[string]interface{}
	require.NoError(t, store.Read("flash-sales", &records))
	assert.Empty(t, records)

	data, err := os.ReadFile(filepath.Join(store.Dir(), "flash-sales.json"))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestWriteThenRead(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	in := []map[string]string{{"id": "1"}, {"id": "2"}}
	require.NoError(t, store.Write("flash-sales", in))

	var out []map[string]string
	require.NoError(t, store.Read("flash-sales", &out))
	assert.Equal(t, in, out)
}

func TestWriteIsPrettyPrinted(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Write("products", []map[string]string{{"id": "p1"}}))

	data, err := os.ReadFile(filepath.Join(store.Dir(), "products.json"))
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "\n  "))
}

func TestWriteReplacesWholeFile(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Write("banniereflashsale", []string{"a", "b", "c"}))
	require.NoError(t, store.Write("banniereflashsale", []string{}))

	var out []string
	require.NoError(t, store.Read("banniereflashsale", &out))
	assert.Empty(t, out)
}

func TestReadCorruptFileReturnsError(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(store.Dir(), "products.json"), []byte("{pas du json"), 0644))

	var out []string
	assert.Error(t, store.Read("products", &out))
}
