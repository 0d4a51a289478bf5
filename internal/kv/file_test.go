package kv_test

import (
	"io"
	"log/slog"
	"testing"

	"contentplan/internal/config"
	"contentplan/internal/core"
	"contentplan/internal/kv"

	"github.com/stretchr/testify/require"
)

func newFile(t *testing.T, dir string) *kv.File {
	t.Helper()

	f := &kv.File{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		Config: &config.Config{DataDir: dir},
	}
	require.NoError(t, f.Init(t.Context()))
	return f
}

func TestFile_GetMissing(t *testing.T) {
	t.Parallel()

	f := newFile(t, t.TempDir())

	_, err := f.Get(t.Context(), "nope")
	require.ErrorIs(t, err, core.ErrKeyNotFound)
}

func TestFile_PutGet(t *testing.T) {
	t.Parallel()

	f := newFile(t, t.TempDir())

	require.NoError(t, f.Put(t.Context(), "posts", []byte(`[{"id":"1"}]`)))

	got, err := f.Get(t.Context(), "posts")
	require.NoError(t, err)
	require.Equal(t, []byte(`[{"id":"1"}]`), got)

	require.NoError(t, f.Put(t.Context(), "posts", []byte(`[]`)))

	got, err = f.Get(t.Context(), "posts")
	require.NoError(t, err)
	require.Equal(t, []byte(`[]`), got)
}

func TestFile_Delete(t *testing.T) {
	t.Parallel()

	f := newFile(t, t.TempDir())

	require.NoError(t, f.Put(t.Context(), "posts", []byte(`[]`)))
	require.NoError(t, f.Delete(t.Context(), "posts"))

	_, err := f.Get(t.Context(), "posts")
	require.ErrorIs(t, err, core.ErrKeyNotFound)

	require.NoError(t, f.Delete(t.Context(), "posts"))
}

func TestFile_PersistsAcrossInstances(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	first := newFile(t, dir)
	require.NoError(t, first.Put(t.Context(), "posts", []byte("data")))

	second := newFile(t, dir)
	got, err := second.Get(t.Context(), "posts")
	require.NoError(t, err)
	require.Equal(t, []byte("data"), got)
}
