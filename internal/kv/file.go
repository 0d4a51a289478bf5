package kv

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"contentplan/internal/config"
	"contentplan/internal/core"
)

const filePermissions = 0o644

// File implements core.KeyValueStore on top of a plain directory: one JSON
// file per key. Writes go through a temp file and a rename so a crash never
// leaves a half-written blob behind.
type File struct {
	Logger *slog.Logger
	Config *config.Config
}

func (f *File) Init(_ context.Context) error {
	f.Logger = f.Logger.With("component", "kv.File")
	return os.MkdirAll(f.Config.DataDir, 0o755)
}

func (f *File) Get(_ context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(f.path(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", core.ErrKeyNotFound, key)
		}
		return nil, err
	}
	return data, nil
}

func (f *File) Put(_ context.Context, key string, value []byte) error {
	path := f.path(key)
	tmp := path + ".tmp"

	if err := os.WriteFile(tmp, value, filePermissions); err != nil {
		return fmt.Errorf("failed to store key %s: %w", key, err)
	}
	return os.Rename(tmp, path)
}

func (f *File) Delete(_ context.Context, key string) error {
	err := os.Remove(f.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

func (f *File) path(key string) string {
	return filepath.Join(f.Config.DataDir, key+".json")
}
