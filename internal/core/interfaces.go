package core

import (
	"context"
)

// KeyValueStore is the persistence collaborator: a plain key-value blob
// store. Get returns ErrKeyNotFound for absent keys, Delete of an absent key
// is a no-op.
type KeyValueStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// PostStore owns the canonical post collection. Every mutation is a
// read-modify-write of the whole collection under one storage key.
//
// Read failures degrade to an empty collection and are logged, never
// propagated. Write failures propagate wrapped in ErrStorageWrite.
type PostStore interface {
	All(ctx context.Context) ([]Post, error)
	ByDate(ctx context.Context, date DateKey) ([]Post, error)
	Add(ctx context.Context, post Post) error
	Update(ctx context.Context, post Post) error
	UpdateStatus(ctx context.Context, id string, status Status) error
	Delete(ctx context.Context, id string) error
	ClearAll(ctx context.Context) error
}
