package planner

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"contentplan/internal/core"

	"github.com/samber/lo"
)

// PostsKey is the single storage key the whole post collection lives under.
const PostsKey = "social_media_planner_posts"

// Store is the authoritative post collection. Every mutation loads the whole
// collection, edits it in memory and writes the whole collection back.
//
// The original app ran all of this on one UI thread and had no locking; the
// same read-modify-write here would be a lost-update race between goroutines,
// so mutations are serialized through a mutex instead. Reads stay lock-free:
// they only ever see whole persisted snapshots.
type Store struct {
	Logger *slog.Logger
	KV     core.KeyValueStore

	mu sync.Mutex
}

func (s *Store) Init(_ context.Context) error {
	s.Logger = s.Logger.With("component", "planner.Store")
	return nil
}

// All returns every stored post. A missing blob or a blob that no longer
// deserializes both degrade to an empty collection; corruption is logged and
// never crashes a caller.
func (s *Store) All(ctx context.Context) ([]core.Post, error) {
	return s.load(ctx), nil
}

// ByDate returns the posts scheduled on the given calendar day, comparing
// the literal day portion of scheduledDate. An empty date returns everything.
func (s *Store) ByDate(ctx context.Context, date core.DateKey) ([]core.Post, error) {
	posts := s.load(ctx)
	if date == "" {
		return posts, nil
	}
	return lo.Filter(posts, func(p core.Post, _ int) bool {
		return p.DateKey() == date
	}), nil
}

// Add appends the post and persists the collection. Ids are caller-supplied
// and not checked for uniqueness here.
func (s *Store) Add(ctx context.Context, post core.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.persist(ctx, append(s.load(ctx), post))
}

// Update replaces the stored post with the same id, keeping createdAt and
// stamping updatedAt. With duplicate ids the first match is replaced.
func (s *Store) Update(ctx context.Context, post core.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	posts := s.load(ctx)
	i := indexOf(posts, post.ID)
	if i < 0 {
		return fmt.Errorf("%w: %s", core.ErrPostNotFound, post.ID)
	}

	post.CreatedAt = posts[i].CreatedAt
	post.UpdatedAt = time.Now()
	posts[i] = post

	return s.persist(ctx, posts)
}

// UpdateStatus changes only the status and updatedAt of the post with the
// given id. Transitions are unrestricted.
func (s *Store) UpdateStatus(ctx context.Context, id string, status core.Status) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	posts := s.load(ctx)
	i := indexOf(posts, id)
	if i < 0 {
		return fmt.Errorf("%w: %s", core.ErrPostNotFound, id)
	}

	posts[i].Status = status
	posts[i].UpdatedAt = time.Now()

	return s.persist(ctx, posts)
}

// Delete removes every post with the given id. Deleting an unknown id is a
// silent no-op.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	posts := lo.Reject(s.load(ctx), func(p core.Post, _ int) bool {
		return p.ID == id
	})
	return s.persist(ctx, posts)
}

// ClearAll removes the stored blob entirely.
func (s *Store) ClearAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.KV.Delete(ctx, PostsKey); err != nil {
		return fmt.Errorf("%w: %w", core.ErrStorageWrite, err)
	}
	return nil
}

func (s *Store) load(ctx context.Context) []core.Post {
	raw, err := s.KV.Get(ctx, PostsKey)
	if err != nil {
		if !errors.Is(err, core.ErrKeyNotFound) {
			s.Logger.Warn("reading posts failed, treating collection as empty", "error", err)
		}
		return nil
	}

	var posts []core.Post
	if err := json.Unmarshal(raw, &posts); err != nil {
		s.Logger.Warn("stored posts are corrupt, treating collection as empty", "error", err)
		return nil
	}
	return posts
}

func (s *Store) persist(ctx context.Context, posts []core.Post) error {
	raw, err := json.Marshal(posts)
	if err != nil {
		return fmt.Errorf("%w: %w", core.ErrStorageWrite, err)
	}
	if err := s.KV.Put(ctx, PostsKey, raw); err != nil {
		return fmt.Errorf("%w: %w", core.ErrStorageWrite, err)
	}
	return nil
}

func indexOf(posts []core.Post, id string) int {
	_, i, _ := lo.FindIndexOf(posts, func(p core.Post) bool {
		return p.ID == id
	})
	return i
}
