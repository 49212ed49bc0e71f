// Package feed holds the in-memory post snapshot served by the preview
// server, decoupling request handling from the Notion pipeline.
package feed

import (
	"sync"
	"time"

	"github.com/chandlera/chandler-family-blog/internal/model"
	"github.com/chandlera/chandler-family-blog/internal/post"
)

// Store is a read-mostly snapshot of the latest pipeline build. Replace
// swaps the whole snapshot at once; readers never see a partial update.
type Store struct {
	mu      sync.RWMutex
	posts   []model.Post
	bySlug  map[string]model.Post
	updated time.Time
}

// NewStore creates an empty store. Until the first Replace it serves an
// empty post list, never an error.
func NewStore() *Store {
	return &Store{
		posts:  []model.Post{},
		bySlug: make(map[string]model.Post),
	}
}

// Replace installs a new snapshot, keeping the given ordering. Posts with
// an empty slug stay listed but are not reachable by slug. Two posts with
// the same slug collide silently; the later one wins the slug lookup.
func (s *Store) Replace(posts []model.Post) {
	bySlug := make(map[string]model.Post, len(posts))
	for _, p := range posts {
		if p.Slug == "" {
			continue
		}
		bySlug[p.Slug] = p
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.posts = posts
	s.bySlug = bySlug
	s.updated = time.Now()
}

// Snapshot returns the current posts in build order. The slice is a copy;
// callers may not mutate the stored posts through it.
func (s *Store) Snapshot() []model.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Post, len(s.posts))
	copy(out, s.posts)
	return out
}

// GetBySlug returns the post carrying the given slug, or post.ErrNotFound.
func (s *Store) GetBySlug(slug string) (model.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.bySlug[slug]
	if !ok {
		return model.Post{}, post.ErrNotFound
	}
	return p, nil
}

// UpdatedAt returns when the snapshot was last replaced, zero before the
// first fill.
func (s *Store) UpdatedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.updated
}
