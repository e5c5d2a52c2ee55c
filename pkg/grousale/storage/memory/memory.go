// Package memory provides a thread-safe, in-memory implementation of the
// storage.Store interface. State lives for the lifetime of the process and
// is lost on restart.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/mikepea/grousale/pkg/grousale/models"
	"github.com/mikepea/grousale/pkg/grousale/storage"
)

// Ensure Store implements storage.Store
var _ storage.Store = (*Store)(nil)

// Store keeps groups in a map guarded by a RWMutex.
// Groups are cloned on the way in and on the way out.
type Store struct {
	mu     sync.RWMutex
	groups map[string]*models.Group
}

// New creates a new, empty in-memory store.
func New() *Store {
	return &Store{groups: make(map[string]*models.Group)}
}

// CreateGroup stores a new group.
func (s *Store) CreateGroup(ctx context.Context, group *models.Group) error {
	if group.ID == "" {
		return fmt.Errorf("group ID is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.groups[group.ID]; exists {
		return fmt.Errorf("group already exists: %s", group.ID)
	}
	s.groups[group.ID] = group.Clone()
	return nil
}

// GetGroup returns a copy of the stored group.
func (s *Store) GetGroup(ctx context.Context, groupID string) (*models.Group, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	group, ok := s.groups[groupID]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return group.Clone(), nil
}

// UpdateGroup replaces an existing group.
func (s *Store) UpdateGroup(ctx context.Context, group *models.Group) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.groups[group.ID]; !ok {
		return storage.ErrNotFound
	}
	s.groups[group.ID] = group.Clone()
	return nil
}

// ListGroupsByStatus returns copies of all groups in status, oldest first.
func (s *Store) ListGroupsByStatus(ctx context.Context, status models.Status) ([]*models.Group, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var groups []*models.Group
	for _, g := range s.groups {
		if g.Status == status {
			groups = append(groups, g.Clone())
		}
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].CreatedAt != groups[j].CreatedAt {
			return groups[i].CreatedAt < groups[j].CreatedAt
		}
		return groups[i].ID < groups[j].ID
	})
	return groups, nil
}

// Close is a no-op; the map is dropped with the process.
func (s *Store) Close() error {
	return nil
}
