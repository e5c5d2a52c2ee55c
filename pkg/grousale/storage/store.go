// Package storage provides abstractions for group-buy state storage.
package storage

import (
	"context"
	"errors"

	"github.com/mikepea/grousale/pkg/grousale/models"
)

// ErrNotFound is returned when a group does not exist in the store.
var ErrNotFound = errors.New("group not found")

// Store defines the interface for group storage operations.
// This abstraction allows swapping storage backends (in-memory map, SQLite
// via gorm, etc.) without changing the registry or the HTTP handlers.
//
// Implementations must be safe for concurrent use and must not hand out
// references to their internal state.
type Store interface {
	// CreateGroup persists a new group. group.ID must already be set.
	CreateGroup(ctx context.Context, group *models.Group) error

	// GetGroup retrieves a group by its ID.
	// Returns ErrNotFound if the group does not exist.
	GetGroup(ctx context.Context, groupID string) (*models.Group, error)

	// UpdateGroup replaces the stored state of an existing group.
	// Returns ErrNotFound if the group does not exist.
	UpdateGroup(ctx context.Context, group *models.Group) error

	// ListGroupsByStatus returns all groups currently in the given status.
	ListGroupsByStatus(ctx context.Context, status models.Status) ([]*models.Group, error)

	// Close releases any resources held by the store.
	Close() error
}
