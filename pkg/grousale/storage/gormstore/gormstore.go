// Package gormstore provides a gorm-backed implementation of the storage.Store
// interface. It is typically opened on SQLite through the database package.
package gormstore

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/mikepea/grousale/pkg/grousale/models"
	"github.com/mikepea/grousale/pkg/grousale/storage"
)

// Ensure Store implements storage.Store
var _ storage.Store = (*Store)(nil)

// Store implements storage.Store using gorm.
type Store struct {
	db *gorm.DB
}

// New wraps an already migrated gorm handle.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// CreateGroup inserts a new group row.
func (s *Store) CreateGroup(ctx context.Context, group *models.Group) error {
	if group.ID == "" {
		return fmt.Errorf("group ID is required")
	}
	if err := s.db.WithContext(ctx).Create(group.Clone()).Error; err != nil {
		return fmt.Errorf("failed to insert group: %w", err)
	}
	return nil
}

// GetGroup loads a group by ID.
func (s *Store) GetGroup(ctx context.Context, groupID string) (*models.Group, error) {
	var group models.Group
	err := s.db.WithContext(ctx).Where("id = ?", groupID).First(&group).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get group: %w", err)
	}
	return &group, nil
}

// UpdateGroup overwrites every column of an existing group.
func (s *Store) UpdateGroup(ctx context.Context, group *models.Group) error {
	result := s.db.WithContext(ctx).
		Model(&models.Group{}).
		Where("id = ?", group.ID).
		Select("*").
		Updates(group.Clone())
	if result.Error != nil {
		return fmt.Errorf("failed to update group: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// ListGroupsByStatus returns all groups in status, oldest first.
func (s *Store) ListGroupsByStatus(ctx context.Context, status models.Status) ([]*models.Group, error) {
	var groups []*models.Group
	err := s.db.WithContext(ctx).
		Where("status = ?", status).
		Order("created_at, id").
		Find(&groups).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}
	return groups, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
