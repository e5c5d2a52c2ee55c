package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikepea/grousale/pkg/grousale/models"
	"github.com/mikepea/grousale/pkg/grousale/storage"
)

func newGroup(id string, createdAt int64) *models.Group {
	return &models.Group{
		ID:                 id,
		ProductID:          "prod",
		VariantID:          "var",
		GroupSize:          2,
		DiscountPercentage: 10,
		Members:            []string{},
		Status:             models.StatusActive,
		CreatedAt:          createdAt,
		ExpiresAt:          createdAt + 6*3600000,
	}
}

func TestStore_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	s := New()

	original := newGroup("group-1", 1000)
	require.NoError(t, s.CreateGroup(ctx, original))

	got, err := s.GetGroup(ctx, "group-1")
	require.NoError(t, err)
	if diff := cmp.Diff(original, got); diff != "" {
		t.Errorf("GetGroup mismatch (-want +got):\n%s", diff)
	}
}

func TestStore_CreateDuplicate(t *testing.T) {
	ctx := context.Background()
	s := New()

	require.NoError(t, s.CreateGroup(ctx, newGroup("group-1", 1000)))
	assert.Error(t, s.CreateGroup(ctx, newGroup("group-1", 2000)))
}

func TestStore_CreateRequiresID(t *testing.T) {
	assert.Error(t, New().CreateGroup(context.Background(), newGroup("", 1000)))
}

func TestStore_GetNotFound(t *testing.T) {
	_, err := New().GetGroup(context.Background(), "missing")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestStore_UpdateNotFound(t *testing.T) {
	err := New().UpdateGroup(context.Background(), newGroup("missing", 1000))
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestStore_NoAliasing(t *testing.T) {
	ctx := context.Background()
	s := New()

	g := newGroup("group-1", 1000)
	require.NoError(t, s.CreateGroup(ctx, g))

	// Mutating the caller's copy must not leak into the store
	g.Members = append(g.Members, "intruder")

	got, err := s.GetGroup(ctx, "group-1")
	require.NoError(t, err)
	assert.Empty(t, got.Members)

	// Nor must mutating a returned copy
	got.Members = append(got.Members, "a")
	got.Status = models.StatusFull

	again, err := s.GetGroup(ctx, "group-1")
	require.NoError(t, err)
	assert.Empty(t, again.Members)
	assert.Equal(t, models.StatusActive, again.Status)
}

func TestStore_Update(t *testing.T) {
	ctx := context.Background()
	s := New()

	g := newGroup("group-1", 1000)
	require.NoError(t, s.CreateGroup(ctx, g))

	g.Members = []string{"a", "b"}
	g.Status = models.StatusFull
	require.NoError(t, s.UpdateGroup(ctx, g))

	got, err := s.GetGroup(ctx, "group-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, got.Members)
	assert.Equal(t, models.StatusFull, got.Status)
}

func TestStore_ListGroupsByStatus(t *testing.T) {
	ctx := context.Background()
	s := New()

	require.NoError(t, s.CreateGroup(ctx, newGroup("group-b", 2000)))
	require.NoError(t, s.CreateGroup(ctx, newGroup("group-a", 1000)))
	full := newGroup("group-c", 500)
	full.Status = models.StatusFull
	require.NoError(t, s.CreateGroup(ctx, full))

	active, err := s.ListGroupsByStatus(ctx, models.StatusActive)
	require.NoError(t, err)
	require.Len(t, active, 2)
	assert.Equal(t, "group-a", active[0].ID)
	assert.Equal(t, "group-b", active[1].ID)

	expired, err := s.ListGroupsByStatus(ctx, models.StatusExpired)
	require.NoError(t, err)
	assert.Empty(t, expired)
}

func TestStore_ConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	s := New()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := fmt.Sprintf("group-%d", i)
			assert.NoError(t, s.CreateGroup(ctx, newGroup(id, int64(i))))
			_, err := s.GetGroup(ctx, id)
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	active, err := s.ListGroupsByStatus(ctx, models.StatusActive)
	require.NoError(t, err)
	assert.Len(t, active, 50)
}
