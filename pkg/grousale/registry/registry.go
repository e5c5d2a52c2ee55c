// Package registry implements the group-buy state machine on top of a
// storage.Store.
//
// A group starts active, becomes full when its last seat is taken and
// becomes expired when it is observed past its expiry while still active.
// Full and expired are both terminal: a full group is never downgraded to
// expired, so a filled offer keeps its discount after the window closes.
//
// Expiry is evaluated lazily by every operation; SweepExpired can be run
// periodically to finalize groups nobody reads.
package registry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mikepea/grousale/pkg/grousale/metrics"
	"github.com/mikepea/grousale/pkg/grousale/models"
	"github.com/mikepea/grousale/pkg/grousale/storage"
)

// Limits bounds the creation parameters. Bounds are inclusive.
type Limits struct {
	MinGroupSize     int
	MaxGroupSize     int
	MinDiscount      int
	MaxDiscount      int
	MinDurationHours int
	MaxDurationHours int
}

// DefaultLimits are the bounds enforced by the public API
var DefaultLimits = Limits{
	MinGroupSize:     2,
	MaxGroupSize:     10,
	MinDiscount:      5,
	MaxDiscount:      50,
	MinDurationHours: 6,
	MaxDurationHours: 72,
}

// CreateParams are the caller-supplied fields of a new group
type CreateParams struct {
	ProductID          string
	VariantID          string
	GroupSize          int
	DiscountPercentage int
	GroupDuration      int // hours
}

// JoinResult is the membership snapshot after a join
type JoinResult struct {
	Status        models.Status
	Members       []string
	AlreadyJoined bool
}

// Option configures a Registry
type Option func(*Registry)

// WithClock overrides time.Now
func WithClock(now func() time.Time) Option {
	return func(r *Registry) { r.now = now }
}

// WithLimits overrides DefaultLimits
func WithLimits(l Limits) Option {
	return func(r *Registry) { r.limits = l }
}

// WithIDGenerator overrides the group ID generator
func WithIDGenerator(newID func() string) Option {
	return func(r *Registry) { r.newID = newID }
}

// Registry serializes every read-modify-write on groups behind one mutex.
type Registry struct {
	mu     sync.Mutex
	store  storage.Store
	now    func() time.Time
	limits Limits
	newID  func() string
}

// New creates a Registry over store.
func New(store storage.Store, opts ...Option) *Registry {
	r := &Registry{
		store:  store,
		now:    time.Now,
		limits: DefaultLimits,
		newID:  newGroupID,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func newGroupID() string {
	return "group-" + uuid.NewString()
}

// blank reports whether an identifier is missing. Every ID field uses this
// rule; non-blank IDs are stored verbatim.
func blank(id string) bool {
	return strings.TrimSpace(id) == ""
}

// Validate checks p against the registry limits.
func (r *Registry) Validate(p CreateParams) error {
	if blank(p.ProductID) || blank(p.VariantID) ||
		p.GroupSize == 0 || p.DiscountPercentage == 0 || p.GroupDuration == 0 {
		return validationError(MsgMissingFields)
	}
	l := r.limits
	if p.GroupSize < l.MinGroupSize || p.GroupSize > l.MaxGroupSize ||
		p.DiscountPercentage < l.MinDiscount || p.DiscountPercentage > l.MaxDiscount ||
		p.GroupDuration < l.MinDurationHours || p.GroupDuration > l.MaxDurationHours {
		return validationError(MsgInvalidValues)
	}
	return nil
}

// Create validates p and stores a new active group.
func (r *Registry) Create(ctx context.Context, p CreateParams) (*models.Group, error) {
	if err := r.Validate(p); err != nil {
		slog.Warn("Rejected group creation", "error", err,
			"product_id", p.ProductID,
			"group_size", p.GroupSize,
			"discount_percentage", p.DiscountPercentage,
			"group_duration", p.GroupDuration,
		)
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	createdAt := r.now().UnixMilli()
	group := &models.Group{
		ID:                 r.newID(),
		ProductID:          p.ProductID,
		VariantID:          p.VariantID,
		GroupSize:          p.GroupSize,
		DiscountPercentage: p.DiscountPercentage,
		Members:            []string{},
		Status:             models.StatusActive,
		CreatedAt:          createdAt,
		ExpiresAt:          createdAt + int64(p.GroupDuration)*time.Hour.Milliseconds(),
	}

	if err := r.store.CreateGroup(ctx, group); err != nil {
		slog.Error("Failed to store group", "group_id", group.ID, "error", err)
		return nil, fmt.Errorf("create group: %w", err)
	}

	metrics.GroupsCreated.Inc()
	slog.Info("Group created",
		"group_id", group.ID,
		"product_id", group.ProductID,
		"variant_id", group.VariantID,
		"group_size", group.GroupSize,
		"expires_at", group.ExpiresAt,
	)
	return group, nil
}

// Get returns the group with groupID. An active group past its expiry is
// marked expired and ErrExpired is returned instead.
func (r *Registry) Get(ctx context.Context, groupID string) (*models.Group, error) {
	if blank(groupID) {
		return nil, validationError(MsgGroupIDRequired)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	group, err := r.load(ctx, groupID)
	if err != nil {
		return nil, err
	}
	expired, err := r.expireIfDue(ctx, group)
	if err != nil {
		return nil, err
	}
	if expired {
		return nil, ErrExpired
	}
	return group, nil
}

// Join adds userID to the group. Rejoining is idempotent and reported
// through JoinResult.AlreadyJoined, even on a full group.
func (r *Registry) Join(ctx context.Context, groupID, userID string) (*JoinResult, error) {
	if blank(groupID) {
		return nil, validationError(MsgGroupIDRequired)
	}
	if blank(userID) {
		return nil, validationError(MsgUserIDRequired)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	group, err := r.load(ctx, groupID)
	if err != nil {
		return nil, err
	}

	expired, err := r.expireIfDue(ctx, group)
	if err != nil {
		return nil, err
	}
	if expired {
		metrics.GroupJoins.WithLabelValues(metrics.JoinResultExpired).Inc()
		return nil, ErrExpired
	}

	if group.HasMember(userID) {
		metrics.GroupJoins.WithLabelValues(metrics.JoinResultAlreadyJoined).Inc()
		return &JoinResult{Status: group.Status, Members: group.Members, AlreadyJoined: true}, nil
	}

	if group.Status == models.StatusFull {
		metrics.GroupJoins.WithLabelValues(metrics.JoinResultFull).Inc()
		return nil, ErrAlreadyFull
	}

	group.Members = append(group.Members, userID)
	if group.IsFull() {
		group.Status = models.StatusFull
	}
	if err := r.store.UpdateGroup(ctx, group); err != nil {
		slog.Error("Failed to store join", "group_id", groupID, "user_id", userID, "error", err)
		return nil, fmt.Errorf("join group: %w", err)
	}

	metrics.GroupJoins.WithLabelValues(metrics.JoinResultJoined).Inc()
	slog.Info("Member joined",
		"group_id", groupID,
		"user_id", userID,
		"members_count", len(group.Members),
		"group_size", group.GroupSize,
	)
	if group.Status == models.StatusFull {
		metrics.GroupsFilled.Inc()
		slog.Info("Group full", "group_id", groupID, "discount_percentage", group.DiscountPercentage)
	}

	return &JoinResult{Status: group.Status, Members: group.Members}, nil
}

// ApplyDiscount confirms that the group's discount may be granted and
// returns the group. Only full groups qualify; anything else is ErrNotFull.
//
// Like every other operation it runs the lazy expiry check first, so an
// active group past its expiry is persisted as expired before ErrNotFull is
// returned. That is the only write it makes: membership and discount are
// never changed, and a full group is returned untouched.
func (r *Registry) ApplyDiscount(ctx context.Context, groupID string) (*models.Group, error) {
	if blank(groupID) {
		return nil, validationError(MsgGroupIDRequired)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	group, err := r.load(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if _, err := r.expireIfDue(ctx, group); err != nil {
		return nil, err
	}
	if group.Status != models.StatusFull {
		return nil, ErrNotFull
	}

	metrics.DiscountsApplied.Inc()
	slog.Info("Discount applied", "group_id", groupID, "discount_percentage", group.DiscountPercentage)
	return group, nil
}

// SweepExpired marks every active group past its expiry as expired and
// returns how many were transitioned.
func (r *Registry) SweepExpired(ctx context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	active, err := r.store.ListGroupsByStatus(ctx, models.StatusActive)
	if err != nil {
		return 0, fmt.Errorf("list active groups: %w", err)
	}

	swept := 0
	for _, group := range active {
		if err := ctx.Err(); err != nil {
			return swept, err
		}
		expired, err := r.expireIfDue(ctx, group)
		if err != nil {
			return swept, err
		}
		if expired {
			swept++
		}
	}
	return swept, nil
}

// RunSweeper calls SweepExpired every interval until ctx is done.
func (r *Registry) RunSweeper(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	slog.Info("Expiry sweeper started", "interval", interval)
	for {
		select {
		case <-ctx.Done():
			slog.Info("Expiry sweeper stopped")
			return
		case <-ticker.C:
			n, err := r.SweepExpired(ctx)
			if err != nil && !errors.Is(err, context.Canceled) {
				slog.Error("Expiry sweep failed", "error", err)
				continue
			}
			if n > 0 {
				slog.Info("Expiry sweep finished", "expired", n)
			}
		}
	}
}

func (r *Registry) load(ctx context.Context, groupID string) (*models.Group, error) {
	group, err := r.store.GetGroup(ctx, groupID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		slog.Error("Failed to load group", "group_id", groupID, "error", err)
		return nil, fmt.Errorf("load group: %w", err)
	}
	return group, nil
}

// expireIfDue persists the active -> expired transition when the window has
// elapsed and reports whether the group is expired afterwards.
func (r *Registry) expireIfDue(ctx context.Context, group *models.Group) (bool, error) {
	if group.Status == models.StatusActive && group.ExpiredAt(r.now()) {
		group.Status = models.StatusExpired
		if err := r.store.UpdateGroup(ctx, group); err != nil {
			slog.Error("Failed to store expiry", "group_id", group.ID, "error", err)
			return false, fmt.Errorf("expire group: %w", err)
		}
		metrics.GroupsExpired.Inc()
		slog.Info("Group expired", "group_id", group.ID, "expires_at", group.ExpiresAt)
	}
	return group.Status == models.StatusExpired, nil
}
