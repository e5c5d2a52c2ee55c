package models

import "time"

// Status is the lifecycle state of a group-buy offer
type Status string

const (
	StatusActive  Status = "active"
	StatusFull    Status = "full"
	StatusExpired Status = "expired"
)

// Group represents a group-buy offer for a product variant.
// Members are user identifiers in join order.
type Group struct {
	ID                 string   `gorm:"primarykey" json:"id"`
	ProductID          string   `gorm:"not null;index" json:"productId"`
	VariantID          string   `gorm:"not null" json:"variantId"`
	GroupSize          int      `gorm:"not null" json:"groupSize"`
	DiscountPercentage int      `gorm:"not null" json:"discountPercentage"`
	Members            []string `gorm:"serializer:json" json:"members"`
	Status             Status   `gorm:"type:varchar(20);default:'active';index" json:"status"`
	CreatedAt          int64    `gorm:"autoCreateTime:milli" json:"createdAt"` // Unix milliseconds
	ExpiresAt          int64    `gorm:"not null" json:"expiresAt"`             // Unix milliseconds
}

// IsFull reports whether the group has reached its target size
func (g *Group) IsFull() bool {
	return len(g.Members) >= g.GroupSize
}

// HasMember reports whether userID already joined the group
func (g *Group) HasMember(userID string) bool {
	for _, m := range g.Members {
		if m == userID {
			return true
		}
	}
	return false
}

// ExpiredAt reports whether the expiry window has elapsed at now.
// The group is still open at exactly ExpiresAt.
func (g *Group) ExpiredAt(now time.Time) bool {
	return now.UnixMilli() > g.ExpiresAt
}

// Clone returns a deep copy so callers never share the Members backing array
func (g *Group) Clone() *Group {
	c := *g
	if g.Members != nil {
		c.Members = make([]string, len(g.Members))
		copy(c.Members, g.Members)
	}
	return &c
}
