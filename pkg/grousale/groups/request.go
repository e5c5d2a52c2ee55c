package groups

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Number is an integer field that also accepts numeric strings, since
// storefront scripts often post form values as strings.
type Number int

// NumberError reports a value that is not an integer
type NumberError struct {
	Value string
}

func (e *NumberError) Error() string {
	return fmt.Sprintf("not an integer: %s", e.Value)
}

// UnmarshalJSON accepts 10, 10.0, "10" and null (left as zero). Values beyond
// the int32 range are clamped to it.
func (n *Number) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	raw := string(data)
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return &NumberError{Value: raw}
		}
		raw = strings.TrimSpace(s)
		if raw == "" {
			return nil
		}
	}

	f, err := strconv.ParseFloat(raw, 64)
	if err != nil && !(errors.Is(err, strconv.ErrRange) && f != 0) {
		return &NumberError{Value: raw}
	}
	// "Inf" and "NaN" parse without error but are not numbers on the wire
	if (err == nil && math.IsInf(f, 0)) || f != math.Trunc(f) {
		return &NumberError{Value: raw}
	}

	// Huge values are still numbers; clamp them so range validation rejects them
	switch {
	case f > math.MaxInt32:
		*n = Number(math.MaxInt32)
	case f < math.MinInt32:
		*n = Number(math.MinInt32)
	default:
		*n = Number(f)
	}
	return nil
}

// ExternalRef is an opaque identifier owned by another system. JSON strings
// are kept verbatim and JSON numbers are kept as their literal text.
type ExternalRef string

// ExternalRefError reports a value that is neither a string nor a number
type ExternalRefError struct {
	Value string
}

func (e *ExternalRefError) Error() string {
	return fmt.Sprintf("not a string or number: %s", e.Value)
}

// UnmarshalJSON accepts strings, numbers and null. Null and 0 leave the
// reference empty.
func (r *ExternalRef) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*r = ExternalRef(s)
		return nil
	}

	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return &ExternalRefError{Value: string(data)}
	}
	// A numeric zero is treated as absent, like the zero count fields
	if f, err := num.Float64(); err == nil && f == 0 {
		return nil
	}
	*r = ExternalRef(num.String())
	return nil
}

// CreateGroupRequest represents the request to create a group
type CreateGroupRequest struct {
	ProductID          ExternalRef `json:"productId" binding:"required"`
	VariantID          ExternalRef `json:"variantId" binding:"required"`
	GroupSize          Number      `json:"groupSize" binding:"required" swaggertype:"integer"`
	DiscountPercentage Number      `json:"discountPercentage" binding:"required" swaggertype:"integer"`
	GroupDuration      Number      `json:"groupDuration" binding:"required" swaggertype:"integer"` // hours
}

// JoinGroupRequest represents the request to join a group
type JoinGroupRequest struct {
	UserID ExternalRef `json:"userId" binding:"required"`
}

// CreateGroupResponse is returned by createGroup
type CreateGroupResponse struct {
	GroupID   string `json:"groupId"`
	Status    string `json:"status"`
	ExpiresAt int64  `json:"expiresAt"`
}

// GroupResponse represents a group in API responses
type GroupResponse struct {
	ID                 string   `json:"id"`
	ProductID          string   `json:"productId"`
	VariantID          string   `json:"variantId"`
	GroupSize          int      `json:"groupSize"`
	DiscountPercentage int      `json:"discountPercentage"`
	Members            []string `json:"members"`
	Status             string   `json:"status"`
	CreatedAt          int64    `json:"createdAt"`
	ExpiresAt          int64    `json:"expiresAt"`
}

// JoinGroupResponse is returned by joinGroup
type JoinGroupResponse struct {
	Message string   `json:"message,omitempty"`
	Status  string   `json:"status"`
	Members []string `json:"members"`
}

// ApplyDiscountResponse is returned by applyDiscount
type ApplyDiscountResponse struct {
	GroupID            string `json:"groupId"`
	Status             string `json:"status"`
	DiscountPercentage int    `json:"discountPercentage"`
}

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Error string `json:"error"`
}
