package groups

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/mikepea/grousale/pkg/grousale/models"
	"github.com/mikepea/grousale/pkg/grousale/registry"
)

// Registry is the group-buy state machine the handlers drive
type Registry interface {
	Create(ctx context.Context, p registry.CreateParams) (*models.Group, error)
	Get(ctx context.Context, groupID string) (*models.Group, error)
	Join(ctx context.Context, groupID, userID string) (*registry.JoinResult, error)
	ApplyDiscount(ctx context.Context, groupID string) (*models.Group, error)
}

// Handler handles group-buy requests
type Handler struct {
	registry Registry
}

// NewHandler creates a new groups handler
func NewHandler(reg Registry) *Handler {
	return &Handler{registry: reg}
}

func groupToResponse(g *models.Group) GroupResponse {
	members := g.Members
	if members == nil {
		members = []string{}
	}
	return GroupResponse{
		ID:                 g.ID,
		ProductID:          g.ProductID,
		VariantID:          g.VariantID,
		GroupSize:          g.GroupSize,
		DiscountPercentage: g.DiscountPercentage,
		Members:            members,
		Status:             string(g.Status),
		CreatedAt:          g.CreatedAt,
		ExpiresAt:          g.ExpiresAt,
	}
}

// Create creates a new group-buy offer
// @Summary Create a group
// @Description Open a group-buy offer for a product variant
// @Tags groups
// @Accept json
// @Produce json
// @Param request body CreateGroupRequest true "Group details"
// @Success 200 {object} CreateGroupResponse
// @Failure 400 {object} ErrorResponse "Missing, non-numeric or out-of-range fields"
// @Router /createGroup [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("Invalid createGroup body", "error", err)
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: createBindError(err)})
		return
	}

	group, err := h.registry.Create(c.Request.Context(), registry.CreateParams{
		ProductID:          string(req.ProductID),
		VariantID:          string(req.VariantID),
		GroupSize:          int(req.GroupSize),
		DiscountPercentage: int(req.DiscountPercentage),
		GroupDuration:      int(req.GroupDuration),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, CreateGroupResponse{
		GroupID:   group.ID,
		Status:    string(group.Status),
		ExpiresAt: group.ExpiresAt,
	})
}

// Get returns a specific group
// @Summary Get a group
// @Description Get the full state of a group. Reading a lapsed group marks it expired.
// @Tags groups
// @Produce json
// @Param id query string true "Group ID"
// @Success 200 {object} GroupResponse
// @Failure 400 {object} ErrorResponse "Missing group ID"
// @Failure 404 {object} ErrorResponse "Group not found"
// @Failure 410 {object} ErrorResponse "Group expired"
// @Router /getGroup [get]
func (h *Handler) Get(c *gin.Context) {
	groupID := c.Query("id")
	if groupID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: registry.MsgGroupIDRequired})
		return
	}

	group, err := h.registry.Get(c.Request.Context(), groupID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, groupToResponse(group))
}

// Join adds a user to a group
// @Summary Join a group
// @Description Add a user to a group. Joining twice returns the current state with message "Already joined".
// @Tags groups
// @Accept json
// @Produce json
// @Param id query string true "Group ID"
// @Param request body JoinGroupRequest true "Joining user"
// @Success 200 {object} JoinGroupResponse
// @Failure 400 {object} ErrorResponse "Missing IDs or group already full"
// @Failure 404 {object} ErrorResponse "Group not found"
// @Failure 410 {object} ErrorResponse "Group expired"
// @Router /joinGroup [post]
func (h *Handler) Join(c *gin.Context) {
	groupID := c.Query("id")
	if groupID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: registry.MsgGroupIDRequired})
		return
	}

	var req JoinGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("Invalid joinGroup body", "group_id", groupID, "error", err)
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: joinBindError(err)})
		return
	}

	res, err := h.registry.Join(c.Request.Context(), groupID, string(req.UserID))
	if err != nil {
		respondError(c, err)
		return
	}

	resp := JoinGroupResponse{
		Status:  string(res.Status),
		Members: res.Members,
	}
	if res.AlreadyJoined {
		resp.Message = "Already joined"
	}
	c.JSON(http.StatusOK, resp)
}

// ApplyDiscount confirms the discount of a full group
// @Summary Apply a group discount
// @Description Confirm that a full group's discount may be granted. Does not modify the group.
// @Tags groups
// @Produce json
// @Param id query string true "Group ID"
// @Success 200 {object} ApplyDiscountResponse
// @Failure 400 {object} ErrorResponse "Missing group ID or group not full"
// @Failure 404 {object} ErrorResponse "Group not found"
// @Router /applyDiscount [post]
func (h *Handler) ApplyDiscount(c *gin.Context) {
	groupID := c.Query("id")
	if groupID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: registry.MsgGroupIDRequired})
		return
	}

	group, err := h.registry.ApplyDiscount(c.Request.Context(), groupID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ApplyDiscountResponse{
		GroupID:            group.ID,
		Status:             string(group.Status),
		DiscountPercentage: group.DiscountPercentage,
	})
}

// RegisterRoutes registers group-buy routes
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/createGroup", h.Create)
	rg.GET("/getGroup", h.Get)
	rg.POST("/joinGroup", h.Join)
	rg.POST("/applyDiscount", h.ApplyDiscount)
}

func respondError(c *gin.Context, err error) {
	var verr *registry.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: verr.Message})
	case errors.Is(err, registry.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Group not found"})
	case errors.Is(err, registry.ErrExpired):
		c.JSON(http.StatusGone, ErrorResponse{Error: "Group expired"})
	case errors.Is(err, registry.ErrAlreadyFull):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Group is already full"})
	case errors.Is(err, registry.ErrNotFull):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Group is not full"})
	default:
		c.Error(err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}
}

// createBindError maps a binding failure to the createGroup error message.
// Missing fields and an empty body are reported alike.
func createBindError(err error) string {
	var (
		verrs  validator.ValidationErrors
		numErr *NumberError
	)
	switch {
	case errors.Is(err, io.EOF), errors.As(err, &verrs):
		return registry.MsgMissingFields
	case errors.As(err, &numErr):
		return registry.MsgInvalidNumbers
	default:
		return registry.MsgInvalidBody
	}
}

func joinBindError(err error) string {
	var verrs validator.ValidationErrors
	if errors.Is(err, io.EOF) || errors.As(err, &verrs) {
		return registry.MsgUserIDRequired
	}
	return registry.MsgInvalidBody
}
