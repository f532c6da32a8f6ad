package connections

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/hamzarauf/linkora/internal/features/auth"
	"github.com/hamzarauf/linkora/internal/pkg/pagination"
	"github.com/hamzarauf/linkora/internal/pkg/response"
)

type Handler struct {
	repo     *Repository
	authRepo *auth.Repository
}

func NewHandler(repo *Repository, authRepo *auth.Repository) *Handler {
	return &Handler{
		repo:     repo,
		authRepo: authRepo,
	}
}

// Connect godoc
// @Summary Send a connection request
// @Description Create a pending connection request to another user. Idempotent.
// @Tags connections
// @Produce json
// @Security BearerAuth
// @Param id path string true "Target user ID"
// @Success 200 {object} response.SuccessResponse{data=ConnectActionResponse}
// @Failure 400 {object} response.ErrorResponse
// @Router /users/{id}/connect [post]
func (h *Handler) Connect(c *gin.Context) {
	user, ok := auth.RequesterFrom(c)
	if !ok {
		response.Unauthorized(c, "Authentication required", "AUTH_REQUIRED")
		return
	}

	targetID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid user id", "INVALID_USER_ID")
		return
	}

	if targetID == user.ID {
		response.BadRequest(c, "Cannot connect to yourself", "SELF_CONNECT")
		return
	}

	target, err := h.authRepo.GetUserByObjectID(c.Request.Context(), targetID)
	if err != nil {
		response.InternalServerError(c, "Failed to look up user", "DATABASE_ERROR")
		return
	}
	if target == nil {
		response.NotFound(c, "User not found", "USER_NOT_FOUND")
		return
	}

	conn, err := h.repo.CreateRequest(c.Request.Context(), user.ID, targetID)
	if err != nil {
		response.InternalServerError(c, "Failed to create request", "DATABASE_ERROR")
		return
	}

	response.Success(c, ConnectActionResponse{
		ConnectionID: conn.ID,
		Status:       conn.Status,
	})
}

// Accept godoc
// @Summary Accept a connection request
// @Tags connections
// @Produce json
// @Security BearerAuth
// @Param id path string true "Connection request ID"
// @Success 200 {object} response.SuccessResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /connections/requests/{id}/accept [post]
func (h *Handler) Accept(c *gin.Context) {
	user, ok := auth.RequesterFrom(c)
	if !ok {
		response.Unauthorized(c, "Authentication required", "AUTH_REQUIRED")
		return
	}

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid request id", "INVALID_REQUEST_ID")
		return
	}

	accepted, err := h.repo.Accept(c.Request.Context(), id, user.ID)
	if err != nil {
		response.InternalServerError(c, "Failed to accept request", "DATABASE_ERROR")
		return
	}
	if !accepted {
		response.NotFound(c, "Pending request not found", "REQUEST_NOT_FOUND")
		return
	}

	response.Success(c, gin.H{"status": StatusAccepted})
}

// Decline godoc
// @Summary Decline a connection request
// @Tags connections
// @Produce json
// @Security BearerAuth
// @Param id path string true "Connection request ID"
// @Success 200 {object} response.SuccessResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /connections/requests/{id}/decline [post]
func (h *Handler) Decline(c *gin.Context) {
	user, ok := auth.RequesterFrom(c)
	if !ok {
		response.Unauthorized(c, "Authentication required", "AUTH_REQUIRED")
		return
	}

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid request id", "INVALID_REQUEST_ID")
		return
	}

	declined, err := h.repo.Decline(c.Request.Context(), id, user.ID)
	if err != nil {
		response.InternalServerError(c, "Failed to decline request", "DATABASE_ERROR")
		return
	}
	if !declined {
		response.NotFound(c, "Pending request not found", "REQUEST_NOT_FOUND")
		return
	}

	response.Success(c, gin.H{"status": "declined"})
}

// Remove godoc
// @Summary Remove a connection
// @Description Remove an existing connection or cancel an outgoing request. Idempotent.
// @Tags connections
// @Produce json
// @Security BearerAuth
// @Param userId path string true "Other user ID"
// @Success 200 {object} response.SuccessResponse
// @Router /connections/{userId} [delete]
func (h *Handler) Remove(c *gin.Context) {
	user, ok := auth.RequesterFrom(c)
	if !ok {
		response.Unauthorized(c, "Authentication required", "AUTH_REQUIRED")
		return
	}

	otherID, err := primitive.ObjectIDFromHex(c.Param("userId"))
	if err != nil {
		response.BadRequest(c, "Invalid user id", "INVALID_USER_ID")
		return
	}

	if err := h.repo.RemoveEdge(c.Request.Context(), user.ID, otherID); err != nil {
		response.InternalServerError(c, "Failed to remove connection", "DATABASE_ERROR")
		return
	}

	response.Success(c, gin.H{"removed": true})
}

// List godoc
// @Summary List accepted connections
// @Tags connections
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Limit (default 20, max 50)"
// @Success 200 {object} response.PaginatedResponse{data=[]ConnectionUserResponse}
// @Router /connections [get]
func (h *Handler) List(c *gin.Context) {
	h.list(c, false)
}

// ListRequests godoc
// @Summary List incoming pending requests
// @Tags connections
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Limit (default 20, max 50)"
// @Success 200 {object} response.PaginatedResponse{data=[]ConnectionUserResponse}
// @Router /connections/requests [get]
func (h *Handler) ListRequests(c *gin.Context) {
	h.list(c, true)
}

func (h *Handler) list(c *gin.Context, pendingOnly bool) {
	user, ok := auth.RequesterFrom(c)
	if !ok {
		response.Unauthorized(c, "Authentication required", "AUTH_REQUIRED")
		return
	}

	var query ConnectionListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "Invalid query parameters", "INVALID_QUERY")
		return
	}

	page := pagination.New(query.Page, query.Limit, 0)

	var (
		conns []Connection
		total int64
		err   error
	)
	if pendingOnly {
		conns, total, err = h.repo.ListIncomingPending(c.Request.Context(), user.ID, page.GetOffset(), page.GetLimit())
	} else {
		conns, total, err = h.repo.ListAccepted(c.Request.Context(), user.ID, page.GetOffset(), page.GetLimit())
	}
	if err != nil {
		response.InternalServerError(c, "Failed to load connections", "DATABASE_ERROR")
		return
	}

	items := make([]ConnectionUserResponse, 0, len(conns))
	for _, conn := range conns {
		otherID := conn.RequesterID
		if otherID == user.ID {
			otherID = conn.RecipientID
		}

		other, err := h.authRepo.GetUserByObjectID(c.Request.Context(), otherID)
		if err != nil || other == nil {
			continue
		}

		items = append(items, ConnectionUserResponse{
			ConnectionID: conn.ID,
			UserID:       other.ID,
			Name:         other.Name,
			Headline:     other.Headline,
			Location:     other.Location,
			Industry:     other.Industry,
			Status:       conn.Status,
			CreatedAt:    conn.CreatedAt,
		})
	}

	response.Paginated(c, items, total, page.GetLimit(), page.Page)
}
