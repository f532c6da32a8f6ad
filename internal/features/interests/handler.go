package interests

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hamzarauf/linkora/internal/features/auth"
	"github.com/hamzarauf/linkora/internal/pkg/response"
	"github.com/hamzarauf/linkora/internal/pkg/validator"
)

type Handler struct {
	repo    *Repository
	service *Service
}

func NewHandler(repo *Repository, service *Service) *Handler {
	return &Handler{
		repo:    repo,
		service: service,
	}
}

// SaveInterests godoc
// @Summary Save user interests
// @Description Save interest tags for the authenticated user
// @Tags interests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SaveInterestsRequest true "Interest tags"
// @Success 200 {object} response.SuccessResponse
// @Router /users/me/interests [post]
func (h *Handler) SaveInterests(c *gin.Context) {
	var req SaveInterestsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request format", "INVALID_JSON")
		return
	}

	user, ok := auth.RequesterFrom(c)
	if !ok {
		response.Unauthorized(c, "Authentication required", "AUTH_REQUIRED")
		return
	}

	tags := validator.NormalizeTags(req.Tags)
	if len(tags) == 0 {
		response.BadRequest(c, "At least one valid tag is required", "INVALID_TAGS")
		return
	}

	if err := h.repo.UpdateUserInterests(c.Request.Context(), user.ID, tags); err != nil {
		response.InternalServerError(c, "Failed to save interests", "DATABASE_ERROR")
		return
	}

	response.Success(c, gin.H{"interests": tags})
}

// GetSuggestedInterests godoc
// @Summary Get suggested interests
// @Description Get interest suggestions, personalized when authenticated
// @Tags interests
// @Produce json
// @Param limit query int false "Max suggestions (default 10, max 20)"
// @Success 200 {object} response.SuccessResponse{data=SuggestedInterestsResponse}
// @Router /interests/suggested [get]
func (h *Handler) GetSuggestedInterests(c *gin.Context) {
	limit := 10
	if limitStr := c.Query("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 && parsed <= 20 {
			limit = parsed
		}
	}

	var resp *SuggestedInterestsResponse
	var err error

	if user, ok := auth.RequesterFrom(c); ok {
		resp, err = h.service.GetSuggestedInterests(c.Request.Context(), &user.ID, user.Interests, limit)
	} else {
		resp, err = h.service.GetSuggestedInterests(c.Request.Context(), nil, nil, limit)
	}

	if err != nil {
		response.InternalServerError(c, "Failed to fetch suggestions", "DATABASE_ERROR")
		return
	}

	response.Success(c, resp)
}
