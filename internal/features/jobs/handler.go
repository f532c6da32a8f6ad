package jobs

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/hamzarauf/linkora/internal/features/auth"
	"github.com/hamzarauf/linkora/internal/pkg/pagination"
	"github.com/hamzarauf/linkora/internal/pkg/response"
	"github.com/hamzarauf/linkora/internal/pkg/validator"
)

type Handler struct {
	repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{repo: repo}
}

// Create godoc
// @Summary Post a job
// @Tags jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateJobRequest true "Job posting"
// @Success 201 {object} response.SuccessResponse{data=Job}
// @Failure 400 {object} response.ErrorResponse
// @Router /jobs [post]
func (h *Handler) Create(c *gin.Context) {
	user, ok := auth.RequesterFrom(c)
	if !ok {
		response.Unauthorized(c, "Authentication required", "AUTH_REQUIRED")
		return
	}

	var req CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request format", "INVALID_JSON")
		return
	}

	postedByType := PostedByUser
	if req.PostedByType != "" {
		postedByType = PostedByType(req.PostedByType)
		if !postedByType.Valid() {
			response.BadRequest(c, "postedByType must be one of: user, company", "INVALID_POSTED_BY_TYPE")
			return
		}
	}

	job := &Job{
		PostedByID:   user.ID,
		PostedByType: postedByType,
		Title:        req.Title,
		Company:      req.Company,
		Location:     req.Location,
		Description:  req.Description,
		Tags:         validator.NormalizeTags(req.Tags),
	}

	if err := h.repo.Create(c.Request.Context(), job); err != nil {
		response.InternalServerError(c, "Failed to create job", "DATABASE_ERROR")
		return
	}

	response.Created(c, job)
}

// List godoc
// @Summary List job postings
// @Tags jobs
// @Produce json
// @Param q query string false "Free-text filter"
// @Param location query string false "Location filter"
// @Param tag query string false "Tag filter"
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Limit (default 20, max 50)"
// @Success 200 {object} response.PaginatedResponse{data=[]Job}
// @Router /jobs [get]
func (h *Handler) List(c *gin.Context) {
	var query JobListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "Invalid query parameters", "INVALID_QUERY")
		return
	}

	page := pagination.New(query.Page, query.Limit, 0)

	result, total, err := h.repo.List(c.Request.Context(), &query, page.GetOffset(), page.GetLimit())
	if err != nil {
		response.InternalServerError(c, "Failed to load jobs", "DATABASE_ERROR")
		return
	}

	response.Paginated(c, result, total, page.GetLimit(), page.Page)
}

// Get godoc
// @Summary Get a job posting
// @Tags jobs
// @Produce json
// @Param id path string true "Job ID"
// @Success 200 {object} response.SuccessResponse{data=Job}
// @Failure 404 {object} response.ErrorResponse
// @Router /jobs/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid job id", "INVALID_JOB_ID")
		return
	}

	job, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		response.InternalServerError(c, "Failed to load job", "DATABASE_ERROR")
		return
	}
	if job == nil {
		response.NotFound(c, "Job not found", "JOB_NOT_FOUND")
		return
	}

	response.Success(c, job)
}
