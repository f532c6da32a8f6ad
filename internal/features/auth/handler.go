package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/hamzarauf/linkora/internal/config"
	"github.com/hamzarauf/linkora/internal/pkg/jwt"
	"github.com/hamzarauf/linkora/internal/pkg/response"
	apperrors "github.com/hamzarauf/linkora/pkg/errors"
)

type Handler struct {
	repo *Repository
	cfg  *config.Config
}

func NewHandler(repo *Repository, cfg *config.Config) *Handler {
	return &Handler{
		repo: repo,
		cfg:  cfg,
	}
}

// Register godoc
// @Summary Register a new user
// @Description Register a new user with email, password, and name
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "User registration data"
// @Success 201 {object} response.SuccessResponse{data=AuthResponse}
// @Failure 400 {object} response.ErrorResponse
// @Router /auth/register [post]
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request format", "INVALID_JSON")
		return
	}

	if err := ValidateRegister(&req); err != nil {
		response.BadRequest(c, err.Error(), "VALIDATION_FAILED")
		return
	}

	existing, err := h.repo.GetUserByEmail(c.Request.Context(), req.Email)
	if err != nil {
		response.InternalServerError(c, "Failed to check account", "DATABASE_ERROR")
		return
	}
	if existing != nil {
		response.Conflict(c, "Email already registered", "EMAIL_TAKEN")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		response.InternalServerError(c, "Failed to process password", "INTERNAL_ERROR")
		return
	}

	user := &User{
		Email:    req.Email,
		Password: string(hashedPassword),
		Name:     req.Name,
	}

	if err := h.repo.CreateUser(c.Request.Context(), user); err != nil {
		// Covers the race between the email lookup above and the insert.
		if errors.Is(err, apperrors.ErrDuplicate) {
			response.Conflict(c, "Email already registered", "EMAIL_TAKEN")
			return
		}
		response.InternalServerError(c, "Failed to create account", "DATABASE_ERROR")
		return
	}

	token, err := jwt.GenerateToken(user.ID.Hex(), user.Email, jwt.DefaultConfig(h.cfg.JWTSecret))
	if err != nil {
		response.InternalServerError(c, "Failed to generate token", "INTERNAL_ERROR")
		return
	}

	response.Created(c, AuthResponse{User: user, AccessToken: token})
}

// Login godoc
// @Summary Login user
// @Description Authenticate user with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "User login credentials"
// @Success 200 {object} response.SuccessResponse{data=AuthResponse}
// @Failure 401 {object} response.ErrorResponse
// @Router /auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request format", "INVALID_JSON")
		return
	}

	if err := ValidateLogin(&req); err != nil {
		response.BadRequest(c, err.Error(), "VALIDATION_FAILED")
		return
	}

	user, err := h.repo.GetUserByEmail(c.Request.Context(), req.Email)
	if err != nil {
		response.InternalServerError(c, "Failed to look up account", "DATABASE_ERROR")
		return
	}
	if user == nil {
		response.Unauthorized(c, "Invalid email or password", "INVALID_CREDENTIALS")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		response.Unauthorized(c, "Invalid email or password", "INVALID_CREDENTIALS")
		return
	}

	_ = h.repo.TouchLastActive(c.Request.Context(), user.ID)

	token, err := jwt.GenerateToken(user.ID.Hex(), user.Email, jwt.DefaultConfig(h.cfg.JWTSecret))
	if err != nil {
		response.InternalServerError(c, "Failed to generate token", "INTERNAL_ERROR")
		return
	}

	response.Success(c, AuthResponse{User: user, AccessToken: token})
}

// GoogleLogin godoc
// @Summary Sign in with Google
// @Description Authenticate with a Google ID token, creating the account on first login
// @Tags auth
// @Accept json
// @Produce json
// @Param request body GoogleAuthRequest true "Google ID token"
// @Success 200 {object} response.SuccessResponse{data=AuthResponse}
// @Failure 401 {object} response.ErrorResponse
// @Router /auth/google [post]
func (h *Handler) GoogleLogin(c *gin.Context) {
	var req GoogleAuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request format", "INVALID_JSON")
		return
	}

	googleUser, err := VerifyGoogleToken(c.Request.Context(), req.GoogleIDToken, h.cfg.GoogleClientID)
	if err != nil {
		response.Unauthorized(c, "Invalid Google token", "INVALID_GOOGLE_TOKEN")
		return
	}

	user, err := h.repo.GetUserByGoogleID(c.Request.Context(), googleUser.UID)
	if err != nil {
		response.InternalServerError(c, "Failed to look up account", "DATABASE_ERROR")
		return
	}

	if user == nil {
		// Link by email when the account was created with a password first
		user, err = h.repo.GetUserByEmail(c.Request.Context(), googleUser.Email)
		if err != nil {
			response.InternalServerError(c, "Failed to look up account", "DATABASE_ERROR")
			return
		}
	}

	if user == nil {
		user = &User{
			GoogleID: googleUser.UID,
			Email:    googleUser.Email,
			Name:     googleUser.Name,
		}
		if err := h.repo.CreateUser(c.Request.Context(), user); err != nil {
			if errors.Is(err, apperrors.ErrDuplicate) {
				response.Conflict(c, "Account already exists", "EMAIL_TAKEN")
				return
			}
			response.InternalServerError(c, "Failed to create account", "DATABASE_ERROR")
			return
		}
	} else {
		_ = h.repo.TouchLastActive(c.Request.Context(), user.ID)
	}

	token, err := jwt.GenerateToken(user.ID.Hex(), user.Email, jwt.DefaultConfig(h.cfg.JWTSecret))
	if err != nil {
		response.InternalServerError(c, "Failed to generate token", "INTERNAL_ERROR")
		return
	}

	response.Success(c, AuthResponse{User: user, AccessToken: token})
}

// GetMe godoc
// @Summary Get own profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.SuccessResponse{data=User}
// @Router /users/me [get]
func (h *Handler) GetMe(c *gin.Context) {
	user, ok := RequesterFrom(c)
	if !ok {
		response.Unauthorized(c, "Authentication required", "AUTH_REQUIRED")
		return
	}
	response.Success(c, user)
}

// UpdateProfile godoc
// @Summary Update own profile
// @Description Partially update professional profile fields
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdateProfileRequest true "Profile fields"
// @Success 200 {object} response.SuccessResponse{data=User}
// @Failure 400 {object} response.ErrorResponse
// @Router /users/me [patch]
func (h *Handler) UpdateProfile(c *gin.Context) {
	user, ok := RequesterFrom(c)
	if !ok {
		response.Unauthorized(c, "Authentication required", "AUTH_REQUIRED")
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request format", "INVALID_JSON")
		return
	}

	if err := ValidateProfileUpdate(&req); err != nil {
		response.BadRequest(c, err.Error(), "VALIDATION_FAILED")
		return
	}

	if err := h.repo.UpdateProfile(c.Request.Context(), user.ID, &req); err != nil {
		response.InternalServerError(c, "Failed to update profile", "DATABASE_ERROR")
		return
	}

	updated, err := h.repo.GetUserByObjectID(c.Request.Context(), user.ID)
	if err != nil || updated == nil {
		response.InternalServerError(c, "Failed to load profile", "DATABASE_ERROR")
		return
	}

	response.Success(c, updated)
}

// GetPublicProfile godoc
// @Summary Get public profile
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} response.SuccessResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /users/{id} [get]
func (h *Handler) GetPublicProfile(c *gin.Context) {
	oid, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid user id", "INVALID_USER_ID")
		return
	}

	user, err := h.repo.GetUserByObjectID(c.Request.Context(), oid)
	if err != nil {
		response.InternalServerError(c, "Failed to load profile", "DATABASE_ERROR")
		return
	}
	if user == nil {
		response.NotFound(c, "User not found", "USER_NOT_FOUND")
		return
	}

	response.Success(c, user.ToPublicUser())
}
