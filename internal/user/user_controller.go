package user

import (
	"net/http"
	"strconv"

	"github.com/athleteverse/api/config"
	"github.com/athleteverse/api/internal/middleware"
	"github.com/athleteverse/api/pkg/responses"
	"github.com/athleteverse/api/pkg/validator"
	"github.com/gin-gonic/gin"
)

// UserController handles API requests for the user directory.
type UserController struct {
	repo   UserRepository
	config *config.Config
}

// NewUserController creates a new UserController.
func NewUserController(repo UserRepository, cfg *config.Config) *UserController {
	return &UserController{
		repo:   repo,
		config: cfg,
	}
}

// @Summary      List users
// @Description  Get a paginated list of user profiles. Password hashes are never included.
// @Tags         Users
// @Produce      json
// @Param        limit query int false "Max items" default(10)
// @Param        skip  query int false "Items to skip" default(0)
// @Success      200 {object} responses.SuccessResponse{data=[]Response}
// @Failure      500 {object} responses.ErrorResponse
// @Router       /users [get]
func (uc *UserController) ListUsers(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))

	users, total, err := uc.repo.GetUsers(limit, skip)
	if err != nil {
		responses.InternalServerError(c, "")
		return
	}

	out := make([]Response, 0, len(users))
	for i := range users {
		out = append(out, FilterUserRecord(&users[i]))
	}

	page := 1
	if limit > 0 {
		page = skip/limit + 1
	}
	responses.SendPaginated(c, http.StatusOK, "", out, total, page, limit)
}

// @Summary      Get user by ID
// @Tags         Users
// @Produce      json
// @Param        id path uint true "User ID"
// @Success      200 {object} responses.SuccessResponse{data=Response}
// @Failure      400 {object} responses.ErrorResponse
// @Failure      404 {object} responses.ErrorResponse
// @Router       /users/{id} [get]
func (uc *UserController) GetUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid user ID")
		return
	}

	u, err := uc.repo.GetUserByID(uint(id))
	if err != nil {
		responses.InternalServerError(c, "")
		return
	}
	if u == nil {
		responses.NotFound(c, "User")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "", FilterUserRecord(u))
}

// @Summary      Update own profile
// @Description  Partial profile update. Email and password cannot be changed through this endpoint.
// @Tags         Users
// @Accept       json
// @Produce      json
// @Param        profile body UpdateProfileRequest true "Fields to update"
// @Success      200 {object} responses.SuccessResponse{data=Response}
// @Failure      400 {object} responses.ErrorResponse
// @Failure      401 {object} responses.ErrorResponse
// @Failure      404 {object} responses.ErrorResponse
// @Security     ApiKeyAuth
// @Router       /users/me [patch]
func (uc *UserController) UpdateProfile(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Validation failed: "+validator.ErrorMessage(err))
		return
	}

	u, err := uc.repo.GetUserByID(userID)
	if err != nil {
		responses.InternalServerError(c, "")
		return
	}
	if u == nil {
		responses.NotFound(c, "User")
		return
	}

	if req.Name != nil {
		u.Name = *req.Name
	}
	if req.Location != nil {
		u.Location = *req.Location
	}
	if req.Bio != nil {
		u.Bio = *req.Bio
	}
	if req.Avatar != nil {
		u.Avatar = *req.Avatar
	}
	if req.Sports != nil {
		u.Sports = *req.Sports
	}
	if req.SkillLevels != nil {
		u.SkillLevels = *req.SkillLevels
	}

	if err := uc.repo.UpdateUser(u); err != nil {
		responses.InternalServerError(c, "Failed to update user. Please try again later.")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "User updated successfully", FilterUserRecord(u))
}
