package auth

import (
	"log"
	"net/http"
	"strings"

	"github.com/athleteverse/api/config"
	"github.com/athleteverse/api/internal/middleware"
	"github.com/athleteverse/api/internal/user"
	"github.com/athleteverse/api/pkg/responses"
	"github.com/athleteverse/api/pkg/token"
	"github.com/athleteverse/api/utils"
	"github.com/gin-gonic/gin"
)

const defaultAvatar = "/placeholder.svg?height=200&width=200"

type AuthController struct {
	repo   user.UserRepository
	config *config.Config
}

func NewAuthController(repo user.UserRepository, cfg *config.Config) *AuthController {
	return &AuthController{
		repo:   repo,
		config: cfg,
	}
}

// issueSession signs a session token for the identity and sets the
// auth-token cookie: HTTP-only, path "/", secure outside development,
// max-age matching the token lifetime.
func (ac *AuthController) issueSession(c *gin.Context, u *user.User) error {
	tok, err := token.GenerateJWT(u.ID, u.Email, u.Name, ac.config.JWT.Secret, ac.config.JWT.ExpiryDays)
	if err != nil {
		return err
	}
	secure := ac.config.App.Env != "development"
	c.SetCookie(token.CookieName, tok, ac.config.JWT.ExpiryDays*24*3600, "/", "", secure, true)
	return nil
}

// @Summary      Register a new user
// @Description  Create a new user with name, email and password. Issues a session cookie.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        user  body  RegisterRequest  true  "User registration details"
// @Success      201   {object} responses.SuccessResponse{data=AuthResponse}
// @Failure      400   {object} responses.ErrorResponse "Validation error"
// @Failure      409   {object} responses.ErrorResponse "Email already registered"
// @Failure      500   {object} responses.ErrorResponse
// @Router       /auth/register [post]
func (ac *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Invalid input: "+err.Error())
		return
	}

	existing, err := ac.repo.GetUserByEmail(req.Email)
	if err != nil {
		responses.InternalServerError(c, "")
		return
	}
	if existing != nil {
		responses.SendError(c, http.StatusConflict, ErrDuplicateEmail.Error())
		return
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		responses.InternalServerError(c, "")
		return
	}

	newUser := &user.User{
		Name:     req.Name,
		Email:    strings.ToLower(req.Email),
		Password: hashedPassword,
		Location: req.Location,
		Sports:   req.Sports,
		Avatar:   defaultAvatar,
	}

	if err := ac.repo.CreateUser(newUser); err != nil {
		log.Printf("CreateUser failed: %v", err)
		responses.InternalServerError(c, "Failed to create user. Please try again later.")
		return
	}

	if err := ac.issueSession(c, newUser); err != nil {
		responses.InternalServerError(c, "")
		return
	}

	responses.SendSuccess(c, http.StatusCreated, "User created successfully", AuthResponse{
		User: user.FilterUserRecord(newUser),
	})
}

// @Summary      Login user
// @Description  Authenticate with email and password. Issues a session cookie.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        credentials  body  LoginRequest  true  "Login credentials"
// @Success      200   {object} responses.SuccessResponse{data=AuthResponse}
// @Failure      400   {object} responses.ErrorResponse "Invalid input"
// @Failure      401   {object} responses.ErrorResponse "Invalid credentials"
// @Failure      500   {object} responses.ErrorResponse
// @Router       /auth/login [post]
func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Email and password are required")
		return
	}

	foundUser, err := ac.repo.GetUserByEmail(req.Email)
	if err != nil {
		responses.InternalServerError(c, "")
		return
	}
	// Unknown email and wrong password produce the same response so callers
	// cannot enumerate accounts. The distinction lives in the log only.
	if foundUser == nil {
		log.Printf("login failed: no user for email %s", strings.ToLower(req.Email))
		responses.Unauthorized(c, ErrInvalidCredentials.Error())
		return
	}
	if !utils.CheckPassword(foundUser.Password, req.Password) {
		log.Printf("login failed: wrong password for user %d", foundUser.ID)
		responses.Unauthorized(c, ErrInvalidCredentials.Error())
		return
	}

	if err := ac.issueSession(c, foundUser); err != nil {
		responses.InternalServerError(c, "")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Login successful", AuthResponse{
		User: user.FilterUserRecord(foundUser),
	})
}

// @Summary      Logout user
// @Description  Clears the session cookie. The token itself stays valid until natural expiry; there is no server-side blocklist.
// @Tags         Auth
// @Produce      json
// @Success      200   {object} responses.SuccessResponse
// @Router       /auth/logout [post]
func (ac *AuthController) Logout(c *gin.Context) {
	secure := ac.config.App.Env != "development"
	c.SetCookie(token.CookieName, "", -1, "/", "", secure, true)
	responses.SendSuccess(c, http.StatusOK, "Logged out successfully", nil)
}

// @Summary      Current user
// @Description  Resolves the session token to the full user record.
// @Tags         Auth
// @Produce      json
// @Success      200   {object} responses.SuccessResponse{data=user.Response}
// @Failure      401   {object} responses.ErrorResponse
// @Failure      404   {object} responses.ErrorResponse
// @Security     ApiKeyAuth
// @Router       /auth/me [get]
func (ac *AuthController) Me(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}

	u, err := ac.repo.GetUserByID(userID)
	if err != nil {
		responses.InternalServerError(c, "")
		return
	}
	if u == nil {
		responses.NotFound(c, "User")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "", user.FilterUserRecord(u))
}
