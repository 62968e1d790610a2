package game

import (
	"net/http"
	"strconv"

	"github.com/athleteverse/api/config"
	"github.com/athleteverse/api/pkg/responses"
	"github.com/athleteverse/api/pkg/validator"
	"github.com/gin-gonic/gin"
)

// GameController handles API requests for the game catalog.
type GameController struct {
	repo   GameRepository
	config *config.Config
}

// NewGameController creates a new GameController.
func NewGameController(repo GameRepository, cfg *config.Config) *GameController {
	return &GameController{
		repo:   repo,
		config: cfg,
	}
}

// @Summary      List games
// @Description  Lists the game catalog alphabetically, or by popularity when filtered by category.
// @Tags         Games
// @Produce      json
// @Param        limit    query int    false "Max items" default(10)
// @Param        skip     query int    false "Items to skip" default(0)
// @Param        category query string false "Filter by category"
// @Success      200 {object} responses.PaginatedResponse{data=[]Game}
// @Failure      500 {object} responses.ErrorResponse
// @Router       /games [get]
func (gc *GameController) GetAllGames(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	category := c.Query("category")

	var games []Game
	var total int64
	var err error
	if category != "" {
		games, total, err = gc.repo.GetGamesByCategory(category, limit, skip)
	} else {
		games, total, err = gc.repo.GetAllGames(limit, skip)
	}
	if err != nil {
		responses.InternalServerError(c, "")
		return
	}

	page := 1
	if limit > 0 {
		page = skip/limit + 1
	}
	responses.SendPaginated(c, http.StatusOK, "", games, total, page, limit)
}

// @Summary      Get game by ID
// @Tags         Games
// @Produce      json
// @Param        id path uint true "Game ID"
// @Success      200 {object} responses.SuccessResponse{data=Game}
// @Failure      400 {object} responses.ErrorResponse
// @Failure      404 {object} responses.ErrorResponse
// @Router       /games/{id} [get]
func (gc *GameController) GetGameByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid game ID")
		return
	}

	g, err := gc.repo.GetGameByID(uint(id))
	if err != nil {
		responses.InternalServerError(c, "")
		return
	}
	if g == nil {
		responses.NotFound(c, "Game")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "", g)
}

// @Summary      Add a game to the catalog
// @Tags         Games
// @Accept       json
// @Produce      json
// @Param        game body CreateGameRequest true "Game details"
// @Success      201 {object} responses.SuccessResponse{data=Game}
// @Failure      400 {object} responses.ErrorResponse
// @Failure      500 {object} responses.ErrorResponse
// @Security     ApiKeyAuth
// @Router       /games [post]
func (gc *GameController) CreateGame(c *gin.Context) {
	var req CreateGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Validation failed: "+validator.ErrorMessage(err))
		return
	}

	g := Game{
		Title:         req.Title,
		Category:      req.Category,
		Description:   req.Description,
		Image:         req.Image,
		ActivePlayers: req.ActivePlayers,
		Platforms:     req.Platforms,
		Publisher:     req.Publisher,
		ReleaseYear:   req.ReleaseYear,
	}

	if err := gc.repo.CreateGame(&g); err != nil {
		responses.InternalServerError(c, "Failed to create game. Please try again later.")
		return
	}

	responses.SendSuccess(c, http.StatusCreated, "Game created successfully", g)
}
