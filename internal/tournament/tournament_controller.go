package tournament

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/athleteverse/api/config"
	"github.com/athleteverse/api/internal/middleware"
	"github.com/athleteverse/api/pkg/responses"
	"github.com/athleteverse/api/pkg/validator"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// TournamentController handles API requests for the tournament catalog.
type TournamentController struct {
	repo   TournamentRepository
	config *config.Config
}

// NewTournamentController creates a new TournamentController.
func NewTournamentController(repo TournamentRepository, cfg *config.Config) *TournamentController {
	return &TournamentController{
		repo:   repo,
		config: cfg,
	}
}

// @Summary      Create a tournament
// @Description  Creates an eSports tournament. Rules input may be free text, a keyed object, or a structured list; it is normalized to an ordered title/description sequence before storage. The organizer is not added to the participant list.
// @Tags         Tournaments
// @Accept       json
// @Produce      json
// @Param        tournament body CreateTournamentRequest true "Tournament details"
// @Success      201 {object} responses.SuccessResponse{data=Tournament}
// @Failure      400 {object} responses.ErrorResponse
// @Failure      401 {object} responses.ErrorResponse
// @Failure      500 {object} responses.ErrorResponse
// @Router       /tournaments [post]
func (tc *TournamentController) CreateTournament(c *gin.Context) {
	var req CreateTournamentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Validation failed: "+validator.ErrorMessage(err))
		return
	}

	t := Tournament{
		Title:           req.Title,
		Game:            req.Game,
		GameID:          req.GameID,
		Format:          req.Format,
		StartDateTime:   req.StartDateTime,
		EndDateTime:     req.EndDateTime,
		Location:        req.Location,
		MaxParticipants: req.MaxParticipants,
		EntryFee:        req.EntryFee,
		PrizePool:       req.PrizePool,
		Schedule:        req.Schedule,
		Image:           req.Image,
		IsAnonymous:     req.IsAnonymous,
		Rules:           RuleList{},
	}
	if req.RegistrationOpen != nil {
		t.RegistrationOpen = *req.RegistrationOpen
	} else {
		t.RegistrationOpen = true
	}
	if req.Rules.Set {
		t.Rules = req.Rules.Rules
	}

	if !req.IsAnonymous {
		userID, err := middleware.GetUserIDFromContext(c)
		if err != nil {
			responses.Unauthorized(c, "Authentication required")
			return
		}
		t.OrganizerID = &userID
	}

	if err := tc.repo.CreateTournament(&t); err != nil {
		responses.InternalServerError(c, "Failed to create tournament. Please try again later.")
		return
	}

	responses.SendSuccess(c, http.StatusCreated, "Tournament created successfully", t)
}

// @Summary      List tournaments
// @Description  Lists tournaments ascending by start time.
// @Tags         Tournaments
// @Produce      json
// @Param        limit            query int    false "Max items" default(10)
// @Param        skip             query int    false "Items to skip" default(0)
// @Param        game             query string false "Filter by game"
// @Param        format           query string false "Filter by format"
// @Param        registrationOpen query bool   false "Filter by open registration"
// @Success      200 {object} responses.PaginatedResponse{data=[]Tournament}
// @Failure      500 {object} responses.ErrorResponse
// @Router       /tournaments [get]
func (tc *TournamentController) GetAllTournaments(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))

	filter := ListFilter{
		Game:   c.Query("game"),
		Format: c.Query("format"),
	}
	if ro := c.Query("registrationOpen"); ro != "" {
		if val, err := strconv.ParseBool(ro); err == nil {
			filter.RegistrationOpen = &val
		}
	}

	tournaments, total, err := tc.repo.GetAllTournaments(limit, skip, filter)
	if err != nil {
		responses.InternalServerError(c, "")
		return
	}

	page := 1
	if limit > 0 {
		page = skip/limit + 1
	}
	responses.SendPaginated(c, http.StatusOK, "", tournaments, total, page, limit)
}

// @Summary      Get tournament by ID
// @Tags         Tournaments
// @Produce      json
// @Param        id path uint true "Tournament ID"
// @Success      200 {object} responses.SuccessResponse{data=Tournament}
// @Failure      400 {object} responses.ErrorResponse
// @Failure      404 {object} responses.ErrorResponse
// @Router       /tournaments/{id} [get]
func (tc *TournamentController) GetTournamentByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid tournament ID")
		return
	}

	t, err := tc.repo.GetTournamentByID(uint(id))
	if err != nil {
		responses.InternalServerError(c, "")
		return
	}
	if t == nil {
		responses.NotFound(c, "Tournament")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "", t)
}

// @Summary      Update a tournament
// @Description  Partial update. Absent rules are preserved; explicit null resets them to an empty list; any other shape is re-normalized. Participants cannot be changed here.
// @Tags         Tournaments
// @Accept       json
// @Produce      json
// @Param        id         path uint                    true "Tournament ID"
// @Param        tournament body UpdateTournamentRequest true "Fields to update"
// @Success      200 {object} responses.SuccessResponse{data=Tournament}
// @Failure      400 {object} responses.ErrorResponse
// @Failure      404 {object} responses.ErrorResponse
// @Security     ApiKeyAuth
// @Router       /tournaments/{id} [patch]
func (tc *TournamentController) UpdateTournament(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid tournament ID")
		return
	}

	var req UpdateTournamentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Validation failed: "+validator.ErrorMessage(err))
		return
	}

	t, err := tc.repo.GetTournamentByID(uint(id))
	if err != nil {
		responses.InternalServerError(c, "")
		return
	}
	if t == nil {
		responses.NotFound(c, "Tournament")
		return
	}

	if req.Title != nil {
		t.Title = *req.Title
	}
	if req.Game != nil {
		t.Game = *req.Game
	}
	if req.GameID != nil {
		t.GameID = *req.GameID
	}
	if req.Format != nil {
		t.Format = *req.Format
	}
	if req.StartDateTime != nil {
		t.StartDateTime = *req.StartDateTime
	}
	if req.EndDateTime != nil {
		t.EndDateTime = req.EndDateTime
	}
	if req.Location != nil {
		t.Location = *req.Location
	}
	if req.MaxParticipants != nil {
		t.MaxParticipants = *req.MaxParticipants
	}
	if req.RegistrationOpen != nil {
		t.RegistrationOpen = *req.RegistrationOpen
	}
	if req.EntryFee != nil {
		t.EntryFee = *req.EntryFee
	}
	if req.PrizePool != nil {
		t.PrizePool = *req.PrizePool
	}
	if req.Rules.Set {
		t.Rules = req.Rules.Rules
	}
	if req.Schedule != nil {
		t.Schedule = *req.Schedule
	}
	if req.Image != nil {
		t.Image = *req.Image
	}

	if err := tc.repo.UpdateTournament(t); err != nil {
		responses.InternalServerError(c, "Failed to update tournament. Please try again later.")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Tournament updated successfully", t)
}

// @Summary      Delete a tournament
// @Tags         Tournaments
// @Produce      json
// @Param        id path uint true "Tournament ID"
// @Success      200 {object} responses.SuccessResponse
// @Failure      400 {object} responses.ErrorResponse
// @Failure      404 {object} responses.ErrorResponse
// @Security     ApiKeyAuth
// @Router       /tournaments/{id} [delete]
func (tc *TournamentController) DeleteTournament(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid tournament ID")
		return
	}

	if err := tc.repo.DeleteTournament(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			responses.NotFound(c, "Tournament")
			return
		}
		responses.InternalServerError(c, "Failed to delete tournament. Please try again later.")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Tournament deleted successfully", nil)
}
