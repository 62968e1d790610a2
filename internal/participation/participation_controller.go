package participation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/athleteverse/api/internal/middleware"
	"github.com/athleteverse/api/pkg/responses"
	"github.com/gin-gonic/gin"
)

// ParticipationController exposes the join/leave/history endpoints.
type ParticipationController struct {
	ledger *Ledger
}

// NewParticipationController creates a new ParticipationController.
func NewParticipationController(ledger *Ledger) *ParticipationController {
	return &ParticipationController{ledger: ledger}
}

// sendLedgerError translates ledger failures into their fixed statuses with
// a catch-all for anything unclassified.
func sendLedgerError(c *gin.Context, err error, fullMessage string) {
	switch {
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrUserNotFound):
		responses.SendError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrFull):
		responses.BadRequest(c, fullMessage)
	case errors.Is(err, ErrOrganizerCannotLeave):
		responses.BadRequest(c, err.Error())
	default:
		responses.InternalServerError(c, "")
	}
}

// @Summary      Join an event
// @Description  Adds the caller to the event's participants. Joining twice is a no-op success. Fails when the event is at capacity.
// @Tags         Participation
// @Produce      json
// @Param        id path uint true "Event ID"
// @Success      200 {object} responses.SuccessResponse
// @Failure      400 {object} responses.ErrorResponse "Event is full"
// @Failure      401 {object} responses.ErrorResponse
// @Failure      404 {object} responses.ErrorResponse
// @Security     ApiKeyAuth
// @Router       /events/{id}/join [post]
func (pc *ParticipationController) JoinEvent(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "Authentication required")
		return
	}
	eventID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid event ID")
		return
	}

	if err := pc.ledger.JoinEvent(c.Request.Context(), uint(eventID), userID); err != nil {
		sendLedgerError(c, err, "Event is full")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Successfully joined event", nil)
}

// @Summary      Leave an event
// @Description  Removes the caller from the event's participants. The organizer cannot leave their own event. Leaving an event the caller never joined is a no-op success.
// @Tags         Participation
// @Produce      json
// @Param        id path uint true "Event ID"
// @Success      200 {object} responses.SuccessResponse
// @Failure      400 {object} responses.ErrorResponse "Organizer cannot leave"
// @Failure      401 {object} responses.ErrorResponse
// @Failure      404 {object} responses.ErrorResponse
// @Security     ApiKeyAuth
// @Router       /events/{id}/leave [post]
func (pc *ParticipationController) LeaveEvent(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "Authentication required")
		return
	}
	eventID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid event ID")
		return
	}

	if err := pc.ledger.LeaveEvent(c.Request.Context(), uint(eventID), userID); err != nil {
		sendLedgerError(c, err, "")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Successfully left event", nil)
}

// @Summary      Join a tournament
// @Tags         Participation
// @Produce      json
// @Param        id path uint true "Tournament ID"
// @Success      200 {object} responses.SuccessResponse
// @Failure      400 {object} responses.ErrorResponse "Tournament is full"
// @Failure      401 {object} responses.ErrorResponse
// @Failure      404 {object} responses.ErrorResponse
// @Security     ApiKeyAuth
// @Router       /tournaments/{id}/join [post]
func (pc *ParticipationController) JoinTournament(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "Authentication required")
		return
	}
	tournamentID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid tournament ID")
		return
	}

	if err := pc.ledger.JoinTournament(c.Request.Context(), uint(tournamentID), userID); err != nil {
		sendLedgerError(c, err, "Tournament is full")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Successfully joined tournament", nil)
}

// @Summary      Leave a tournament
// @Description  Removes the caller from the tournament's participants. Tournament organizers may leave their own tournament.
// @Tags         Participation
// @Produce      json
// @Param        id path uint true "Tournament ID"
// @Success      200 {object} responses.SuccessResponse
// @Failure      401 {object} responses.ErrorResponse
// @Failure      404 {object} responses.ErrorResponse
// @Security     ApiKeyAuth
// @Router       /tournaments/{id}/join [delete]
func (pc *ParticipationController) LeaveTournament(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "Authentication required")
		return
	}
	tournamentID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid tournament ID")
		return
	}

	if err := pc.ledger.LeaveTournament(c.Request.Context(), uint(tournamentID), userID); err != nil {
		sendLedgerError(c, err, "")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Successfully left tournament", nil)
}

// @Summary      User participation history
// @Description  Resolves the user's joined-id mirrors into full event and tournament records. Ids whose activity was deleted are dropped from the lists.
// @Tags         Participation
// @Produce      json
// @Param        id path uint true "User ID"
// @Success      200 {object} responses.SuccessResponse{data=History}
// @Failure      400 {object} responses.ErrorResponse
// @Failure      404 {object} responses.ErrorResponse
// @Router       /users/{id}/participation [get]
func (pc *ParticipationController) GetParticipationHistory(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid user ID")
		return
	}

	history, err := pc.ledger.History(c.Request.Context(), uint(userID))
	if err != nil {
		sendLedgerError(c, err, "")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", history)
}
