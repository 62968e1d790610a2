package event

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/athleteverse/api/config"
	"github.com/athleteverse/api/internal/middleware"
	"github.com/athleteverse/api/pkg/responses"
	"github.com/athleteverse/api/pkg/validator"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// OrganizerJoiner registers the organizer as the first participant of a
// freshly created event. Satisfied by the participation ledger.
type OrganizerJoiner interface {
	JoinEvent(ctx context.Context, eventID, userID uint) error
}

// EventController handles API requests for the event catalog.
type EventController struct {
	repo   EventRepository
	joiner OrganizerJoiner
	config *config.Config
}

// NewEventController creates a new EventController.
func NewEventController(repo EventRepository, joiner OrganizerJoiner, cfg *config.Config) *EventController {
	return &EventController{
		repo:   repo,
		joiner: joiner,
		config: cfg,
	}
}

// @Summary      Create an event
// @Description  Creates a sports event. Authenticated organizers are automatically added as the first participant; anonymous organizers must supply a name and email and are not participants.
// @Tags         Events
// @Accept       json
// @Produce      json
// @Param        event body CreateEventRequest true "Event details"
// @Success      201 {object} responses.SuccessResponse{data=Event}
// @Failure      400 {object} responses.ErrorResponse
// @Failure      401 {object} responses.ErrorResponse
// @Failure      500 {object} responses.ErrorResponse
// @Router       /events [post]
func (ec *EventController) CreateEvent(c *gin.Context) {
	var req CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Validation failed: "+validator.ErrorMessage(err))
		return
	}

	if req.IsAnonymous && (req.OrganizerName == "" || req.OrganizerEmail == "") {
		responses.BadRequest(c, "Organizer name and email are required")
		return
	}

	ev := Event{
		Title:           req.Title,
		Sport:           req.Sport,
		Date:            req.Date,
		Time:            req.Time,
		Location:        req.Location,
		Address:         req.Address,
		Description:     req.Description,
		MaxParticipants: req.MaxParticipants,
		SkillLevel:      req.SkillLevel,
		Image:           req.Image,
		IsAnonymous:     req.IsAnonymous,
	}
	if ev.SkillLevel == "" {
		ev.SkillLevel = "All Levels"
	}

	if req.IsAnonymous {
		ev.OrganizerName = req.OrganizerName
		ev.OrganizerEmail = req.OrganizerEmail
	} else {
		userID, err := middleware.GetUserIDFromContext(c)
		if err != nil {
			responses.Unauthorized(c, "Authentication required")
			return
		}
		ev.OrganizerID = &userID
	}

	if err := ec.repo.CreateEvent(&ev); err != nil {
		responses.InternalServerError(c, "Failed to create event. Please try again later.")
		return
	}

	// The organizer joins through the ledger so the membership mirror and
	// counters stay consistent with the participant list.
	if ev.OrganizerID != nil {
		if err := ec.joiner.JoinEvent(c.Request.Context(), ev.ID, *ev.OrganizerID); err != nil {
			log.Printf("organizer auto-join failed for event %d: %v", ev.ID, err)
		}
		if refreshed, err := ec.repo.GetEventByID(ev.ID); err == nil && refreshed != nil {
			ev = *refreshed
		}
	}

	responses.SendSuccess(c, http.StatusCreated, "Event created successfully", ev)
}

// @Summary      List events
// @Description  Lists events ascending by date. Past events are hidden unless showPast is set.
// @Tags         Events
// @Produce      json
// @Param        limit      query int    false "Max items" default(10)
// @Param        skip       query int    false "Items to skip" default(0)
// @Param        sport      query string false "Filter by sport"
// @Param        skillLevel query string false "Filter by skill level"
// @Param        showPast   query bool   false "Include past events"
// @Success      200 {object} responses.PaginatedResponse{data=[]Event}
// @Failure      500 {object} responses.ErrorResponse
// @Router       /events [get]
func (ec *EventController) GetAllEvents(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))

	filter := ListFilter{
		Sport:      c.Query("sport"),
		SkillLevel: c.Query("skillLevel"),
	}
	if showPast := c.Query("showPast"); showPast != "" {
		val, err := strconv.ParseBool(showPast)
		filter.ShowPast = err == nil && val
	}

	events, total, err := ec.repo.GetAllEvents(limit, skip, filter)
	if err != nil {
		responses.InternalServerError(c, "")
		return
	}

	page := 1
	if limit > 0 {
		page = skip/limit + 1
	}
	responses.SendPaginated(c, http.StatusOK, "", events, total, page, limit)
}

// @Summary      Get event by ID
// @Tags         Events
// @Produce      json
// @Param        id path uint true "Event ID"
// @Success      200 {object} responses.SuccessResponse{data=Event}
// @Failure      400 {object} responses.ErrorResponse
// @Failure      404 {object} responses.ErrorResponse
// @Router       /events/{id} [get]
func (ec *EventController) GetEventByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid event ID")
		return
	}

	ev, err := ec.repo.GetEventByID(uint(id))
	if err != nil {
		responses.InternalServerError(c, "")
		return
	}
	if ev == nil {
		responses.NotFound(c, "Event")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "", ev)
}

// @Summary      Update an event
// @Description  Partial update. Participants cannot be changed through this endpoint; use join/leave.
// @Tags         Events
// @Accept       json
// @Produce      json
// @Param        id    path uint               true "Event ID"
// @Param        event body UpdateEventRequest true "Fields to update"
// @Success      200 {object} responses.SuccessResponse{data=Event}
// @Failure      400 {object} responses.ErrorResponse
// @Failure      404 {object} responses.ErrorResponse
// @Security     ApiKeyAuth
// @Router       /events/{id} [patch]
func (ec *EventController) UpdateEvent(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid event ID")
		return
	}

	var req UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Validation failed: "+validator.ErrorMessage(err))
		return
	}

	ev, err := ec.repo.GetEventByID(uint(id))
	if err != nil {
		responses.InternalServerError(c, "")
		return
	}
	if ev == nil {
		responses.NotFound(c, "Event")
		return
	}

	if req.Title != nil {
		ev.Title = *req.Title
	}
	if req.Sport != nil {
		ev.Sport = *req.Sport
	}
	if req.Date != nil {
		ev.Date = *req.Date
	}
	if req.Time != nil {
		ev.Time = *req.Time
	}
	if req.Location != nil {
		ev.Location = *req.Location
	}
	if req.Address != nil {
		ev.Address = *req.Address
	}
	if req.Description != nil {
		ev.Description = *req.Description
	}
	if req.MaxParticipants != nil {
		ev.MaxParticipants = *req.MaxParticipants
	}
	if req.SkillLevel != nil {
		ev.SkillLevel = *req.SkillLevel
	}
	if req.Image != nil {
		ev.Image = *req.Image
	}

	if err := ec.repo.UpdateEvent(ev); err != nil {
		responses.InternalServerError(c, "Failed to update event. Please try again later.")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Event updated successfully", ev)
}

// @Summary      Delete an event
// @Tags         Events
// @Produce      json
// @Param        id path uint true "Event ID"
// @Success      200 {object} responses.SuccessResponse
// @Failure      400 {object} responses.ErrorResponse
// @Failure      404 {object} responses.ErrorResponse
// @Security     ApiKeyAuth
// @Router       /events/{id} [delete]
func (ec *EventController) DeleteEvent(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid event ID")
		return
	}

	if err := ec.repo.DeleteEvent(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			responses.NotFound(c, "Event")
			return
		}
		responses.InternalServerError(c, "Failed to delete event. Please try again later.")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Event deleted successfully", nil)
}
