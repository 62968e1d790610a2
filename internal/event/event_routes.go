package event

import (
	"github.com/athleteverse/api/config"
	"github.com/athleteverse/api/internal/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterEventRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config, joiner OrganizerJoiner) {
	repo := NewEventRepository(db)
	controller := NewEventController(repo, joiner, appConfig)

	events := router.Group("/events")
	{
		events.GET("", controller.GetAllEvents)
		events.GET("/:id", controller.GetEventByID)
		// Creation allows anonymous organizers, so auth is optional here and
		// checked in the handler.
		events.POST("", middleware.OptionalAuth(appConfig.JWT.Secret), controller.CreateEvent)
	}

	eventsProtected := router.Group("/events")
	eventsProtected.Use(middleware.RequireAuth(appConfig.JWT.Secret))
	{
		eventsProtected.PATCH("/:id", controller.UpdateEvent)
		eventsProtected.DELETE("/:id", controller.DeleteEvent)
	}
}
