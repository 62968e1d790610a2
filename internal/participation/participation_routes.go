package participation

import (
	"github.com/athleteverse/api/config"
	"github.com/athleteverse/api/internal/middleware"
	"github.com/gin-gonic/gin"
)

// RegisterParticipationRoutes mounts join/leave under the activity groups
// and the history lookup under users.
func RegisterParticipationRoutes(router *gin.RouterGroup, ledger *Ledger, appConfig *config.Config) {
	controller := NewParticipationController(ledger)

	authed := router.Group("")
	authed.Use(middleware.RequireAuth(appConfig.JWT.Secret))
	{
		authed.POST("/events/:id/join", controller.JoinEvent)
		authed.POST("/events/:id/leave", controller.LeaveEvent)
		authed.POST("/tournaments/:id/join", controller.JoinTournament)
		authed.DELETE("/tournaments/:id/join", controller.LeaveTournament)
	}

	router.GET("/users/:id/participation", controller.GetParticipationHistory)
}
