package tournament

import (
	"github.com/athleteverse/api/config"
	"github.com/athleteverse/api/internal/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterTournamentRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	repo := NewTournamentRepository(db)
	controller := NewTournamentController(repo, appConfig)

	tournaments := router.Group("/tournaments")
	{
		tournaments.GET("", controller.GetAllTournaments)
		tournaments.GET("/:id", controller.GetTournamentByID)
		// Anonymous creation is allowed; the handler enforces auth otherwise.
		tournaments.POST("", middleware.OptionalAuth(appConfig.JWT.Secret), controller.CreateTournament)
	}

	tournamentsProtected := router.Group("/tournaments")
	tournamentsProtected.Use(middleware.RequireAuth(appConfig.JWT.Secret))
	{
		tournamentsProtected.PATCH("/:id", controller.UpdateTournament)
		tournamentsProtected.DELETE("/:id", controller.DeleteTournament)
	}
}
