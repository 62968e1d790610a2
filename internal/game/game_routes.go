package game

import (
	"github.com/athleteverse/api/config"
	"github.com/athleteverse/api/internal/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterGameRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	repo := NewGameRepository(db)
	controller := NewGameController(repo, appConfig)

	games := router.Group("/games")
	{
		games.GET("", controller.GetAllGames)
		games.GET("/:id", controller.GetGameByID)
	}

	gamesProtected := router.Group("/games")
	gamesProtected.Use(middleware.RequireAuth(appConfig.JWT.Secret))
	{
		gamesProtected.POST("", controller.CreateGame)
	}
}
