package user

import (
	"github.com/athleteverse/api/config"
	"github.com/athleteverse/api/internal/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterUserRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	repo := NewUserRepository(db)
	controller := NewUserController(repo, appConfig)

	users := router.Group("/users")
	{
		users.GET("", controller.ListUsers)
		users.GET("/:id", controller.GetUser)
	}

	usersProtected := router.Group("/users")
	usersProtected.Use(middleware.RequireAuth(appConfig.JWT.Secret))
	{
		usersProtected.PATCH("/me", controller.UpdateProfile)
	}
}
