package auth

import (
	"github.com/athleteverse/api/config"
	"github.com/athleteverse/api/internal/middleware"
	"github.com/athleteverse/api/internal/user"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterAuthRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	userRepo := user.NewUserRepository(db)
	authController := NewAuthController(userRepo, appConfig)

	authPublic := router.Group("/auth")
	{
		authPublic.POST("/register", authController.Register)
		authPublic.POST("/login", authController.Login)
		authPublic.POST("/logout", authController.Logout)
	}

	authProtected := router.Group("/auth")
	authProtected.Use(middleware.RequireAuth(appConfig.JWT.Secret))
	{
		authProtected.GET("/me", authController.Me)
	}
}
