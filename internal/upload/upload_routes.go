package upload

import (
	"github.com/athleteverse/api/internal/middleware"
	"github.com/gin-gonic/gin"
)

func RegisterUploadRoutes(router *gin.RouterGroup, controller *UploadController, jwtSecret string) {
	uploads := router.Group("/uploads")
	uploads.Use(middleware.RequireAuth(jwtSecret))
	{
		uploads.POST("", controller.UploadImage)
		uploads.DELETE("/*publicId", controller.DeleteImage)
	}
}
