package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/athleteverse/api/config"
	"github.com/athleteverse/api/internal/auth"
	"github.com/athleteverse/api/internal/event"
	"github.com/athleteverse/api/internal/game"
	"github.com/athleteverse/api/internal/participation"
	"github.com/athleteverse/api/internal/tournament"
	"github.com/athleteverse/api/internal/upload"
	"github.com/athleteverse/api/internal/user"
	"github.com/athleteverse/api/pkg/storage"
)

func SetupRoutes(db *gorm.DB, appConfig *config.Config) *gin.Engine {
	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	if appConfig.App.FrontendURL != "" {
		corsConfig.AllowOrigins = []string{appConfig.App.FrontendURL}
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowCredentials = !corsConfig.AllowAllOrigins
	corsConfig.AddAllowHeaders("Authorization")
	r.Use(cors.New(corsConfig))

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"name":   "AthleteVerse API",
			"status": "ok",
			"docs":   "/swagger/index.html",
		})
	})

	// Swagger route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Shared participation ledger, also used to enroll event organizers.
	ledger := participation.NewLedger(participation.NewStore(db))

	uploader := storage.NewUploader(storage.Config{
		Bucket:          appConfig.Storage.Bucket,
		AccessKeyID:     appConfig.Storage.AccessKeyID,
		AccessKeySecret: appConfig.Storage.AccessKeySecret,
		Endpoint:        appConfig.Storage.Endpoint,
		CDNBaseURL:      appConfig.Storage.CDNBaseURL,
	})

	api := r.Group("/api")
	auth.RegisterAuthRoutes(api, db, appConfig)
	user.RegisterUserRoutes(api, db, appConfig)
	event.RegisterEventRoutes(api, db, appConfig, ledger)
	tournament.RegisterTournamentRoutes(api, db, appConfig)
	game.RegisterGameRoutes(api, db, appConfig)
	participation.RegisterParticipationRoutes(api, ledger, appConfig)
	upload.RegisterUploadRoutes(api, upload.NewUploadController(uploader), appConfig.JWT.Secret)

	return r
}
