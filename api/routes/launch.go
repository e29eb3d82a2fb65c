package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/SylleoYr/pegasus-frontend/internal/config"
	"github.com/SylleoYr/pegasus-frontend/internal/dao"
	"github.com/SylleoYr/pegasus-frontend/internal/handlers"
	"github.com/SylleoYr/pegasus-frontend/internal/services"
)

func InitLaunchRoutes(router *gin.RouterGroup, db *gorm.DB, platforms []config.Platform, opts ...services.ServiceOption) {
	launchDao := dao.NewLaunchDAO(db)
	launchService := services.NewLaunchService(launchDao, platforms, opts...)
	handlers := handlers.NewLaunchHandler(launchService)

	launchRoutes := router.Group("/launches")
	{
		launchRoutes.POST("", handlers.StartLaunch)
		launchRoutes.GET("", handlers.ListLaunches)
		launchRoutes.GET("/:id", handlers.GetLaunchByUUID)
		launchRoutes.DELETE("/:id", handlers.DeleteLaunch)
	}
}
