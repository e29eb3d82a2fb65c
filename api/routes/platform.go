package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/SylleoYr/pegasus-frontend/internal/handlers"
	"github.com/SylleoYr/pegasus-frontend/internal/services"
)

func InitPlatformRoutes(router *gin.RouterGroup, library *services.Library) {
	handlers := handlers.NewPlatformHandler(library)

	platformRoutes := router.Group("/platforms")
	{
		platformRoutes.GET("", handlers.ListPlatforms)
		platformRoutes.GET("/:name/games", handlers.ListGames)
	}
}
