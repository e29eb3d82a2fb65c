package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/SylleoYr/pegasus-frontend/internal/config"
	"github.com/SylleoYr/pegasus-frontend/internal/services"
	"github.com/SylleoYr/pegasus-frontend/pkg/logger"
)

// RequestID assigns each request an id, propagated through the request
// context for log correlation and echoed in the X-Request-ID header.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.New().String()
		c.Request = c.Request.WithContext(logger.WithRequestID(c.Request.Context(), id))
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

func InitRouter(db *gorm.DB, platforms []config.Platform, library *services.Library, opts ...services.ServiceOption) *gin.Engine {
	router := gin.Default()
	router.Use(RequestID())

	// REST APIs
	api := router.Group("/api")
	{
		InitLaunchRoutes(api, db, platforms, opts...)
		InitPlatformRoutes(api, library)
	}

	return router
}
