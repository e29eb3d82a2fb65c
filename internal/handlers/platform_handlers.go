package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/SylleoYr/pegasus-frontend/internal/config"
	"github.com/SylleoYr/pegasus-frontend/internal/services"
	apperrors "github.com/SylleoYr/pegasus-frontend/pkg/errors"
	"github.com/SylleoYr/pegasus-frontend/pkg/logger"
)

type PlatformHandler struct {
	library *services.Library
	logger  *logger.Logger
}

func NewPlatformHandler(library *services.Library) *PlatformHandler {
	return &PlatformHandler{library: library, logger: logger.NewLogger(logrus.InfoLevel)}
}

type platformView struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Extensions  []string `json:"extensions"`
	GameCount   int      `json:"game_count"`
}

func (h *PlatformHandler) ListPlatforms(c *gin.Context) {
	platforms := h.library.Platforms()
	views := make([]platformView, 0, len(platforms))
	for _, platform := range platforms {
		views = append(views, platformView{
			Name:        platform.Name,
			Description: platform.Description,
			Extensions:  platform.Extensions,
			GameCount:   len(h.library.Games(platform.Name)),
		})
	}
	c.JSON(200, views)
}

func (h *PlatformHandler) ListGames(c *gin.Context) {
	name := c.Param("name")
	platform, err := config.FindPlatform(h.library.Platforms(), name)
	if err != nil {
		if errors.Is(err, apperrors.ErrPlatformNotFound) {
			c.JSON(404, gin.H{"error": "Platform not found"})
			return
		}
		h.logger.WithContext(c.Request.Context()).WithError(err).Error("Failed to resolve platform")
		c.JSON(500, gin.H{"error": "Failed to resolve platform"})
		return
	}
	c.JSON(200, h.library.Games(platform.Name))
}
