package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/SylleoYr/pegasus-frontend/internal/services"
	apperrors "github.com/SylleoYr/pegasus-frontend/pkg/errors"
	"github.com/SylleoYr/pegasus-frontend/pkg/logger"
)

type LaunchHandler struct {
	launchService services.LaunchServiceMethods
	logger        *logger.Logger
}

func NewLaunchHandler(launchService services.LaunchServiceMethods) *LaunchHandler {
	return &LaunchHandler{launchService: launchService, logger: logger.NewLogger(logrus.InfoLevel)}
}

func (h *LaunchHandler) StartLaunch(c *gin.Context) {
	var request LaunchRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.logger.WithContext(c.Request.Context()).WithError(err).Error("Failed to bind JSON")
		c.JSON(400, gin.H{"error": "Invalid request payload"})
		return
	}

	if request.Platform == "" || request.RomPath == "" {
		c.JSON(400, gin.H{"error": "platform and rom_path are required"})
		return
	}

	h.logger.WithContext(c.Request.Context()).WithFields(logrus.Fields{
		"platform": request.Platform,
		"rom_path": request.RomPath,
	}).Info("Starting launch")
	id, err := h.launchService.StartLaunch(request.Platform, request.RomPath)
	if err != nil {
		if errors.Is(err, apperrors.ErrPlatformNotFound) {
			c.JSON(404, gin.H{"error": "Platform not found"})
			return
		}
		h.logger.WithContext(c.Request.Context()).WithError(err).Error("Failed to start launch")
		c.JSON(500, gin.H{"error": "Failed to start launch"})
		return
	}
	c.JSON(200, LaunchResponse{LaunchID: id})
}

func (h *LaunchHandler) GetLaunchByUUID(c *gin.Context) {
	launchID := c.Param("id")
	launch, err := h.launchService.GetLaunchByUUID(launchID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(404, gin.H{"error": "Launch not found"})
			return
		}
		h.logger.WithContext(c.Request.Context()).WithError(err).Error("Failed to get launch")
		c.JSON(500, gin.H{"error": "Failed to get launch"})
		return
	}
	c.JSON(200, launch)
}

func (h *LaunchHandler) ListLaunches(c *gin.Context) {
	launches, err := h.launchService.ListLaunches()
	if err != nil {
		h.logger.WithContext(c.Request.Context()).WithError(err).Error("Failed to list launches")
		c.JSON(500, gin.H{"error": "Failed to list launches"})
		return
	}
	c.JSON(200, launches)
}

func (h *LaunchHandler) DeleteLaunch(c *gin.Context) {
	launchID := c.Param("id")
	if err := h.launchService.DeleteLaunch(launchID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(404, gin.H{"error": "Launch not found"})
			return
		}
		h.logger.WithContext(c.Request.Context()).WithError(err).Error("Failed to delete launch")
		c.JSON(500, gin.H{"error": "Failed to delete launch"})
		return
	}
	c.JSON(200, gin.H{"status": "deleted"})
}
