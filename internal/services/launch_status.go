package services

import (
	"fmt"
	"time"

	"github.com/SylleoYr/pegasus-frontend/internal/dao"
	"github.com/SylleoYr/pegasus-frontend/internal/models"
	"github.com/SylleoYr/pegasus-frontend/pkg/launcher"
	"github.com/SylleoYr/pegasus-frontend/pkg/logger"
)

type LaunchStatusManager struct {
	launchDao dao.LaunchDAO
	logger    *logger.Logger
}

func newLaunchStatusManager(launchDao dao.LaunchDAO, logger *logger.Logger) *LaunchStatusManager {
	return &LaunchStatusManager{
		launchDao: launchDao,
		logger:    logger,
	}
}

func (m *LaunchStatusManager) UpdateStatus(launchID, status string) error {
	launch, err := m.launchDao.GetLaunchByUUID(launchID)
	if err != nil {
		return err
	}
	launch.Status = status
	launch.UpdatedAt = time.Now().Unix()
	return m.launchDao.UpdateLaunch(launch)
}

func (m *LaunchStatusManager) MarkFailedWithReason(launchID string, kind launcher.ErrorKind, reason string) {
	launch, err := m.launchDao.GetLaunchByUUID(launchID)
	if err != nil {
		m.logger.Error("Failed to load launch for failure update", logger.Fields{"error": err, "launch_id": launchID})
		return
	}

	launch.Status = models.StatusFailed
	launch.ErrorKind = kind.String()
	launch.ErrorMessage = reason
	launch.UpdatedAt = time.Now().Unix()

	if err := m.launchDao.UpdateLaunch(launch); err != nil {
		m.logger.Error("Failed to persist failed launch status", logger.Fields{"error": err, "launch_id": launchID})
	}

	m.logger.Warn("Launch marked as failed", logger.Fields{
		"launch_id": launchID,
		"kind":      kind.String(),
		"reason":    reason,
	})
}

func (m *LaunchStatusManager) MarkCompleted(launchID string, exitCode int) error {
	launch, err := m.launchDao.GetLaunchByUUID(launchID)
	if err != nil {
		return fmt.Errorf("load launch: %w", err)
	}

	launch.Status = models.StatusCompleted
	launch.ExitCode = exitCode
	launch.UpdatedAt = time.Now().Unix()

	if err := m.launchDao.UpdateLaunch(launch); err != nil {
		return fmt.Errorf("persist launch completion: %w", err)
	}

	return nil
}

func (m *LaunchStatusManager) MarkCrashed(launchID string, exitCode int) error {
	launch, err := m.launchDao.GetLaunchByUUID(launchID)
	if err != nil {
		return fmt.Errorf("load launch: %w", err)
	}

	launch.Status = models.StatusCrashed
	launch.ExitCode = exitCode
	launch.ErrorKind = launcher.Crashed.String()
	launch.UpdatedAt = time.Now().Unix()

	if err := m.launchDao.UpdateLaunch(launch); err != nil {
		return fmt.Errorf("persist launch crash: %w", err)
	}

	return nil
}
