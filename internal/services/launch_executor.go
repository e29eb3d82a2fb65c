package services

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/SylleoYr/pegasus-frontend/internal/config"
	"github.com/SylleoYr/pegasus-frontend/internal/models"
	"github.com/SylleoYr/pegasus-frontend/pkg/launcher"
	"github.com/SylleoYr/pegasus-frontend/pkg/logger"
)

type LaunchExecutor struct {
	launchService *launchService
}

func newLaunchExecutor(s *launchService) *LaunchExecutor {
	return &LaunchExecutor{launchService: s}
}

// Execute runs one launch attempt to completion. Launches are serialized
// through the global queue; the call blocks for the whole lifetime of the
// game process.
func (e *LaunchExecutor) Execute(launchID string, platform config.Platform, romPath string) {
	s := e.launchService

	defer func() {
		if r := recover(); r != nil {
			panicMsg := fmt.Sprintf("panic during launch: %v", r)
			s.logger.Error(panicMsg, logger.Fields{"launch_id": launchID, "panic": r})
			s.statusManager.MarkFailedWithReason(launchID, launcher.UnknownError, panicMsg)
		}
	}()

	queue := GetGlobalQueue()
	err := queue.ExecuteWithQueue(func() error {
		if err := s.statusManager.UpdateStatus(launchID, models.StatusRunning); err != nil {
			s.logger.Error("Failed to update launch to running", logger.Fields{"launch_id": launchID, "error": err})
		}

		s.logger.Info("Starting launch execution", logger.Fields{
			"launch_id": launchID,
			"platform":  platform.Name,
			"rom_path":  romPath,
		})

		launchLog, logErr := logger.NewLaunchLogger(launchID, s.logDir, logrus.InfoLevel)
		if logErr != nil {
			s.logger.Error("Failed to create launch logger", logger.Fields{"error": logErr, "launch_id": launchID})
		}

		launchLogger := s.logger
		if launchLog != nil {
			launchLogger = launchLog.Logger
			defer launchLog.Close()
		}

		if s.notifier != nil {
			if err := s.notifier.NotifyLaunchStarted(platform.Name, launcher.Basename(romPath)); err != nil {
				s.logger.Warn("Failed to send launch notification", logger.Fields{"error": err})
			}
		}

		gameLauncher := launcher.NewLauncher(
			launcher.WithLogger(launchLogger),
			launcher.WithDone(func() {
				s.logger.Info("Launch attempt finished, frontend resumed", logger.Fields{"launch_id": launchID})
			}),
		)

		result := gameLauncher.Launch(platform.LaunchCommand, romPath)

		e.finalize(launchID, platform, romPath, result, launchLog)
		return nil
	})

	if err != nil {
		s.logger.Error("Launch execution failed", logger.Fields{"launch_id": launchID, "error": err})
		s.statusManager.MarkFailedWithReason(launchID, launcher.UnknownError, fmt.Sprintf("Execution failed: %v", err))
	}
}

// finalize persists the launch outcome and sends notifications
func (e *LaunchExecutor) finalize(launchID string, platform config.Platform, romPath string, result launcher.Result, launchLog *logger.LaunchLogger) {
	s := e.launchService
	gameTitle := launcher.Basename(romPath)

	switch {
	case result.Failure != nil && !result.Started:
		reason := fmt.Sprintf("could not run `%s`", result.Failure.Program)
		s.statusManager.MarkFailedWithReason(launchID, result.Failure.Kind, reason)
		if launchLog != nil {
			launchLog.LogLaunchFailure(reason, nil, logger.Fields{"kind": result.Failure.Kind.String()})
		}
		e.notifyFailure(platform.Name, gameTitle, reason)

	case result.Outcome != nil && result.Outcome.Status == launcher.CrashExit:
		if err := s.statusManager.MarkCrashed(launchID, result.Outcome.ExitCode); err != nil {
			s.logger.Error("Failed to mark launch as crashed", logger.Fields{"launch_id": launchID, "error": err})
		}
		if launchLog != nil {
			launchLog.LogLaunchFailure("the game crashed", nil, logger.Fields{"exit_code": result.Outcome.ExitCode})
		}
		e.notifyFailure(platform.Name, gameTitle, "the game crashed")

	case result.Outcome != nil:
		if err := s.statusManager.MarkCompleted(launchID, result.Outcome.ExitCode); err != nil {
			s.logger.Error("Failed to finalize launch", logger.Fields{"launch_id": launchID, "error": err})
		}
		if launchLog != nil {
			launchLog.LogLaunchSuccess(result.Outcome.ExitCode)
		}

	default:
		s.statusManager.MarkFailedWithReason(launchID, launcher.UnknownError, "launch produced no outcome")
	}
}

func (e *LaunchExecutor) notifyFailure(platform, gameTitle, reason string) {
	s := e.launchService
	if s.notifier == nil {
		return
	}
	if err := s.notifier.NotifyLaunchFailed(platform, gameTitle, reason); err != nil {
		s.logger.Warn("Failed to send launch failure notification", logger.Fields{"error": err})
	}
}
