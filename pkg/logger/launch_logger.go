package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// LaunchLogger writes the log of a single launch attempt to its own file in
// addition to the standard output, so a failed game start can be diagnosed
// after the frontend has moved on.
type LaunchLogger struct {
	*Logger
	launchID    string
	logFile     *os.File
	mu          sync.Mutex
	multiWriter io.Writer
}

func NewLaunchLogger(launchID, logDir string, level logrus.Level) (*LaunchLogger, error) {
	baseLogger := NewLogger(level)

	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	logFilePath := filepath.Join(logDir, fmt.Sprintf("launch-%s.log", launchID))
	logFile, err := os.OpenFile(logFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to create launch log file: %w", err)
	}

	header := fmt.Sprintf("\n=== Launch Log Started: %s ===\n", time.Now().Format(time.RFC3339))
	header += fmt.Sprintf("Launch ID: %s\n", launchID)
	header += "==========================================\n\n"
	logFile.WriteString(header)

	multiWriter := io.MultiWriter(os.Stdout, logFile)
	baseLogger.Logger.SetOutput(multiWriter)

	return &LaunchLogger{
		Logger:      baseLogger,
		launchID:    launchID,
		logFile:     logFile,
		multiWriter: multiWriter,
	}, nil
}

// LogLaunchFailure records an operational launch failure in the launch log
func (ll *LaunchLogger) LogLaunchFailure(reason string, err error, fields Fields) {
	ll.mu.Lock()
	defer ll.mu.Unlock()

	if fields == nil {
		fields = Fields{}
	}
	fields["launch_id"] = ll.launchID
	fields["reason"] = reason

	ll.WithFields(fields).WithError(err).Warn("Launch failed")

	footer := fmt.Sprintf("\n=== LAUNCH FAILED: %s ===\nReason: %s\n", time.Now().Format(time.RFC3339), reason)
	if err != nil {
		footer += fmt.Sprintf("Error: %v\n", err)
	}
	ll.logFile.WriteString(footer)
}

// LogLaunchSuccess records a clean process exit in the launch log
func (ll *LaunchLogger) LogLaunchSuccess(exitCode int) {
	ll.mu.Lock()
	defer ll.mu.Unlock()

	ll.WithFields(Fields{
		"launch_id": ll.launchID,
		"exit_code": exitCode,
	}).Info("Launch finished")

	footer := fmt.Sprintf("\n=== LAUNCH FINISHED: %s ===\nExit code: %d\n", time.Now().Format(time.RFC3339), exitCode)
	ll.logFile.WriteString(footer)
}

// Close releases the launch log file and restores stdout-only logging
func (ll *LaunchLogger) Close() error {
	ll.mu.Lock()
	defer ll.mu.Unlock()

	ll.Logger.SetOutput(os.Stdout)
	if ll.logFile != nil {
		err := ll.logFile.Close()
		ll.logFile = nil
		return err
	}
	return nil
}
