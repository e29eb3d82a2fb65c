package services

import (
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/SylleoYr/pegasus-frontend/internal/config"
	"github.com/SylleoYr/pegasus-frontend/internal/dao"
	"github.com/SylleoYr/pegasus-frontend/internal/models"
	"github.com/SylleoYr/pegasus-frontend/internal/notification"
	"github.com/SylleoYr/pegasus-frontend/pkg/launcher"
	"github.com/SylleoYr/pegasus-frontend/pkg/logger"
)

type LaunchServiceMethods interface {
	StartLaunch(platformName, romPath string) (string, error)
	GetLaunchByUUID(id string) (*models.Launch, error)
	ListLaunches() ([]models.Launch, error)
	DeleteLaunch(id string) error
}

type launchService struct {
	launchDao     dao.LaunchDAO
	platforms     []config.Platform
	statusManager *LaunchStatusManager
	executor      *LaunchExecutor
	notifier      *notification.NotificationClient
	logDir        string
	logger        *logger.Logger
}

type ServiceOption func(*launchService)

// WithNotifier attaches an optional Discord notification client
func WithNotifier(client *notification.NotificationClient) ServiceOption {
	return func(s *launchService) {
		s.notifier = client
	}
}

// WithLogDir sets the directory for per-launch log files
func WithLogDir(dir string) ServiceOption {
	return func(s *launchService) {
		s.logDir = dir
	}
}

func NewLaunchService(launchDao dao.LaunchDAO, platforms []config.Platform, opts ...ServiceOption) LaunchServiceMethods {
	s := &launchService{
		launchDao: launchDao,
		platforms: platforms,
		logDir:    "./logs",
		logger:    logger.NewLogger(logrus.InfoLevel),
	}
	s.statusManager = newLaunchStatusManager(launchDao, s.logger)
	s.executor = newLaunchExecutor(s)
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// StartLaunch resolves the platform's command template, records the launch
// attempt and executes it in the background through the launch queue. The
// returned id can be used to poll the attempt's outcome.
func (s *launchService) StartLaunch(platformName, romPath string) (string, error) {
	platform, err := config.FindPlatform(s.platforms, platformName)
	if err != nil {
		s.logger.Error("Unknown platform requested", logger.Fields{"platform": platformName})
		return "", err
	}

	id := uuid.New().String()
	now := time.Now().Unix()
	launch := &models.Launch{
		UUID:      id,
		Platform:  platform.Name,
		GameTitle: launcher.Basename(romPath),
		RomPath:   romPath,
		Command:   launcher.BuildCommand(platform.LaunchCommand, romPath),
		Status:    models.StatusQueued,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.launchDao.SaveLaunch(launch); err != nil {
		s.logger.Error("SaveLaunch failed", logger.Fields{"error": err})
		return "", err
	}

	go s.executor.Execute(id, *platform, romPath)

	return id, nil
}

func (s *launchService) GetLaunchByUUID(id string) (*models.Launch, error) {
	return s.launchDao.GetLaunchByUUID(id)
}

func (s *launchService) ListLaunches() ([]models.Launch, error) {
	return s.launchDao.ListLaunches()
}

func (s *launchService) DeleteLaunch(id string) error {
	return s.launchDao.DeleteLaunch(id)
}
