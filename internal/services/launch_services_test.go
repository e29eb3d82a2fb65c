package services_test

import (
	"errors"
	"sync"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/SylleoYr/pegasus-frontend/internal/config"
	"github.com/SylleoYr/pegasus-frontend/internal/models"
	"github.com/SylleoYr/pegasus-frontend/internal/services"
	apperrors "github.com/SylleoYr/pegasus-frontend/pkg/errors"
	"github.com/SylleoYr/pegasus-frontend/pkg/testutil"
)

// memoryLaunchDAO is an in-memory dao.LaunchDAO for service tests
type memoryLaunchDAO struct {
	mu       sync.Mutex
	launches map[string]models.Launch
}

func newMemoryLaunchDAO() *memoryLaunchDAO {
	return &memoryLaunchDAO{launches: make(map[string]models.Launch)}
}

func (m *memoryLaunchDAO) SaveLaunch(launch *models.Launch) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.launches[launch.UUID] = *launch
	return nil
}

func (m *memoryLaunchDAO) UpdateLaunch(launch *models.Launch) error {
	return m.SaveLaunch(launch)
}

func (m *memoryLaunchDAO) GetLaunchByUUID(uuid string) (*models.Launch, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	launch, ok := m.launches[uuid]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &launch, nil
}

func (m *memoryLaunchDAO) ListLaunches() ([]models.Launch, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	launches := make([]models.Launch, 0, len(m.launches))
	for _, launch := range m.launches {
		launches = append(launches, launch)
	}
	return launches, nil
}

func (m *memoryLaunchDAO) ListLaunchesWithPagination(page, limit int) ([]models.Launch, int64, error) {
	launches, err := m.ListLaunches()
	return launches, int64(len(launches)), err
}

func (m *memoryLaunchDAO) DeleteLaunch(uuid string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.launches[uuid]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.launches, uuid)
	return nil
}

func waitForStatus(t *testing.T, d *memoryLaunchDAO, id string, statuses ...string) *models.Launch {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		launch, err := d.GetLaunchByUUID(id)
		if err == nil {
			for _, status := range statuses {
				if launch.Status == status {
					return launch
				}
			}
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatalf("launch %s never reached status %v", id, statuses)
	return nil
}

func testPlatforms() []config.Platform {
	return []config.Platform{
		{Name: "testplat", LaunchCommand: `echo "%BASENAME%"`},
		{Name: "broken", LaunchCommand: "/definitely/not/a/real/program-xyz %ROM%"},
	}
}

func TestStartLaunch_CompletesSuccessfully(t *testing.T) {
	memDAO := newMemoryLaunchDAO()
	logDir, cleanup := testutil.TempDir(t, "launch-logs")
	defer cleanup()

	service := services.NewLaunchService(memDAO, testPlatforms(), services.WithLogDir(logDir))

	id, err := service.StartLaunch("testplat", "/roms/Super Game!.rom")
	testutil.AssertNoError(t, err)
	if id == "" {
		t.Fatal("expected a launch id")
	}

	launch := waitForStatus(t, memDAO, id, models.StatusCompleted)
	if launch.ExitCode != 0 {
		t.Errorf("expected exit code 0, got %d", launch.ExitCode)
	}
	if launch.Command != `echo "Super Game!"` {
		t.Errorf("unexpected resolved command %q", launch.Command)
	}
	if launch.GameTitle != "Super Game!" {
		t.Errorf("unexpected game title %q", launch.GameTitle)
	}
}

func TestStartLaunch_SpawnFailureIsRecorded(t *testing.T) {
	memDAO := newMemoryLaunchDAO()
	logDir, cleanup := testutil.TempDir(t, "launch-logs")
	defer cleanup()

	service := services.NewLaunchService(memDAO, testPlatforms(), services.WithLogDir(logDir))

	id, err := service.StartLaunch("broken", "/roms/a.rom")
	testutil.AssertNoError(t, err)

	launch := waitForStatus(t, memDAO, id, models.StatusFailed)
	if launch.ErrorKind != "failed_to_start" {
		t.Errorf("expected failed_to_start, got %q", launch.ErrorKind)
	}
	if launch.ErrorMessage == "" {
		t.Error("expected an error message")
	}
}

func TestStartLaunch_UnknownPlatform(t *testing.T) {
	memDAO := newMemoryLaunchDAO()
	service := services.NewLaunchService(memDAO, testPlatforms())

	_, err := service.StartLaunch("psx", "/roms/a.rom")
	if !errors.Is(err, apperrors.ErrPlatformNotFound) {
		t.Errorf("expected ErrPlatformNotFound, got %v", err)
	}
}

func TestDeleteLaunch(t *testing.T) {
	memDAO := newMemoryLaunchDAO()
	service := services.NewLaunchService(memDAO, testPlatforms())

	memDAO.SaveLaunch(&models.Launch{UUID: "abc", Status: models.StatusCompleted})

	testutil.AssertNoError(t, service.DeleteLaunch("abc"))
	if err := service.DeleteLaunch("abc"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("expected ErrRecordNotFound, got %v", err)
	}
}
