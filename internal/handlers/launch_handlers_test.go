package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"github.com/SylleoYr/pegasus-frontend/internal/models"
	apperrors "github.com/SylleoYr/pegasus-frontend/pkg/errors"
)

type MockLaunchService struct {
	mock.Mock
}

func (m *MockLaunchService) StartLaunch(platformName, romPath string) (string, error) {
	args := m.Called(platformName, romPath)
	return args.String(0), args.Error(1)
}

func (m *MockLaunchService) GetLaunchByUUID(id string) (*models.Launch, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Launch), args.Error(1)
}

func (m *MockLaunchService) ListLaunches() ([]models.Launch, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Launch), args.Error(1)
}

func (m *MockLaunchService) DeleteLaunch(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func newTestRouter(service *MockLaunchService) *gin.Engine {
	handler := NewLaunchHandler(service)
	router := gin.New()
	router.POST("/api/launches", handler.StartLaunch)
	router.GET("/api/launches", handler.ListLaunches)
	router.GET("/api/launches/:id", handler.GetLaunchByUUID)
	router.DELETE("/api/launches/:id", handler.DeleteLaunch)
	return router
}

func TestStartLaunch(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		requestBody    string
		setupMock      func(*MockLaunchService)
		expectedStatus int
		expectedBody   string
		validateMock   func(*testing.T, *MockLaunchService)
	}{
		{
			name:        "Valid Request - Success",
			requestBody: `{"platform":"snes","rom_path":"/roms/snes/zelda.sfc"}`,
			setupMock: func(m *MockLaunchService) {
				m.On("StartLaunch", "snes", "/roms/snes/zelda.sfc").
					Return("123e4567-e89b-12d3-a456-426614174000", nil)
			},
			expectedStatus: 200,
			expectedBody:   `{"launch_id":"123e4567-e89b-12d3-a456-426614174000"}`,
			validateMock: func(t *testing.T, m *MockLaunchService) {
				m.AssertNumberOfCalls(t, "StartLaunch", 1)
			},
		},
		{
			name:           "Invalid JSON - Malformed",
			requestBody:    `{"platform":"snes","rom_path":}`,
			setupMock:      func(m *MockLaunchService) {},
			expectedStatus: 400,
			expectedBody:   `{"error":"Invalid request payload"}`,
			validateMock: func(t *testing.T, m *MockLaunchService) {
				m.AssertNumberOfCalls(t, "StartLaunch", 0)
			},
		},
		{
			name:           "Missing Required Field - platform",
			requestBody:    `{"rom_path":"/roms/a.rom"}`,
			setupMock:      func(m *MockLaunchService) {},
			expectedStatus: 400,
			expectedBody:   `{"error":"platform and rom_path are required"}`,
			validateMock: func(t *testing.T, m *MockLaunchService) {
				m.AssertNumberOfCalls(t, "StartLaunch", 0)
			},
		},
		{
			name:        "Unknown Platform",
			requestBody: `{"platform":"psx","rom_path":"/roms/a.rom"}`,
			setupMock: func(m *MockLaunchService) {
				m.On("StartLaunch", "psx", "/roms/a.rom").
					Return("", apperrors.ErrPlatformNotFound)
			},
			expectedStatus: 404,
			expectedBody:   `{"error":"Platform not found"}`,
			validateMock: func(t *testing.T, m *MockLaunchService) {
				m.AssertNumberOfCalls(t, "StartLaunch", 1)
			},
		},
		{
			name:        "Service Error",
			requestBody: `{"platform":"snes","rom_path":"/roms/a.rom"}`,
			setupMock: func(m *MockLaunchService) {
				m.On("StartLaunch", "snes", "/roms/a.rom").
					Return("", errors.New("database unavailable"))
			},
			expectedStatus: 500,
			expectedBody:   `{"error":"Failed to start launch"}`,
			validateMock: func(t *testing.T, m *MockLaunchService) {
				m.AssertNumberOfCalls(t, "StartLaunch", 1)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockLaunchService)
			tt.setupMock(mockService)

			router := newTestRouter(mockService)

			req := httptest.NewRequest(http.MethodPost, "/api/launches", strings.NewReader(tt.requestBody))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
			tt.validateMock(t, mockService)
		})
	}
}

func TestGetLaunchByUUID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("Found", func(t *testing.T) {
		mockService := new(MockLaunchService)
		mockService.On("GetLaunchByUUID", "abc").Return(&models.Launch{
			UUID:     "abc",
			Platform: "snes",
			Status:   models.StatusCompleted,
			ExitCode: 0,
		}, nil)

		router := newTestRouter(mockService)
		req := httptest.NewRequest(http.MethodGet, "/api/launches/abc", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)

		var launch models.Launch
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &launch))
		assert.Equal(t, "abc", launch.UUID)
		assert.Equal(t, "snes", launch.Platform)
	})

	t.Run("Not Found", func(t *testing.T) {
		mockService := new(MockLaunchService)
		mockService.On("GetLaunchByUUID", "missing").Return(nil, gorm.ErrRecordNotFound)

		router := newTestRouter(mockService)
		req := httptest.NewRequest(http.MethodGet, "/api/launches/missing", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, 404, w.Code)
		assert.JSONEq(t, `{"error":"Launch not found"}`, w.Body.String())
	})
}

func TestDeleteLaunch(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("Deleted", func(t *testing.T) {
		mockService := new(MockLaunchService)
		mockService.On("DeleteLaunch", "abc").Return(nil)

		router := newTestRouter(mockService)
		req := httptest.NewRequest(http.MethodDelete, "/api/launches/abc", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
	})

	t.Run("Not Found", func(t *testing.T) {
		mockService := new(MockLaunchService)
		mockService.On("DeleteLaunch", "missing").Return(gorm.ErrRecordNotFound)

		router := newTestRouter(mockService)
		req := httptest.NewRequest(http.MethodDelete, "/api/launches/missing", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, 404, w.Code)
	})
}
