package v1

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/pigeon_guard/internal/config"
	"github.com/shenikar/pigeon_guard/internal/models"
	"github.com/shenikar/pigeon_guard/internal/service"
	"github.com/shenikar/pigeon_guard/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestHandler создает новый экземпляр Handler с мокированным сервисом
func newTestHandler(t *testing.T) (*Handler, *mocks.MockInterventionService, *gin.Engine) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockInterventionService(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		APIKeys: []string{"test-api-key"},
	}

	handler := NewHandler(mockService, logger, cfg)

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return handler, mockService, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func floatPtr(v float64) *float64 { return &v }

func TestCheckLocation_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	decision := &models.Decision{
		MonitoringEnabled: true,
		InDangerZone:      true,
		DangerZone: &models.ZoneMatch{
			Zone: models.DangerZone{
				ID:           "zone-1",
				MerchantName: "Starbucks Oakland",
				Latitude:     40.4446,
				Longitude:    -79.9536,
				RadiusMeters: 50,
			},
			DistanceKm: 0.012,
		},
		PredictedProbability: 0.85,
		RegretScore:          85,
		RiskLevel:            models.RiskHigh,
		ShouldNudge:          true,
		ShouldNotify:         true,
		ModelType:            models.BackendHeuristic,
		Threshold:            0.70,
		NotificationMessage:  "Take a breath before buying",
		InterventionID:       42,
	}

	mockService.EXPECT().
		CheckLocation(gomock.Any(), 40.4446, -79.9536, 0.95, "coffee").
		Return(decision, nil).
		Times(1)

	reqBody := CheckLocationRequest{
		Latitude:          floatPtr(40.4446),
		Longitude:         floatPtr(-79.9536),
		BudgetUtilization: 0.95,
		MerchantCategory:  "coffee",
	}
	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/location/check", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp DecisionResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.True(t, resp.ShouldNotify)
	assert.Equal(t, 85, resp.RegretScore)
	assert.Equal(t, "high", resp.RiskLevel)
	assert.Equal(t, int64(42), resp.InterventionID)
	require.NotNil(t, resp.DangerZone)
	assert.Equal(t, "Starbucks Oakland", resp.DangerZone.MerchantName)
	assert.InDelta(t, 0.012, resp.DangerZone.DistanceKm, 1e-9)
}

func TestCheckLocation_MissingCoordinates(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().
		CheckLocation(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Times(0) // Сервис не должен вызываться

	w := makeRequest(router, "POST", "/api/v1/location/check", bytes.NewBufferString(`{"budget_utilization": 0.5}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCheckLocation_ZeroCoordinatesAreValid(t *testing.T) {
	// Нулевой остров - валидная точка, указатели отличают 0 от отсутствия поля
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().
		CheckLocation(gomock.Any(), 0.0, 0.0, 0.0, "").
		Return(&models.Decision{Reason: models.ReasonMonitoringDisabled}, nil).
		Times(1)

	w := makeRequest(router, "POST", "/api/v1/location/check", bytes.NewBufferString(`{"lat": 0, "lng": 0}`))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCheckLocation_InvalidJSON(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().
		CheckLocation(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Times(0)

	w := makeRequest(router, "POST", "/api/v1/location/check", bytes.NewBufferString(`{"lat": 40.0`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestCheckLocation_ServiceError(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().
		CheckLocation(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("db down")).
		Times(1)

	w := makeRequest(router, "POST", "/api/v1/location/check", bytes.NewBufferString(`{"lat": 40.0, "lng": -79.9}`))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestGetSettings_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().
		GetSettings(gomock.Any()).
		Return(&models.UserSettings{
			MonitoringEnabled:     true,
			NotificationThreshold: 0.70,
			ProximityRadiusMeters: 50,
			QuietHoursStart:       23,
			QuietHoursEnd:         7,
			UpdatedAt:             time.Now(),
		}, nil).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/settings", nil, map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp SettingsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.MonitoringEnabled)
	assert.Equal(t, 23, resp.QuietHoursStart)
}

func TestGetSettings_Unauthorized(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().GetSettings(gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/settings", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "API key required")
}

func TestGetSettings_BearerToken(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().
		GetSettings(gomock.Any()).
		Return(models.DefaultUserSettings(), nil).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/settings", nil, map[string]string{"Authorization": "Bearer test-api-key"})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUpdateSettings_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().
		UpdateSettings(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, patch models.UserSettingsPatch) (*models.UserSettings, error) {
			require.NotNil(t, patch.MonitoringEnabled)
			assert.True(t, *patch.MonitoringEnabled)
			assert.Nil(t, patch.QuietHoursStart)
			return &models.UserSettings{MonitoringEnabled: true, NotificationThreshold: 0.70}, nil
		}).
		Times(1)

	w := makeRequest(router, "POST", "/api/v1/settings",
		bytes.NewBufferString(`{"monitoring_enabled": true}`),
		map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUpdateSettings_EmptyPatch(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().UpdateSettings(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "POST", "/api/v1/settings",
		bytes.NewBufferString(`{}`),
		map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "no settings fields provided")
}

func TestUpdateSettings_ValidationError(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().UpdateSettings(gomock.Any(), gomock.Any()).Times(0)

	// Порог вне диапазона [0,1]
	w := makeRequest(router, "POST", "/api/v1/settings",
		bytes.NewBufferString(`{"notification_threshold": 1.5}`),
		map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubmitFeedback_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().
		SubmitFeedback(gomock.Any(), int64(42), "helpful").
		Return(nil).
		Times(1)

	w := makeRequest(router, "POST", "/api/v1/interventions/feedback",
		bytes.NewBufferString(`{"intervention_id": 42, "user_response": "helpful"}`),
		map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSubmitFeedback_NotFound(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().
		SubmitFeedback(gomock.Any(), int64(999), "ignored").
		Return(fmt.Errorf("service: could not set feedback: %w", service.ErrInterventionNotFound)).
		Times(1)

	w := makeRequest(router, "POST", "/api/v1/interventions/feedback",
		bytes.NewBufferString(`{"intervention_id": 999, "user_response": "ignored"}`),
		map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "intervention not found")
}

func TestSubmitFeedback_InvalidResponse(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().SubmitFeedback(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "POST", "/api/v1/interventions/feedback",
		bytes.NewBufferString(`{"intervention_id": 42, "user_response": "meh"}`),
		map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListInterventions_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().
		ListInterventions(gomock.Any(), 2, 5).
		Return([]*models.InterventionRecord{
			{ID: 10, DangerZoneID: "zone-1", PredictedScore: 85, RiskLevel: models.RiskHigh, NotificationSent: true},
		}, nil).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/interventions?page=2&pageSize=5", nil, map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []*InterventionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, int64(10), resp[0].ID)
	assert.Equal(t, 85, resp[0].PredictedScore)
}

func TestListDangerZones_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().
		ListDangerZones().
		Return([]models.DangerZone{
			{ID: "zone-1", MerchantName: "Starbucks Oakland", AvgRegretScore: 0.9},
			{ID: "zone-2", MerchantName: "Amazon Go", AvgRegretScore: 0.72},
		}).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/zones", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp ZonesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Count)
	require.Len(t, resp.DangerZones, 2)
	assert.Equal(t, "Starbucks Oakland", resp.DangerZones[0].MerchantName)
}

func TestReloadDangerZones_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().
		ReloadDangerZones(gomock.Any()).
		Return(17, nil).
		Times(1)

	w := makeRequest(router, "POST", "/api/v1/zones/reload", nil, map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp ReloadZonesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 17, resp.ZonesLoaded)
}

func TestReloadDangerZones_Unauthorized(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().ReloadDangerZones(gomock.Any()).Times(0)

	w := makeRequest(router, "POST", "/api/v1/zones/reload", nil, map[string]string{"X-API-Key": "wrong-key"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid API key")
}

func TestHealthCheck(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
}
