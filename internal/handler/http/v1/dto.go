package v1

import "time"

// CheckLocationRequest DTO для проверки местоположения
// @Description DTO для проверки местоположения
type CheckLocationRequest struct {
	// Координаты как указатели: 0 - валидное значение, отсутствие поля - ошибка
	Latitude          *float64 `json:"lat" validate:"required,latitude"`
	Longitude         *float64 `json:"lng" validate:"required,longitude"`
	BudgetUtilization float64  `json:"budget_utilization" validate:"gte=0,lte=1"`
	MerchantCategory  string   `json:"merchant_category,omitempty"`
}

// DangerZoneResponse DTO опасной зоны в ответе
// @Description DTO опасной зоны в ответе
type DangerZoneResponse struct {
	ID               string  `json:"id"`
	MerchantName     string  `json:"merchant_name"`
	Latitude         float64 `json:"lat"`
	Longitude        float64 `json:"lng"`
	RadiusMeters     float64 `json:"radius"`
	MerchantCategory string  `json:"merchant_category"`
	AvgRegretScore   float64 `json:"avg_regret_score"`
	DistanceKm       float64 `json:"distance_km,omitempty"`
}

// DecisionResponse DTO решения по событию местоположения
// @Description DTO решения по событию местоположения
type DecisionResponse struct {
	MonitoringEnabled    bool                `json:"monitoring_enabled"`
	InDangerZone         bool                `json:"in_danger_zone"`
	DangerZone           *DangerZoneResponse `json:"danger_zone,omitempty"`
	PredictedProbability float64             `json:"predicted_probability"`
	RegretScore          int                 `json:"regret_score"`
	RiskLevel            string              `json:"risk_level"`
	ShouldNudge          bool                `json:"should_nudge"`
	ShouldNotify         bool                `json:"should_notify"`
	InQuietHours         bool                `json:"in_quiet_hours"`
	ModelType            string              `json:"model_type"`
	Threshold            float64             `json:"threshold"`
	NudgeReason          string              `json:"nudge_reason,omitempty"`
	Reason               string              `json:"reason,omitempty"`
	NotificationMessage  string              `json:"notification_message,omitempty"`
	InterventionID       int64               `json:"intervention_id,omitempty"`
}

// UpdateSettingsRequest DTO частичного обновления настроек
// @Description DTO частичного обновления настроек
type UpdateSettingsRequest struct {
	MonitoringEnabled     *bool    `json:"monitoring_enabled"`
	NotificationThreshold *float64 `json:"notification_threshold" validate:"omitempty,gte=0,lte=1"`
	ProximityRadiusMeters *float64 `json:"proximity_radius_meters" validate:"omitempty,gt=0,lte=5000"`
	QuietHoursStart       *int     `json:"quiet_hours_start" validate:"omitempty,gte=0,lte=23"`
	QuietHoursEnd         *int     `json:"quiet_hours_end" validate:"omitempty,gte=0,lte=23"`
}

// SettingsResponse DTO настроек мониторинга
// @Description DTO настроек мониторинга
type SettingsResponse struct {
	MonitoringEnabled     bool      `json:"monitoring_enabled"`
	NotificationThreshold float64   `json:"notification_threshold"`
	ProximityRadiusMeters float64   `json:"proximity_radius_meters"`
	QuietHoursStart       int       `json:"quiet_hours_start"`
	QuietHoursEnd         int       `json:"quiet_hours_end"`
	UpdatedAt             time.Time `json:"updated_at"`
}

// FeedbackRequest DTO обратной связи по вмешательству
// @Description DTO обратной связи по вмешательству
type FeedbackRequest struct {
	InterventionID int64  `json:"intervention_id" validate:"required,gt=0"`
	UserResponse   string `json:"user_response" validate:"required,oneof=helpful not_helpful ignored"`
}

// InterventionResponse DTO записи журнала вмешательств
// @Description DTO записи журнала вмешательств
type InterventionResponse struct {
	ID                   int64     `json:"id"`
	DangerZoneID         string    `json:"danger_zone_id"`
	Latitude             float64   `json:"lat"`
	Longitude            float64   `json:"lng"`
	PredictedProbability float64   `json:"predicted_probability"`
	PredictedScore       int       `json:"predicted_score"`
	RiskLevel            string    `json:"risk_level"`
	MerchantCategory     string    `json:"merchant_category,omitempty"`
	NotificationSent     bool      `json:"notification_sent"`
	NotificationMessage  string    `json:"notification_message,omitempty"`
	UserResponse         string    `json:"user_response,omitempty"`
	CreatedAt            time.Time `json:"created_at"`
}

// ZonesResponse DTO списка опасных зон
// @Description DTO списка опасных зон
type ZonesResponse struct {
	DangerZones []*DangerZoneResponse `json:"danger_zones"`
	Count       int                   `json:"count"`
}

// ReloadZonesResponse DTO результата перезагрузки датасета зон
// @Description DTO результата перезагрузки датасета зон
type ReloadZonesResponse struct {
	ZonesLoaded int `json:"zones_loaded"`
}
