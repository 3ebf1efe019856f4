package models

import "time"

// Настройки по умолчанию (создаются лениво при первом чтении)
const (
	DefaultNotificationThreshold = 0.70
	DefaultProximityRadiusMeters = 50.0
	DefaultQuietHoursStart       = 23
	DefaultQuietHoursEnd         = 7
)

// UserSettings - единственная на пользователя запись настроек мониторинга
type UserSettings struct {
	MonitoringEnabled     bool      `json:"monitoring_enabled"`
	NotificationThreshold float64   `json:"notification_threshold"`
	ProximityRadiusMeters float64   `json:"proximity_radius_meters"`
	QuietHoursStart       int       `json:"quiet_hours_start"` // час 0-23
	QuietHoursEnd         int       `json:"quiet_hours_end"`   // час 0-23, окно может переходить через полночь
	UpdatedAt             time.Time `json:"updated_at"`
}

// DefaultUserSettings возвращает настройки по умолчанию: мониторинг выключен,
// порог 0.70, радиус 50 м, тихие часы 23-7
func DefaultUserSettings() *UserSettings {
	return &UserSettings{
		MonitoringEnabled:     false,
		NotificationThreshold: DefaultNotificationThreshold,
		ProximityRadiusMeters: DefaultProximityRadiusMeters,
		QuietHoursStart:       DefaultQuietHoursStart,
		QuietHoursEnd:         DefaultQuietHoursEnd,
	}
}

// UserSettingsPatch - частичное обновление настроек: nil-поле остается нетронутым
type UserSettingsPatch struct {
	MonitoringEnabled     *bool    `json:"monitoring_enabled,omitempty"`
	NotificationThreshold *float64 `json:"notification_threshold,omitempty"`
	ProximityRadiusMeters *float64 `json:"proximity_radius_meters,omitempty"`
	QuietHoursStart       *int     `json:"quiet_hours_start,omitempty"`
	QuietHoursEnd         *int     `json:"quiet_hours_end,omitempty"`
}

// IsEmpty сообщает, задано ли хоть одно поле патча
func (p UserSettingsPatch) IsEmpty() bool {
	return p.MonitoringEnabled == nil &&
		p.NotificationThreshold == nil &&
		p.ProximityRadiusMeters == nil &&
		p.QuietHoursStart == nil &&
		p.QuietHoursEnd == nil
}
