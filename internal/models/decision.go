package models

// Причины, выставляемые гейтом в решении
const (
	ReasonMonitoringDisabled = "monitoring_disabled"
	ReasonQuietHours         = "quiet_hours"
	ReasonNotInDangerZone    = "not_in_danger_zone"
	ReasonBelowThreshold     = "below_threshold"
	ReasonBelowBudgetFloor   = "below_budget_floor"
	NudgeReasonZoneOverride  = "danger_zone_override"
)

// Decision - итоговое решение гейта вмешательств по одному событию местоположения
type Decision struct {
	MonitoringEnabled    bool       `json:"monitoring_enabled"`
	InDangerZone         bool       `json:"in_danger_zone"`
	DangerZone           *ZoneMatch `json:"danger_zone,omitempty"`
	PredictedProbability float64    `json:"predicted_probability"`
	// RegretScore - вероятность, приведенная к целому 0-100
	RegretScore  int       `json:"regret_score"`
	RiskLevel    RiskLevel `json:"risk_level"`
	ShouldNudge  bool      `json:"should_nudge"`
	ShouldNotify bool      `json:"should_notify"`
	InQuietHours bool      `json:"in_quiet_hours"`
	ModelType    string    `json:"model_type"`
	Threshold    float64   `json:"threshold"`
	// NudgeReason заполняется, когда nudge форсирован правилом зоны
	NudgeReason string `json:"nudge_reason,omitempty"`
	// Reason поясняет, почему уведомление не отправлено
	Reason              string `json:"reason,omitempty"`
	NotificationMessage string `json:"notification_message,omitempty"`
	InterventionID      int64  `json:"intervention_id,omitempty"`
}
