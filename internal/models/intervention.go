package models

import "time"

// Допустимые значения обратной связи пользователя
const (
	FeedbackHelpful    = "helpful"
	FeedbackNotHelpful = "not_helpful"
	FeedbackIgnored    = "ignored"
)

// InterventionRecord - запись о сработавшем вмешательстве (append-only).
// Единственное изменяемое поле - UserResponse, перезаписывается повторной
// отправкой обратной связи.
type InterventionRecord struct {
	ID                   int64     `json:"id"`
	DangerZoneID         string    `json:"danger_zone_id"`
	Latitude             float64   `json:"latitude"`
	Longitude            float64   `json:"longitude"`
	PredictedProbability float64   `json:"predicted_probability"`
	PredictedScore       int       `json:"predicted_score"` // 0-100
	RiskLevel            RiskLevel `json:"risk_level"`
	MerchantCategory     string    `json:"merchant_category,omitempty"`
	BudgetUtilization    *float64  `json:"budget_utilization,omitempty"`
	HourOfDay            *int      `json:"hour_of_day,omitempty"`
	NotificationSent     bool      `json:"notification_sent"`
	NotificationMessage  string    `json:"notification_message,omitempty"`
	UserResponse         string    `json:"user_response,omitempty"` // helpful/not_helpful/ignored
	CreatedAt            time.Time `json:"created_at"`
}
