package models

// Имена признаков в фиксированном порядке, ожидаемом моделью
const (
	FeatureDistanceToMerchant = "distance_to_merchant"
	FeatureHourOfDay          = "hour_of_day"
	FeatureIsWeekend          = "is_weekend"
	FeatureBudgetUtilization  = "budget_utilization"
	FeatureMerchantRegretRate = "merchant_regret_rate"
	FeatureDwellTime          = "dwell_time"
)

// FeatureNames - канонический порядок признаков. Порядок должен совпадать
// с порядком, на котором обучалась модель.
var FeatureNames = []string{
	FeatureDistanceToMerchant,
	FeatureHourOfDay,
	FeatureIsWeekend,
	FeatureBudgetUtilization,
	FeatureMerchantRegretRate,
	FeatureDwellTime,
}

// PredictionFeatures - строго типизированный вектор признаков одного события.
// Нулевое значение поля эквивалентно отсутствующему признаку (default 0.0).
type PredictionFeatures struct {
	DistanceToMerchant float64 `json:"distance_to_merchant"` // метры, >= 0
	HourOfDay          float64 `json:"hour_of_day"`          // 0-23
	IsWeekend          float64 `json:"is_weekend"`           // 0 или 1
	BudgetUtilization  float64 `json:"budget_utilization"`   // 0.0-1.0
	MerchantRegretRate float64 `json:"merchant_regret_rate"` // 0.0-1.0
	DwellTime          float64 `json:"dwell_time"`           // секунды, >= 0
}

// Value возвращает значение признака по имени. Неизвестное имя дает 0.0 -
// это осознанное сохранение поведения "missing key defaults to 0.0".
func (f PredictionFeatures) Value(name string) float64 {
	switch name {
	case FeatureDistanceToMerchant:
		return f.DistanceToMerchant
	case FeatureHourOfDay:
		return f.HourOfDay
	case FeatureIsWeekend:
		return f.IsWeekend
	case FeatureBudgetUtilization:
		return f.BudgetUtilization
	case FeatureMerchantRegretRate:
		return f.MerchantRegretRate
	case FeatureDwellTime:
		return f.DwellTime
	}
	return 0.0
}

// RiskLevel - уровень риска покупки
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// Идентификаторы бэкенда скоринга
const (
	BackendModel     = "model"
	BackendHeuristic = "heuristic"
)

// PredictionResult - результат скоринга одного события
type PredictionResult struct {
	Probability float64   `json:"probability"`
	RiskLevel   RiskLevel `json:"risk_level"`
	ShouldNudge bool      `json:"should_nudge"`
	Threshold   float64   `json:"threshold"`
	// ModelType отражает фактически исполненный путь: "model" или "heuristic".
	// При принудительном фолбэке здесь всегда "heuristic".
	ModelType string `json:"model_type"`
}
