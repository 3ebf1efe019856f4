package predictor

import "github.com/shenikar/pigeon_guard/internal/models"

// Scorer - стратегия скоринга: превращает вектор признаков в вероятность
// сожаления о покупке P(regret=1)
type Scorer interface {
	Probability(features models.PredictionFeatures) (float64, error)
	Name() string
}

// HeuristicScorer - детерминированный аддитивный скорер. Всегда доступен,
// используется как фолбэк и как оракул в тестах.
type HeuristicScorer struct{}

func NewHeuristicScorer() *HeuristicScorer {
	return &HeuristicScorer{}
}

// Probability повторяет разметку обучающих данных: аддитивный счет от 0.0
// с клампом в [0,1]. Ошибок не возвращает.
func (s *HeuristicScorer) Probability(features models.PredictionFeatures) (float64, error) {
	score := 0.0

	if features.MerchantRegretRate > 0.7 {
		score += 0.4
	}
	if features.HourOfDay > 20 {
		score += 0.2
	}
	if features.BudgetUtilization > 0.8 {
		score += 0.3
	}
	if features.DistanceToMerchant < 50 {
		score += 0.2
	}

	return clamp01(score), nil
}

func (s *HeuristicScorer) Name() string {
	return models.BackendHeuristic
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
