package predictor

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/shenikar/pigeon_guard/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(&bytes.Buffer{})
	return log
}

// newHeuristicEngine возвращает движок без файлов модели: после загрузки
// он обязан работать на эвристике
func newHeuristicEngine(t *testing.T) *Engine {
	dir := t.TempDir()
	engine := NewEngine(filepath.Join(dir, "missing_model.json"), filepath.Join(dir, "missing_meta.json"), testLogger())
	engine.Load()
	return engine
}

func TestHeuristic_AllSignalsFire(t *testing.T) {
	engine := newHeuristicEngine(t)

	// 0.4 + 0.2 + 0.3 + 0.2 = 1.1, кламп до 1.0
	result := engine.Score(models.PredictionFeatures{
		DistanceToMerchant: 10,
		HourOfDay:          23,
		BudgetUtilization:  0.95,
		MerchantRegretRate: 0.9,
	})

	assert.Equal(t, 1.0, result.Probability)
	assert.Equal(t, models.RiskHigh, result.RiskLevel)
	assert.True(t, result.ShouldNudge)
	assert.Equal(t, models.BackendHeuristic, result.ModelType)
	assert.Equal(t, 0.70, result.Threshold)
}

func TestHeuristic_ZeroFeatures(t *testing.T) {
	scorer := NewHeuristicScorer()

	// Нулевой вектор: срабатывает только правило дистанции (0 < 50)
	p, err := scorer.Probability(models.PredictionFeatures{})

	require.NoError(t, err)
	assert.Equal(t, 0.2, p)
}

func TestHeuristic_BoundariesAreStrict(t *testing.T) {
	scorer := NewHeuristicScorer()

	// Правила используют строгие сравнения: значения ровно на границе не дают вклада
	p, err := scorer.Probability(models.PredictionFeatures{
		DistanceToMerchant: 50,
		HourOfDay:          20,
		BudgetUtilization:  0.8,
		MerchantRegretRate: 0.7,
	})

	require.NoError(t, err)
	assert.Equal(t, 0.0, p)
}

func TestHeuristic_Monotonicity(t *testing.T) {
	scorer := NewHeuristicScorer()
	base := models.PredictionFeatures{
		DistanceToMerchant: 100,
		HourOfDay:          12,
		BudgetUtilization:  0.5,
		MerchantRegretRate: 0.5,
	}

	score := func(f models.PredictionFeatures) float64 {
		p, err := scorer.Probability(f)
		require.NoError(t, err)
		return p
	}

	// Не убывает по merchant_regret_rate
	low := base
	high := base
	high.MerchantRegretRate = 0.95
	assert.LessOrEqual(t, score(low), score(high))

	// Не убывает по budget_utilization
	high = base
	high.BudgetUtilization = 0.95
	assert.LessOrEqual(t, score(low), score(high))

	// Не убывает по часу после 20
	high = base
	high.HourOfDay = 22
	assert.LessOrEqual(t, score(low), score(high))

	// Не возрастает при уменьшении дистанции ниже 50 м
	near := base
	near.DistanceToMerchant = 10
	assert.GreaterOrEqual(t, score(near), score(base))
}

func TestHeuristic_RangeProperty(t *testing.T) {
	scorer := NewHeuristicScorer()

	for _, f := range []models.PredictionFeatures{
		{},
		{DistanceToMerchant: -5, HourOfDay: 30, BudgetUtilization: 5, MerchantRegretRate: 5, DwellTime: 1e9},
		{DistanceToMerchant: 1e6},
		{HourOfDay: 21, BudgetUtilization: 0.81, MerchantRegretRate: 0.71, DistanceToMerchant: 49},
	} {
		p, err := scorer.Probability(f)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, p, 0.0)
		assert.LessOrEqual(t, p, 1.0)
	}
}

func TestRiskLevel_ExactBoundaries(t *testing.T) {
	assert.Equal(t, models.RiskMedium, riskLevelFor(0.79999))
	assert.Equal(t, models.RiskHigh, riskLevelFor(0.80000))
	assert.Equal(t, models.RiskLow, riskLevelFor(0.49999))
	assert.Equal(t, models.RiskMedium, riskLevelFor(0.50000))
}

func TestEngine_ThresholdFromMetadata(t *testing.T) {
	dir := t.TempDir()
	metaPath := filepath.Join(dir, "meta.json")
	require.NoError(t, os.WriteFile(metaPath, []byte(`{"feature_names": ["distance_to_merchant"], "threshold": 0.85}`), 0o644))

	engine := NewEngine(filepath.Join(dir, "missing_model.json"), metaPath, testLogger())
	engine.Load()

	assert.Equal(t, 0.85, engine.Threshold())

	// Вероятность 0.7 выше дефолтного порога, но ниже порога из метаданных
	result := engine.Score(models.PredictionFeatures{
		MerchantRegretRate: 0.9,
		BudgetUtilization:  0.9,
		DistanceToMerchant: 500,
	})
	assert.InDelta(t, 0.7, result.Probability, 1e-9)
	assert.False(t, result.ShouldNudge)
}

func TestEngine_ModelBackend(t *testing.T) {
	dir := t.TempDir()
	modelPath := filepath.Join(dir, "model.json")
	// Модель с нулевыми весами и bias 0: sigmoid(0) = 0.5
	require.NoError(t, os.WriteFile(modelPath, []byte(`{"weights": {"budget_utilization": 0.0}, "bias": 0.0}`), 0o644))

	engine := NewEngine(modelPath, filepath.Join(dir, "missing_meta.json"), testLogger())
	engine.Load()

	result := engine.Score(models.PredictionFeatures{})

	assert.Equal(t, models.BackendModel, result.ModelType)
	assert.InDelta(t, 0.5, result.Probability, 1e-9)
	assert.Equal(t, models.RiskMedium, result.RiskLevel)
}

func TestEngine_CorruptModelFallsBack(t *testing.T) {
	dir := t.TempDir()
	modelPath := filepath.Join(dir, "model.json")
	require.NoError(t, os.WriteFile(modelPath, []byte(`{not json`), 0o644))

	engine := NewEngine(modelPath, filepath.Join(dir, "missing_meta.json"), testLogger())
	engine.Load()

	result := engine.Score(models.PredictionFeatures{MerchantRegretRate: 0.9})

	// Сбой загрузки модели никогда не поднимается наружу - результат
	// считается эвристикой и остается в [0,1]
	assert.Equal(t, models.BackendHeuristic, result.ModelType)
	assert.GreaterOrEqual(t, result.Probability, 0.0)
	assert.LessOrEqual(t, result.Probability, 1.0)
}

func TestEngine_UnknownFeatureInModelFallsBack(t *testing.T) {
	dir := t.TempDir()
	modelPath := filepath.Join(dir, "model.json")
	require.NoError(t, os.WriteFile(modelPath, []byte(`{"weights": {"totally_unknown": 1.0}}`), 0o644))

	engine := NewEngine(modelPath, filepath.Join(dir, "missing_meta.json"), testLogger())
	engine.Load()

	result := engine.Score(models.PredictionFeatures{})

	assert.Equal(t, models.BackendHeuristic, result.ModelType)
}

func TestEngine_RuntimeFailureFallsBack(t *testing.T) {
	engine := newHeuristicEngine(t)

	// Подменяем бэкенд на падающий: Score обязан деградировать до эвристики
	engine.mu.Lock()
	engine.scorer = failingScorer{}
	engine.mu.Unlock()

	result := engine.Score(models.PredictionFeatures{MerchantRegretRate: 0.9, DistanceToMerchant: 10})

	assert.Equal(t, models.BackendHeuristic, result.ModelType)
	assert.InDelta(t, 0.6, result.Probability, 1e-9)
}

func TestEngine_ReloadSwapsModel(t *testing.T) {
	dir := t.TempDir()
	modelPath := filepath.Join(dir, "model.json")

	engine := NewEngine(modelPath, filepath.Join(dir, "missing_meta.json"), testLogger())
	engine.Load()
	assert.Equal(t, models.BackendHeuristic, engine.Score(models.PredictionFeatures{}).ModelType)

	// Файл модели появился - после Reload работает модельный бэкенд
	require.NoError(t, os.WriteFile(modelPath, []byte(`{"weights": {"budget_utilization": 1.0}, "bias": -1.0}`), 0o644))
	engine.Reload()

	assert.Equal(t, models.BackendModel, engine.Score(models.PredictionFeatures{}).ModelType)
}

type failingScorer struct{}

func (failingScorer) Probability(models.PredictionFeatures) (float64, error) {
	return 0, fmt.Errorf("backend is broken")
}

func (failingScorer) Name() string { return models.BackendModel }
