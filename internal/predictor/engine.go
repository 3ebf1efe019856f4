package predictor

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/shenikar/pigeon_guard/internal/models"
	"github.com/sirupsen/logrus"
)

// defaultThreshold - порог nudge по умолчанию, если метаданные модели не заданы
const defaultThreshold = 0.70

// Границы уровней риска. Фиксированы и не зависят от порога nudge.
const (
	highRiskBound   = 0.80
	mediumRiskBound = 0.50
)

// metaFile - метаданные обученной модели
type metaFile struct {
	FeatureNames []string `json:"feature_names"`
	Threshold    float64  `json:"threshold"`
}

// Engine владеет текущим бэкендом скоринга. Бэкенд выбирается один раз при
// загрузке; эвристика остается фолбэком на случай отказа модели в рантайме.
type Engine struct {
	mu        sync.RWMutex
	scorer    Scorer
	fallback  *HeuristicScorer
	threshold float64

	modelPath string
	metaPath  string
	logger    *logrus.Logger
	loadOnce  sync.Once
}

func NewEngine(modelPath, metaPath string, logger *logrus.Logger) *Engine {
	return &Engine{
		fallback:  NewHeuristicScorer(),
		threshold: defaultThreshold,
		modelPath: modelPath,
		metaPath:  metaPath,
		logger:    logger,
	}
}

// Load инициализирует движок ровно один раз; конкурирующие первые вызовы
// ждут завершения загрузки. Отказ загрузки модели не является ошибкой:
// движок деградирует до эвристики.
func (e *Engine) Load() {
	e.loadOnce.Do(e.load)
}

// Reload принудительно перечитывает модель и метаданные. Замена атомарна
// для конкурентных Score.
func (e *Engine) Reload() {
	e.load()
}

func (e *Engine) load() {
	log := e.logger.WithField("component", "predictor")

	threshold := defaultThreshold
	if meta, err := readMeta(e.metaPath); err != nil {
		log.WithError(err).Warn("No model metadata, using default threshold")
	} else {
		if meta.Threshold > 0 {
			threshold = meta.Threshold
		}
		log.WithFields(logrus.Fields{
			"features":  len(meta.FeatureNames),
			"threshold": threshold,
		}).Info("Model metadata loaded")
	}

	var scorer Scorer
	linear, err := LoadLinearScorer(e.modelPath)
	if err != nil {
		log.WithError(err).Warn("Model unavailable, using heuristic scorer")
		scorer = e.fallback
	} else {
		log.Info("Trained model loaded")
		scorer = linear
	}

	e.mu.Lock()
	e.scorer = scorer
	e.threshold = threshold
	e.mu.Unlock()
}

// Score превращает вектор признаков в вероятность, уровень риска и флаг
// nudge. Любой сбой модельного бэкенда приводит к пересчету эвристикой,
// наружу ошибка не поднимается; ModelType честно отражает исполненный путь.
func (e *Engine) Score(features models.PredictionFeatures) models.PredictionResult {
	e.Load()

	e.mu.RLock()
	scorer := e.scorer
	threshold := e.threshold
	e.mu.RUnlock()

	probability, err := scorer.Probability(features)
	modelType := scorer.Name()
	if err != nil {
		e.logger.WithError(err).Warn("Model scoring failed, falling back to heuristic")
		probability, _ = e.fallback.Probability(features)
		modelType = e.fallback.Name()
	}

	return models.PredictionResult{
		Probability: probability,
		RiskLevel:   riskLevelFor(probability),
		ShouldNudge: probability >= threshold,
		Threshold:   threshold,
		ModelType:   modelType,
	}
}

// Threshold возвращает текущий порог nudge
func (e *Engine) Threshold() float64 {
	e.Load()
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.threshold
}

func riskLevelFor(probability float64) models.RiskLevel {
	switch {
	case probability >= highRiskBound:
		return models.RiskHigh
	case probability >= mediumRiskBound:
		return models.RiskMedium
	default:
		return models.RiskLow
	}
}

func readMeta(path string) (*metaFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read model metadata: %w", err)
	}
	var meta metaFile
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("failed to parse model metadata: %w", err)
	}
	return &meta, nil
}
