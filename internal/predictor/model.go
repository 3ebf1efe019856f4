package predictor

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/shenikar/pigeon_guard/internal/models"
)

// modelFile - экспорт обученного бинарного классификатора: логистическая
// регрессия с весами по именам признаков
type modelFile struct {
	Weights map[string]float64 `json:"weights"`
	Bias    float64            `json:"bias"`
}

// LinearScorer - скорер на обученной модели. Веса привязаны к именам
// признаков, поэтому порядок колонок в файле не важен.
type LinearScorer struct {
	weights map[string]float64
	bias    float64
}

// LoadLinearScorer читает файл модели и валидирует набор весов против
// канонического списка признаков
func LoadLinearScorer(path string) (*LinearScorer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read model file: %w", err)
	}

	var mf modelFile
	if err := json.Unmarshal(data, &mf); err != nil {
		return nil, fmt.Errorf("failed to parse model file: %w", err)
	}

	if len(mf.Weights) == 0 {
		return nil, fmt.Errorf("model file has no weights")
	}
	for name := range mf.Weights {
		if !isKnownFeature(name) {
			return nil, fmt.Errorf("model references unknown feature %q", name)
		}
	}

	return &LinearScorer{weights: mf.Weights, bias: mf.Bias}, nil
}

// Probability вычисляет sigmoid(w*x + b) по каноническому порядку признаков
func (s *LinearScorer) Probability(features models.PredictionFeatures) (float64, error) {
	if len(s.weights) == 0 {
		return 0, fmt.Errorf("model is not loaded")
	}

	z := s.bias
	for _, name := range models.FeatureNames {
		if w, ok := s.weights[name]; ok {
			z += w * features.Value(name)
		}
	}

	p := 1.0 / (1.0 + math.Exp(-z))
	if math.IsNaN(p) || math.IsInf(p, 0) {
		return 0, fmt.Errorf("model produced non-finite probability")
	}
	return clamp01(p), nil
}

func (s *LinearScorer) Name() string {
	return models.BackendModel
}

func isKnownFeature(name string) bool {
	for _, known := range models.FeatureNames {
		if name == known {
			return true
		}
	}
	return false
}
