package geofence

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/shenikar/pigeon_guard/internal/models"
	"github.com/sirupsen/logrus"
)

// defaultZoneRadiusMeters - радиус зоны по умолчанию, если датасет его не задал
const defaultZoneRadiusMeters = 50.0

// zoneRecord - запись внешнего датасета зон, как её производит ML-пайплайн
type zoneRecord struct {
	Merchant    string   `json:"merchant"`
	Lat         float64  `json:"lat"`
	Lng         float64  `json:"lng"`
	Category    string   `json:"category"`
	RegretCount float64  `json:"regret_count"`
	Radius      *float64 `json:"radius,omitempty"`
}

// LoadZonesFromFile читает датасет опасных зон и загружает его в индекс.
// Возвращает количество загруженных зон.
func LoadZonesFromFile(index *Index, path string, log *logrus.Logger) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to read danger zones file: %w", err)
	}

	var records []zoneRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return 0, fmt.Errorf("failed to parse danger zones file: %w", err)
	}

	zones := make([]models.DangerZone, 0, len(records))
	for _, rec := range records {
		zone, err := zoneFromRecord(rec)
		if err != nil {
			return 0, fmt.Errorf("invalid danger zone %q: %w", rec.Merchant, err)
		}
		zones = append(zones, zone)
	}

	index.Load(zones)
	log.WithField("count", len(zones)).Info("Danger zones loaded")
	return len(zones), nil
}

// zoneFromRecord преобразует запись датасета в доменную модель.
// regret_count нормализуется делением на 100 в показатель [0,1].
func zoneFromRecord(rec zoneRecord) (models.DangerZone, error) {
	if rec.Merchant == "" {
		return models.DangerZone{}, fmt.Errorf("merchant key is required")
	}
	if rec.Lat < -90 || rec.Lat > 90 {
		return models.DangerZone{}, fmt.Errorf("latitude %f out of range [-90,90]", rec.Lat)
	}
	if rec.Lng < -180 || rec.Lng > 180 {
		return models.DangerZone{}, fmt.Errorf("longitude %f out of range [-180,180]", rec.Lng)
	}

	radius := defaultZoneRadiusMeters
	if rec.Radius != nil {
		if *rec.Radius <= 0 {
			return models.DangerZone{}, fmt.Errorf("radius must be positive, got %f", *rec.Radius)
		}
		radius = *rec.Radius
	}

	regret := rec.RegretCount / 100.0
	if regret < 0 {
		regret = 0
	}
	if regret > 1 {
		regret = 1
	}

	return models.DangerZone{
		ID:               rec.Merchant,
		MerchantName:     rec.Merchant,
		Latitude:         rec.Lat,
		Longitude:        rec.Lng,
		RadiusMeters:     radius,
		MerchantCategory: rec.Category,
		AvgRegretScore:   regret,
	}, nil
}
