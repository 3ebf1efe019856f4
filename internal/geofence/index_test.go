package geofence

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/shenikar/pigeon_guard/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testZones() []models.DangerZone {
	return []models.DangerZone{
		{ID: "coffee_corner", MerchantName: "coffee_corner", Latitude: 40.4440, Longitude: -79.9430, RadiusMeters: 50, MerchantCategory: "Food and Drink", AvgRegretScore: 0.72},
		{ID: "mall_outlet", MerchantName: "mall_outlet", Latitude: 40.4441, Longitude: -79.9431, RadiusMeters: 50, MerchantCategory: "Shops", AvgRegretScore: 0.30},
		{ID: "far_bar", MerchantName: "far_bar", Latitude: 41.0000, Longitude: -79.9430, RadiusMeters: 50, MerchantCategory: "Food and Drink", AvgRegretScore: 0.90},
	}
}

func TestLookup_MatchAtCenter(t *testing.T) {
	index := NewIndex()
	index.Load(testZones())

	// Точка ровно в центре зоны обязана совпасть при радиусе 0.05 км
	match, ok := index.Lookup(40.4440, -79.9430, 0.05)

	require.True(t, ok)
	assert.Equal(t, "coffee_corner", match.Zone.ID)
	assert.Equal(t, 0.0, match.DistanceKm)
}

func TestLookup_NoMatchOneKmAway(t *testing.T) {
	index := NewIndex()
	index.Load([]models.DangerZone{
		{ID: "coffee_corner", Latitude: 40.4440, Longitude: -79.9430},
	})

	// Сдвиг на ~1 км к северу (0.009 градуса широты)
	_, ok := index.Lookup(40.4530, -79.9430, 0.05)

	assert.False(t, ok)
}

func TestLookup_FirstMatchInLoadOrder(t *testing.T) {
	index := NewIndex()
	index.Load(testZones())

	// Обе первые зоны попадают в радиус; возвращается первая по порядку
	// загрузки, а не ближайшая
	match, ok := index.Lookup(40.4441, -79.9431, 0.5)

	require.True(t, ok)
	assert.Equal(t, "coffee_corner", match.Zone.ID)
}

func TestLoad_ReplacesZoneSet(t *testing.T) {
	index := NewIndex()
	index.Load(testZones())
	require.Equal(t, 3, index.Count())

	// Повторная загрузка - полная замена, а не merge
	index.Load([]models.DangerZone{
		{ID: "only_one", Latitude: 10.0, Longitude: 10.0},
	})

	assert.Equal(t, 1, index.Count())
	_, ok := index.Lookup(40.4440, -79.9430, 0.05)
	assert.False(t, ok)
}

func TestLookup_EmptyIndex(t *testing.T) {
	index := NewIndex()

	_, ok := index.Lookup(40.4440, -79.9430, 100)

	assert.False(t, ok)
}

func TestHaversine_KnownDistance(t *testing.T) {
	// Москва - Санкт-Петербург, ~634 км
	distance := haversineKm(55.7558, 37.6173, 59.9311, 30.3609)

	assert.InDelta(t, 634.0, distance, 5.0)
}

func TestLoadZonesFromFile_Success(t *testing.T) {
	log := logrus.New()
	log.SetOutput(&bytes.Buffer{})

	dataset := `[
		{"merchant": "coffee_corner", "lat": 40.444, "lng": -79.943, "category": "Food and Drink", "regret_count": 72},
		{"merchant": "mega_mall", "lat": 40.45, "lng": -79.95, "category": "Shops", "regret_count": 185, "radius": 120}
	]`
	path := filepath.Join(t.TempDir(), "danger_zones.json")
	require.NoError(t, os.WriteFile(path, []byte(dataset), 0o644))

	index := NewIndex()
	count, err := LoadZonesFromFile(index, path, log)

	require.NoError(t, err)
	assert.Equal(t, 2, count)

	zones := index.Zones()
	require.Len(t, zones, 2)
	// regret_count нормализуется делением на 100 и клампится в [0,1]
	assert.InDelta(t, 0.72, zones[0].AvgRegretScore, 1e-9)
	assert.Equal(t, 1.0, zones[1].AvgRegretScore)
	// Радиус по умолчанию 50 м, явный радиус сохраняется
	assert.Equal(t, 50.0, zones[0].RadiusMeters)
	assert.Equal(t, 120.0, zones[1].RadiusMeters)
	assert.Equal(t, "Food and Drink", zones[0].MerchantCategory)
}

func TestLoadZonesFromFile_InvalidLatitude(t *testing.T) {
	log := logrus.New()
	log.SetOutput(&bytes.Buffer{})

	dataset := `[{"merchant": "broken", "lat": 95.0, "lng": 0.0, "regret_count": 10}]`
	path := filepath.Join(t.TempDir(), "danger_zones.json")
	require.NoError(t, os.WriteFile(path, []byte(dataset), 0o644))

	index := NewIndex()
	_, err := LoadZonesFromFile(index, path, log)

	require.Error(t, err)
	assert.ErrorContains(t, err, "out of range")
	// Индекс не должен быть частично заполнен после ошибки
	assert.Equal(t, 0, index.Count())
}

func TestLoadZonesFromFile_MissingFile(t *testing.T) {
	log := logrus.New()
	log.SetOutput(&bytes.Buffer{})

	index := NewIndex()
	_, err := LoadZonesFromFile(index, filepath.Join(t.TempDir(), "missing.json"), log)

	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to read danger zones file")
}
