package geofence

import (
	"math"
	"sync"

	"github.com/shenikar/pigeon_guard/internal/models"
)

// earthRadiusKm - радиус Земли для формулы гаверсинусов
const earthRadiusKm = 6371.0

// Index - in-memory индекс опасных зон. Чтения не блокируют друг друга,
// Load полностью заменяет набор зон.
type Index struct {
	mu    sync.RWMutex
	zones []models.DangerZone
}

func NewIndex() *Index {
	return &Index{}
}

// Load заменяет набор зон целиком. Повторный вызов идемпотентен:
// это replace, а не merge.
func (i *Index) Load(zones []models.DangerZone) {
	copied := make([]models.DangerZone, len(zones))
	copy(copied, zones)

	i.mu.Lock()
	i.zones = copied
	i.mu.Unlock()
}

// Lookup возвращает первую зону в порядке загрузки, центр которой находится
// не дальше radiusKm от точки (lat, lng). Возвращается именно первое
// совпадение, а не ближайшая зона - порядок обхода стабилен, поэтому
// результат детерминирован. Собственный радиус зоны при поиске не участвует,
// матчинг управляется radiusKm вызывающей стороны.
func (i *Index) Lookup(lat, lng, radiusKm float64) (*models.ZoneMatch, bool) {
	i.mu.RLock()
	defer i.mu.RUnlock()

	for _, zone := range i.zones {
		distance := haversineKm(lat, lng, zone.Latitude, zone.Longitude)
		if distance <= radiusKm {
			return &models.ZoneMatch{
				Zone:       zone,
				DistanceKm: roundKm(distance),
			}, true
		}
	}
	return nil, false
}

// Zones возвращает копию текущего набора зон
func (i *Index) Zones() []models.DangerZone {
	i.mu.RLock()
	defer i.mu.RUnlock()

	zones := make([]models.DangerZone, len(i.zones))
	copy(zones, i.zones)
	return zones
}

// Count возвращает количество загруженных зон
func (i *Index) Count() int {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return len(i.zones)
}

// haversineKm вычисляет дистанцию по дуге большого круга в километрах
func haversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := radians(lat2 - lat1)
	dLng := radians(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(radians(lat1))*math.Cos(radians(lat2))*
			math.Sin(dLng/2)*math.Sin(dLng/2)

	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// roundKm округляет дистанцию до трех знаков, как отдает её API
func roundKm(km float64) float64 {
	return math.Round(km*1000) / 1000
}
