package models

// DangerZone представляет геозону мерчанта с исторически высоким уровнем сожалений
type DangerZone struct {
	ID               string  `json:"id"`
	MerchantName     string  `json:"merchant_name"`
	Latitude         float64 `json:"lat"`
	Longitude        float64 `json:"lng"`
	RadiusMeters     float64 `json:"radius"`
	MerchantCategory string  `json:"merchant_category"`
	// AvgRegretScore - нормализованный показатель сожалений в диапазоне [0,1]
	AvgRegretScore float64 `json:"avg_regret_score"`
}

// ZoneMatch - результат поиска по геоиндексу: зона и дистанция до её центра
type ZoneMatch struct {
	Zone       DangerZone `json:"zone"`
	DistanceKm float64    `json:"distance_km"`
}
