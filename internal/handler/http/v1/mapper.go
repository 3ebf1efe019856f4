package v1

import "github.com/shenikar/pigeon_guard/internal/models"

// DTOToSettingsPatch преобразует DTO обновления настроек в доменный патч
func DTOToSettingsPatch(dto UpdateSettingsRequest) models.UserSettingsPatch {
	return models.UserSettingsPatch{
		MonitoringEnabled:     dto.MonitoringEnabled,
		NotificationThreshold: dto.NotificationThreshold,
		ProximityRadiusMeters: dto.ProximityRadiusMeters,
		QuietHoursStart:       dto.QuietHoursStart,
		QuietHoursEnd:         dto.QuietHoursEnd,
	}
}

// ModelToSettingsResponse преобразует доменную модель настроек в DTO для ответа
func ModelToSettingsResponse(model *models.UserSettings) *SettingsResponse {
	return &SettingsResponse{
		MonitoringEnabled:     model.MonitoringEnabled,
		NotificationThreshold: model.NotificationThreshold,
		ProximityRadiusMeters: model.ProximityRadiusMeters,
		QuietHoursStart:       model.QuietHoursStart,
		QuietHoursEnd:         model.QuietHoursEnd,
		UpdatedAt:             model.UpdatedAt,
	}
}

// ModelToDangerZoneResponse преобразует доменную модель зоны в DTO для ответа
func ModelToDangerZoneResponse(model models.DangerZone) *DangerZoneResponse {
	return &DangerZoneResponse{
		ID:               model.ID,
		MerchantName:     model.MerchantName,
		Latitude:         model.Latitude,
		Longitude:        model.Longitude,
		RadiusMeters:     model.RadiusMeters,
		MerchantCategory: model.MerchantCategory,
		AvgRegretScore:   model.AvgRegretScore,
	}
}

// ModelsToDangerZoneResponses преобразует слайс зон в слайс DTO
func ModelsToDangerZoneResponses(zones []models.DangerZone) []*DangerZoneResponse {
	responses := make([]*DangerZoneResponse, len(zones))
	for i, zone := range zones {
		responses[i] = ModelToDangerZoneResponse(zone)
	}
	return responses
}

// ModelToDecisionResponse преобразует решение гейта в DTO для ответа
func ModelToDecisionResponse(model *models.Decision) *DecisionResponse {
	resp := &DecisionResponse{
		MonitoringEnabled:    model.MonitoringEnabled,
		InDangerZone:         model.InDangerZone,
		PredictedProbability: model.PredictedProbability,
		RegretScore:          model.RegretScore,
		RiskLevel:            string(model.RiskLevel),
		ShouldNudge:          model.ShouldNudge,
		ShouldNotify:         model.ShouldNotify,
		InQuietHours:         model.InQuietHours,
		ModelType:            model.ModelType,
		Threshold:            model.Threshold,
		NudgeReason:          model.NudgeReason,
		Reason:               model.Reason,
		NotificationMessage:  model.NotificationMessage,
		InterventionID:       model.InterventionID,
	}

	if model.DangerZone != nil {
		zone := ModelToDangerZoneResponse(model.DangerZone.Zone)
		zone.DistanceKm = model.DangerZone.DistanceKm
		resp.DangerZone = zone
	}
	return resp
}

// ModelToInterventionResponse преобразует запись журнала в DTO для ответа
func ModelToInterventionResponse(model *models.InterventionRecord) *InterventionResponse {
	return &InterventionResponse{
		ID:                   model.ID,
		DangerZoneID:         model.DangerZoneID,
		Latitude:             model.Latitude,
		Longitude:            model.Longitude,
		PredictedProbability: model.PredictedProbability,
		PredictedScore:       model.PredictedScore,
		RiskLevel:            string(model.RiskLevel),
		MerchantCategory:     model.MerchantCategory,
		NotificationSent:     model.NotificationSent,
		NotificationMessage:  model.NotificationMessage,
		UserResponse:         model.UserResponse,
		CreatedAt:            model.CreatedAt,
	}
}

// ModelsToInterventionResponses преобразует слайс записей в слайс DTO
func ModelsToInterventionResponses(records []*models.InterventionRecord) []*InterventionResponse {
	responses := make([]*InterventionResponse, len(records))
	for i, record := range records {
		responses[i] = ModelToInterventionResponse(record)
	}
	return responses
}
