package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/pigeon_guard/internal/config"
	"github.com/shenikar/pigeon_guard/internal/geofence"
	"github.com/shenikar/pigeon_guard/internal/metrics"
	"github.com/shenikar/pigeon_guard/internal/models"
	"github.com/shenikar/pigeon_guard/internal/notifier"
	"github.com/shenikar/pigeon_guard/internal/predictor"
	"github.com/shenikar/pigeon_guard/internal/webhook"
	"github.com/sirupsen/logrus"
)

// ErrInterventionNotFound возвращается при обратной связи на несуществующий id
var ErrInterventionNotFound = errors.New("intervention not found")

// Пороги гейта вмешательств
const (
	// budgetNotifyFloor - фиксированный нижний порог утилизации бюджета для
	// уведомления; не зависит от настраиваемого порога nudge
	budgetNotifyFloor = 0.60
	// zoneOverrideFloor - вероятность, начиная с которой зона форсирует nudge
	zoneOverrideFloor = 0.50
)

// Дефолты признаков вне опасной зоны (медианный контекст)
const (
	outOfZoneDistanceMeters = 500.0
	medianRegretRate        = 0.5
)

// InterventionRepository определяет контракт для работы с журналом
// вмешательств и настройками пользователя
type InterventionRepository interface {
	AppendIntervention(ctx context.Context, record *models.InterventionRecord) (int64, error)
	SetFeedback(ctx context.Context, id int64, response string) error
	ListInterventions(ctx context.Context, page, pageSize int) ([]*models.InterventionRecord, error)
	GetSettings(ctx context.Context) (*models.UserSettings, error)
	UpdateSettings(ctx context.Context, patch models.UserSettingsPatch) (*models.UserSettings, error)
	GetSettingsFromCache(ctx context.Context) (*models.UserSettings, error)
	SetSettingsCache(ctx context.Context, settings *models.UserSettings) error
	InvalidateSettingsCache(ctx context.Context) error
}

// InterventionService определяет контракт бизнес-логики движка вмешательств
type InterventionService interface {
	CheckLocation(ctx context.Context, lat, lng, budgetUtilization float64, merchantCategory string) (*models.Decision, error)
	GetSettings(ctx context.Context) (*models.UserSettings, error)
	UpdateSettings(ctx context.Context, patch models.UserSettingsPatch) (*models.UserSettings, error)
	SubmitFeedback(ctx context.Context, interventionID int64, response string) error
	ListInterventions(ctx context.Context, page, pageSize int) ([]*models.InterventionRecord, error)
	ListDangerZones() []models.DangerZone
	ReloadDangerZones(ctx context.Context) (int, error)
}

type interventionService struct {
	repo      InterventionRepository
	geo       *geofence.Index
	engine    *predictor.Engine
	renderer  notifier.Renderer
	publisher webhook.Publisher
	logger    *logrus.Logger
	cfg       *config.Config

	// now инжектируется в тестах для проверки тихих часов
	now func() time.Time
}

func NewInterventionService(
	repo InterventionRepository,
	geo *geofence.Index,
	engine *predictor.Engine,
	renderer notifier.Renderer,
	publisher webhook.Publisher,
	logger *logrus.Logger,
	cfg *config.Config,
) InterventionService {
	return &interventionService{
		repo:      repo,
		geo:       geo,
		engine:    engine,
		renderer:  renderer,
		publisher: publisher,
		logger:    logger,
		cfg:       cfg,
		now:       time.Now,
	}
}

// CheckLocation - гейт вмешательств: превращает событие местоположения в
// решение notify/do-not-notify и при notify фиксирует вмешательство
func (s *interventionService) CheckLocation(ctx context.Context, lat, lng, budgetUtilization float64, merchantCategory string) (*models.Decision, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "intervention",
		"method":  "CheckLocation",
	})
	log.Debug("Checking location for purchase risk")

	settings, err := s.settingsWithCache(ctx, log)
	if err != nil {
		return nil, fmt.Errorf("service: could not load user settings: %w", err)
	}

	decision := &models.Decision{
		MonitoringEnabled: settings.MonitoringEnabled,
	}

	// Шаг 1: выключенный мониторинг обрывает пайплайн сразу
	if !settings.MonitoringEnabled {
		decision.Reason = models.ReasonMonitoringDisabled
		metrics.DecisionsTotal.WithLabelValues(models.ReasonMonitoringDisabled).Inc()
		log.Info("Monitoring disabled, skipping decision pipeline")
		return decision, nil
	}

	now := s.now()
	hour := now.Hour()
	decision.InQuietHours = inQuietHours(hour, settings.QuietHoursStart, settings.QuietHoursEnd)

	// Шаг 2: членство в зоне. Радиус матчинга берется из настроек
	// пользователя (метры -> километры); собственный радиус зоны не участвует.
	match, inZone := s.geo.Lookup(lat, lng, settings.ProximityRadiusMeters/1000.0)
	decision.InDangerZone = inZone
	decision.DangerZone = match

	// Шаг 3: сборка вектора признаков. Вне зоны дистанция и уровень
	// сожалений берутся медианными.
	features := models.PredictionFeatures{
		DistanceToMerchant: outOfZoneDistanceMeters,
		HourOfDay:          float64(hour),
		IsWeekend:          isWeekend(now),
		BudgetUtilization:  budgetUtilization,
		MerchantRegretRate: medianRegretRate,
	}
	if inZone {
		features.DistanceToMerchant = match.DistanceKm * 1000.0
		features.MerchantRegretRate = match.Zone.AvgRegretScore
	}

	// Шаг 4: скоринг
	result := s.engine.Score(features)
	metrics.PredictionsTotal.WithLabelValues(result.ModelType).Inc()

	decision.PredictedProbability = result.Probability
	decision.RegretScore = int(math.Round(result.Probability * 100))
	decision.RiskLevel = result.RiskLevel
	decision.ShouldNudge = result.ShouldNudge
	decision.Threshold = result.Threshold
	decision.ModelType = result.ModelType

	// Шаг 5: правила опасной зоны - эскалация medium -> high и
	// форсированный nudge от вероятности 0.50
	if inZone {
		if decision.RiskLevel == models.RiskMedium {
			decision.RiskLevel = models.RiskHigh
		}
		if !decision.ShouldNudge && decision.PredictedProbability >= zoneOverrideFloor {
			decision.ShouldNudge = true
			decision.NudgeReason = models.NudgeReasonZoneOverride
		}
	}

	// Шаг 6: итоговое решение требует одновременно nudge, зону, отсутствие
	// тихих часов и утилизацию бюджета не ниже фиксированного порога
	decision.ShouldNotify = decision.ShouldNudge &&
		inZone &&
		!decision.InQuietHours &&
		budgetUtilization >= budgetNotifyFloor

	if !decision.ShouldNotify {
		decision.Reason = notNotifyingReason(decision, budgetUtilization)
		metrics.DecisionsTotal.WithLabelValues(decision.Reason).Inc()
		log.WithFields(logrus.Fields{
			"risk_level": decision.RiskLevel,
			"reason":     decision.Reason,
		}).Info("Location check completed without notification")
		return decision, nil
	}

	// Шаг 7: уведомление. Отказ генератора текста или журнала не должен
	// ломать уже вычисленное решение.
	s.fireIntervention(ctx, decision, lat, lng, budgetUtilization, merchantCategory, hour, log)
	metrics.DecisionsTotal.WithLabelValues("notified").Inc()

	log.WithFields(logrus.Fields{
		"risk_level":      decision.RiskLevel,
		"zone_id":         decision.DangerZone.Zone.ID,
		"intervention_id": decision.InterventionID,
	}).Info("Intervention fired")
	return decision, nil
}

// fireIntervention рендерит текст уведомления и добавляет запись в журнал
func (s *interventionService) fireIntervention(
	ctx context.Context,
	decision *models.Decision,
	lat, lng, budgetUtilization float64,
	merchantCategory string,
	hour int,
	log *logrus.Entry,
) {
	zone := decision.DangerZone.Zone

	nc := notifier.NotificationContext{
		ZoneName:             zone.MerchantName,
		Category:             zone.MerchantCategory,
		RegretScore:          decision.RegretScore,
		BudgetUtilizationPct: int(math.Round(budgetUtilization * 100)),
		Hour:                 hour,
	}

	message, err := s.renderer.Render(ctx, nc)
	if err != nil {
		log.WithError(err).Warn("Notification renderer failed, using fallback template")
		metrics.NotifierFallbacksTotal.Inc()
		message = notifier.FallbackMessage(nc)
	}
	decision.NotificationMessage = message

	category := merchantCategory
	if category == "" {
		category = zone.MerchantCategory
	}

	record := &models.InterventionRecord{
		DangerZoneID:         zone.ID,
		Latitude:             lat,
		Longitude:            lng,
		PredictedProbability: decision.PredictedProbability,
		PredictedScore:       decision.RegretScore,
		RiskLevel:            decision.RiskLevel,
		MerchantCategory:     category,
		BudgetUtilization:    &budgetUtilization,
		HourOfDay:            &hour,
		NotificationSent:     true,
		NotificationMessage:  message,
	}

	id, err := s.repo.AppendIntervention(ctx, record)
	if err != nil {
		// Недоступный журнал не отменяет решение - уведомление уже показано
		log.WithError(err).Error("Failed to append intervention record")
		return
	}
	decision.InterventionID = id

	event := webhook.InterventionEvent{
		EventID:              uuid.New(),
		InterventionID:       id,
		DangerZoneID:         zone.ID,
		Latitude:             lat,
		Longitude:            lng,
		PredictedProbability: decision.PredictedProbability,
		RiskLevel:            decision.RiskLevel,
		NotificationMessage:  message,
		Timestamp:            s.now().UTC(),
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.WithError(err).Error("Failed to publish intervention event")
	}
}

// settingsWithCache читает настройки через Redis-кэш
func (s *interventionService) settingsWithCache(ctx context.Context, log *logrus.Entry) (*models.UserSettings, error) {
	cached, err := s.repo.GetSettingsFromCache(ctx)
	if err != nil {
		log.WithError(err).Warn("Settings cache read failed, falling back to database")
	}
	if cached != nil {
		return cached, nil
	}

	settings, err := s.repo.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.repo.SetSettingsCache(ctx, settings); err != nil {
		log.WithError(err).Warn("Failed to cache user settings")
	}
	return settings, nil
}

// GetSettings возвращает текущие настройки пользователя (с ленивыми дефолтами)
func (s *interventionService) GetSettings(ctx context.Context) (*models.UserSettings, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "intervention",
		"method":  "GetSettings",
	})

	settings, err := s.settingsWithCache(ctx, log)
	if err != nil {
		log.WithError(err).Error("Failed to get settings from repository")
		return nil, fmt.Errorf("service: could not get settings: %w", err)
	}
	return settings, nil
}

// UpdateSettings применяет частичное обновление настроек и сбрасывает кэш
func (s *interventionService) UpdateSettings(ctx context.Context, patch models.UserSettingsPatch) (*models.UserSettings, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "intervention",
		"method":  "UpdateSettings",
	})
	log.Info("Updating user settings")

	settings, err := s.repo.UpdateSettings(ctx, patch)
	if err != nil {
		log.WithError(err).Error("Failed to update settings in repository")
		return nil, fmt.Errorf("service: could not update settings: %w", err)
	}

	if err := s.repo.InvalidateSettingsCache(ctx); err != nil {
		log.WithError(err).Warn("Failed to invalidate settings cache")
	}

	log.WithField("monitoring_enabled", settings.MonitoringEnabled).Info("User settings updated")
	return settings, nil
}

// SubmitFeedback записывает обратную связь по вмешательству. Повторная
// отправка перезаписывает предыдущее значение.
func (s *interventionService) SubmitFeedback(ctx context.Context, interventionID int64, response string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":         "intervention",
		"method":          "SubmitFeedback",
		"intervention_id": interventionID,
	})
	log.Info("Submitting intervention feedback")

	switch response {
	case models.FeedbackHelpful, models.FeedbackNotHelpful, models.FeedbackIgnored:
	default:
		return fmt.Errorf("service: invalid feedback response %q", response)
	}

	if err := s.repo.SetFeedback(ctx, interventionID, response); err != nil {
		log.WithError(err).Warn("Failed to set intervention feedback")
		return fmt.Errorf("service: could not set feedback: %w", err)
	}

	metrics.FeedbackTotal.WithLabelValues(response).Inc()
	log.Info("Intervention feedback recorded")
	return nil
}

// ListInterventions возвращает журнал вмешательств с пагинацией
func (s *interventionService) ListInterventions(ctx context.Context, page, pageSize int) ([]*models.InterventionRecord, error) {
	if page < 1 {
		page = 1
	}

	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	log := s.logger.WithFields(logrus.Fields{
		"service":   "intervention",
		"method":    "ListInterventions",
		"page":      page,
		"page_size": pageSize,
	})

	records, err := s.repo.ListInterventions(ctx, page, pageSize)
	if err != nil {
		log.WithError(err).Error("Failed to list interventions from repository")
		return nil, fmt.Errorf("service: could not list interventions: %w", err)
	}

	log.WithField("count", len(records)).Debug("Interventions listed")
	return records, nil
}

// ListDangerZones возвращает текущий набор опасных зон
func (s *interventionService) ListDangerZones() []models.DangerZone {
	return s.geo.Zones()
}

// ReloadDangerZones перечитывает датасет зон и заменяет индекс целиком
func (s *interventionService) ReloadDangerZones(ctx context.Context) (int, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "intervention",
		"method":  "ReloadDangerZones",
	})
	log.Info("Reloading danger zone dataset")

	count, err := geofence.LoadZonesFromFile(s.geo, s.cfg.DangerZonesPath, s.logger)
	if err != nil {
		log.WithError(err).Error("Failed to reload danger zones")
		return 0, fmt.Errorf("service: could not reload danger zones: %w", err)
	}
	return count, nil
}

// inQuietHours проверяет попадание часа в тихое окно с учетом перехода через
// полночь: start > end означает окно, охватывающее полночь. Пустое окно
// (start == end) никогда не считается тихим.
func inQuietHours(hour, start, end int) bool {
	if start == end {
		return false
	}
	if start > end {
		return hour >= start || hour < end
	}
	return hour >= start && hour < end
}

func isWeekend(t time.Time) float64 {
	switch t.Weekday() {
	case time.Saturday, time.Sunday:
		return 1
	}
	return 0
}

// notNotifyingReason выбирает причину отказа от уведомления
func notNotifyingReason(decision *models.Decision, budgetUtilization float64) string {
	switch {
	case !decision.InDangerZone:
		return models.ReasonNotInDangerZone
	case !decision.ShouldNudge:
		return models.ReasonBelowThreshold
	case decision.InQuietHours:
		return models.ReasonQuietHours
	case budgetUtilization < budgetNotifyFloor:
		return models.ReasonBelowBudgetFloor
	}
	return ""
}
