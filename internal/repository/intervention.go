package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/pigeon_guard/internal/models"
	"github.com/shenikar/pigeon_guard/internal/service"
)

const (
	settingsCacheKey = "pigeon:settings"
	settingsCacheTTL = 5 * time.Minute
)

type InterventionRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
}

func NewInterventionRepository(db *pgxpool.Pool, redisClient *redis.Client) service.InterventionRepository {
	return &InterventionRepository{
		db:          db,
		redisClient: redisClient,
	}
}

// AppendIntervention добавляет запись о сработавшем вмешательстве в журнал.
// Журнал append-only, id выдается базой и никогда не переиспользуется.
func (r *InterventionRepository) AppendIntervention(ctx context.Context, record *models.InterventionRecord) (int64, error) {
	query := `
		INSERT INTO interventions (
			danger_zone_id, latitude, longitude, predicted_probability,
			predicted_score, risk_level, merchant_category, budget_utilization,
			hour_of_day, notification_sent, notification_message
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at;
	`
	err := r.db.QueryRow(ctx, query,
		record.DangerZoneID,
		record.Latitude,
		record.Longitude,
		record.PredictedProbability,
		record.PredictedScore,
		record.RiskLevel,
		nullableString(record.MerchantCategory),
		record.BudgetUtilization,
		record.HourOfDay,
		record.NotificationSent,
		nullableString(record.NotificationMessage),
	).Scan(&record.ID, &record.CreatedAt)
	if err != nil {
		return 0, fmt.Errorf("failed to append intervention: %w", err)
	}
	return record.ID, nil
}

// SetFeedback записывает обратную связь пользователя. Повторный вызов
// перезаписывает значение; несуществующий id дает ErrInterventionNotFound.
func (r *InterventionRepository) SetFeedback(ctx context.Context, id int64, response string) error {
	query := `
		UPDATE interventions SET
			user_response = $1
		WHERE id = $2;
	`
	cmdTag, err := r.db.Exec(ctx, query, response, id)
	if err != nil {
		return fmt.Errorf("failed to set intervention feedback: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("intervention %d: %w", id, service.ErrInterventionNotFound)
	}
	return nil
}

// ListInterventions возвращает журнал вмешательств с пагинацией, новые первыми
func (r *InterventionRepository) ListInterventions(ctx context.Context, page, pageSize int) ([]*models.InterventionRecord, error) {
	// рассчитываем смещение
	offset := (page - 1) * pageSize

	query := `
		SELECT
			id,
			danger_zone_id,
			latitude,
			longitude,
			predicted_probability,
			predicted_score,
			risk_level,
			COALESCE(merchant_category, ''),
			budget_utilization,
			hour_of_day,
			notification_sent,
			COALESCE(notification_message, ''),
			COALESCE(user_response, ''),
			created_at
		FROM interventions
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.db.Query(ctx, query, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list interventions: %w", err)
	}
	defer rows.Close()

	records := make([]*models.InterventionRecord, 0)
	for rows.Next() {
		record := &models.InterventionRecord{}
		err := rows.Scan(
			&record.ID,
			&record.DangerZoneID,
			&record.Latitude,
			&record.Longitude,
			&record.PredictedProbability,
			&record.PredictedScore,
			&record.RiskLevel,
			&record.MerchantCategory,
			&record.BudgetUtilization,
			&record.HourOfDay,
			&record.NotificationSent,
			&record.NotificationMessage,
			&record.UserResponse,
			&record.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan intervention row: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return records, nil
}

// GetSettings возвращает настройки пользователя; если строка еще не создана,
// возвращаются значения по умолчанию
func (r *InterventionRepository) GetSettings(ctx context.Context) (*models.UserSettings, error) {
	settings := &models.UserSettings{}
	query := `
		SELECT
			monitoring_enabled,
			notification_threshold,
			proximity_radius_meters,
			quiet_hours_start,
			quiet_hours_end,
			updated_at
		FROM user_settings
		WHERE id = 1;
	`
	err := r.db.QueryRow(ctx, query).Scan(
		&settings.MonitoringEnabled,
		&settings.NotificationThreshold,
		&settings.ProximityRadiusMeters,
		&settings.QuietHoursStart,
		&settings.QuietHoursEnd,
		&settings.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.DefaultUserSettings(), nil
		}
		return nil, fmt.Errorf("failed to get user settings: %w", err)
	}
	return settings, nil
}

// UpdateSettings применяет частичное обновление настроек: незаданные поля
// остаются нетронутыми, строка создается лениво с дефолтами
func (r *InterventionRepository) UpdateSettings(ctx context.Context, patch models.UserSettingsPatch) (*models.UserSettings, error) {
	settings := &models.UserSettings{}
	query := `
		INSERT INTO user_settings (
			id, monitoring_enabled, notification_threshold,
			proximity_radius_meters, quiet_hours_start, quiet_hours_end, updated_at
		) VALUES (
			1,
			COALESCE($1, FALSE),
			COALESCE($2, 0.70),
			COALESCE($3, 50.0),
			COALESCE($4, 23),
			COALESCE($5, 7),
			NOW()
		)
		ON CONFLICT (id) DO UPDATE SET
			monitoring_enabled      = COALESCE($1, user_settings.monitoring_enabled),
			notification_threshold  = COALESCE($2, user_settings.notification_threshold),
			proximity_radius_meters = COALESCE($3, user_settings.proximity_radius_meters),
			quiet_hours_start       = COALESCE($4, user_settings.quiet_hours_start),
			quiet_hours_end         = COALESCE($5, user_settings.quiet_hours_end),
			updated_at              = NOW()
		RETURNING
			monitoring_enabled,
			notification_threshold,
			proximity_radius_meters,
			quiet_hours_start,
			quiet_hours_end,
			updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		patch.MonitoringEnabled,
		patch.NotificationThreshold,
		patch.ProximityRadiusMeters,
		patch.QuietHoursStart,
		patch.QuietHoursEnd,
	).Scan(
		&settings.MonitoringEnabled,
		&settings.NotificationThreshold,
		&settings.ProximityRadiusMeters,
		&settings.QuietHoursStart,
		&settings.QuietHoursEnd,
		&settings.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update user settings: %w", err)
	}
	return settings, nil
}

// GetSettingsFromCache пытается получить настройки из Redis
func (r *InterventionRepository) GetSettingsFromCache(ctx context.Context) (*models.UserSettings, error) {
	val, err := r.redisClient.Get(ctx, settingsCacheKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get settings from cache: %w", err)
	}

	settings := &models.UserSettings{}
	if err := json.Unmarshal(val, settings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal settings from cache: %w", err)
	}
	return settings, nil
}

// SetSettingsCache сохраняет настройки в Redis
func (r *InterventionRepository) SetSettingsCache(ctx context.Context, settings *models.UserSettings) error {
	val, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, settingsCacheKey, val, settingsCacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set settings in cache: %w", err)
	}
	return nil
}

// InvalidateSettingsCache удаляет настройки из Redis кэша
func (r *InterventionRepository) InvalidateSettingsCache(ctx context.Context) error {
	if err := r.redisClient.Del(ctx, settingsCacheKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate settings cache: %w", err)
	}
	return nil
}

// nullableString превращает пустую строку в NULL
func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
