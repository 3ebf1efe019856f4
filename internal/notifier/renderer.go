package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// NotificationContext - структурированные факты, из которых внешний
// генератор собирает текст уведомления
type NotificationContext struct {
	ZoneName             string `json:"zone_name"`
	Category             string `json:"category"`
	RegretScore          int    `json:"regret_score"`
	BudgetUtilizationPct int    `json:"budget_utilization_pct"`
	Hour                 int    `json:"hour"`
}

// Renderer определяет контракт внешнего генератора текста уведомлений
type Renderer interface {
	Render(ctx context.Context, nc NotificationContext) (string, error)
}

// HTTPRenderer - клиент внешнего генератора текста. Вызов ограничен
// таймаутом: решение гейта не должно ждать генерацию дольше него.
type HTTPRenderer struct {
	url        string
	httpClient *http.Client
}

func NewHTTPRenderer(url string, timeout time.Duration) *HTTPRenderer {
	return &HTTPRenderer{
		url: url,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type renderResponse struct {
	Message string `json:"message"`
}

// Render запрашивает текст у внешнего генератора
func (r *HTTPRenderer) Render(ctx context.Context, nc NotificationContext) (string, error) {
	if r.url == "" {
		return "", fmt.Errorf("notifier URL is not configured")
	}

	payload, err := json.Marshal(nc)
	if err != nil {
		return "", fmt.Errorf("failed to marshal notification context: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.url, bytes.NewBuffer(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create render request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call notification renderer: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("notification renderer returned status %d", resp.StatusCode)
	}

	var rendered renderResponse
	if err := json.NewDecoder(resp.Body).Decode(&rendered); err != nil {
		return "", fmt.Errorf("failed to decode renderer response: %w", err)
	}
	if rendered.Message == "" {
		return "", fmt.Errorf("notification renderer returned empty message")
	}
	return rendered.Message, nil
}

// FallbackMessage - детерминированный шаблон на случай отказа генератора.
// Встраивает те же числовые факты, что получил бы генератор.
func FallbackMessage(nc NotificationContext) string {
	return fmt.Sprintf(
		"Heads up: you're near %s (%s). Past purchases here scored %d/100 on regret, and your budget is %d%% used at %02d:00. Maybe give it ten minutes?",
		nc.ZoneName, nc.Category, nc.RegretScore, nc.BudgetUtilizationPct, nc.Hour,
	)
}
