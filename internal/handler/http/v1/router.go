package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Открытые маршруты: проверка местоположения зовется с устройства на
	// каждое событие геофенса, список зон нужен клиенту для их регистрации
	api.POST("/location/check", h.checkLocation)
	api.GET("/zones", h.listDangerZones)
	api.GET("/system/health", h.healthCheck)

	// Защищенные маршруты: настройки, журнал и администрирование
	protected := api.Group("", APIKeyAuthMiddleware(h.cfg, h.logger))
	{
		protected.GET("/settings", h.getSettings)
		protected.POST("/settings", h.updateSettings)
		protected.GET("/interventions", h.listInterventions)
		protected.POST("/interventions/feedback", h.submitFeedback)
		protected.POST("/zones/reload", h.reloadDangerZones)
	}
}
