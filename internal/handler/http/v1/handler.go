package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/pigeon_guard/internal/config"
	"github.com/shenikar/pigeon_guard/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	interventionService service.InterventionService
	logger              *logrus.Logger
	validate            *validator.Validate
	cfg                 *config.Config
}

func NewHandler(interventionService service.InterventionService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		interventionService: interventionService,
		logger:              logger,
		validate:            validator.New(),
		cfg:                 cfg,
	}
}

// @Summary Check location for purchase risk
// @Description Evaluate a location event against danger zones and the risk model, firing an intervention when warranted.
// @Tags Location
// @Accept json
// @Produce json
// @Param location body CheckLocationRequest true "Location check request"
// @Success 200 {object} DecisionResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /location/check [post]
func (h *Handler) checkLocation(c *gin.Context) {
	var input CheckLocationRequest
	log := h.logger.WithField("method", "checkLocation")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	decision, err := h.interventionService.CheckLocation(
		c.Request.Context(),
		*input.Latitude,
		*input.Longitude,
		input.BudgetUtilization,
		input.MerchantCategory,
	)
	if err != nil {
		log.WithError(err).Error("Failed to check location in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelToDecisionResponse(decision))
}

// @Summary Get monitoring settings
// @Description Get the current monitoring settings. Requires API key.
// @Tags Settings
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} SettingsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /settings [get]
func (h *Handler) getSettings(c *gin.Context) {
	log := h.logger.WithField("method", "getSettings")

	settings, err := h.interventionService.GetSettings(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to get settings from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelToSettingsResponse(settings))
}

// @Summary Update monitoring settings
// @Description Partially update monitoring settings; omitted fields keep their values. Requires API key.
// @Tags Settings
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param settings body UpdateSettingsRequest true "Settings update request"
// @Success 200 {object} SettingsResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /settings [post]
func (h *Handler) updateSettings(c *gin.Context) {
	var input UpdateSettingsRequest
	log := h.logger.WithField("method", "updateSettings")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	patch := DTOToSettingsPatch(input)
	if patch.IsEmpty() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no settings fields provided"})
		return
	}

	settings, err := h.interventionService.UpdateSettings(c.Request.Context(), patch)
	if err != nil {
		log.WithError(err).Error("Failed to update settings in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelToSettingsResponse(settings))
}

// @Summary Submit intervention feedback
// @Description Record the user's response to a past intervention. Resubmission overwrites the previous value. Requires API key.
// @Tags Interventions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param feedback body FeedbackRequest true "Feedback request"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Intervention not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /interventions/feedback [post]
func (h *Handler) submitFeedback(c *gin.Context) {
	var input FeedbackRequest
	log := h.logger.WithField("method", "submitFeedback")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.interventionService.SubmitFeedback(c.Request.Context(), input.InterventionID, input.UserResponse); err != nil {
		if errors.Is(err, service.ErrInterventionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "intervention not found"})
			return
		}
		log.WithError(err).Error("Failed to submit feedback in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.Status(http.StatusOK)
}

// @Summary Get intervention history
// @Description Get a paginated list of past interventions, newest first. Requires API key.
// @Tags Interventions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(20)
// @Success 200 {array} InterventionResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /interventions [get]
func (h *Handler) listInterventions(c *gin.Context) {
	log := h.logger.WithField("method", "listInterventions")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))

	records, err := h.interventionService.ListInterventions(c.Request.Context(), page, pageSize)
	if err != nil {
		log.WithError(err).Error("Failed to list interventions from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToInterventionResponses(records))
}

// @Summary List danger zones
// @Description Get the full set of loaded danger zones for client-side geofence registration.
// @Tags Zones
// @Accept json
// @Produce json
// @Success 200 {object} ZonesResponse
// @Router /zones [get]
func (h *Handler) listDangerZones(c *gin.Context) {
	zones := h.interventionService.ListDangerZones()
	c.JSON(http.StatusOK, ZonesResponse{
		DangerZones: ModelsToDangerZoneResponses(zones),
		Count:       len(zones),
	})
}

// @Summary Reload danger zone dataset
// @Description Re-read the danger zone dataset from disk and atomically replace the in-memory index. Requires API key.
// @Tags Zones
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} ReloadZonesResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /zones/reload [post]
func (h *Handler) reloadDangerZones(c *gin.Context) {
	log := h.logger.WithField("method", "reloadDangerZones")

	count, err := h.interventionService.ReloadDangerZones(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to reload danger zones in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to reload danger zones"})
		return
	}

	c.JSON(http.StatusOK, ReloadZonesResponse{ZonesLoaded: count})
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
