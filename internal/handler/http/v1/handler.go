package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shenikar/event_safety_system/internal/config"
	"github.com/shenikar/event_safety_system/internal/models"
	"github.com/shenikar/event_safety_system/internal/room"
	"github.com/shenikar/event_safety_system/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	incidentService service.IncidentService
	sosService      service.SOSService
	alertService    service.AlertService
	trackingService service.TrackingService
	logger          *logrus.Logger
	validate        *validator.Validate
	cfg             *config.Config
}

func NewHandler(
	incidentService service.IncidentService,
	sosService service.SOSService,
	alertService service.AlertService,
	trackingService service.TrackingService,
	logger *logrus.Logger,
	cfg *config.Config,
) *Handler {
	return &Handler{
		incidentService: incidentService,
		sosService:      sosService,
		alertService:    alertService,
		trackingService: trackingService,
		logger:          logger,
		validate:        validator.New(),
		cfg:             cfg,
	}
}

// @Summary Report a new incident
// @Description Report a new incident for an event. Reporter is taken from the X-User-ID header. Requires API key.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param incident body ReportIncidentRequest true "Incident report request"
// @Success 201 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents [post]
func (h *Handler) reportIncident(c *gin.Context) {
	var input ReportIncidentRequest
	log := h.logger.WithField("method", "reportIncident")

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

	model := DTOToIncidentModel(input, userIdentity(c))
	incident, err := h.incidentService.Report(c.Request.Context(), model)
	if err != nil {
		log.WithError(err).Error("Failed to report incident in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, ModelToIncidentResponse(incident))
}

// @Summary Get a list of incidents
// @Description Get incidents of an event, optionally filtered by status and severity. Requires API key.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param event_id query string true "Event ID"
// @Param status query string false "Filter by status" Enums(REPORTED, INVESTIGATING, RESOLVED, FALSE_ALARM)
// @Param severity query string false "Filter by severity" Enums(LOW, MEDIUM, HIGH, CRITICAL)
// @Success 200 {array} IncidentResponse
// @Failure 400 {object} map[string]string "event_id is required"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents [get]
func (h *Handler) listIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "listIncidents")
	eventID := c.Query("event_id")
	if eventID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "event_id is required"})
		return
	}

	filter := room.IncidentFilter{
		Status:   models.IncidentStatus(c.Query("status")),
		Severity: models.IncidentSeverity(c.Query("severity")),
	}

	incidents, err := h.incidentService.List(c.Request.Context(), eventID, filter)
	if err != nil {
		log.WithError(err).Error("Failed to list incidents from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ModelsToIncidentResponses(incidents))
}

// @Summary Get incident by ID
// @Description Get a single incident with its activity log. Requires API key.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Param event_id query string true "Event ID"
// @Success 200 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid incident ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident not found"
// @Router /incidents/{id} [get]
func (h *Handler) getIncident(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid incident ID"})
		return
	}
	eventID := c.Query("event_id")
	if eventID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "event_id is required"})
		return
	}
	log := h.logger.WithField("method", "getIncident").WithField("id", id)

	incident, err := h.incidentService.Get(c.Request.Context(), eventID, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get incident from service")
		c.JSON(http.StatusNotFound, gin.H{"error": "incident not found"})
		return
	}
	c.JSON(http.StatusOK, ModelToIncidentResponse(incident))
}

// @Summary Update incident status
// @Description Apply a lifecycle transition to an incident. Invalid transitions are rejected with 409. Requires API key.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Param transition body UpdateIncidentStatusRequest true "Status transition request"
// @Success 200 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid incident ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 409 {object} map[string]string "Invalid status transition"
// @Router /incidents/{id}/status [patch]
func (h *Handler) updateIncidentStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid incident ID"})
		return
	}
	log := h.logger.WithField("method", "updateIncidentStatus").WithField("id", id)

	var input UpdateIncidentStatusRequest
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

	incident, err := h.incidentService.UpdateStatus(
		c.Request.Context(),
		input.EventID,
		id,
		models.IncidentStatus(input.Status),
		userIdentity(c),
		input.Notes,
	)
	if err != nil {
		switch {
		case errors.Is(err, room.ErrIncidentNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "incident not found"})
		case errors.Is(err, room.ErrInvalidTransition):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			log.WithError(err).Error("Failed to update incident status in service")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}
	c.JSON(http.StatusOK, ModelToIncidentResponse(incident))
}

// @Summary Trigger an SOS signal
// @Description Trigger an SOS signal. Repeated triggers from the same sender within the cooldown window return the existing signal with 200. Requires API key.
// @Tags SOS
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param sos body TriggerSOSRequest true "SOS trigger request"
// @Success 200 {object} SOSResponse "Existing signal returned, duplicate suppressed"
// @Success 201 {object} SOSResponse "New signal created"
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /sos [post]
func (h *Handler) triggerSOS(c *gin.Context) {
	var input TriggerSOSRequest
	log := h.logger.WithField("method", "triggerSOS")

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

	model := DTOToSOSModel(input, userIdentity(c))
	signal, created, err := h.sosService.Trigger(c.Request.Context(), model)
	if err != nil {
		log.WithError(err).Error("Failed to trigger SOS in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, ModelToSOSResponse(signal))
}

// @Summary Acknowledge an SOS signal
// @Description Acknowledge an active SOS signal, marking it handled. Requires API key.
// @Tags SOS
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "SOS signal ID"
// @Param event_id query string true "Event ID"
// @Success 200 {object} SOSResponse
// @Failure 400 {object} map[string]string "Invalid signal ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Signal not found"
// @Router /sos/{id}/ack [post]
func (h *Handler) acknowledgeSOS(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid signal ID"})
		return
	}
	eventID := c.Query("event_id")
	if eventID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "event_id is required"})
		return
	}
	log := h.logger.WithField("method", "acknowledgeSOS").WithField("id", id)

	signal, err := h.sosService.Acknowledge(c.Request.Context(), eventID, id)
	if err != nil {
		if errors.Is(err, room.ErrSignalNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "sos signal not found"})
			return
		}
		log.WithError(err).Error("Failed to acknowledge SOS in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ModelToSOSResponse(signal))
}

// @Summary List active SOS signals
// @Description Get all currently active SOS signals of an event. Requires API key.
// @Tags SOS
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param event_id query string true "Event ID"
// @Success 200 {array} SOSResponse
// @Failure 400 {object} map[string]string "event_id is required"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /sos [get]
func (h *Handler) listActiveSOS(c *gin.Context) {
	log := h.logger.WithField("method", "listActiveSOS")
	eventID := c.Query("event_id")
	if eventID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "event_id is required"})
		return
	}

	signals, err := h.sosService.Active(c.Request.Context(), eventID)
	if err != nil {
		log.WithError(err).Error("Failed to list active SOS signals from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ModelsToSOSResponses(signals))
}

// @Summary Broadcast a safety alert
// @Description Broadcast a safety alert to all connected subscribers of an event. Delivery is best-effort, there is no replay. Requires API key.
// @Tags Alerts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param alert body BroadcastAlertRequest true "Alert broadcast request"
// @Success 201 {object} AlertResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /alerts [post]
func (h *Handler) broadcastAlert(c *gin.Context) {
	var input BroadcastAlertRequest
	log := h.logger.WithField("method", "broadcastAlert")

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

	model := DTOToAlertModel(input, userIdentity(c))
	alert, err := h.alertService.Broadcast(c.Request.Context(), model)
	if err != nil {
		if errors.Is(err, room.ErrEmptyAlert) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.WithError(err).Error("Failed to broadcast alert in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, ModelToAlertResponse(alert))
}

// @Summary Get alert history
// @Description Get the history of alerts broadcast for an event, newest first. Requires API key.
// @Tags Alerts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param event_id query string true "Event ID"
// @Success 200 {array} AlertResponse
// @Failure 400 {object} map[string]string "event_id is required"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /alerts [get]
func (h *Handler) listAlerts(c *gin.Context) {
	log := h.logger.WithField("method", "listAlerts")
	eventID := c.Query("event_id")
	if eventID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "event_id is required"})
		return
	}

	alerts, err := h.alertService.History(c.Request.Context(), eventID)
	if err != nil {
		log.WithError(err).Error("Failed to list alerts from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ModelsToAlertResponses(alerts))
}

// @Summary Update responder position and status
// @Description Update a responder's position and availability on the live map. Responder ID is taken from the X-User-ID header. Requires API key.
// @Tags Responders
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param responder body ResponderUpdateRequest true "Responder update request"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /responders/update [post]
func (h *Handler) updateResponder(c *gin.Context) {
	var input ResponderUpdateRequest
	log := h.logger.WithField("method", "updateResponder")

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

	model := DTOToResponderModel(input, userIdentity(c))
	if err := h.trackingService.UpdateResponder(c.Request.Context(), model); err != nil {
		log.WithError(err).Error("Failed to update responder in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Get live map snapshot
// @Description Get the current live map of an event: fresh positions, open incidents and active SOS markers. Requires API key.
// @Tags Events
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Event ID"
// @Success 200 {array} room.MapEntity
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /events/{id}/map [get]
func (h *Handler) getEventMap(c *gin.Context) {
	log := h.logger.WithField("method", "getEventMap")
	eventID := c.Param("id")

	snapshot, err := h.trackingService.MapSnapshot(c.Request.Context(), eventID)
	if err != nil {
		log.WithError(err).Error("Failed to get map snapshot from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// @Summary Get event statistics
// @Description Get the live statistics summary of an event. Requires API key.
// @Tags Events
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Event ID"
// @Success 200 {object} room.Stats
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /events/{id}/stats [get]
func (h *Handler) getEventStats(c *gin.Context) {
	log := h.logger.WithField("method", "getEventStats")
	eventID := c.Param("id")

	stats, err := h.trackingService.Stats(c.Request.Context(), eventID)
	if err != nil {
		log.WithError(err).Error("Failed to get event stats from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, stats)
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
