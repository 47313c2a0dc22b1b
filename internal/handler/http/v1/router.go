package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Маршруты жизненного цикла инцидентов
	incidents := api.Group("/incidents")
	{
		incidents.POST("", h.reportIncident)
		incidents.GET("", h.listIncidents)
		incidents.GET("/:id", h.getIncident)
		incidents.PATCH("/:id/status", h.updateIncidentStatus)
	}

	// Маршруты сигналов бедствия
	sos := api.Group("/sos")
	{
		sos.POST("", h.triggerSOS)
		sos.GET("", h.listActiveSOS)
		sos.POST("/:id/ack", h.acknowledgeSOS)
	}

	// Маршруты оповещений безопасности
	alerts := api.Group("/alerts")
	{
		alerts.POST("", h.broadcastAlert)
		alerts.GET("", h.listAlerts)
	}

	// Маршрут обновления респондеров
	api.POST("/responders/update", h.updateResponder)

	// Снимки состояния события
	events := api.Group("/events")
	{
		events.GET("/:id/map", h.getEventMap)
		events.GET("/:id/stats", h.getEventStats)
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
