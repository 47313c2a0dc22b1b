package v1

import "github.com/shenikar/event_safety_system/internal/models"

// DTOToIncidentModel преобразует DTO регистрации инцидента в доменную модель
func DTOToIncidentModel(dto ReportIncidentRequest, reporterID string) *models.Incident {
	return &models.Incident{
		EventID:     dto.EventID,
		Category:    models.IncidentCategory(dto.Category),
		Severity:    models.IncidentSeverity(dto.Severity),
		Description: dto.Description,
		ReporterID:  reporterID,
		Lat:         dto.Latitude,
		Lng:         dto.Longitude,
	}
}

// ModelToIncidentResponse преобразует доменную модель инцидента в DTO для ответа
func ModelToIncidentResponse(model models.Incident) *IncidentResponse {
	activity := make([]ActivityEntryResponse, len(model.Activity))
	for i, entry := range model.Activity {
		activity[i] = ActivityEntryResponse{
			ActionType:  entry.ActionType,
			Notes:       entry.Notes,
			PerformedBy: entry.PerformedBy,
			Timestamp:   entry.Timestamp,
		}
	}
	return &IncidentResponse{
		ID:          model.ID,
		EventID:     model.EventID,
		Category:    string(model.Category),
		Severity:    string(model.Severity),
		Status:      string(model.Status),
		Description: model.Description,
		ReporterID:  model.ReporterID,
		Latitude:    model.Lat,
		Longitude:   model.Lng,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
		Activity:    activity,
	}
}

// ModelsToIncidentResponses преобразует слайс моделей в слайс DTO
func ModelsToIncidentResponses(models []models.Incident) []*IncidentResponse {
	responses := make([]*IncidentResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToIncidentResponse(model)
	}
	return responses
}

// DTOToSOSModel преобразует DTO сигнала бедствия в доменную модель
func DTOToSOSModel(dto TriggerSOSRequest, senderID string) *models.SOSSignal {
	return &models.SOSSignal{
		EventID:  dto.EventID,
		SenderID: senderID,
		Type:     models.SOSType(dto.Type),
		Lat:      dto.Latitude,
		Lng:      dto.Longitude,
	}
}

// ModelToSOSResponse преобразует доменную модель сигнала в DTO для ответа
func ModelToSOSResponse(model models.SOSSignal) *SOSResponse {
	return &SOSResponse{
		ID:             model.ID,
		EventID:        model.EventID,
		SenderID:       model.SenderID,
		Type:           string(model.Type),
		Latitude:       model.Lat,
		Longitude:      model.Lng,
		Active:         model.Active,
		CreatedAt:      model.CreatedAt,
		AcknowledgedAt: model.AcknowledgedAt,
	}
}

// ModelsToSOSResponses преобразует слайс моделей в слайс DTO
func ModelsToSOSResponses(models []models.SOSSignal) []*SOSResponse {
	responses := make([]*SOSResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToSOSResponse(model)
	}
	return responses
}

// DTOToAlertModel преобразует DTO оповещения в доменную модель
func DTOToAlertModel(dto BroadcastAlertRequest, senderID string) *models.SafetyAlert {
	severity := models.AlertSeverity(dto.Severity)
	if severity == "" {
		severity = models.AlertInfo
	}
	return &models.SafetyAlert{
		EventID:      dto.EventID,
		Title:        dto.Title,
		Message:      dto.Message,
		Severity:     severity,
		AudienceType: dto.AudienceType,
		SenderID:     senderID,
	}
}

// ModelToAlertResponse преобразует доменную модель оповещения в DTO для ответа
func ModelToAlertResponse(model models.SafetyAlert) *AlertResponse {
	return &AlertResponse{
		ID:           model.ID,
		EventID:      model.EventID,
		Title:        model.Title,
		Message:      model.Message,
		Severity:     string(model.Severity),
		AudienceType: model.AudienceType,
		SenderID:     model.SenderID,
		CreatedAt:    model.CreatedAt,
	}
}

// ModelsToAlertResponses преобразует слайс моделей в слайс DTO
func ModelsToAlertResponses(models []models.SafetyAlert) []*AlertResponse {
	responses := make([]*AlertResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToAlertResponse(model)
	}
	return responses
}

// DTOToResponderModel преобразует DTO респондера в доменную модель
func DTOToResponderModel(dto ResponderUpdateRequest, responderID string) models.Entity {
	return models.Entity{
		ID:      responderID,
		EventID: dto.EventID,
		Kind:    models.EntityKind(dto.Kind),
		Lat:     dto.Latitude,
		Lng:     dto.Longitude,
		Label:   dto.Label,
		Status:  dto.Status,
	}
}
