package v1

import (
	"time"

	"github.com/google/uuid"
)

// ReportIncidentRequest DTO для регистрации инцидента
// @Description DTO для регистрации инцидента
type ReportIncidentRequest struct {
	EventID     string  `json:"event_id" validate:"required,min=1,max=255"`
	Category    string  `json:"category" validate:"required,oneof=FIRE MEDICAL VIOLENCE STAMPEDE SUSPICIOUS LOST_PERSON TECH_FAILURE OTHER"`
	Severity    string  `json:"severity,omitempty" validate:"omitempty,oneof=LOW MEDIUM HIGH CRITICAL"`
	Description string  `json:"description,omitempty" validate:"max=2000"`
	Latitude    float64 `json:"lat" validate:"latitude"`
	Longitude   float64 `json:"lng" validate:"longitude"`
}

// UpdateIncidentStatusRequest DTO для перехода статуса инцидента
// @Description DTO для перехода статуса инцидента
type UpdateIncidentStatusRequest struct {
	EventID string `json:"event_id" validate:"required,min=1,max=255"`
	Status  string `json:"status" validate:"required,oneof=INVESTIGATING RESOLVED FALSE_ALARM"`
	Notes   string `json:"notes,omitempty" validate:"max=2000"`
}

// ActivityEntryResponse DTO одной записи аудита инцидента
type ActivityEntryResponse struct {
	ActionType  string    `json:"action_type"`
	Notes       string    `json:"notes,omitempty"`
	PerformedBy string    `json:"performed_by"`
	Timestamp   time.Time `json:"timestamp"`
}

// IncidentResponse DTO для ответа с информацией об инциденте
// @Description DTO для ответа с информацией об инциденте
type IncidentResponse struct {
	ID          uuid.UUID               `json:"id"`
	EventID     string                  `json:"event_id"`
	Category    string                  `json:"category"`
	Severity    string                  `json:"severity"`
	Status      string                  `json:"status"`
	Description string                  `json:"description,omitempty"`
	ReporterID  string                  `json:"reporter_id"`
	Latitude    float64                 `json:"lat"`
	Longitude   float64                 `json:"lng"`
	CreatedAt   time.Time               `json:"created_at"`
	UpdatedAt   time.Time               `json:"updated_at"`
	Activity    []ActivityEntryResponse `json:"activity,omitempty"`
}

// TriggerSOSRequest DTO для подачи сигнала бедствия
// @Description DTO для подачи сигнала бедствия
type TriggerSOSRequest struct {
	EventID   string  `json:"event_id" validate:"required,min=1,max=255"`
	Type      string  `json:"type" validate:"required,oneof=PANIC MEDICAL THREAT"`
	Latitude  float64 `json:"lat" validate:"latitude"`
	Longitude float64 `json:"lng" validate:"longitude"`
}

// SOSResponse DTO для ответа с сигналом бедствия
// @Description DTO для ответа с сигналом бедствия
type SOSResponse struct {
	ID             uuid.UUID  `json:"id"`
	EventID        string     `json:"event_id"`
	SenderID       string     `json:"sender_id"`
	Type           string     `json:"type"`
	Latitude       float64    `json:"lat"`
	Longitude      float64    `json:"lng"`
	Active         bool       `json:"active"`
	CreatedAt      time.Time  `json:"created_at"`
	AcknowledgedAt *time.Time `json:"acknowledged_at,omitempty"`
}

// BroadcastAlertRequest DTO для рассылки оповещения безопасности
// @Description DTO для рассылки оповещения безопасности
type BroadcastAlertRequest struct {
	EventID      string `json:"event_id" validate:"required,min=1,max=255"`
	Title        string `json:"title" validate:"required,min=1,max=255"`
	Message      string `json:"message" validate:"required,min=1,max=2000"`
	Severity     string `json:"severity,omitempty" validate:"omitempty,oneof=INFO WARNING DANGER EMERGENCY"`
	AudienceType string `json:"audience_type,omitempty" validate:"omitempty,oneof=ALL ATTENDEES VOLUNTEERS ORGANIZERS"`
}

// AlertResponse DTO для ответа с оповещением
// @Description DTO для ответа с оповещением
type AlertResponse struct {
	ID           uuid.UUID `json:"id"`
	EventID      string    `json:"event_id"`
	Title        string    `json:"title"`
	Message      string    `json:"message"`
	Severity     string    `json:"severity"`
	AudienceType string    `json:"audience_type"`
	SenderID     string    `json:"sender_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// ResponderUpdateRequest DTO для обновления позиции и статуса респондера
// @Description DTO для обновления позиции и статуса респондера
type ResponderUpdateRequest struct {
	EventID   string  `json:"event_id" validate:"required,min=1,max=255"`
	Kind      string  `json:"kind" validate:"required,oneof=volunteer organizer authority"`
	Latitude  float64 `json:"lat" validate:"latitude"`
	Longitude float64 `json:"lng" validate:"longitude"`
	Label     string  `json:"label,omitempty" validate:"max=255"`
	Status    string  `json:"status,omitempty" validate:"omitempty,oneof=AVAILABLE BUSY RESPONDING OFFLINE"`
}
