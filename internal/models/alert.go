package models

import (
	"time"

	"github.com/google/uuid"
)

// AlertSeverity - уровень важности оповещения безопасности
type AlertSeverity string

const (
	AlertInfo      AlertSeverity = "INFO"
	AlertWarning   AlertSeverity = "WARNING"
	AlertDanger    AlertSeverity = "DANGER"
	AlertEmergency AlertSeverity = "EMERGENCY"
)

// SafetyAlert - оповещение, разосланное организатором всем подписчикам события.
// После рассылки неизменяемо, хранится в истории события.
type SafetyAlert struct {
	ID           uuid.UUID     `json:"id"`
	EventID      string        `json:"event_id"`
	Title        string        `json:"title"`
	Message      string        `json:"message"`
	Severity     AlertSeverity `json:"severity"`
	AudienceType string        `json:"audience_type"`
	SenderID     string        `json:"sender_id,omitempty"`
	CreatedAt    time.Time     `json:"created_at"`
}
