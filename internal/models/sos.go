package models

import (
	"time"

	"github.com/google/uuid"
)

// SOSType - тип сигнала бедствия
type SOSType string

const (
	SOSPanic   SOSType = "PANIC"
	SOSMedical SOSType = "MEDICAL"
	SOSThreat  SOSType = "THREAT"
)

// SOSSignal - активный сигнал бедствия от участника события.
// Координаты могут быть нулевыми, если GPS у отправителя недоступен:
// сигнал все равно создается и рассылается.
type SOSSignal struct {
	ID             uuid.UUID  `json:"id"`
	EventID        string     `json:"event_id"`
	SenderID       string     `json:"sender_id"`
	Type           SOSType    `json:"type"`
	Lat            float64    `json:"lat"`
	Lng            float64    `json:"lng"`
	Active         bool       `json:"active"`
	CreatedAt      time.Time  `json:"created_at"`
	AcknowledgedAt *time.Time `json:"acknowledged_at,omitempty"`
}
