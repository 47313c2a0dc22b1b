package models

import (
	"time"

	"github.com/google/uuid"
)

// IncidentCategory - категория инцидента, как их репортят с места
type IncidentCategory string

const (
	CategoryFire        IncidentCategory = "FIRE"
	CategoryMedical     IncidentCategory = "MEDICAL"
	CategoryViolence    IncidentCategory = "VIOLENCE"
	CategoryStampede    IncidentCategory = "STAMPEDE"
	CategorySuspicious  IncidentCategory = "SUSPICIOUS"
	CategoryLostPerson  IncidentCategory = "LOST_PERSON"
	CategoryTechFailure IncidentCategory = "TECH_FAILURE"
	CategoryOther       IncidentCategory = "OTHER"
)

// IncidentSeverity - серьезность инцидента
type IncidentSeverity string

const (
	SeverityLow      IncidentSeverity = "LOW"
	SeverityMedium   IncidentSeverity = "MEDIUM"
	SeverityHigh     IncidentSeverity = "HIGH"
	SeverityCritical IncidentSeverity = "CRITICAL"
)

// IncidentStatus - состояние жизненного цикла инцидента.
// RESOLVED и FALSE_ALARM терминальные, из них переходов нет.
type IncidentStatus string

const (
	StatusReported      IncidentStatus = "REPORTED"
	StatusInvestigating IncidentStatus = "INVESTIGATING"
	StatusResolved      IncidentStatus = "RESOLVED"
	StatusFalseAlarm    IncidentStatus = "FALSE_ALARM"
)

// Terminal сообщает, является ли статус терминальным
func (s IncidentStatus) Terminal() bool {
	return s == StatusResolved || s == StatusFalseAlarm
}

// ActivityEntry - одна запись аудита инцидента, добавляется на каждый принятый переход статуса
type ActivityEntry struct {
	ActionType  string    `json:"action_type"`
	Notes       string    `json:"notes,omitempty"`
	PerformedBy string    `json:"performed_by"`
	Timestamp   time.Time `json:"timestamp"`
}

// Incident - инцидент, привязанный ровно к одному событию.
// Никогда не удаляется: терминальные инциденты хранятся для аудита.
type Incident struct {
	ID          uuid.UUID        `json:"id"`
	EventID     string           `json:"event_id"`
	Category    IncidentCategory `json:"category"`
	Severity    IncidentSeverity `json:"severity"`
	Status      IncidentStatus   `json:"status"`
	Description string           `json:"description,omitempty"`
	ReporterID  string           `json:"reporter_id"`
	Lat         float64          `json:"lat"`
	Lng         float64          `json:"lng"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
	Activity    []ActivityEntry  `json:"activity,omitempty"`
}
