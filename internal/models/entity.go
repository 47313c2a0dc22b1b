package models

import (
	"time"
)

// EntityKind - тип отслеживаемого участника на карте события
type EntityKind string

const (
	EntityAttendee  EntityKind = "attendee"
	EntityVolunteer EntityKind = "volunteer"
	EntityOrganizer EntityKind = "organizer"
	EntityAuthority EntityKind = "authority"
)

// ResponderStatus - статус волонтера/ответственного на смене
const (
	ResponderAvailable  = "AVAILABLE"
	ResponderBusy       = "BUSY"
	ResponderResponding = "RESPONDING"
	ResponderOffline    = "OFFLINE"
)

// Entity представляет живую позицию участника в рамках одного события.
// Обновляется целиком по last-write-wins, ключ - ID отправителя.
type Entity struct {
	ID       string     `json:"id"`
	EventID  string     `json:"event_id"`
	Kind     EntityKind `json:"kind"`
	Lat      float64    `json:"lat"`
	Lng      float64    `json:"lng"`
	Label    string     `json:"label,omitempty"`
	Status   string     `json:"status,omitempty"`
	LastSeen time.Time  `json:"last_seen"`
}
