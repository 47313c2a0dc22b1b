package repository

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/event_safety_system/internal/room"
)

// RoomStore собирает репозитории в единый room.Store:
// комнаты гидрируются из него при холодном старте и пишут в него
// авто-гашение SOS.
type RoomStore struct {
	*IncidentRepository
	*SOSRepository
	*AlertRepository
}

func NewRoomStore(db *pgxpool.Pool) room.Store {
	return &RoomStore{
		IncidentRepository: NewIncidentRepository(db),
		SOSRepository:      NewSOSRepository(db),
		AlertRepository:    NewAlertRepository(db),
	}
}
