package room

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/event_safety_system/internal/models"
)

// ErrSignalNotFound возвращается, если сигнал SOS не найден в комнате
var ErrSignalNotFound = errors.New("sos signal not found")

// SOSSet хранит сигналы бедствия одного события и давит дубликаты
// от одного отправителя внутри окна кулдауна.
type SOSSet struct {
	byID map[uuid.UUID]*models.SOSSignal
}

func NewSOSSet() *SOSSet {
	return &SOSSet{
		byID: make(map[uuid.UUID]*models.SOSSignal),
	}
}

// Trigger регистрирует сигнал бедствия.
// Если у отправителя уже есть активный сигнал, созданный внутри окна кулдауна,
// новый не создается - возвращается существующий и created=false.
func (s *SOSSet) Trigger(sig *models.SOSSignal, cooldown time.Duration, now time.Time) (*models.SOSSignal, bool) {
	for _, existing := range s.byID {
		if existing.SenderID == sig.SenderID && existing.Active && now.Sub(existing.CreatedAt) < cooldown {
			return existing, false
		}
	}
	sig.Active = true
	sig.CreatedAt = now
	s.byID[sig.ID] = sig
	return sig, true
}

// Acknowledge помечает сигнал неактивным по подтверждению организатора
func (s *SOSSet) Acknowledge(id uuid.UUID, now time.Time) (*models.SOSSignal, error) {
	sig, ok := s.byID[id]
	if !ok {
		return nil, ErrSignalNotFound
	}
	if sig.Active {
		sig.Active = false
		ack := now
		sig.AcknowledgedAt = &ack
	}
	return sig, nil
}

// ExpireBefore деактивирует сигналы, созданные раньше cutoff и так и не подтвержденные.
// Защита от застрявших маркеров бедствия на карте. Возвращает погашенные сигналы.
func (s *SOSSet) ExpireBefore(cutoff time.Time) []*models.SOSSignal {
	expired := make([]*models.SOSSignal, 0)
	for _, sig := range s.byID {
		if sig.Active && sig.CreatedAt.Before(cutoff) {
			sig.Active = false
			expired = append(expired, sig)
		}
	}
	return expired
}

// Active возвращает копии всех активных сигналов
func (s *SOSSet) Active() []models.SOSSignal {
	out := make([]models.SOSSignal, 0)
	for _, sig := range s.byID {
		if sig.Active {
			out = append(out, *sig)
		}
	}
	return out
}

// Hydrate загружает активные сигналы из хранилища при холодном старте
func (s *SOSSet) Hydrate(signals []*models.SOSSignal) {
	for _, sig := range signals {
		if _, ok := s.byID[sig.ID]; ok {
			continue
		}
		s.byID[sig.ID] = sig
	}
}
