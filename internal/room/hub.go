package room

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/event_safety_system/internal/models"
	"github.com/sirupsen/logrus"
)

// Store - контракт долговременного хранилища для комнат.
// Память комнаты - живой кеш; хранилище является источником истины
// только при холодном старте комнаты.
type Store interface {
	LoadIncidents(ctx context.Context, eventID string) ([]*models.Incident, error)
	LoadActiveSignals(ctx context.Context, eventID string) ([]*models.SOSSignal, error)
	LoadAlerts(ctx context.Context, eventID string) ([]*models.SafetyAlert, error)
	DeactivateSignal(ctx context.Context, id uuid.UUID, at time.Time) error
}

// Hub владеет комнатами всех событий процесса: одна комната на событие,
// создается лениво при первом обращении, сносится janitor-ом после простоя.
// Глобальной блокировки состояния нет - каждая комната владеет своим.
type Hub struct {
	cfg   Config
	log   *logrus.Logger
	store Store

	mu    sync.Mutex
	rooms map[string]*Room
}

func NewHub(cfg Config, log *logrus.Logger, store Store) *Hub {
	return &Hub{
		cfg:   cfg.withDefaults(),
		log:   log,
		store: store,
		rooms: make(map[string]*Room),
	}
}

// Get возвращает комнату события, при необходимости создавая ее.
// Новая комната гидрируется из хранилища; ошибка загрузки логируется,
// комната стартует пустой - живой тракт важнее истории.
func (h *Hub) Get(ctx context.Context, eventID string) (*Room, error) {
	h.mu.Lock()
	if r, ok := h.rooms[eventID]; ok {
		h.mu.Unlock()
		return r, nil
	}
	h.mu.Unlock()

	r := newRoom(eventID, h.cfg, h.log, h.store)
	h.hydrate(ctx, r)

	h.mu.Lock()
	defer h.mu.Unlock()
	if existing, ok := h.rooms[eventID]; ok {
		// Комнату успели создать параллельно - нашу выбрасываем не запуская
		return existing, nil
	}
	h.rooms[eventID] = r
	go r.run()
	h.log.WithField("event_id", eventID).Info("Event room created")
	return r, nil
}

func (h *Hub) hydrate(ctx context.Context, r *Room) {
	if h.store == nil {
		return
	}
	log := h.log.WithField("event_id", r.eventID)
	if incidents, err := h.store.LoadIncidents(ctx, r.eventID); err != nil {
		log.WithError(err).Error("Failed to hydrate incidents, room starts empty")
	} else {
		r.incidents.Hydrate(incidents)
	}
	if signals, err := h.store.LoadActiveSignals(ctx, r.eventID); err != nil {
		log.WithError(err).Error("Failed to hydrate SOS signals, room starts empty")
	} else {
		r.sos.Hydrate(signals)
	}
	if alerts, err := h.store.LoadAlerts(ctx, r.eventID); err != nil {
		log.WithError(err).Error("Failed to hydrate alert history, room starts empty")
	} else {
		r.alerts.Hydrate(alerts)
	}
}

// Start запускает janitor, сносящий простаивающие комнаты
func (h *Hub) Start(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(h.cfg.SweepInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				h.reapIdle(ctx, now)
			}
		}
	}()
}

func (h *Hub) reapIdle(ctx context.Context, now time.Time) {
	h.mu.Lock()
	rooms := make([]*Room, 0, len(h.rooms))
	for _, r := range h.rooms {
		rooms = append(rooms, r)
	}
	h.mu.Unlock()

	for _, r := range rooms {
		checkCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		idle, err := r.Idle(checkCtx, now)
		cancel()
		if err != nil || !idle {
			continue
		}
		h.mu.Lock()
		delete(h.rooms, r.eventID)
		h.mu.Unlock()
		r.Close()
		h.log.WithField("event_id", r.eventID).Info("Idle event room closed")
	}
}

// Close закрывает все комнаты (останов процесса)
func (h *Hub) Close() {
	h.mu.Lock()
	rooms := make([]*Room, 0, len(h.rooms))
	for _, r := range h.rooms {
		rooms = append(rooms, r)
	}
	h.rooms = make(map[string]*Room)
	h.mu.Unlock()

	for _, r := range rooms {
		r.Close()
	}
}

// Len возвращает число живых комнат
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.rooms)
}
