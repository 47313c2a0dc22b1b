package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/event_safety_system/internal/config"
	"github.com/shenikar/event_safety_system/internal/models"
	"github.com/shenikar/event_safety_system/internal/room"
	"github.com/shenikar/event_safety_system/internal/webhook"
	"github.com/sirupsen/logrus"
)

// SOSStore определяет контракт сквозной записи сигналов бедствия в бд
type SOSStore interface {
	SaveSignal(ctx context.Context, signal *models.SOSSignal) error
	DeactivateSignal(ctx context.Context, id uuid.UUID, at time.Time) error
}

// SOSService определяет контракт бизнес-логики сигналов бедствия
type SOSService interface {
	Trigger(ctx context.Context, signal *models.SOSSignal) (models.SOSSignal, bool, error)
	Acknowledge(ctx context.Context, eventID string, id uuid.UUID) (models.SOSSignal, error)
	Active(ctx context.Context, eventID string) ([]models.SOSSignal, error)
}

type sosService struct {
	hub       *room.Hub
	store     SOSStore
	publisher webhook.Publisher
	logger    *logrus.Logger
	cfg       *config.Config
}

func NewSOSService(hub *room.Hub, store SOSStore, publisher webhook.Publisher, logger *logrus.Logger, cfg *config.Config) SOSService {
	return &sosService{
		hub:       hub,
		store:     store,
		publisher: publisher,
		logger:    logger,
		cfg:       cfg,
	}
}

// Trigger регистрирует сигнал бедствия. Повторный триггер от того же
// отправителя внутри окна кулдауна возвращает существующий сигнал
// (created=false) и не порождает ни записи в бд, ни эскалации.
func (s *sosService) Trigger(ctx context.Context, signal *models.SOSSignal) (models.SOSSignal, bool, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "sos",
		"method":    "Trigger",
		"event_id":  signal.EventID,
		"sender_id": signal.SenderID,
		"type":      signal.Type,
	})
	log.Info("Triggering SOS signal")

	r, err := s.hub.Get(ctx, signal.EventID)
	if err != nil {
		return models.SOSSignal{}, false, fmt.Errorf("service: could not get event room: %w", err)
	}

	stored, created, err := r.TriggerSOS(ctx, signal)
	if err != nil {
		log.WithError(err).Error("Failed to trigger SOS in event room")
		return models.SOSSignal{}, false, fmt.Errorf("service: could not trigger sos: %w", err)
	}

	if !created {
		log.WithField("signal_id", stored.ID).Info("Duplicate SOS suppressed by cooldown")
		return stored, false, nil
	}

	if s.store != nil {
		if err := s.store.SaveSignal(ctx, &stored); err != nil {
			log.WithError(err).Error("Failed to write SOS signal through to store")
		}
	}

	// SOS всегда эскалируется: не подать сигнал хуже, чем подать неточный
	if s.publisher != nil {
		event := webhook.Event{
			Kind:      webhook.KindSOSTriggered,
			EventID:   stored.EventID,
			Severity:  string(stored.Type),
			Payload:   stored,
			Timestamp: time.Now(),
		}
		if err := s.publisher.Publish(ctx, event); err != nil {
			log.WithError(err).Error("Failed to publish SOS escalation event")
		}
	}

	log.WithField("signal_id", stored.ID).Info("SOS signal created")
	return stored, true, nil
}

// Acknowledge гасит сигнал по подтверждению организатора
func (s *sosService) Acknowledge(ctx context.Context, eventID string, id uuid.UUID) (models.SOSSignal, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "sos",
		"method":    "Acknowledge",
		"signal_id": id,
	})

	r, err := s.hub.Get(ctx, eventID)
	if err != nil {
		return models.SOSSignal{}, fmt.Errorf("service: could not get event room: %w", err)
	}

	signal, err := r.AcknowledgeSOS(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to acknowledge SOS signal")
		return models.SOSSignal{}, err
	}

	if s.store != nil {
		at := time.Now()
		if signal.AcknowledgedAt != nil {
			at = *signal.AcknowledgedAt
		}
		if err := s.store.DeactivateSignal(ctx, signal.ID, at); err != nil {
			log.WithError(err).Error("Failed to write SOS acknowledgment through to store")
		}
	}

	log.Info("SOS signal acknowledged")
	return signal, nil
}

// Active возвращает активные сигналы бедствия события
func (s *sosService) Active(ctx context.Context, eventID string) ([]models.SOSSignal, error) {
	r, err := s.hub.Get(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("service: could not get event room: %w", err)
	}
	signals, err := r.ActiveSignals(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not list active signals: %w", err)
	}
	return signals, nil
}
