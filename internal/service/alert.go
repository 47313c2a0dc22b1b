package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shenikar/event_safety_system/internal/config"
	"github.com/shenikar/event_safety_system/internal/models"
	"github.com/shenikar/event_safety_system/internal/room"
	"github.com/shenikar/event_safety_system/internal/webhook"
	"github.com/sirupsen/logrus"
)

// AlertStore определяет контракт сквозной записи оповещений в бд
type AlertStore interface {
	SaveAlert(ctx context.Context, alert *models.SafetyAlert) error
}

// AlertService определяет контракт бизнес-логики оповещений безопасности
type AlertService interface {
	Broadcast(ctx context.Context, alert *models.SafetyAlert) (models.SafetyAlert, error)
	History(ctx context.Context, eventID string) ([]models.SafetyAlert, error)
}

type alertService struct {
	hub       *room.Hub
	store     AlertStore
	publisher webhook.Publisher
	logger    *logrus.Logger
	cfg       *config.Config
}

func NewAlertService(hub *room.Hub, store AlertStore, publisher webhook.Publisher, logger *logrus.Logger, cfg *config.Config) AlertService {
	return &alertService{
		hub:       hub,
		store:     store,
		publisher: publisher,
		logger:    logger,
		cfg:       cfg,
	}
}

// Broadcast рассылает оповещение подписчикам канала broadcast события.
// Доставка best-effort: оповещение получают только подключенные на момент
// рассылки, повтора для опоздавших нет.
func (s *alertService) Broadcast(ctx context.Context, alert *models.SafetyAlert) (models.SafetyAlert, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "alert",
		"method":   "Broadcast",
		"event_id": alert.EventID,
		"severity": alert.Severity,
	})
	log.Info("Broadcasting safety alert")

	r, err := s.hub.Get(ctx, alert.EventID)
	if err != nil {
		return models.SafetyAlert{}, fmt.Errorf("service: could not get event room: %w", err)
	}

	stored, err := r.BroadcastAlert(ctx, alert)
	if err != nil {
		log.WithError(err).Warn("Failed to broadcast safety alert")
		return models.SafetyAlert{}, err
	}

	if s.store != nil {
		if err := s.store.SaveAlert(ctx, &stored); err != nil {
			log.WithError(err).Error("Failed to write safety alert through to store")
		}
	}

	if s.publisher != nil && stored.Severity == models.AlertEmergency {
		event := webhook.Event{
			Kind:      webhook.KindSafetyAlert,
			EventID:   stored.EventID,
			Severity:  string(stored.Severity),
			Payload:   stored,
			Timestamp: time.Now(),
		}
		if err := s.publisher.Publish(ctx, event); err != nil {
			log.WithError(err).Error("Failed to publish alert escalation event")
		}
	}

	log.WithField("alert_id", stored.ID).Info("Safety alert broadcast successfully")
	return stored, nil
}

// History возвращает разосланные оповещения события, свежие первыми
func (s *alertService) History(ctx context.Context, eventID string) ([]models.SafetyAlert, error) {
	r, err := s.hub.Get(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("service: could not get event room: %w", err)
	}
	alerts, err := r.Alerts(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not list alerts: %w", err)
	}
	return alerts, nil
}
