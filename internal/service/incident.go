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

// IncidentStore определяет контракт сквозной записи инцидентов в бд.
// Живое состояние комнаты первично; ошибка записи логируется и не
// валит живой тракт.
type IncidentStore interface {
	SaveIncident(ctx context.Context, incident *models.Incident) error
	SaveIncidentStatus(ctx context.Context, incident *models.Incident, entry models.ActivityEntry) error
}

// IncidentService определяет контракт бизнес-логики управления инцидентами
type IncidentService interface {
	Report(ctx context.Context, incident *models.Incident) (models.Incident, error)
	UpdateStatus(ctx context.Context, eventID string, id uuid.UUID, status models.IncidentStatus, performedBy, notes string) (models.Incident, error)
	List(ctx context.Context, eventID string, filter room.IncidentFilter) ([]models.Incident, error)
	Get(ctx context.Context, eventID string, id uuid.UUID) (models.Incident, error)
}

type incidentService struct {
	hub       *room.Hub
	store     IncidentStore
	publisher webhook.Publisher
	logger    *logrus.Logger
	cfg       *config.Config
}

func NewIncidentService(hub *room.Hub, store IncidentStore, publisher webhook.Publisher, logger *logrus.Logger, cfg *config.Config) IncidentService {
	return &incidentService{
		hub:       hub,
		store:     store,
		publisher: publisher,
		logger:    logger,
		cfg:       cfg,
	}
}

// Report регистрирует инцидент в комнате события и пишет его в бд.
// Критические инциденты дополнительно эскалируются через вебхук.
func (s *incidentService) Report(ctx context.Context, incident *models.Incident) (models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "incident",
		"method":   "Report",
		"event_id": incident.EventID,
		"category": incident.Category,
	})
	log.Info("Reporting a new incident")

	r, err := s.hub.Get(ctx, incident.EventID)
	if err != nil {
		return models.Incident{}, fmt.Errorf("service: could not get event room: %w", err)
	}

	stored, err := r.ReportIncident(ctx, incident)
	if err != nil {
		log.WithError(err).Error("Failed to report incident to event room")
		return models.Incident{}, fmt.Errorf("service: could not report incident: %w", err)
	}

	if s.store != nil {
		if err := s.store.SaveIncident(ctx, &stored); err != nil {
			log.WithError(err).Error("Failed to write incident through to store")
		}
	}

	if s.publisher != nil && stored.Severity == models.SeverityCritical {
		event := webhook.Event{
			Kind:      webhook.KindIncidentReported,
			EventID:   stored.EventID,
			Severity:  string(stored.Severity),
			Payload:   stored,
			Timestamp: time.Now(),
		}
		if err := s.publisher.Publish(ctx, event); err != nil {
			log.WithError(err).Error("Failed to publish incident escalation event")
		}
	}

	log.WithField("incident_id", stored.ID).Info("Incident reported successfully")
	return stored, nil
}

// UpdateStatus применяет переход статуса инцидента.
// Недопустимый переход возвращается как room.ErrInvalidTransition,
// состояние инцидента при этом не меняется.
func (s *incidentService) UpdateStatus(ctx context.Context, eventID string, id uuid.UUID, status models.IncidentStatus, performedBy, notes string) (models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "UpdateStatus",
		"incident_id": id,
		"status":      status,
	})
	log.Info("Updating incident status")

	r, err := s.hub.Get(ctx, eventID)
	if err != nil {
		return models.Incident{}, fmt.Errorf("service: could not get event room: %w", err)
	}

	updated, err := r.UpdateIncidentStatus(ctx, id, status, performedBy, notes)
	if err != nil {
		log.WithError(err).Warn("Incident status transition rejected")
		return models.Incident{}, err
	}

	if s.store != nil {
		entry := updated.Activity[len(updated.Activity)-1]
		if err := s.store.SaveIncidentStatus(ctx, &updated, entry); err != nil {
			log.WithError(err).Error("Failed to write incident status through to store")
		}
	}

	log.Info("Incident status updated successfully")
	return updated, nil
}

// List возвращает инциденты события с учетом фильтра
func (s *incidentService) List(ctx context.Context, eventID string, filter room.IncidentFilter) ([]models.Incident, error) {
	r, err := s.hub.Get(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("service: could not get event room: %w", err)
	}
	incidents, err := r.Incidents(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("service: could not list incidents: %w", err)
	}
	return incidents, nil
}

// Get возвращает один инцидент вместе с журналом действий
func (s *incidentService) Get(ctx context.Context, eventID string, id uuid.UUID) (models.Incident, error) {
	r, err := s.hub.Get(ctx, eventID)
	if err != nil {
		return models.Incident{}, fmt.Errorf("service: could not get event room: %w", err)
	}
	incident, err := r.Incident(ctx, id)
	if err != nil {
		return models.Incident{}, err
	}
	return incident, nil
}
