package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shenikar/event_safety_system/internal/config"
	"github.com/shenikar/event_safety_system/internal/models"
	"github.com/shenikar/event_safety_system/internal/room"
	"github.com/sirupsen/logrus"
)

// Вес тепловой точки от обычного трекингового пинга
const trackSampleWeight = 0.8

// StatsCache определяет контракт кеширования сводки события
type StatsCache interface {
	SetStats(ctx context.Context, eventID string, stats room.Stats, ttl time.Duration) error
	GetStats(ctx context.Context, eventID string) (room.Stats, bool, error)
}

// TrackingService определяет контракт обработки позиций и снимков карты
type TrackingService interface {
	Track(ctx context.Context, entity models.Entity) error
	UpdateResponder(ctx context.Context, entity models.Entity) error
	MapSnapshot(ctx context.Context, eventID string) ([]room.MapEntity, error)
	HeatSnapshot(ctx context.Context, eventID string) ([]models.HeatSample, error)
	Stats(ctx context.Context, eventID string) (room.Stats, error)
}

type trackingService struct {
	hub    *room.Hub
	cache  StatsCache
	logger *logrus.Logger
	cfg    *config.Config
}

func NewTrackingService(hub *room.Hub, cache StatsCache, logger *logrus.Logger, cfg *config.Config) TrackingService {
	return &trackingService{
		hub:    hub,
		cache:  cache,
		logger: logger,
		cfg:    cfg,
	}
}

// Track принимает трекинговый пинг: обновляет позицию сущности и
// добавляет тепловую точку стандартного веса
func (s *trackingService) Track(ctx context.Context, entity models.Entity) error {
	r, err := s.hub.Get(ctx, entity.EventID)
	if err != nil {
		return fmt.Errorf("service: could not get event room: %w", err)
	}
	if err := r.Track(ctx, entity, trackSampleWeight); err != nil {
		return fmt.Errorf("service: could not track entity: %w", err)
	}
	return nil
}

// UpdateResponder обновляет позицию и статус респондера без тепловой точки:
// перемещения персонала не должны подсвечивать тепловую карту толпы
func (s *trackingService) UpdateResponder(ctx context.Context, entity models.Entity) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "tracking",
		"method":    "UpdateResponder",
		"event_id":  entity.EventID,
		"entity_id": entity.ID,
	})

	r, err := s.hub.Get(ctx, entity.EventID)
	if err != nil {
		return fmt.Errorf("service: could not get event room: %w", err)
	}
	if err := r.UpsertEntity(ctx, entity); err != nil {
		log.WithError(err).Error("Failed to update responder position")
		return fmt.Errorf("service: could not update responder: %w", err)
	}
	return nil
}

// MapSnapshot возвращает текущий снимок живой карты события
func (s *trackingService) MapSnapshot(ctx context.Context, eventID string) ([]room.MapEntity, error) {
	r, err := s.hub.Get(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("service: could not get event room: %w", err)
	}
	snapshot, err := r.MapSnapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not get map snapshot: %w", err)
	}
	return snapshot, nil
}

// HeatSnapshot возвращает текущее окно тепловой карты события
func (s *trackingService) HeatSnapshot(ctx context.Context, eventID string) ([]models.HeatSample, error) {
	r, err := s.hub.Get(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("service: could not get event room: %w", err)
	}
	samples, err := r.HeatSnapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not get heat snapshot: %w", err)
	}
	return samples, nil
}

// Stats возвращает сводку события. Сводка недолго живет в кеше,
// чтобы частый опрос дашбордов не дергал комнату
func (s *trackingService) Stats(ctx context.Context, eventID string) (room.Stats, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "tracking",
		"method":   "Stats",
		"event_id": eventID,
	})

	if s.cache != nil {
		cached, ok, err := s.cache.GetStats(ctx, eventID)
		if err != nil {
			log.WithError(err).Warn("Failed to read stats from cache")
		} else if ok {
			return cached, nil
		}
	}

	r, err := s.hub.Get(ctx, eventID)
	if err != nil {
		return room.Stats{}, fmt.Errorf("service: could not get event room: %w", err)
	}
	stats, err := r.Stats(ctx)
	if err != nil {
		return room.Stats{}, fmt.Errorf("service: could not get event stats: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.SetStats(ctx, eventID, stats, s.cfg.StatsCacheTTL); err != nil {
			log.WithError(err).Warn("Failed to cache event stats")
		}
	}
	return stats, nil
}
