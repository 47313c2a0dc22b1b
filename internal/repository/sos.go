package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/event_safety_system/internal/models"
)

// SOSRepository - сквозная запись сигналов бедствия в PostgreSQL
type SOSRepository struct {
	db *pgxpool.Pool
}

func NewSOSRepository(db *pgxpool.Pool) *SOSRepository {
	return &SOSRepository{db: db}
}

// SaveSignal сохраняет новый сигнал бедствия
func (r *SOSRepository) SaveSignal(ctx context.Context, signal *models.SOSSignal) error {
	query := `
		INSERT INTO sos_signals (id, event_id, sender_id, type, lat, lng, active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.db.Exec(ctx, query,
		signal.ID,
		signal.EventID,
		signal.SenderID,
		signal.Type,
		signal.Lat,
		signal.Lng,
		signal.Active,
		signal.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save sos signal: %w", err)
	}
	return nil
}

// DeactivateSignal гасит сигнал: и по подтверждению, и по авто-истечению
func (r *SOSRepository) DeactivateSignal(ctx context.Context, id uuid.UUID, at time.Time) error {
	query := `
		UPDATE sos_signals SET
			active = FALSE,
			acknowledged_at = $1
		WHERE id = $2;
	`
	cmdTag, err := r.db.Exec(ctx, query, at, id)
	if err != nil {
		return fmt.Errorf("failed to deactivate sos signal: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("sos signal with id %s not found for deactivate", id)
	}
	return nil
}

// LoadActiveSignals возвращает активные сигналы события для гидрации комнаты
func (r *SOSRepository) LoadActiveSignals(ctx context.Context, eventID string) ([]*models.SOSSignal, error) {
	query := `
		SELECT id, event_id, sender_id, type, lat, lng, active, created_at, acknowledged_at
		FROM sos_signals
		WHERE event_id = $1 AND active = TRUE
		ORDER BY created_at ASC;
	`
	rows, err := r.db.Query(ctx, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to load active sos signals: %w", err)
	}
	defer rows.Close()

	signals := make([]*models.SOSSignal, 0)
	for rows.Next() {
		signal := &models.SOSSignal{}
		err := rows.Scan(
			&signal.ID,
			&signal.EventID,
			&signal.SenderID,
			&signal.Type,
			&signal.Lat,
			&signal.Lng,
			&signal.Active,
			&signal.CreatedAt,
			&signal.AcknowledgedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sos signal row: %w", err)
		}
		signals = append(signals, signal)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error sos signals iteration: %w", err)
	}
	return signals, nil
}
