package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/event_safety_system/internal/models"
)

// IncidentRepository - сквозная запись инцидентов и их аудита в PostgreSQL.
// Память комнаты первична, бд нужна для гидрации при холодном старте.
type IncidentRepository struct {
	db *pgxpool.Pool
}

func NewIncidentRepository(db *pgxpool.Pool) *IncidentRepository {
	return &IncidentRepository{db: db}
}

// SaveIncident сохраняет новый инцидент вместе с начальными записями аудита
func (r *IncidentRepository) SaveIncident(ctx context.Context, incident *models.Incident) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin incident tx: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO incidents (id, event_id, category, severity, status, description, reporter_id, lat, lng, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err = tx.Exec(ctx, query,
		incident.ID,
		incident.EventID,
		incident.Category,
		incident.Severity,
		incident.Status,
		incident.Description,
		incident.ReporterID,
		incident.Lat,
		incident.Lng,
		incident.CreatedAt,
		incident.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create incident: %w", err)
	}

	for _, entry := range incident.Activity {
		if err := insertActivity(ctx, tx, incident.ID, entry); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit incident tx: %w", err)
	}
	return nil
}

// SaveIncidentStatus обновляет статус инцидента и дописывает запись аудита
func (r *IncidentRepository) SaveIncidentStatus(ctx context.Context, incident *models.Incident, entry models.ActivityEntry) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin incident status tx: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		UPDATE incidents SET
			status = $1,
			updated_at = $2
		WHERE id = $3;
	`
	cmdTag, err := tx.Exec(ctx, query, incident.Status, incident.UpdatedAt, incident.ID)
	if err != nil {
		return fmt.Errorf("failed to update incident status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("incident with id %s not found for status update", incident.ID)
	}

	if err := insertActivity(ctx, tx, incident.ID, entry); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit incident status tx: %w", err)
	}
	return nil
}

// LoadIncidents возвращает все инциденты события вместе с аудитом
// в порядке создания (для гидрации комнаты)
func (r *IncidentRepository) LoadIncidents(ctx context.Context, eventID string) ([]*models.Incident, error) {
	query := `
		SELECT id, event_id, category, severity, status, description, reporter_id, lat, lng, created_at, updated_at
		FROM incidents
		WHERE event_id = $1
		ORDER BY created_at ASC;
	`
	rows, err := r.db.Query(ctx, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to load incidents: %w", err)
	}
	defer rows.Close()

	incidents := make([]*models.Incident, 0)
	byID := make(map[uuid.UUID]*models.Incident)
	for rows.Next() {
		incident := &models.Incident{}
		err := rows.Scan(
			&incident.ID,
			&incident.EventID,
			&incident.Category,
			&incident.Severity,
			&incident.Status,
			&incident.Description,
			&incident.ReporterID,
			&incident.Lat,
			&incident.Lng,
			&incident.CreatedAt,
			&incident.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan incident row: %w", err)
		}
		incidents = append(incidents, incident)
		byID[incident.ID] = incident
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error incidents iteration: %w", err)
	}

	activityQuery := `
		SELECT a.incident_id, a.action_type, a.notes, a.performed_by, a.created_at
		FROM incident_activity a
		JOIN incidents i ON i.id = a.incident_id
		WHERE i.event_id = $1
		ORDER BY a.created_at ASC, a.id ASC;
	`
	activityRows, err := r.db.Query(ctx, activityQuery, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to load incident activity: %w", err)
	}
	defer activityRows.Close()

	for activityRows.Next() {
		var (
			incidentID uuid.UUID
			entry      models.ActivityEntry
		)
		err := activityRows.Scan(
			&incidentID,
			&entry.ActionType,
			&entry.Notes,
			&entry.PerformedBy,
			&entry.Timestamp,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan incident activity row: %w", err)
		}
		if incident, ok := byID[incidentID]; ok {
			incident.Activity = append(incident.Activity, entry)
		}
	}
	if err := activityRows.Err(); err != nil {
		return nil, fmt.Errorf("error incident activity iteration: %w", err)
	}

	return incidents, nil
}

func insertActivity(ctx context.Context, tx pgx.Tx, incidentID uuid.UUID, entry models.ActivityEntry) error {
	query := `
		INSERT INTO incident_activity (incident_id, action_type, notes, performed_by, created_at)
		VALUES ($1, $2, $3, $4, $5);
	`
	if _, err := tx.Exec(ctx, query,
		incidentID,
		entry.ActionType,
		entry.Notes,
		entry.PerformedBy,
		entry.Timestamp,
	); err != nil {
		return fmt.Errorf("failed to insert incident activity: %w", err)
	}
	return nil
}
