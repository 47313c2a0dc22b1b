package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/event_safety_system/internal/models"
)

// AlertRepository - сквозная запись оповещений безопасности в PostgreSQL
type AlertRepository struct {
	db *pgxpool.Pool
}

func NewAlertRepository(db *pgxpool.Pool) *AlertRepository {
	return &AlertRepository{db: db}
}

// SaveAlert сохраняет разосланное оповещение
func (r *AlertRepository) SaveAlert(ctx context.Context, alert *models.SafetyAlert) error {
	query := `
		INSERT INTO safety_alerts (id, event_id, title, message, severity, audience_type, sender_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.db.Exec(ctx, query,
		alert.ID,
		alert.EventID,
		alert.Title,
		alert.Message,
		alert.Severity,
		alert.AudienceType,
		alert.SenderID,
		alert.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save safety alert: %w", err)
	}
	return nil
}

// LoadAlerts возвращает историю оповещений события, свежие первыми
func (r *AlertRepository) LoadAlerts(ctx context.Context, eventID string) ([]*models.SafetyAlert, error) {
	query := `
		SELECT id, event_id, title, message, severity, audience_type, sender_id, created_at
		FROM safety_alerts
		WHERE event_id = $1
		ORDER BY created_at DESC;
	`
	rows, err := r.db.Query(ctx, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to load safety alerts: %w", err)
	}
	defer rows.Close()

	alerts := make([]*models.SafetyAlert, 0)
	for rows.Next() {
		alert := &models.SafetyAlert{}
		err := rows.Scan(
			&alert.ID,
			&alert.EventID,
			&alert.Title,
			&alert.Message,
			&alert.Severity,
			&alert.AudienceType,
			&alert.SenderID,
			&alert.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan safety alert row: %w", err)
		}
		alerts = append(alerts, alert)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error safety alerts iteration: %w", err)
	}
	return alerts, nil
}
