package room

import (
	"errors"

	"github.com/shenikar/event_safety_system/internal/models"
)

// ErrEmptyAlert возвращается при попытке разослать оповещение без заголовка или текста
var ErrEmptyAlert = errors.New("alert title and message are required")

// AlertHistory - история оповещений одного события.
// Оповещение после рассылки неизменяемо; доставка только best-effort,
// отключенные подписчики догоняют историю отдельным запросом.
type AlertHistory struct {
	alerts []*models.SafetyAlert
}

func NewAlertHistory() *AlertHistory {
	return &AlertHistory{}
}

// Append добавляет оповещение в историю
func (h *AlertHistory) Append(a *models.SafetyAlert) {
	h.alerts = append(h.alerts, a)
}

// All возвращает копии всех оповещений, свежие первыми
func (h *AlertHistory) All() []models.SafetyAlert {
	out := make([]models.SafetyAlert, 0, len(h.alerts))
	for i := len(h.alerts) - 1; i >= 0; i-- {
		out = append(out, *h.alerts[i])
	}
	return out
}

// Len возвращает число разосланных оповещений
func (h *AlertHistory) Len() int {
	return len(h.alerts)
}

// Hydrate загружает историю из хранилища при холодном старте.
// Хранилище отдает свежие первыми, внутри держим старые первыми.
func (h *AlertHistory) Hydrate(alerts []*models.SafetyAlert) {
	for i := len(alerts) - 1; i >= 0; i-- {
		h.alerts = append(h.alerts, alerts[i])
	}
}
