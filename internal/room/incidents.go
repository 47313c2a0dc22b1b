package room

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/event_safety_system/internal/models"
)

var (
	// ErrInvalidTransition возвращается при запрещенном переходе статуса инцидента
	ErrInvalidTransition = errors.New("invalid incident status transition")
	// ErrIncidentNotFound возвращается, если инцидент не найден в комнате
	ErrIncidentNotFound = errors.New("incident not found")
)

// validTransitions описывает машину состояний жизненного цикла инцидента.
// REPORTED - начальный статус, RESOLVED и FALSE_ALARM - терминальные.
var validTransitions = map[models.IncidentStatus][]models.IncidentStatus{
	models.StatusReported:      {models.StatusInvestigating, models.StatusFalseAlarm},
	models.StatusInvestigating: {models.StatusResolved},
	models.StatusResolved:      {},
	models.StatusFalseAlarm:    {},
}

// IncidentFilter - необязательный фильтр выборки инцидентов
type IncidentFilter struct {
	Status   models.IncidentStatus
	Severity models.IncidentSeverity
}

// IncidentSet хранит инциденты одного события и применяет к ним машину состояний.
// Инциденты никогда не удаляются, терминальные остаются для аудита.
type IncidentSet struct {
	byID  map[uuid.UUID]*models.Incident
	order []uuid.UUID
}

func NewIncidentSet() *IncidentSet {
	return &IncidentSet{
		byID: make(map[uuid.UUID]*models.Incident),
	}
}

// Create регистрирует новый инцидент в статусе REPORTED.
// Серьезность по умолчанию MEDIUM, в аудит пишется первая запись.
func (s *IncidentSet) Create(inc *models.Incident, now time.Time) {
	if inc.Severity == "" {
		inc.Severity = models.SeverityMedium
	}
	inc.Status = models.StatusReported
	inc.CreatedAt = now
	inc.UpdatedAt = now
	inc.Activity = append(inc.Activity, models.ActivityEntry{
		ActionType:  actionType(models.StatusReported),
		PerformedBy: inc.ReporterID,
		Notes:       inc.Description,
		Timestamp:   now,
	})
	s.byID[inc.ID] = inc
	s.order = append(s.order, inc.ID)
}

// Transition переводит инцидент в новый статус.
// Недопустимый переход отклоняется с ErrInvalidTransition без какой-либо мутации.
// Принятый переход добавляет ровно одну запись в аудит.
func (s *IncidentSet) Transition(id uuid.UUID, next models.IncidentStatus, performedBy, notes string, now time.Time) (*models.Incident, error) {
	inc, ok := s.byID[id]
	if !ok {
		return nil, ErrIncidentNotFound
	}
	if !transitionAllowed(inc.Status, next) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, inc.Status, next)
	}
	inc.Status = next
	inc.UpdatedAt = now
	inc.Activity = append(inc.Activity, models.ActivityEntry{
		ActionType:  actionType(next),
		PerformedBy: performedBy,
		Notes:       notes,
		Timestamp:   now,
	})
	return inc, nil
}

// Get возвращает инцидент по id
func (s *IncidentSet) Get(id uuid.UUID) (*models.Incident, bool) {
	inc, ok := s.byID[id]
	return inc, ok
}

// List возвращает инциденты в порядке создания с учетом фильтра
func (s *IncidentSet) List(filter IncidentFilter) []*models.Incident {
	out := make([]*models.Incident, 0, len(s.order))
	for _, id := range s.order {
		inc := s.byID[id]
		if filter.Status != "" && inc.Status != filter.Status {
			continue
		}
		if filter.Severity != "" && inc.Severity != filter.Severity {
			continue
		}
		out = append(out, inc)
	}
	return out
}

// Open возвращает нетерминальные инциденты (для маркеров на живой карте)
func (s *IncidentSet) Open() []*models.Incident {
	out := make([]*models.Incident, 0)
	for _, id := range s.order {
		if inc := s.byID[id]; !inc.Status.Terminal() {
			out = append(out, inc)
		}
	}
	return out
}

// PendingCount - число инцидентов, ожидающих разбора
func (s *IncidentSet) PendingCount() int {
	n := 0
	for _, inc := range s.byID {
		if inc.Status == models.StatusReported {
			n++
		}
	}
	return n
}

// CriticalCount - число критических инцидентов, еще не разрешенных
func (s *IncidentSet) CriticalCount() int {
	n := 0
	for _, inc := range s.byID {
		if inc.Severity == models.SeverityCritical && inc.Status != models.StatusResolved {
			n++
		}
	}
	return n
}

// Hydrate загружает инциденты из долговременного хранилища при холодном старте комнаты
func (s *IncidentSet) Hydrate(incidents []*models.Incident) {
	for _, inc := range incidents {
		if _, ok := s.byID[inc.ID]; ok {
			continue
		}
		s.byID[inc.ID] = inc
		s.order = append(s.order, inc.ID)
	}
}

func transitionAllowed(from, to models.IncidentStatus) bool {
	for _, allowed := range validTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

func actionType(status models.IncidentStatus) string {
	return "STATUS_CHANGE_" + string(status)
}
