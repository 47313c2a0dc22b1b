package room

import (
	"time"

	"github.com/shenikar/event_safety_system/internal/models"
)

// Registry - реестр живых позиций участников одного события.
// Не имеет собственной блокировки: все мутации идут через
// последовательную очередь операций комнаты.
type Registry struct {
	entities map[string]*models.Entity
}

func NewRegistry() *Registry {
	return &Registry{
		entities: make(map[string]*models.Entity),
	}
}

// Upsert вставляет или заменяет позицию по id.
// Обновление старше уже сохраненного (по LastSeen) молча игнорируется,
// чтобы перестановка конкурентных апдейтов не откатывала позицию назад.
// Возвращает false, если обновление было отброшено как устаревшее.
func (r *Registry) Upsert(e models.Entity) bool {
	if cur, ok := r.entities[e.ID]; ok && e.LastSeen.Before(cur.LastSeen) {
		return false
	}
	copied := e
	r.entities[e.ID] = &copied
	return true
}

// Remove удаляет позицию по id. Возвращает false, если записи не было.
func (r *Registry) Remove(id string) bool {
	if _, ok := r.entities[id]; !ok {
		return false
	}
	delete(r.entities, id)
	return true
}

// Snapshot возвращает копии всех позиций, чей LastSeen попадает в окно свежести.
// Устаревшие записи не отдаются, но и не удаляются - их убирает Sweep.
func (r *Registry) Snapshot(now time.Time, staleness time.Duration) []models.Entity {
	cutoff := now.Add(-staleness)
	out := make([]models.Entity, 0, len(r.entities))
	for _, e := range r.entities {
		if e.LastSeen.Before(cutoff) {
			continue
		}
		out = append(out, *e)
	}
	return out
}

// Sweep удаляет записи, выпавшие из окна свежести. Возвращает число удаленных.
func (r *Registry) Sweep(now time.Time, staleness time.Duration) int {
	cutoff := now.Add(-staleness)
	removed := 0
	for id, e := range r.entities {
		if e.LastSeen.Before(cutoff) {
			delete(r.entities, id)
			removed++
		}
	}
	return removed
}

// CountByKind считает живые позиции по типу участника
func (r *Registry) CountByKind(now time.Time, staleness time.Duration) map[models.EntityKind]int {
	cutoff := now.Add(-staleness)
	counts := make(map[models.EntityKind]int)
	for _, e := range r.entities {
		if e.LastSeen.Before(cutoff) {
			continue
		}
		counts[e.Kind]++
	}
	return counts
}
