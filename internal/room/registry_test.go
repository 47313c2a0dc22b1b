package room

import (
	"testing"
	"time"

	"github.com/shenikar/event_safety_system/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entityAt(id string, lat float64, seen time.Time) models.Entity {
	return models.Entity{
		ID:       id,
		EventID:  "event-1",
		Kind:     models.EntityAttendee,
		Lat:      lat,
		Lng:      37.61,
		LastSeen: seen,
	}
}

func TestRegistry_UpsertLastWriteWins(t *testing.T) {
	// Подготовка: два апдейта одной позиции с метками t1 < t2
	now := time.Now()
	older := entityAt("u1", 55.70, now.Add(-10*time.Second))
	newer := entityAt("u1", 55.80, now)

	// Действие и проверки: итог одинаков при любом порядке прибытия
	forward := NewRegistry()
	assert.True(t, forward.Upsert(older))
	assert.True(t, forward.Upsert(newer))

	reversed := NewRegistry()
	assert.True(t, reversed.Upsert(newer))
	assert.False(t, reversed.Upsert(older), "устаревший апдейт должен быть отброшен")

	for _, reg := range []*Registry{forward, reversed} {
		snapshot := reg.Snapshot(now, time.Minute)
		require.Len(t, snapshot, 1)
		assert.Equal(t, 55.80, snapshot[0].Lat)
		assert.Equal(t, now, snapshot[0].LastSeen)
	}
}

func TestRegistry_SnapshotExcludesStale(t *testing.T) {
	// Подготовка
	now := time.Now()
	reg := NewRegistry()
	reg.Upsert(entityAt("fresh", 55.75, now))
	reg.Upsert(entityAt("stale", 55.76, now.Add(-2*time.Minute)))

	// Действие
	snapshot := reg.Snapshot(now, time.Minute)

	// Проверки: устаревшая запись не отдается, но пока не удалена
	require.Len(t, snapshot, 1)
	assert.Equal(t, "fresh", snapshot[0].ID)
	assert.Equal(t, 0, reg.Sweep(now.Add(-3*time.Minute), time.Minute))
}

func TestRegistry_SweepRemovesStale(t *testing.T) {
	now := time.Now()
	reg := NewRegistry()
	reg.Upsert(entityAt("fresh", 55.75, now))
	reg.Upsert(entityAt("stale-1", 55.76, now.Add(-2*time.Minute)))
	reg.Upsert(entityAt("stale-2", 55.77, now.Add(-3*time.Minute)))

	removed := reg.Sweep(now, time.Minute)

	assert.Equal(t, 2, removed)
	assert.Len(t, reg.Snapshot(now, time.Minute), 1)
}

func TestRegistry_Remove(t *testing.T) {
	now := time.Now()
	reg := NewRegistry()
	reg.Upsert(entityAt("u1", 55.75, now))

	assert.True(t, reg.Remove("u1"))
	assert.False(t, reg.Remove("u1"))
	assert.Empty(t, reg.Snapshot(now, time.Minute))
}

func TestRegistry_CountByKind(t *testing.T) {
	now := time.Now()
	reg := NewRegistry()
	reg.Upsert(entityAt("a1", 55.75, now))
	reg.Upsert(entityAt("a2", 55.76, now))
	volunteer := entityAt("v1", 55.77, now)
	volunteer.Kind = models.EntityVolunteer
	reg.Upsert(volunteer)

	counts := reg.CountByKind(now, time.Minute)

	assert.Equal(t, 2, counts[models.EntityAttendee])
	assert.Equal(t, 1, counts[models.EntityVolunteer])
}
