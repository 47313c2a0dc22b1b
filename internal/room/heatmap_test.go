package room

import (
	"testing"
	"time"

	"github.com/shenikar/event_safety_system/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleN(n int) models.HeatSample {
	return models.HeatSample{
		Lat:       55.75 + float64(n)*0.0001,
		Lng:       37.61,
		Weight:    float64(n),
		Timestamp: time.Unix(int64(n), 0),
	}
}

func TestHeatRing_BelowCapacity(t *testing.T) {
	// Подготовка
	ring := NewHeatRing(10)

	// Действие
	for i := 0; i < 3; i++ {
		ring.Add(sampleN(i))
	}

	// Проверки
	snapshot := ring.Snapshot()
	require.Len(t, snapshot, 3)
	assert.Equal(t, 3, ring.Len())
	for i, s := range snapshot {
		assert.Equal(t, float64(i), s.Weight)
	}
}

func TestHeatRing_OverflowKeepsMostRecentInOrder(t *testing.T) {
	// Подготовка: буфер на 500 точек, добавляем 650
	ring := NewHeatRing(500)

	// Действие
	for i := 0; i < 650; i++ {
		ring.Add(sampleN(i))
	}

	// Проверки: длина никогда не превышает емкость,
	// в буфере ровно 500 самых свежих точек в исходном порядке
	assert.Equal(t, 500, ring.Len())
	snapshot := ring.Snapshot()
	require.Len(t, snapshot, 500)
	for i, s := range snapshot {
		assert.Equal(t, float64(150+i), s.Weight)
	}
}

func TestHeatRing_LenNeverExceedsCapacity(t *testing.T) {
	ring := NewHeatRing(5)
	for i := 0; i < 100; i++ {
		ring.Add(sampleN(i))
		assert.LessOrEqual(t, ring.Len(), 5)
	}
}

func TestHeatRing_ZeroCapacityFallsBackToDefault(t *testing.T) {
	ring := NewHeatRing(0)
	for i := 0; i < DefaultHeatmapCapacity+1; i++ {
		ring.Add(sampleN(i))
	}
	assert.Equal(t, DefaultHeatmapCapacity, ring.Len())
}
