package room

import (
	"github.com/shenikar/event_safety_system/internal/models"
)

// DefaultHeatmapCapacity - сколько последних точек плотности держим в памяти.
// Ограничение нужно, чтобы память и стоимость отрисовки не росли
// под частыми пингами: свежесть важнее полноты.
const DefaultHeatmapCapacity = 500

// HeatRing - кольцевой буфер точек плотности фиксированной емкости.
// При переполнении самая старая точка перезаписывается.
type HeatRing struct {
	samples []models.HeatSample
	head    int
	size    int
}

func NewHeatRing(capacity int) *HeatRing {
	if capacity <= 0 {
		capacity = DefaultHeatmapCapacity
	}
	return &HeatRing{
		samples: make([]models.HeatSample, capacity),
	}
}

// Add добавляет точку в буфер, вытесняя самую старую при переполнении
func (h *HeatRing) Add(s models.HeatSample) {
	h.samples[h.head] = s
	h.head = (h.head + 1) % len(h.samples)
	if h.size < len(h.samples) {
		h.size++
	}
}

// Snapshot возвращает содержимое буфера от самой старой точки к самой новой
func (h *HeatRing) Snapshot() []models.HeatSample {
	out := make([]models.HeatSample, 0, h.size)
	start := h.head - h.size
	if start < 0 {
		start += len(h.samples)
	}
	for i := 0; i < h.size; i++ {
		out = append(out, h.samples[(start+i)%len(h.samples)])
	}
	return out
}

// Len возвращает текущее число точек в буфере
func (h *HeatRing) Len() int {
	return h.size
}
