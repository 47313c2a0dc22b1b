package room

import (
	"fmt"
	"time"

	"github.com/shenikar/event_safety_system/internal/models"
)

// Channel - канал подписки в рамках одного события
type Channel string

const (
	// ChannelTrack - входящий канал позиций от одного отправителя
	ChannelTrack Channel = "track"
	// ChannelHeatmap - исходящий канал точек плотности
	ChannelHeatmap Channel = "heatmap"
	// ChannelLiveMap - исходящий канал дельт сущностей живой карты
	ChannelLiveMap Channel = "live-map"
	// ChannelBroadcast - исходящий канал оповещений безопасности
	ChannelBroadcast Channel = "broadcast"
)

// ParseChannel разбирает имя канала из URL подключения
func ParseChannel(s string) (Channel, error) {
	switch Channel(s) {
	case ChannelTrack, ChannelHeatmap, ChannelLiveMap, ChannelBroadcast:
		return Channel(s), nil
	}
	return "", fmt.Errorf("unknown channel %q", s)
}

// MapEntity - дельта одной сущности на живой карте.
// Покрывает и позиции участников, и маркеры инцидентов/SOS.
type MapEntity struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Lat       float64   `json:"lat"`
	Lng       float64   `json:"lng"`
	Label     string    `json:"label,omitempty"`
	Status    string    `json:"status,omitempty"`
	Severity  string    `json:"severity,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// HeatmapMessage - сообщение канала heatmap: снапшот или дельта точек плотности
type HeatmapMessage struct {
	Type   string       `json:"type"`
	Points [][3]float64 `json:"points"`
}

// AlertMessage - сообщение канала broadcast
type AlertMessage struct {
	Type  string             `json:"type"`
	Alert models.SafetyAlert `json:"alert"`
}

func entityDelta(e models.Entity) MapEntity {
	return MapEntity{
		ID:        e.ID,
		Type:      string(e.Kind),
		Lat:       e.Lat,
		Lng:       e.Lng,
		Label:     e.Label,
		Status:    e.Status,
		Timestamp: e.LastSeen,
	}
}

func incidentDelta(inc *models.Incident) MapEntity {
	return MapEntity{
		ID:        "incident-" + inc.ID.String(),
		Type:      "incident",
		Lat:       inc.Lat,
		Lng:       inc.Lng,
		Label:     string(inc.Category),
		Status:    string(inc.Status),
		Severity:  string(inc.Severity),
		Timestamp: inc.UpdatedAt,
	}
}

func sosDelta(sig *models.SOSSignal) MapEntity {
	status := "ACTIVE"
	if !sig.Active {
		status = "INACTIVE"
	}
	return MapEntity{
		ID:        "sos-" + sig.ID.String(),
		Type:      "sos",
		Lat:       sig.Lat,
		Lng:       sig.Lng,
		Label:     string(sig.Type),
		Status:    status,
		Timestamp: sig.CreatedAt,
	}
}

func heatmapSnapshot(samples []models.HeatSample) HeatmapMessage {
	points := make([][3]float64, 0, len(samples))
	for _, s := range samples {
		points = append(points, [3]float64{s.Lat, s.Lng, s.Weight})
	}
	return HeatmapMessage{Type: "heatmap_data", Points: points}
}

func heatmapDelta(s models.HeatSample) HeatmapMessage {
	return HeatmapMessage{Type: "heatmap_data", Points: [][3]float64{{s.Lat, s.Lng, s.Weight}}}
}

func alertMessage(a models.SafetyAlert) AlertMessage {
	return AlertMessage{Type: "safety_alert", Alert: a}
}
