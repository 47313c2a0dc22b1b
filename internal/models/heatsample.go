package models

import (
	"time"
)

// HeatSample - одна точка плотности для тепловой карты события
type HeatSample struct {
	Lat       float64   `json:"lat"`
	Lng       float64   `json:"lng"`
	Weight    float64   `json:"weight"`
	Timestamp time.Time `json:"timestamp"`
}
