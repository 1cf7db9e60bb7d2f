package domain

import "time"

// RegionCheckEvent records the outcome of one point-in-region evaluation.
type RegionCheckEvent struct {
	Region    string    `json:"region"`
	Position  Position  `json:"position"`
	Inside    bool      `json:"inside"`
	CheckedAt time.Time `json:"checked_at"`
}
