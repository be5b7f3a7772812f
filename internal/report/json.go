package report

import (
	"encoding/json"

	"github.com/DanSteel1337/5PT-sub000/internal/types"
)

// Document is the JSON form of a projection plus its optional daily schedule.
type Document struct {
	Projection types.Projection   `json:"projection"`
	Schedule   []types.DailyPoint `json:"schedule,omitempty"`
}

// RenderJSON renders a projection as indented JSON.
func RenderJSON(p types.Projection, schedule []types.DailyPoint) ([]byte, error) {
	return json.MarshalIndent(Document{Projection: p, Schedule: schedule}, "", "  ")
}
