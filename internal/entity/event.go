package entity

import "time"

const (
	EventBlend = "blend"
	EventImage = "image"
)

// GameEvent describes one finished blend or illustration.
type GameEvent struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Words     []string  `json:"words"`
	Result    string    `json:"result"`
	Style     string    `json:"style,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
