package models

import "time"

// Turn is one entry in a conversation transcript. Turns are append-only:
// once stored they are never mutated, and the full ordered sequence is
// replayed to the runtime on every exchange.
type Turn struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}
