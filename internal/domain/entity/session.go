package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session is one continuous period of cashier use. It owns exactly one
// active cart; nothing else shares it.
type Session struct {
	ID        uuid.UUID `json:"id"`
	Cart      *Cart     `json:"cart"`
	CreatedAt time.Time `json:"created_at"`
	LastSeen  time.Time `json:"last_seen"` // written only by the session registry, under its lock
}

// NewSession creates a session with an empty cart.
func NewSession() *Session {
	now := time.Now()
	return &Session{
		ID:        uuid.New(),
		Cart:      NewCart(),
		CreatedAt: now,
		LastSeen:  now,
	}
}
