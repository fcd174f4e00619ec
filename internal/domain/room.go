package domain

import "time"

// Room represents a rehearsal studio room
type Room struct {
	ID          int64
	Name        string
	Price       string // отображаемая цена, например "150.000"
	Image       string
	Description string

	CreatedAt time.Time
}
