package domain

import (
	"time"

	"github.com/google/uuid"
)

// Couplet is a saved two-line verse.
type Couplet struct {
	ID        uuid.UUID
	Line1     string
	Line2     string
	Score     float64
	Target    int
	CreatedAt time.Time
}
