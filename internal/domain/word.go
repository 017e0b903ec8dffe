package domain

import (
	"time"

	"github.com/google/uuid"
)

// MaxWordLength is the longest word text the store accepts, in runes.
const MaxWordLength = 100

// FarewellWord ends a lookup session instead of being looked up.
const FarewellWord = "ಸಾಕು"

// Word is a single entry of the word store (padakosha).
type Word struct {
	ID        uuid.UUID
	Text      string
	CreatedAt time.Time
}

// LookupStatus is the outcome of a word lookup.
type LookupStatus string

const (
	LookupFound    LookupStatus = "FOUND"
	LookupAdded    LookupStatus = "ADDED"
	LookupMissing  LookupStatus = "MISSING"
	LookupFarewell LookupStatus = "FAREWELL"
)

func (s LookupStatus) String() string { return string(s) }

// IsValid reports whether s is a known status.
func (s LookupStatus) IsValid() bool {
	switch s {
	case LookupFound, LookupAdded, LookupMissing, LookupFarewell:
		return true
	}
	return false
}

// LookupResult is returned by a word lookup.
type LookupResult struct {
	Status      LookupStatus
	Word        *Word
	Suggestions []string
	Total       int
}
