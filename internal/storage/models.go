package storage

import (
	"errors"
	"time"
)

// ErrNotFound is returned when no short link exists for the requested id.
var ErrNotFound = errors.New("short link not found")

// ErrDuplicateShortID is returned when an insert hits the short_id
// uniqueness constraint. Callers regenerate the id and retry.
var ErrDuplicateShortID = errors.New("short id already exists")

// ShortLink maps a six-character short id to a Drive file id.
// Rows are immutable after creation.
type ShortLink struct {
	ShortID   string
	DriveID   string
	Name      string
	CreatedAt time.Time
}
