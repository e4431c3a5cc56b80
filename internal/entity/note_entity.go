package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Note struct {
	NoteId      int
	OwnerId     uuid.UUID
	Title       string
	Content     string
	IsStarred   bool
	CreatedUtc  time.Time
	ModifiedUtc *time.Time
}

// String renders the display label used in logs and listings.
func (n Note) String() string {
	return fmt.Sprintf("[%d] %s", n.NoteId, n.Title)
}
