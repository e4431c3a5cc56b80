package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByNoteID struct {
	ID int
}

func (s ByNoteID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("note_id = ?", s.ID)
}

// NoteOwnedBy is the authorization filter; every read and write of a note goes through it.
type NoteOwnedBy struct {
	OwnerID uuid.UUID
}

func (s NoteOwnedBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("owner_id = ?", s.OwnerID)
}
