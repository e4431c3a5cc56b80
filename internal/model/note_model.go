package model

import (
	"time"

	"github.com/google/uuid"
)

type Note struct {
	NoteId      int        `gorm:"column:note_id;primaryKey;autoIncrement"`
	OwnerId     uuid.UUID  `gorm:"column:owner_id;type:uuid;not null;index"`
	Title       string     `gorm:"column:title;type:text;not null"`
	Content     string     `gorm:"column:content;type:text;not null"`
	IsStarred   bool       `gorm:"column:is_starred;not null;default:false"`
	CreatedUtc  time.Time  `gorm:"column:created_utc;type:timestamptz;not null"`
	ModifiedUtc *time.Time `gorm:"column:modified_utc;type:timestamptz"`
}

func (Note) TableName() string {
	return "Note"
}
