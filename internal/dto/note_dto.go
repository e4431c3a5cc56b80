package dto

import (
	"time"
)

type NoteListItem struct {
	NoteId     int       `json:"note_id"`
	Title      string    `json:"title"`
	CreatedUtc time.Time `json:"created_utc"`
}

type NoteDetail struct {
	NoteId      int        `json:"note_id"`
	Title       string     `json:"title"`
	Content     string     `json:"content"`
	CreatedUtc  time.Time  `json:"created_utc"`
	ModifiedUtc *time.Time `json:"modified_utc"`
}

type NoteCreate struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// The HTTP adapter overwrites NoteId with the :id path parameter.
type NoteEdit struct {
	NoteId  int    `json:"note_id" validate:"gt=0"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

type NoteCreateResponse struct {
	Created bool `json:"created"`
}

type NoteUpdateResponse struct {
	Updated bool `json:"updated"`
}

type NoteDeleteResponse struct {
	Deleted bool `json:"deleted"`
}
