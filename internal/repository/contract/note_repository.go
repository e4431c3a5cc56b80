package contract

import (
	"context"

	"elevennote-be/internal/entity"
	"elevennote-be/internal/repository/specification"
)

type NoteRepository interface {
	// Create inserts the note, copies the generated NoteId back into it and reports rows affected.
	Create(ctx context.Context, note *entity.Note) (int64, error)
	// UpdateContent writes title, content and modified_utc to every row matching specs.
	UpdateContent(ctx context.Context, note *entity.Note, specs ...specification.Specification) (int64, error)
	Delete(ctx context.Context, specs ...specification.Specification) (int64, error)
	// FindSingle returns ErrNoteNotFound or ErrNoteNotUnique unless exactly one row matches.
	FindSingle(ctx context.Context, specs ...specification.Specification) (*entity.Note, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Note, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
