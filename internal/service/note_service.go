package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"elevennote-be/internal/dto"
	"elevennote-be/internal/entity"
	"elevennote-be/internal/mapper"
	"elevennote-be/internal/pkg/logger"
	"elevennote-be/internal/repository/contract"
	"elevennote-be/internal/repository/specification"
	"elevennote-be/internal/repository/unitofwork"
	"elevennote-be/pkg/database"

	"github.com/google/uuid"
)

const noteModule = "NoteService"

var (
	ErrNoteNotFound  = contract.ErrNoteNotFound
	ErrNoteNotUnique = contract.ErrNoteNotUnique
)

// INoteService is bound to a single owner; every operation only sees that owner's notes.
type INoteService interface {
	ListNotes(ctx context.Context) ([]dto.NoteListItem, error)
	CreateNote(ctx context.Context, req dto.NoteCreate) (bool, error)
	GetNoteById(ctx context.Context, noteId int) (*dto.NoteDetail, error)
	UpdateNote(ctx context.Context, req dto.NoteEdit) (bool, error)
	DeleteNote(ctx context.Context, noteId int) (bool, error)
}

type NoteServiceOption func(*noteService)

func WithLogger(l logger.ILogger) NoteServiceOption {
	return func(s *noteService) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithClock replaces the source of CreatedUtc/ModifiedUtc stamps.
func WithClock(now func() time.Time) NoteServiceOption {
	return func(s *noteService) {
		if now != nil {
			s.now = now
		}
	}
}

type noteService struct {
	uowFactory unitofwork.RepositoryFactory
	userId     uuid.UUID
	logger     logger.ILogger
	now        func() time.Time
	mapper     *mapper.NoteMapper
}

func NewNoteService(uowFactory unitofwork.RepositoryFactory, userId uuid.UUID, opts ...NoteServiceOption) INoteService {
	s := &noteService{
		uowFactory: uowFactory,
		userId:     userId,
		logger:     logger.NewNopLogger(),
		now:        func() time.Time { return time.Now().UTC() },
		mapper:     mapper.NewNoteMapper(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *noteService) owned() specification.Specification {
	return specification.NoteOwnedBy{OwnerID: s.userId}
}

func (s *noteService) ListNotes(ctx context.Context) ([]dto.NoteListItem, error) {
	var items []dto.NoteListItem

	uow := s.uowFactory.NewUnitOfWork(ctx)
	err := uow.Connection(ctx, func(conn unitofwork.UnitOfWork) error {
		notes, err := conn.NoteRepository().FindAll(ctx, s.owned())
		if err != nil {
			return err
		}
		items = s.mapper.ToListItems(notes)
		return nil
	})
	if err != nil {
		s.logger.Error(noteModule, "Failed to list notes", map[string]interface{}{
			"user_id": s.userId,
			"error":   err,
		})
		return nil, fmt.Errorf("list notes: %w", err)
	}

	return items, nil
}

func (s *noteService) CreateNote(ctx context.Context, req dto.NoteCreate) (bool, error) {
	note := &entity.Note{
		OwnerId:    s.userId,
		Title:      req.Title,
		Content:    req.Content,
		IsStarred:  false,
		CreatedUtc: s.now(),
	}

	var affected int64
	uow := s.uowFactory.NewUnitOfWork(ctx)
	err := uow.Connection(ctx, func(conn unitofwork.UnitOfWork) error {
		var err error
		affected, err = conn.NoteRepository().Create(ctx, note)
		return err
	})
	if err != nil {
		s.logger.Error(noteModule, "Failed to create note", map[string]interface{}{
			"user_id":              s.userId,
			"constraint_violation": database.IsConstraintViolation(err),
			"error":                err,
		})
		return false, fmt.Errorf("create note: %w", err)
	}

	return s.checkAffected("create", note, affected), nil
}

func (s *noteService) GetNoteById(ctx context.Context, noteId int) (*dto.NoteDetail, error) {
	var note *entity.Note

	uow := s.uowFactory.NewUnitOfWork(ctx)
	err := uow.Connection(ctx, func(conn unitofwork.UnitOfWork) error {
		var err error
		note, err = conn.NoteRepository().FindSingle(ctx, specification.ByNoteID{ID: noteId}, s.owned())
		return err
	})
	if err != nil {
		s.logLookupError("get", noteId, err)
		return nil, fmt.Errorf("get note %d: %w", noteId, err)
	}

	return s.mapper.ToDetail(note), nil
}

func (s *noteService) UpdateNote(ctx context.Context, req dto.NoteEdit) (bool, error) {
	var (
		note     *entity.Note
		affected int64
	)

	uow := s.uowFactory.NewUnitOfWork(ctx)
	err := uow.Connection(ctx, func(conn unitofwork.UnitOfWork) error {
		repo := conn.NoteRepository()

		var err error
		note, err = repo.FindSingle(ctx, specification.ByNoteID{ID: req.NoteId}, s.owned())
		if err != nil {
			return err
		}

		now := s.now()
		note.Title = req.Title
		note.Content = req.Content
		note.ModifiedUtc = &now

		affected, err = repo.UpdateContent(ctx, note, specification.ByNoteID{ID: note.NoteId}, s.owned())
		return err
	})
	if err != nil {
		s.logLookupError("update", req.NoteId, err)
		return false, fmt.Errorf("update note %d: %w", req.NoteId, err)
	}

	return s.checkAffected("update", note, affected), nil
}

func (s *noteService) DeleteNote(ctx context.Context, noteId int) (bool, error) {
	var (
		note     *entity.Note
		affected int64
	)

	uow := s.uowFactory.NewUnitOfWork(ctx)
	err := uow.Connection(ctx, func(conn unitofwork.UnitOfWork) error {
		repo := conn.NoteRepository()

		var err error
		note, err = repo.FindSingle(ctx, specification.ByNoteID{ID: noteId}, s.owned())
		if err != nil {
			return err
		}

		affected, err = repo.Delete(ctx, specification.ByNoteID{ID: note.NoteId}, s.owned())
		return err
	})
	if err != nil {
		s.logLookupError("delete", noteId, err)
		return false, fmt.Errorf("delete note %d: %w", noteId, err)
	}

	return s.checkAffected("delete", note, affected), nil
}

// checkAffected collapses the write outcome to the single-row success flag.
func (s *noteService) checkAffected(op string, note *entity.Note, affected int64) bool {
	details := map[string]interface{}{
		"user_id":       s.userId,
		"note":          note.String(),
		"rows_affected": affected,
	}
	if affected != 1 {
		s.logger.Warn(noteModule, "Unexpected rows affected on "+op, details)
		return false
	}
	s.logger.Info(noteModule, "Note "+op+" succeeded", details)
	return true
}

func (s *noteService) logLookupError(op string, noteId int, err error) {
	details := map[string]interface{}{
		"user_id": s.userId,
		"note_id": noteId,
		"error":   err,
	}
	switch {
	case errors.Is(err, ErrNoteNotFound):
		s.logger.Warn(noteModule, "Note not found on "+op, details)
	case errors.Is(err, ErrNoteNotUnique):
		s.logger.Error(noteModule, "Note lookup not unique on "+op, details)
	default:
		details["constraint_violation"] = database.IsConstraintViolation(err)
		s.logger.Error(noteModule, "Failed to "+op+" note", details)
	}
}
