package memory

import (
	"context"
	"fmt"

	"elevennote-be/internal/entity"
	"elevennote-be/internal/repository/contract"
	"elevennote-be/internal/repository/specification"
)

type NoteRepository struct {
	store *Store
}

func NewNoteRepository(store *Store) contract.NoteRepository {
	return &NoteRepository{store: store}
}

func buildFilter(specs []specification.Specification) (func(n *entity.Note) bool, error) {
	var preds []func(n *entity.Note) bool

	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByNoteID:
			preds = append(preds, func(n *entity.Note) bool { return n.NoteId == s.ID })
		case specification.NoteOwnedBy:
			preds = append(preds, func(n *entity.Note) bool { return n.OwnerId == s.OwnerID })
		default:
			return nil, fmt.Errorf("memory: unsupported specification %T", spec)
		}
	}

	return func(n *entity.Note) bool {
		for _, p := range preds {
			if !p(n) {
				return false
			}
		}
		return true
	}, nil
}

func (r *NoteRepository) selectNotes(specs []specification.Specification) ([]*entity.Note, error) {
	match, err := buildFilter(specs)
	if err != nil {
		return nil, err
	}

	var out []*entity.Note
	for _, n := range r.store.notes {
		if match(n) {
			out = append(out, n)
		}
	}
	return out, nil
}

func (r *NoteRepository) Create(ctx context.Context, note *entity.Note) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	note.NoteId = r.store.nextId
	r.store.nextId++

	stored := *note
	r.store.notes = append(r.store.notes, &stored)
	return 1, nil
}

func (r *NoteRepository) UpdateContent(ctx context.Context, note *entity.Note, specs ...specification.Specification) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	matched, err := r.selectNotes(specs)
	if err != nil {
		return 0, err
	}
	for _, n := range matched {
		n.Title = note.Title
		n.Content = note.Content
		n.ModifiedUtc = note.ModifiedUtc
	}
	return int64(len(matched)), nil
}

func (r *NoteRepository) Delete(ctx context.Context, specs ...specification.Specification) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	match, err := buildFilter(specs)
	if err != nil {
		return 0, err
	}

	kept := r.store.notes[:0]
	var removed int64
	for _, n := range r.store.notes {
		if match(n) {
			removed++
			continue
		}
		kept = append(kept, n)
	}
	r.store.notes = kept
	return removed, nil
}

func (r *NoteRepository) FindSingle(ctx context.Context, specs ...specification.Specification) (*entity.Note, error) {
	notes, err := r.FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}
	switch len(notes) {
	case 0:
		return nil, contract.ErrNoteNotFound
	case 1:
		return notes[0], nil
	default:
		return nil, contract.ErrNoteNotUnique
	}
}

// FindAll returns copies, so callers cannot mutate stored rows without an update.
func (r *NoteRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Note, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	matched, err := r.selectNotes(specs)
	if err != nil {
		return nil, err
	}

	out := make([]*entity.Note, len(matched))
	for i, n := range matched {
		c := *n
		out[i] = &c
	}
	return out, nil
}

func (r *NoteRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	matched, err := r.selectNotes(specs)
	if err != nil {
		return 0, err
	}
	return int64(len(matched)), nil
}
