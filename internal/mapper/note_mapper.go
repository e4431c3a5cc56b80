package mapper

import (
	"elevennote-be/internal/dto"
	"elevennote-be/internal/entity"
	"elevennote-be/internal/model"
)

type NoteMapper struct{}

func NewNoteMapper() *NoteMapper {
	return &NoteMapper{}
}

func (m *NoteMapper) ToEntity(n *model.Note) *entity.Note {
	if n == nil {
		return nil
	}

	return &entity.Note{
		NoteId:      n.NoteId,
		OwnerId:     n.OwnerId,
		Title:       n.Title,
		Content:     n.Content,
		IsStarred:   n.IsStarred,
		CreatedUtc:  n.CreatedUtc,
		ModifiedUtc: n.ModifiedUtc,
	}
}

func (m *NoteMapper) ToModel(n *entity.Note) *model.Note {
	if n == nil {
		return nil
	}

	return &model.Note{
		NoteId:      n.NoteId,
		OwnerId:     n.OwnerId,
		Title:       n.Title,
		Content:     n.Content,
		IsStarred:   n.IsStarred,
		CreatedUtc:  n.CreatedUtc,
		ModifiedUtc: n.ModifiedUtc,
	}
}

func (m *NoteMapper) ToEntities(notes []*model.Note) []*entity.Note {
	entities := make([]*entity.Note, len(notes))
	for i, n := range notes {
		entities[i] = m.ToEntity(n)
	}
	return entities
}

// ToListItem projects a note for list views. Content and owner never leave the service.
func (m *NoteMapper) ToListItem(n *entity.Note) dto.NoteListItem {
	return dto.NoteListItem{
		NoteId:     n.NoteId,
		Title:      n.Title,
		CreatedUtc: n.CreatedUtc,
	}
}

func (m *NoteMapper) ToListItems(notes []*entity.Note) []dto.NoteListItem {
	items := make([]dto.NoteListItem, 0, len(notes))
	for _, n := range notes {
		items = append(items, m.ToListItem(n))
	}
	return items
}

func (m *NoteMapper) ToDetail(n *entity.Note) *dto.NoteDetail {
	if n == nil {
		return nil
	}

	return &dto.NoteDetail{
		NoteId:      n.NoteId,
		Title:       n.Title,
		Content:     n.Content,
		CreatedUtc:  n.CreatedUtc,
		ModifiedUtc: n.ModifiedUtc,
	}
}
