package implementation

import (
	"context"

	"elevennote-be/internal/entity"
	"elevennote-be/internal/mapper"
	"elevennote-be/internal/model"
	"elevennote-be/internal/repository/contract"
	"elevennote-be/internal/repository/specification"

	"gorm.io/gorm"
)

type NoteRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.NoteMapper
}

func NewNoteRepository(db *gorm.DB) contract.NoteRepository {
	return &NoteRepositoryImpl{
		db:     db,
		mapper: mapper.NewNoteMapper(),
	}
}

func (r *NoteRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *NoteRepositoryImpl) Create(ctx context.Context, note *entity.Note) (int64, error) {
	m := r.mapper.ToModel(note)
	result := r.db.WithContext(ctx).Create(m)
	if result.Error != nil {
		return 0, result.Error
	}
	*note = *r.mapper.ToEntity(m)
	return result.RowsAffected, nil
}

func (r *NoteRepositoryImpl) UpdateContent(ctx context.Context, note *entity.Note, specs ...specification.Specification) (int64, error) {
	// A map keeps empty strings; struct updates would skip zero values.
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Note{}), specs...)
	result := query.Updates(map[string]interface{}{
		"title":        note.Title,
		"content":      note.Content,
		"modified_utc": note.ModifiedUtc,
	})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func (r *NoteRepositoryImpl) Delete(ctx context.Context, specs ...specification.Specification) (int64, error) {
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	result := query.Delete(&model.Note{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func (r *NoteRepositoryImpl) FindSingle(ctx context.Context, specs ...specification.Specification) (*entity.Note, error) {
	var models []*model.Note
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Limit(2).Find(&models).Error; err != nil {
		return nil, err
	}
	switch len(models) {
	case 0:
		return nil, contract.ErrNoteNotFound
	case 1:
		return r.mapper.ToEntity(models[0]), nil
	default:
		return nil, contract.ErrNoteNotUnique
	}
}

func (r *NoteRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Note, error) {
	var models []*model.Note
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *NoteRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Note{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
