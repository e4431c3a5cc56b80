package unitofwork

import (
	"context"

	"elevennote-be/internal/repository/contract"
	"elevennote-be/internal/repository/implementation"

	"gorm.io/gorm"
)

type UnitOfWorkImpl struct {
	db *gorm.DB
}

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &UnitOfWorkImpl{
		db: db,
	}
}

func (u *UnitOfWorkImpl) Connection(ctx context.Context, fn func(uow UnitOfWork) error) error {
	return u.db.WithContext(ctx).Connection(func(conn *gorm.DB) error {
		return fn(&UnitOfWorkImpl{db: conn})
	})
}

// Repository Accessors

func (u *UnitOfWorkImpl) NoteRepository() contract.NoteRepository {
	return implementation.NewNoteRepository(u.db)
}
