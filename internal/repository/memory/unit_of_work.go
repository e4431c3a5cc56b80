package memory

import (
	"context"

	"elevennote-be/internal/repository/contract"
	"elevennote-be/internal/repository/unitofwork"
)

type UnitOfWork struct {
	store *Store
}

func NewUnitOfWork(store *Store) unitofwork.UnitOfWork {
	return &UnitOfWork{store: store}
}

func (u *UnitOfWork) Connection(ctx context.Context, fn func(uow unitofwork.UnitOfWork) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	u.store.acquired.Add(1)
	u.store.active.Add(1)
	defer u.store.active.Add(-1)

	return fn(u)
}

func (u *UnitOfWork) NoteRepository() contract.NoteRepository {
	return NewNoteRepository(u.store)
}

type RepositoryFactory struct {
	store *Store
}

func NewRepositoryFactory(store *Store) unitofwork.RepositoryFactory {
	return &RepositoryFactory{store: store}
}

func (f *RepositoryFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return NewUnitOfWork(f.store)
}
