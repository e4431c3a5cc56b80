package unitofwork

import (
	"context"

	"elevennote-be/internal/repository/contract"
)

type UnitOfWork interface {
	// Connection runs fn against a unit of work pinned to one pooled connection.
	// The connection is released when fn returns, whatever the outcome.
	Connection(ctx context.Context, fn func(uow UnitOfWork) error) error

	NoteRepository() contract.NoteRepository
}
