package service

import (
	"elevennote-be/internal/pkg/logger"
	"elevennote-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// INoteServiceFactory hands out note services bound to an already authenticated user.
type INoteServiceFactory interface {
	ForUser(userId uuid.UUID) INoteService
}

type noteServiceFactory struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewNoteServiceFactory(uowFactory unitofwork.RepositoryFactory, logger logger.ILogger) INoteServiceFactory {
	return &noteServiceFactory{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

func (f *noteServiceFactory) ForUser(userId uuid.UUID) INoteService {
	return NewNoteService(f.uowFactory, userId, WithLogger(f.logger))
}
