package bootstrap

import (
	"elevennote-be/internal/config"
	"elevennote-be/internal/controller"
	"elevennote-be/internal/pkg/logger"
	"elevennote-be/internal/pkg/serverutils"
	"elevennote-be/internal/repository/unitofwork"
	"elevennote-be/internal/service"
)

type Container struct {
	Logger logger.ILogger

	NoteController controller.INoteController
}

// NewContainer wires the HTTP surface on top of a repository factory (GORM or in-memory).
func NewContainer(uowFactory unitofwork.RepositoryFactory, cfg *config.Config, sysLogger logger.ILogger) *Container {
	// 1. Services
	noteServices := service.NewNoteServiceFactory(uowFactory, sysLogger)

	// 2. Controllers
	jwtMiddleware := serverutils.NewJwtMiddleware(cfg.Auth.JwtSecret)
	noteController := controller.NewNoteController(noteServices, jwtMiddleware)

	return &Container{
		Logger:         sysLogger,
		NoteController: noteController,
	}
}
