package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"elevennote-be/internal/config"
	"elevennote-be/internal/dto"
	"elevennote-be/internal/pkg/logger"
	"elevennote-be/internal/repository/specification"
	"elevennote-be/internal/repository/unitofwork"
	"elevennote-be/internal/service"
	"elevennote-be/pkg/database"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		dsn    string
		user   string
		count  int
		prefix string
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create sample notes for one user",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if dsn == "" {
				dsn = cfg.Database.Connection
			}
			if dsn == "" {
				return fmt.Errorf("no DSN: pass --dsn or set DB_CONNECTION_STRING")
			}

			ownerId := uuid.New()
			if user != "" {
				parsed, err := uuid.Parse(user)
				if err != nil {
					return fmt.Errorf("invalid --user: %w", err)
				}
				ownerId = parsed
			}

			db, err := database.NewGormDBFromDSN(dsn, database.DefaultPoolConfig)
			if err != nil {
				return fmt.Errorf("connect to database: %w", err)
			}

			sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())
			defer sysLogger.Sync()

			total, err := seedNotes(context.Background(), unitofwork.NewRepositoryFactory(db), ownerId, count, prefix, sysLogger)
			if err != nil {
				return err
			}
			log.Printf("User %s now owns %d notes", ownerId, total)
			return nil
		},
	}

	cmd.Flags().StringVar(&dsn, "dsn", "", "PostgreSQL connection string (defaults to DB_CONNECTION_STRING)")
	cmd.Flags().StringVar(&user, "user", "", "owner id (UUID); a random one is generated when empty")
	cmd.Flags().IntVar(&count, "count", 10, "number of notes to create")
	cmd.Flags().StringVar(&prefix, "title-prefix", "Sample note", "title prefix for generated notes")

	return cmd
}

// seedNotes creates count notes for ownerId and returns how many notes the owner has afterwards.
func seedNotes(ctx context.Context, uowFactory unitofwork.RepositoryFactory, ownerId uuid.UUID, count int, prefix string, sysLogger logger.ILogger) (int64, error) {
	svc := service.NewNoteService(uowFactory, ownerId, service.WithLogger(sysLogger))

	for i := 1; i <= count; i++ {
		ok, err := svc.CreateNote(ctx, dto.NoteCreate{
			Title:   fmt.Sprintf("%s %d", prefix, i),
			Content: fmt.Sprintf("Seeded content for note %d.", i),
		})
		if err != nil {
			return 0, err
		}
		if !ok {
			log.Printf("Note %d was not created", i)
		}
	}

	var total int64
	uow := uowFactory.NewUnitOfWork(ctx)
	err := uow.Connection(ctx, func(conn unitofwork.UnitOfWork) error {
		var err error
		total, err = conn.NoteRepository().Count(ctx, specification.NoteOwnedBy{OwnerID: ownerId})
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("count notes: %w", err)
	}
	return total, nil
}
