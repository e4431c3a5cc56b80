package main

import (
	"fmt"
	"log"
	"os"

	"elevennote-be/internal/config"
	"elevennote-be/internal/model"
	"elevennote-be/pkg/database"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		dsn  string
		drop bool
	)

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the Note table",
		RunE: func(cmd *cobra.Command, args []string) error {
			if dsn == "" {
				dsn = config.Load().Database.Connection
			}
			if dsn == "" {
				return fmt.Errorf("no DSN: pass --dsn or set DB_CONNECTION_STRING")
			}

			db, err := database.NewGormDBFromDSN(dsn, database.DefaultPoolConfig)
			if err != nil {
				return fmt.Errorf("connect to database: %w", err)
			}

			if drop {
				log.Println("Dropping Note table...")
				if err := db.Migrator().DropTable(&model.Note{}); err != nil {
					return fmt.Errorf("drop Note table: %w", err)
				}
			}

			log.Println("Running AutoMigrate for Note...")
			if err := db.AutoMigrate(&model.Note{}); err != nil {
				return fmt.Errorf("auto migrate: %w", err)
			}

			log.Println("Migration completed")
			return nil
		},
	}

	cmd.Flags().StringVar(&dsn, "dsn", "", "PostgreSQL connection string (defaults to DB_CONNECTION_STRING)")
	cmd.Flags().BoolVar(&drop, "drop", false, "drop the Note table before migrating")

	return cmd
}
