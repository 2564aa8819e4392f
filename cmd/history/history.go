package history

import (
	"context"
	"fmt"
	"time"

	"github.com/AnshulMangla/ndfcctl/internal/config"
	"github.com/AnshulMangla/ndfcctl/internal/log"
	"github.com/AnshulMangla/ndfcctl/internal/storage"
	"github.com/paularlott/cli"
)

func Command() *cli.Command {
	return &cli.Command{
		Name:        "history",
		Usage:       "Local rename history",
		Description: "Inspect or clear the locally recorded rename history",
		Commands: []*cli.Command{
			ListCommand(),
			ClearCommand(),
		},
	}
}

func ListCommand() *cli.Command {
	return &cli.Command{
		Name:        "list",
		Usage:       "List recorded renames",
		Description: "List the most recent display-name changes, newest first",
		Flags: append(config.DataFlags(),
			&cli.IntFlag{Name: "limit", Usage: "Maximum entries to show", DefaultValue: 20},
		),
		Run: func(ctx context.Context, cmd *cli.Command) error {
			cfg := config.Load()
			log.Debug("Listing rename history", "data_dir", cfg.DataDir)

			store, err := storage.NewStore(cfg.DataDir)
			if err != nil {
				return err
			}
			defer store.Close()

			records, err := store.ListRenames(cmd.GetInt("limit"))
			if err != nil {
				return err
			}

			if len(records) == 0 {
				fmt.Println("No renames recorded")
				return nil
			}
			for _, r := range records {
				fmt.Printf("%s\t%s\t%s\t%s -> %s\t%s\n",
					r.CreatedAt.Local().Format(time.RFC3339),
					r.Fabric,
					r.NetworkName,
					r.OldDisplayName,
					r.NewDisplayName,
					r.Outcome)
			}
			return nil
		},
	}
}

func ClearCommand() *cli.Command {
	return &cli.Command{
		Name:        "clear",
		Usage:       "Clear the rename history",
		Description: "Delete every locally recorded rename",
		Flags:       config.DataFlags(),
		Run: func(ctx context.Context, cmd *cli.Command) error {
			cfg := config.Load()

			store, err := storage.NewStore(cfg.DataDir)
			if err != nil {
				return err
			}
			defer store.Close()

			removed, err := store.ClearRenames()
			if err != nil {
				return err
			}

			log.Info("Rename history cleared", "removed", removed)
			fmt.Printf("Removed %d history entries\n", removed)
			return nil
		},
	}
}
