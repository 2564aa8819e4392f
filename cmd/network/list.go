package network

import (
	"context"

	"github.com/AnshulMangla/ndfcctl/internal/config"
	"github.com/AnshulMangla/ndfcctl/internal/log"
	"github.com/paularlott/cli"
)

func ListCommand() *cli.Command {
	return &cli.Command{
		Name:        "list",
		Usage:       "List networks in the fabric",
		Description: "List every network in the fabric with its display name and identifiers",
		Flags:       config.ConnectionFlags(),
		Run: func(ctx context.Context, cmd *cli.Command) error {
			cfg := config.Load()
			client, err := connect(cfg)
			if err != nil {
				return err
			}
			defer client.Close()

			log.Debug("Listing networks", "fabric", cfg.Fabric, "host", cfg.Host)
			networks, err := client.ListNetworks(cfg.Fabric)
			if err != nil {
				return err
			}

			printNetworks(networks)
			return nil
		},
	}
}
