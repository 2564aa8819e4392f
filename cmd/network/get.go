package network

import (
	"context"
	"fmt"
	"os"

	"github.com/AnshulMangla/ndfcctl/internal/config"
	"github.com/AnshulMangla/ndfcctl/internal/log"
	"github.com/AnshulMangla/ndfcctl/internal/ndfc"
	"github.com/paularlott/cli"
)

func GetCommand() *cli.Command {
	return &cli.Command{
		Name:        "get",
		Usage:       "Show one network",
		Description: "Look up a network by its display name and show its details",
		Arguments: []cli.Argument{
			&cli.StringArg{Name: "display-name", Required: true},
		},
		Flags: append(config.ConnectionFlags(),
			&cli.BoolFlag{Name: "save", Usage: "Save the network details to a JSON file"},
		),
		Run: func(ctx context.Context, cmd *cli.Command) error {
			displayName := cmd.GetStringArg("display-name")

			cfg := config.Load()
			client, err := connect(cfg)
			if err != nil {
				return err
			}
			defer client.Close()

			log.Debug("Getting network", "fabric", cfg.Fabric, "display_name", displayName)
			network, err := client.FindByDisplayName(cfg.Fabric, displayName)
			if err != nil {
				return err
			}

			ndfc.RenderDetails(os.Stdout, network)

			if cmd.GetBool("save") {
				filename, err := ndfc.SaveNetworkFile(network, displayName, false)
				if err != nil {
					log.Error("Failed to save network details", "error", err)
					return err
				}
				fmt.Printf("Network details saved to: %s\n", filename)
			}
			return nil
		},
	}
}
