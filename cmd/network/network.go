package network

import (
	"fmt"

	"github.com/AnshulMangla/ndfcctl/internal/config"
	"github.com/AnshulMangla/ndfcctl/internal/model"
	"github.com/AnshulMangla/ndfcctl/internal/ndfc"
	"github.com/AnshulMangla/ndfcctl/internal/prompt"
	"github.com/paularlott/cli"
)

func Command() *cli.Command {
	return &cli.Command{
		Name:        "network",
		Usage:       "Manage fabric networks",
		Description: "List, inspect, and rename networks on the controller",
		Commands: []*cli.Command{
			ListCommand(),
			GetCommand(),
			RenameCommand(),
		},
	}
}

// connect validates the connection settings, prompting only for a missing
// password, and returns an authenticated client. The caller owns Close.
func connect(cfg *config.Config) (*ndfc.Client, error) {
	if err := cfg.RequireConnection(); err != nil {
		return nil, err
	}
	if cfg.Password == "" {
		pw, err := prompt.Password("Password: ")
		if err != nil {
			return nil, err
		}
		cfg.Password = pw
	}

	client := ndfc.NewClient(cfg.Host, cfg.Username, cfg.Password, cfg.VerifyTLS)
	if err := client.Authenticate(cfg.Domain); err != nil {
		client.Close()
		return nil, err
	}
	return client, nil
}

func printNetworks(networks []model.Network) {
	if len(networks) == 0 {
		fmt.Println("No networks found")
		return
	}
	for _, n := range networks {
		fmt.Printf("%s\t%s\t%s\t%s\t%s\n",
			n.StringOr("displayName", "N/A"),
			n.StringOr("networkName", "N/A"),
			n.StringOr("networkId", "N/A"),
			n.StringOr("vrf", "N/A"),
			n.StringOr("networkStatus", "N/A"))
	}
}
