package network

import (
	"context"
	"fmt"
	"os"

	"github.com/AnshulMangla/ndfcctl/internal/config"
	"github.com/AnshulMangla/ndfcctl/internal/log"
	"github.com/AnshulMangla/ndfcctl/internal/ndfc"
	"github.com/AnshulMangla/ndfcctl/internal/prompt"
	"github.com/AnshulMangla/ndfcctl/internal/storage"
	"github.com/paularlott/cli"
)

func RenameCommand() *cli.Command {
	return &cli.Command{
		Name:        "rename",
		Usage:       "Change a network's display name",
		Description: "Look up a network by its current display name and set a new one",
		Arguments: []cli.Argument{
			&cli.StringArg{Name: "current-name", Required: true},
			&cli.StringArg{Name: "new-name", Required: true},
		},
		Flags: append(append(config.ConnectionFlags(), config.DataFlags()...),
			&cli.BoolFlag{Name: "yes", Usage: "Skip the confirmation prompt"},
			&cli.BoolFlag{Name: "save", Usage: "Save the updated network details to a JSON file"},
		),
		Run: func(ctx context.Context, cmd *cli.Command) error {
			return runRename(config.Load(),
				cmd.GetStringArg("current-name"),
				cmd.GetStringArg("new-name"),
				cmd.GetBool("yes"),
				cmd.GetBool("save"))
		},
	}
}

func runRename(cfg *config.Config, currentName, newName string, skipConfirm, save bool) error {
	if newName == currentName {
		fmt.Println("New display name is same as current - no update needed")
		return nil
	}

	client, err := connect(cfg)
	if err != nil {
		return err
	}
	defer client.Close()

	network, err := client.FindByDisplayName(cfg.Fabric, currentName)
	if err != nil {
		return err
	}

	ndfc.RenderDetails(os.Stdout, network)

	if !skipConfirm {
		if !prompt.Confirm(fmt.Sprintf("\nConfirm update from %q to %q? (y/n): ", currentName, newName)) {
			fmt.Println("\nUpdate cancelled by user")
			return ndfc.ErrCancelled
		}
	}

	err = client.UpdateDisplayName(cfg.Fabric, network, newName)
	storage.RecordAttempt(cfg.DataDir, cfg.Fabric, network.NetworkName(), currentName, newName, err == nil)
	if err != nil {
		return err
	}

	fmt.Println("\nFetching updated network details...")
	updated, ferr := client.FindByDisplayName(cfg.Fabric, newName)
	if ferr != nil {
		log.Warn("Could not re-fetch updated network", "error", ferr, "display_name", newName)
		updated = network
	} else {
		ndfc.RenderDetails(os.Stdout, updated)
	}

	if save {
		filename, err := ndfc.SaveNetworkFile(updated, newName, true)
		if err != nil {
			log.Error("Failed to save network details", "error", err)
			return err
		}
		fmt.Printf("Updated network details saved to: %s\n", filename)
	}
	return nil
}
