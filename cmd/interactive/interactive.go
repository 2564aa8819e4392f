// Package interactive drives the prompt-based flow: resolve connection
// settings from the environment or the terminal, look up a network by its
// current display name, optionally rename it, and offer to save the result.
package interactive

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/AnshulMangla/ndfcctl/internal/config"
	"github.com/AnshulMangla/ndfcctl/internal/log"
	"github.com/AnshulMangla/ndfcctl/internal/model"
	"github.com/AnshulMangla/ndfcctl/internal/ndfc"
	"github.com/AnshulMangla/ndfcctl/internal/prompt"
	"github.com/AnshulMangla/ndfcctl/internal/storage"
)

func Run(ctx context.Context) error {
	fmt.Println("NDFC Network Display Name Updater")
	fmt.Println(strings.Repeat("=", 50))

	cfg := config.Load()
	if err := promptConnection(cfg); err != nil {
		return err
	}

	currentName, err := prompt.Line("\nEnter CURRENT network display name to search: ")
	if err != nil {
		return err
	}

	fmt.Println("\n" + strings.Repeat("=", 50))
	fmt.Println("UPDATE CONFIGURATION")
	fmt.Println(strings.Repeat("=", 50))
	newName, err := prompt.Line("Enter NEW display name (or press Enter to skip update): ")
	if err != nil {
		return err
	}

	if cfg.Host == "" || cfg.Fabric == "" || cfg.Username == "" || cfg.Password == "" || currentName == "" {
		return errors.New("required fields missing")
	}

	fmt.Printf("\nConnecting to NDFC at %s\n", cfg.Host)
	client := ndfc.NewClient(cfg.Host, cfg.Username, cfg.Password, cfg.VerifyTLS)
	defer client.Close()

	if err := client.Authenticate(cfg.Domain); err != nil {
		return err
	}

	network, err := client.FindByDisplayName(cfg.Fabric, currentName)
	if err != nil {
		return err
	}

	ndfc.RenderDetails(os.Stdout, network)

	switch {
	case newName != "" && newName != currentName:
		return runUpdate(client, cfg, network, currentName, newName)
	case newName == currentName:
		fmt.Println("\nNew display name is same as current - no update needed")
	default:
		fmt.Println("\nNo new display name provided - showing current details only")
		offerSave(network, currentName, false)
	}
	return nil
}

// promptConnection fills any connection value that the environment (or a
// .env file) did not provide. The password prompt never echoes.
func promptConnection(cfg *config.Config) error {
	var err error

	if cfg.Host == "" {
		fmt.Println("NDFC_HOST not set")
		if cfg.Host, err = prompt.Line("Enter NDFC host/IP (e.g., https://10.107.70.70): "); err != nil {
			return err
		}
		cfg.Host = config.NormalizeHost(cfg.Host)
	} else {
		fmt.Printf("Using NDFC host: %s\n", cfg.Host)
	}

	if cfg.Fabric == "" {
		fmt.Println("DEFAULT_FABRIC not set")
		if cfg.Fabric, err = prompt.Line("Enter fabric name: "); err != nil {
			return err
		}
	} else {
		fmt.Printf("Using fabric: %s\n", cfg.Fabric)
	}

	if cfg.Username == "" {
		fmt.Println("NDFC_USERNAME not set")
		if cfg.Username, err = prompt.Line("Enter username: "); err != nil {
			return err
		}
	} else {
		fmt.Printf("Using username: %s\n", cfg.Username)
	}

	if cfg.Password == "" {
		fmt.Println("NDFC_PASSWORD not set")
		if cfg.Password, err = prompt.Password("Enter password: "); err != nil {
			return err
		}
	} else {
		fmt.Println("Using password from environment")
	}

	fmt.Printf("Using login domain: %s\n", cfg.Domain)
	return nil
}

func runUpdate(client *ndfc.Client, cfg *config.Config, network model.Network, currentName, newName string) error {
	fmt.Println("\nProceeding with display name update...")

	if !prompt.Confirm(fmt.Sprintf("\nConfirm update from %q to %q? (y/n): ", currentName, newName)) {
		fmt.Println("\nUpdate cancelled by user")
		return ndfc.ErrCancelled
	}

	err := client.UpdateDisplayName(cfg.Fabric, network, newName)
	storage.RecordAttempt(cfg.DataDir, cfg.Fabric, network.NetworkName(), currentName, newName, err == nil)
	if err != nil {
		fmt.Println("\nFailed to update network display name")
		return err
	}

	fmt.Println("\nFetching updated network details...")
	updated, ferr := client.FindByDisplayName(cfg.Fabric, newName)
	if ferr != nil {
		log.Warn("Could not re-fetch updated network", "error", ferr, "display_name", newName)
		updated = network
	} else {
		fmt.Println("\n" + strings.Repeat("=", 60))
		fmt.Println("UPDATED NETWORK DETAILS")
		fmt.Println(strings.Repeat("=", 60))
		ndfc.RenderDetails(os.Stdout, updated)
	}

	offerSave(updated, newName, true)
	return nil
}

func offerSave(network model.Network, displayName string, updated bool) {
	label := "current"
	if updated {
		label = "updated"
	}

	if !prompt.Confirm(fmt.Sprintf("\nSave %s network details to JSON file? (y/n): ", label)) {
		return
	}

	filename, err := ndfc.SaveNetworkFile(network, displayName, updated)
	if err != nil {
		log.Error("Failed to save network details", "error", err)
		fmt.Printf("Failed to save network details: %v\n", err)
		return
	}
	fmt.Printf("Network details saved to: %s\n", filename)
}
