package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/AnshulMangla/ndfcctl/cmd/history"
	"github.com/AnshulMangla/ndfcctl/cmd/interactive"
	"github.com/AnshulMangla/ndfcctl/cmd/network"
	"github.com/AnshulMangla/ndfcctl/internal/config"
	"github.com/AnshulMangla/ndfcctl/internal/log"
	"github.com/joho/godotenv"
	"github.com/paularlott/cli"
)

const version = "1.0.0"

func main() {
	// Connection settings are conventionally kept in a .env file next to
	// the binary; absence is fine.
	godotenv.Load()

	if level := os.Getenv("NDFC_LOG_LEVEL"); level != "" {
		log.Configure(level, "console")
	}

	cmd := &cli.Command{
		Name:        "ndfcctl",
		Version:     version,
		Usage:       "Manage NDFC network display names",
		Description: "Look up networks on a Nexus Dashboard Fabric Controller by display name and rename them. Run without a subcommand for the interactive flow.",
		Flags:       append(config.ConnectionFlags(), config.DataFlags()...),
		Commands: []*cli.Command{
			network.Command(),
			history.Command(),
		},
		Run: func(ctx context.Context, cmd *cli.Command) error {
			return interactive.Run(ctx)
		},
	}

	// Ctrl-C anywhere, including inside a prompt, is a clean exit-1
	// termination. Idle connections die with the process.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\nOperation cancelled by user")
		os.Exit(1)
	}()

	if err := cmd.Execute(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
