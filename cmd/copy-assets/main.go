// Package main is the entry point for the copy-assets CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/sagesearch/copy-assets/internal/cli"
)

// version is set at build time using -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	// Get current working directory
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rootCmd := cli.NewRootCommand(cwd, version)
	return rootCmd.ExecuteContext(ctx)
}
