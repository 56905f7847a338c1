package main

import (
	"fmt"
	"os"

	"task-tracker/internal/cli"
	"task-tracker/internal/config"
)

func main() {
	cfg, err := config.NewLoader().Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	// The manager is constructed by the root command after flag parsing,
	// so store location overrides from flags are honored.
	root := cli.NewRootCommand(nil, cfg)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
