package main

import (
	"fmt"
	"os"

	"github.com/GTKoning/SAGradingCLI/internal/config"
	"github.com/GTKoning/SAGradingCLI/internal/storage"
	"github.com/GTKoning/SAGradingCLI/internal/ui"
)

func main() {
	cfg, err := config.LoadOrCreate(config.ResolveConfigPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	store := storage.Open(cfg.DBPath)

	if err := ui.Run(store, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "error running program: %v\n", err)
		os.Exit(1)
	}
}
