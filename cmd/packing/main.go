package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Makepad-fr/packing/internal/cli"
	"github.com/Makepad-fr/packing/internal/config"
	"github.com/Makepad-fr/packing/internal/logging"
	"github.com/Makepad-fr/packing/internal/model"
	"github.com/Makepad-fr/packing/internal/store"
	"github.com/Makepad-fr/packing/internal/store/jsonstore"
	"github.com/Makepad-fr/packing/internal/ui"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Root flags (apply to every subcommand)
	cfg, args, err := config.Load(os.Args[1:], os.Getenv, os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			cli.PrintHelp(os.Stdout)
			return 0
		}
		ui.Fail(os.Stderr, err.Error())
		return 2
	}
	ui.SetColorForcing(cfg.Color, cfg.NoColor)
	ui.SetTheme(cfg.Theme)

	logger, err := logging.New(cfg.LogPath, cfg.LogLevel)
	if err != nil {
		ui.Fail(os.Stderr, err.Error())
		return 2
	}
	defer logger.Sync()

	ids := model.UUIDs{}
	var seed store.Collection
	switch {
	case cfg.SeedFile != "":
		if seed, err = jsonstore.Load(cfg.SeedFile, ids); err != nil {
			ui.Fail(os.Stderr, err.Error())
			return 1
		}
	case cfg.Seed == "demo":
		seed = store.Seed(ids)
	}
	logger.Info("starting",
		zap.String("theme", cfg.Theme),
		zap.String("seed", cfg.Seed),
		zap.Int("items", store.Total(seed)))

	code := cli.Run(args, store.New(ids, seed), cli.Options{
		Group: cfg.Group,
		Dump:  cfg.Dump,
		Log:   logger,
	})
	if code != 0 {
		fmt.Fprintln(os.Stderr)
	}
	logger.Info("exit", zap.Int("code", code))
	return code
}
