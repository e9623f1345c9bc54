package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/matthewbaird/catalogview/internal/catalog"
	"github.com/matthewbaird/catalogview/internal/config"
	"github.com/matthewbaird/catalogview/internal/fixtures"
	"github.com/matthewbaird/catalogview/internal/logging"
	"github.com/matthewbaird/catalogview/internal/widget"
)

// Version is set by build flags.
var Version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// app is the state shared by every subcommand, filled in by the root
// command's pre-run.
type app struct {
	cfgFile string
	cfg     *config.Config
	logger  *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "catalogview",
		Short:         "Metadata catalog UI helpers: entity links, FQNs, paths and widgets",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.cfgFile)
			if err != nil {
				return err
			}
			logger, err := logging.New(cfg.Log.Level, cfg.Log.Format)
			if err != nil {
				return err
			}
			a.cfg, a.logger = cfg, logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: ./catalogview.yaml)")

	root.AddCommand(
		newLinkCmd(),
		newFQNCmd(),
		newPathCmd(),
		newRenderCmd(a),
		newServeCmd(a),
		newConfigCmd(a),
	)
	return root
}

// builder wires the catalog, fixtures and display timezone from config.
func (a *app) builder() (*widget.Builder, error) {
	var (
		cat *catalog.Catalog
		err error
	)
	if a.cfg.Catalog.Dir != "" {
		cat, err = catalog.LoadDir(a.cfg.Catalog.Dir)
	} else {
		cat, err = catalog.Default()
	}
	if err != nil {
		return nil, err
	}

	store, err := fixtures.Load(a.cfg.Fixtures.Path)
	if err != nil {
		return nil, err
	}
	loc, err := a.cfg.Location()
	if err != nil {
		return nil, err
	}
	a.logger.Debug("widget builder ready",
		zap.Int("lineage_entries", len(cat.Lineage)),
		zap.Int("stat_counters", len(cat.Stats)),
		zap.String("timezone", loc.String()),
	)
	return &widget.Builder{Catalog: cat, Store: store, Location: loc}, nil
}
