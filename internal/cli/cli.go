// Package cli wires configuration, logging and the product catalog into the
// cobra commands.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"prodtable/internal/catalog"
	"prodtable/internal/config"
	"prodtable/internal/logging"

	"github.com/spf13/cobra"
)

// CLI holds what every command needs once flags are parsed.
type CLI struct {
	Config   config.Config
	Products catalog.Products
	logs     io.Closer
}

type globalFlags struct {
	configPath  string
	catalogPath string
	logFile     string
}

// NewCLI loads the configuration, starts logging and reads the catalog.
func NewCLI(ctx context.Context, flags globalFlags) (*CLI, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if flags.catalogPath != "" {
		cfg = cfg.WithCatalogPath(flags.catalogPath)
	}
	if flags.logFile != "" {
		cfg = cfg.WithLogFile(flags.logFile)
	}

	logs, err := logging.Init(cfg.LogFile)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logging: %w", err)
	}

	products, err := catalog.NewProvider(cfg.CatalogPath, cfg.CatalogOptions()...).Products(ctx)
	if err != nil {
		logs.Close()
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	logging.Logger.Info("catalog loaded", "path", cfg.CatalogPath, "products", len(products))

	return &CLI{Config: cfg, Products: products, logs: logs}, nil
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	return c.logs.Close()
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	return 0
}

// NewRootCommand builds the prodtable command tree.
func NewRootCommand() *cobra.Command {
	var flags globalFlags

	root := &cobra.Command{
		Use:           "prodtable",
		Short:         "Interactive product table",
		Long:          `prodtable shows a product list in the terminal with draggable columns and editable quality ratings.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd.Context(), flags)
		},
	}

	root.PersistentFlags().StringVar(&flags.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/prodtable/config.yaml)")
	root.PersistentFlags().StringVar(&flags.catalogPath, "catalog", "", "CSV, JSON or Parquet product file (default built-in list)")
	root.PersistentFlags().StringVar(&flags.logFile, "log-file", "", "log file (default ~/.prodtable/logs/prodtable.log)")

	root.AddCommand(printCmd(&flags))
	return root
}
