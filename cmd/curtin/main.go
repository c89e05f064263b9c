// Command curtin formats block devices and retrieves gpg keys during
// installer runs, driven by flags or by a declarative storage configuration.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jnavila/curtin/internal/logger"
	"github.com/jnavila/curtin/pkg/config"
)

// version is set by the linker at build time.
var version = "dev"

var (
	cfgFile  string
	logLevel string

	// cfg is populated by setup before a subcommand runs.
	cfg *config.Config
)

// setup loads the configuration and configures the logger. Every
// subcommand except init runs through it.
func setup(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	cfg = loaded

	// --log-level overrides the configured level
	if logLevel != "" {
		cfg.Logging.Level = strings.ToUpper(logLevel)
	}

	if err := logger.Configure(cfg.Logging.Level, cfg.Logging.Format, cfg.Logging.Output); err != nil {
		return fmt.Errorf("failed to configure logging: %w", err)
	}

	return nil
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "curtin",
		Short: "Format filesystems and retrieve signing keys for installs",
		Long: `Curtin prepares block devices during OS installation: it builds and runs
the right mkfs command for a requested filesystem type, and it resolves
armoured gpg keys needed to verify package archives.`,
		PersistentPreRunE: setup,
		Version:           version,
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default "+config.GetDefaultConfigPath()+")")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level override (DEBUG, INFO, WARN, ERROR)")

	rootCmd.AddCommand(
		newCmdMkfs(),
		newCmdGetkey(),
		newCmdApply(),
		newCmdInit(),
	)

	return rootCmd
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
