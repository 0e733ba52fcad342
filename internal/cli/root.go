// Package cli implements the nearlookup command-line interface.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"near_account_lookup/internal/adapters/terminal"
	"near_account_lookup/internal/app"
	"near_account_lookup/internal/config"
	"near_account_lookup/internal/core/domain"
	"near_account_lookup/internal/core/domain/client"
	"near_account_lookup/internal/logger"
	"near_account_lookup/pkg/nearlookup"
)

// Exit codes.
const (
	ExitOK       = 0
	ExitGeneral  = 1
	ExitInput    = 2
	ExitUpstream = 3
)

// ServiceFactory builds the lookup service once configuration is loaded.
type ServiceFactory func(cfg *config.Config, networks client.NetworkSource, appLogger logger.AppLogger) (nearlookup.Lookup, error)

// Options configures the command tree. Zero values mean the process streams and the real service.
type Options struct {
	Stdin      io.Reader
	Stdout     io.Writer
	Stderr     io.Writer
	NewService ServiceFactory
}

// state is what PersistentPreRunE prepares for the subcommands.
type state struct {
	opts Options

	configPath string
	network    string
	jsonOutput bool
	noColor    bool
	verbose    bool

	cfg      *config.Config
	service  nearlookup.Lookup
	renderer *terminal.Renderer
}

// NewRootCommand creates the nearlookup command tree.
func NewRootCommand(opts Options) *cobra.Command {
	if opts.Stdin == nil {
		opts.Stdin = os.Stdin
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
	if opts.NewService == nil {
		opts.NewService = func(cfg *config.Config, networks client.NetworkSource, l logger.AppLogger) (nearlookup.Lookup, error) {
			return app.NewLookupService(cfg, networks, l)
		}
	}
	s := &state{opts: opts}

	rootCmd := &cobra.Command{
		Use:   "nearlookup",
		Short: "Look up NEAR accounts from the terminal",
		Long: `nearlookup recognizes NEAR account identifiers, queries a NEAR RPC node for their
balance and storage usage, fetches recent activity from a transaction index and
prints a short report.

Example:
  nearlookup lookup alice.near
  nearlookup links README.md
  cat notes.md | nearlookup scan - --network testnet`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return s.init(cmd)
		},
	}

	rootCmd.SetIn(opts.Stdin)
	rootCmd.SetOut(opts.Stdout)
	rootCmd.SetErr(opts.Stderr)

	rootCmd.PersistentFlags().StringVar(&s.configPath, "config", "",
		"path to YAML configuration file (default: $"+config.EnvConfigFile+" or "+config.DefaultConfigFilePath+")")
	rootCmd.PersistentFlags().StringVarP(&s.network, "network", "n", "", "network to query: mainnet, testnet (default: from config)")
	rootCmd.PersistentFlags().BoolVar(&s.jsonOutput, "json", false, "write JSON instead of text")
	rootCmd.PersistentFlags().BoolVarP(&s.verbose, "verbose", "v", false, "log debug output to stderr")
	rootCmd.PersistentFlags().BoolVar(&s.noColor, "no-color", false, "disable coloured output (also $"+config.EnvNoColor+")")

	rootCmd.AddCommand(
		newLookupCommand(s),
		newLinksCommand(s),
		newScanCommand(s),
		newNetworksCommand(s),
	)
	return rootCmd
}

// Execute runs the command tree with args and returns the process exit code.
func Execute(ctx context.Context, args []string, opts Options) int {
	rootCmd := NewRootCommand(opts)
	rootCmd.SetArgs(args)

	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return ExitOK
	}
	fmt.Fprintln(rootCmd.ErrOrStderr(), "Error:", err)
	return ExitCode(err)
}

// ExitCode maps an error to the process exit code.
func ExitCode(err error) int {
	var exitErr *exitError
	switch {
	case err == nil:
		return ExitOK
	case errors.As(err, &exitErr):
		return exitErr.code
	case errors.Is(err, domain.ErrInvalidAccountID), errors.Is(err, domain.ErrUnknownNetwork):
		return ExitInput
	case errors.Is(err, domain.ErrRPCTransport), errors.Is(err, domain.ErrRPCApplication),
		errors.Is(err, domain.ErrInvalidAmount), errors.Is(err, context.DeadlineExceeded):
		return ExitUpstream
	default:
		return ExitGeneral
	}
}

// exitError carries an exit code for failures that were already reported to the user.
type exitError struct {
	code int
	msg  string
}

func (e *exitError) Error() string {
	return e.msg
}

func (s *state) init(cmd *cobra.Command) error {
	path := config.ResolvePath(s.configPath)
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return err
	}
	s.cfg = cfg

	// Diagnostics go to stderr as text; only warnings and errors unless --verbose.
	loggerCfg := config.LoggerConfig{Level: config.LogLevelWarn, Format: config.LogFormatText}
	if s.verbose {
		loggerCfg.Level = config.LogLevelDebug
	}
	appLogger, err := logger.NewAppLogger(loggerCfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	fallback, err := domain.ParseNetwork(cfg.Near.Network)
	if err != nil {
		return err
	}
	networks, err := app.NetworkSource(path, s.network, fallback)
	if err != nil {
		return err
	}

	s.service, err = s.opts.NewService(cfg, networks, appLogger)
	if err != nil {
		return fmt.Errorf("failed to create lookup service: %w", err)
	}

	color := !s.noColor && !config.ColorDisabled()
	if f, ok := cmd.OutOrStdout().(*os.File); ok {
		color = terminal.ColorEnabled(f, !color)
	} else {
		color = false
	}
	s.renderer = terminal.NewRenderer(cmd.OutOrStdout(), color)
	return nil
}
