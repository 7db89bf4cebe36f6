// Package cli implements the selfies command-line interface: root command,
// global flag handling, configuration and logger bootstrapping, and the
// subcommands (encode, decode, alphabet, constraints, serve).
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/turtacn/go-selfies/internal/config"
	"github.com/turtacn/go-selfies/internal/constraints"
	"github.com/turtacn/go-selfies/internal/monitoring/logging"
)

// Build-time variables injected via ldflags.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// RootOptions holds the global CLI flags.
type RootOptions struct {
	ConfigPath string
	LogLevel   string
	Preset     string
}

// CLIContext carries initialized dependencies through the command tree.
type CLIContext struct {
	Config *config.Config
	Logger logging.Logger
}

// NewRootCommand creates the root command, registers persistent flags, and
// mounts the subcommands.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}
	cliCtx := &CLIContext{}

	root := &cobra.Command{
		Use:   "selfies",
		Short: "Bidirectional SMILES ↔ SELFIES molecular string codec",
		Long: `selfies translates between SMILES and SELFIES molecular string
notations.  The decoder is robust: every finite SELFIES symbol sequence
decodes to a chemically valid molecule.`,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", Version, GitCommit, BuildDate),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return initContext(opts, cliCtx)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&opts.ConfigPath, "config", "c", "", "path to a YAML config file")
	pf.StringVar(&opts.LogLevel, "log-level", "", "override log level (debug|info|warn|error)")
	pf.StringVar(&opts.Preset, "preset", "", "override constraint preset (default|octet_rule|hypervalent)")

	root.AddCommand(
		newEncodeCommand(cliCtx),
		newDecodeCommand(cliCtx),
		newAlphabetCommand(cliCtx),
		newConstraintsCommand(cliCtx),
		newServeCommand(cliCtx, opts),
	)

	return root
}

// initContext loads configuration, constructs the logger, and installs the
// configured constraint table into the process registry.
func initContext(opts *RootOptions, cliCtx *CLIContext) error {
	var (
		cfg *config.Config
		err error
	)
	if opts.ConfigPath != "" {
		cfg, err = config.Load(opts.ConfigPath)
	} else {
		cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return err
	}

	if opts.LogLevel != "" {
		cfg.Log.Level = opts.LogLevel
	}
	if opts.Preset != "" {
		cfg.Constraints.Preset = opts.Preset
		cfg.Constraints.Custom = nil
	}

	logger, err := logging.NewLogger(cfg.Log)
	if err != nil {
		return err
	}

	if err := constraints.Install(cfg.EffectiveConstraints()); err != nil {
		return err
	}

	cliCtx.Config = cfg
	cliCtx.Logger = logger.Named("selfies")
	return nil
}

// Execute runs the CLI and returns the process exit error, if any.
func Execute() error {
	return NewRootCommand().Execute()
}

// fail prints an error to stderr in a single consistent format.
func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}

//Personal.AI order the ending
