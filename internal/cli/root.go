// Package cli implements the cbamatrix command line.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ukaji3/cbamatrix-go/internal/config"
)

var (
	Version = "dev"
	Commit  = "none"
)

// app holds state shared by subcommands after flags are parsed.
type app struct {
	configPath string
	logLevel   string

	cfg *config.AppConfig
	log *slog.Logger
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:     "cbamatrix",
		Version: Version,
		Short:   "Format Choose-by-Advantage templates into scored workbooks",
		Long: `cbamatrix turns a Choose-by-Advantage template into a formatted workbook
with a Matrix sheet, a Weights & SAW sheet and a Summary CBA sheet.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd.ErrOrStderr())
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "Config file (default: config.toml next to the executable)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Override the configured log level")

	root.AddCommand(
		newGenerateCmd(a),
		newInspectCmd(a),
		newServeCmd(a),
		newWatchCmd(a),
		newConfigCmd(a),
	)
	return root
}

func (a *app) init(stderr io.Writer) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return NewCLIError("failed to load config", "Check the --config path", err)
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	a.cfg = cfg
	a.log = cfg.Log.NewLogger(stderr)
	return nil
}

// Execute runs the command line and returns the process exit code.
func Execute() int {
	err := NewRootCmd().Execute()
	if err == nil {
		return 0
	}
	err = MapError(err)

	fmt.Fprintln(os.Stderr, "Error:", err)
	var cliErr *CLIError
	if errors.As(err, &cliErr) {
		if cliErr.Hint != "" {
			fmt.Fprintln(os.Stderr, "Hint:", cliErr.Hint)
		}
		return cliErr.ExitCode
	}
	return 1
}
