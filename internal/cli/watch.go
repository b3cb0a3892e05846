package cli

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ukaji3/cbamatrix-go/internal/watch"
	"github.com/ukaji3/cbamatrix-go/pkg/cbamatrix"
)

func newWatchCmd(a *app) *cobra.Command {
	var (
		flags     requestFlags
		outputDir string
		once      bool
	)

	cmd := &cobra.Command{
		Use:   "watch <dir>",
		Short: "Regenerate workbooks whenever templates in a directory change",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			wc := a.cfg.Watch
			if outputDir == "" {
				outputDir = wc.OutputDir
			}
			opts := a.generateOptions()
			w, err := watch.New(watch.Config{
				Dir:       args[0],
				OutputDir: outputDir,
				Debounce:  time.Duration(wc.DebounceMS) * time.Millisecond,
				Filter:    watch.NewPatternFilter(wc.Include, wc.Exclude),
				Request:   flags.request(),
			}, func(data []byte, req cbamatrix.Request) (*cbamatrix.Result, error) {
				return cbamatrix.Generate(data, req, opts)
			}, a.log)
			if err != nil {
				return err
			}
			w.OnOutcome = func(o watch.Outcome) {
				if o.Err == nil && !o.Skipped {
					fmt.Fprintln(cmd.OutOrStdout(), o.Output)
				}
			}

			outcomes, err := w.Scan()
			if err != nil {
				return err
			}
			if once {
				for _, o := range outcomes {
					if o.Err != nil {
						return NewCLIError("some templates failed", "See the log for details", o.Err)
					}
				}
				return nil
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			if err := w.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&outputDir, "output-dir", "d", "", "Directory for generated workbooks (default: the watched directory)")
	cmd.Flags().BoolVar(&once, "once", false, "Process existing templates and exit")
	return cmd
}
