package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ukaji3/cbamatrix-go/pkg/cbamatrix"
	"github.com/ukaji3/cbamatrix-go/pkg/cbamatrix/output"
)

func newInspectCmd(a *app) *cobra.Command {
	var (
		sheet      string
		format     string
		pretty     bool
		outputPath string
	)

	cmd := &cobra.Command{
		Use:   "inspect <template.xlsx>",
		Short: "Show how a template's rows and cells will be classified",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f := output.Format(format)
			if f != output.FormatJSON && f != output.FormatYAML {
				return NewCLIError(fmt.Sprintf("invalid format: %s", format), "Use --format json or --format yaml", nil)
			}

			inputPath := args[0]
			data, err := os.ReadFile(inputPath)
			if err != nil {
				return NewCLIError("failed to read template", "Check the template path", err)
			}

			in, err := cbamatrix.Inspect(data, sheet)
			if err != nil {
				return err
			}
			in.BookName = filepath.Base(inputPath)
			a.log.Debug("template inspected", "rows", len(in.Rows), "attributes", len(in.Attributes))

			encoded, err := output.Marshal(in, f, pretty)
			if err != nil {
				return fmt.Errorf("serialization failed: %w", err)
			}

			if outputPath != "" {
				if err := os.WriteFile(outputPath, encoded, 0o644); err != nil {
					return fmt.Errorf("failed to write output: %w", err)
				}
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(encoded))
			return nil
		},
	}

	cmd.Flags().StringVar(&sheet, "sheet", "", "Template sheet (default: first sheet)")
	cmd.Flags().StringVar(&format, "format", "json", "Output format: json, yaml")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	return cmd
}
