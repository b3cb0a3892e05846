package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ukaji3/cbamatrix-go/pkg/cbamatrix"
)

func newGenerateCmd(a *app) *cobra.Command {
	var (
		flags     requestFlags
		outputDir string
		output    string
	)

	cmd := &cobra.Command{
		Use:   "generate <template.xlsx>",
		Short: "Generate the formatted CBA workbook from a template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := flags.request()
			if err := cbamatrix.Validate(req, true); err != nil {
				return err
			}

			inputPath := args[0]
			data, err := os.ReadFile(inputPath)
			if err != nil {
				return NewCLIError("failed to read template", "Check the template path", err)
			}

			result, err := cbamatrix.Generate(data, req, a.generateOptions())
			if err != nil {
				return err
			}

			target := output
			if target == "" {
				target = filepath.Join(outputDir, result.Filename)
			}
			if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
			if err := os.WriteFile(target, result.Data, 0o644); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}

			a.log.Info("workbook generated",
				"template", inputPath,
				"output", target,
				"options", result.Options,
				"attributes", result.Attributes)
			fmt.Fprintln(cmd.OutOrStdout(), target)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&outputDir, "output-dir", "d", ".", "Directory for the generated workbook")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file path (overrides --output-dir and the generated name)")
	return cmd
}
