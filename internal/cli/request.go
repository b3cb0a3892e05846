package cli

import (
	"github.com/spf13/cobra"

	"github.com/ukaji3/cbamatrix-go/pkg/cbamatrix"
)

// requestFlags are the project inputs shared by generate and watch.
type requestFlags struct {
	purpose         string
	purposeOther    string
	projectName     string
	projectLocation string
	sheet           string
}

func (f *requestFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.purpose, "purpose", "", "Purpose of the matrix, e.g. \"Deep Foundation System\"")
	cmd.Flags().StringVar(&f.purposeOther, "purpose-other", "", "Free-text purpose used when --purpose is \"Other\"")
	cmd.Flags().StringVar(&f.projectName, "project-name", "", "Project name")
	cmd.Flags().StringVar(&f.projectLocation, "project-location", "", "Project location")
	cmd.Flags().StringVar(&f.sheet, "sheet", "", "Template sheet (default: first sheet)")
}

func (f *requestFlags) request() cbamatrix.Request {
	return cbamatrix.Request{
		Purpose:         cbamatrix.ResolvePurpose(f.purpose, f.purposeOther),
		ProjectName:     f.projectName,
		ProjectLocation: f.projectLocation,
		SheetName:       f.sheet,
	}.Normalize()
}

func (a *app) generateOptions() cbamatrix.Options {
	opts := cbamatrix.DefaultOptions()
	opts.Logger = a.log
	return opts
}
