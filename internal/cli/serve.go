package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ukaji3/cbamatrix-go/internal/server"
)

func newServeCmd(a *app) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the upload form",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("port") {
				a.cfg.Server.Port = port
			}
			s := server.New(a.cfg, a.log)
			return s.Run(fmt.Sprintf(":%d", a.cfg.Server.Port))
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Listen port (default from config)")
	return cmd
}
