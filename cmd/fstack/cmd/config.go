package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newConfigCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show configuration",
		Long:  "Shows the table source, color mode, env files and search paths.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := s.env.paths
			envFiles := strings.Join(p.EnvFiles(), ", ")
			if envFiles == "" {
				envFiles = "none"
			}
			color := "off"
			if s.useColor {
				color = "on"
			}

			out := cmd.OutOrStdout()
			fmt.Fprint(out, s.render.Heading("fstack config"))
			fmt.Fprintf(out, "  Table:       %s (%d types)\n", s.tableSource(), s.app.Table().Len())
			fmt.Fprintf(out, "  Color:       %s (%s)\n", s.cfg.Color, color)
			fmt.Fprintf(out, "  Debug:       %t\n", s.cfg.Debug)
			fmt.Fprintf(out, "  Env files:   %s\n", envFiles)
			fmt.Fprintf(out, "  Project:     %s\n", p.ProjectTable)
			if p.UserTable != "" {
				fmt.Fprintf(out, "  User:        %s\n", p.UserTable)
			}
			return nil
		},
	}
}
