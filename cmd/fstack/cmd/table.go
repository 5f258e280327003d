package cmd

import (
	"fmt"

	"github.com/corey/fstack/internal/adapters/yamltable"
	"github.com/spf13/cobra"
)

func newTableCmd(s *session) *cobra.Command {
	var asYAML bool
	cmd := &cobra.Command{
		Use:   "table",
		Short: "Print the active type table",
		Long: `Prints every type and its stack in table order. With --yaml the table is
written in the file format accepted by --table, e.g.:

  fstack table --yaml > fstack.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := s.app.Table().Entries()
			if err != nil {
				return err
			}
			if asYAML {
				return yamltable.Encode(cmd.OutOrStdout(), entries)
			}
			fmt.Fprint(cmd.OutOrStdout(), s.render.Table(entries))
			return nil
		},
	}
	cmd.Flags().BoolVar(&asYAML, "yaml", false, "Write the table as YAML")
	return cmd
}
