package cmd

import (
	"github.com/corey/fstack/internal/adapters/tui"
	"github.com/spf13/cobra"
)

func newBrowseCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Interactive search",
		Long:  "Opens a full-screen browser that resolves types and searches functions as you type.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run(s.app, s.render)
		},
	}
}
