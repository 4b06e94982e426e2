package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newAgentsCmd(app *app) *cobra.Command {
	var (
		rawURL string
		filter string
	)

	cmd := &cobra.Command{
		Use:   "agents MAP SLOT",
		Short: "List the agents that can still go into a player slot",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := app.lookupMap(args[0])
			if err != nil {
				return err
			}
			slot, err := parseSlot(args[1])
			if err != nil {
				return err
			}

			board, err := app.openBoard(cmd, rawURL)
			if err != nil {
				return err
			}

			agents, err := board.SelectableAgents(m.ID, slot, filter)
			if err != nil {
				return err
			}
			if len(agents) == 0 {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), "No agents found.")
				return err
			}

			for _, agent := range agents {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", agent.ID, agent.Name, agent.Role)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&rawURL, "url", "", "share URL to read (defaults to share.base_url)")
	cmd.Flags().StringVar(&filter, "filter", "", "only list agents whose id or name contains this text")

	return cmd
}
