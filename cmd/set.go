package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSetCmd(app *app) *cobra.Command {
	var (
		rawURL         string
		allowDuplicate bool
	)

	cmd := &cobra.Command{
		Use:   "set MAP SLOT AGENT",
		Short: "Put an agent into a player slot and print the new share URL",
		Long:  "Put an agent into player slot 1-5 of a map. Use \"none\" as AGENT to clear the slot.",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := app.lookupMap(args[0])
			if err != nil {
				return err
			}
			slot, err := parseSlot(args[1])
			if err != nil {
				return err
			}
			agent, err := app.lookupAgent(args[2])
			if err != nil {
				return err
			}

			board, err := app.openBoard(cmd, rawURL)
			if err != nil {
				return err
			}

			if allowDuplicate {
				err = board.SetSlot(m.ID, slot, agent)
			} else {
				err = board.SelectAgent(m.ID, slot, agent)
			}
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), board.URL())
			return err
		},
	}

	cmd.Flags().StringVar(&rawURL, "url", "", "share URL to start from (defaults to share.base_url)")
	cmd.Flags().BoolVar(&allowDuplicate, "allow-duplicate", false, "allow the same agent twice on one map")

	return cmd
}
