package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var errResetTarget = errors.New("reset needs either a MAP argument or --all")

func newResetCmd(app *app) *cobra.Command {
	var (
		rawURL string
		all    bool
	)

	cmd := &cobra.Command{
		Use:   "reset [MAP]",
		Short: "Clear one map, or every map with --all, and print the new share URL",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if all == (len(args) == 1) {
				return errResetTarget
			}

			board, err := app.openBoard(cmd, rawURL)
			if err != nil {
				return err
			}

			if all {
				err = board.ResetAll()
			} else {
				m, lookupErr := app.lookupMap(args[0])
				if lookupErr != nil {
					return lookupErr
				}
				err = board.ResetMap(m.ID)
			}
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), board.URL())
			return err
		},
	}

	cmd.Flags().StringVar(&rawURL, "url", "", "share URL to start from (defaults to share.base_url)")
	cmd.Flags().BoolVar(&all, "all", false, "clear every map")

	return cmd
}
