package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/velolib/valolab/internal/application"
)

func newShareCmd(app *app) *cobra.Command {
	var rawURL string

	cmd := &cobra.Command{
		Use:   "share",
		Short: "Copy the share URL to the clipboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			board, err := app.openBoard(cmd, rawURL)
			if err != nil {
				return err
			}

			url, err := board.Share(cmd.Context())
			if err != nil && !errors.Is(err, application.ErrClipboardDenied) {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), url)
			return err
		},
	}

	cmd.Flags().StringVar(&rawURL, "url", "", "share URL to copy (defaults to share.base_url)")

	return cmd
}
