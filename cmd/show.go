package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	boardadapter "github.com/velolib/valolab/internal/adapters/render/board"
	"github.com/velolib/valolab/internal/domain"
)

type showOutput struct {
	URL          string              `json:"url"`
	Compositions domain.Compositions `json:"compositions"`
}

func newShowCmd(app *app) *cobra.Command {
	var (
		rawURL       string
		asJSON       bool
		onlySelected bool
		columns      int
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the compositions stored in a share URL",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			board, err := app.openBoard(cmd, rawURL)
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(showOutput{URL: board.URL(), Compositions: board.Compositions()})
			}

			rendered, err := app.boardRenderer(board.View(), boardadapter.RenderOptions{
				Columns:      columns,
				OnlySelected: onlySelected,
			})
			if err != nil {
				return fmt.Errorf("render board: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().StringVar(&rawURL, "url", "", "share URL to read (defaults to share.base_url)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print compositions as JSON")
	cmd.Flags().BoolVar(&onlySelected, "selected", false, "only show maps with agents")
	cmd.Flags().IntVar(&columns, "columns", 0, "map cards per row")

	return cmd
}
