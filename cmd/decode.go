package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/velolib/valolab/internal/codec"
	"github.com/velolib/valolab/internal/domain"
)

type decodeOutput struct {
	Format       string              `json:"format"`
	Version      int                 `json:"version"`
	MapCount     int                 `json:"map_count"`
	AgentCount   int                 `json:"agent_count"`
	BitsPerMap   int                 `json:"bits_per_map"`
	Truncated    bool                `json:"truncated"`
	Compositions domain.Compositions `json:"compositions"`
}

func newDecodeCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "decode CODE",
		Short: "Decode a raw compositions code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			compositions, header, err := app.codec.Inspect(args[0])
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(decodeOutput{
					Format:       header.Format.String(),
					Version:      header.Version,
					MapCount:     header.MapCount,
					AgentCount:   header.AgentCount,
					BitsPerMap:   header.BitsPerMap,
					Truncated:    header.Truncated,
					Compositions: compositions,
				})
			}

			return writeDecoded(cmd, app.catalog, header, compositions)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the decoded code as JSON")

	return cmd
}

func writeDecoded(cmd *cobra.Command, catalog domain.Catalog, header codec.Header, compositions domain.Compositions) error {
	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "format: %s\n", header.Format)
	_, _ = fmt.Fprintf(out, "maps: %d agents: %d bits per map: %d\n", header.MapCount, header.AgentCount, header.BitsPerMap)
	if header.Truncated {
		_, _ = fmt.Fprintln(out, "warning: code is shorter than its header declares")
	}

	if len(compositions) == 0 {
		_, err := fmt.Fprintln(out, "No agents selected.")
		return err
	}

	for _, m := range catalog.Maps() {
		comp, ok := compositions[m.ID]
		if !ok {
			continue
		}
		labels := make([]string, 0, domain.SlotsPerMap)
		for _, id := range comp {
			labels = append(labels, slotLabel(catalog, id))
		}
		_, _ = fmt.Fprintf(out, "%s: %s\n", m.Name, strings.Join(labels, ", "))
	}
	return nil
}
