package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	tomlcatalog "github.com/velolib/valolab/internal/adapters/catalog/toml"
)

func newCatalogCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect and export the map and agent catalog",
	}

	cmd.AddCommand(
		newCatalogListCmd(app),
		newCatalogExportCmd(app),
	)

	return cmd
}

func newCatalogListCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List maps and agents in code order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			source := "built-in"
			if app.catalogPath != "" {
				source = app.catalogPath
			}
			_, _ = fmt.Fprintf(out, "catalog: %s\n", source)

			_, _ = fmt.Fprintf(out, "maps: %d\n", app.catalog.MapCount())
			for i, m := range app.catalog.Maps() {
				_, _ = fmt.Fprintf(out, "%d\t%s\t%s\n", i, m.ID, m.Name)
			}

			_, _ = fmt.Fprintf(out, "agents: %d\n", app.catalog.AgentCount())
			for i, agent := range app.catalog.Agents() {
				_, _ = fmt.Fprintf(out, "%d\t%s\t%s\t%s\n", i, agent.ID, agent.Name, agent.Role)
			}
			return nil
		},
	}
}

func newCatalogExportCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "export PATH",
		Short: "Write the active catalog to a TOML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := tomlcatalog.Export(args[0], app.catalog); err != nil {
				return err
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "catalog written to %s\n", args[0])
			return err
		},
	}
}
