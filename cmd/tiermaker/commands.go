package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"tiermaker/internal/content"
	"tiermaker/internal/domain"
	"tiermaker/internal/importer"
)

// defaultsCmd prints the default tiers
func defaultsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "defaults",
		Short: "Print the default tiers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tLABEL\tCOLOR\tTEXT")
			for _, t := range domain.DefaultTiers() {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", t.ID, t.Label, t.Color, t.TextColor)
			}
			return w.Flush()
		},
	}
}

// importCmd parses item files and prints what would be imported
func importCmd() *cobra.Command {
	var filter string

	cmd := &cobra.Command{
		Use:   "import FILE...",
		Short: "Parse item files and list the items",
		Long: `Parse one or more item files the same way the UI does and list the
resulting items. Files are imported in order, so duplicates across files are kept.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store := content.NewStore()
			for _, path := range args {
				items, err := importer.Load(path)
				if err != nil {
					return err
				}
				store.ImportList(items)
			}

			items, err := content.Filter(store.Get().Items, filter)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tCATEGORY")
			for _, item := range items {
				fmt.Fprintf(w, "%s\t%s\t%s\n", item.ID, item.DisplayName(), item.Category)
			}
			if err := w.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "\n%d items\n", len(items))
			return nil
		},
	}

	cmd.Flags().StringVarP(&filter, "filter", "f", "", "only list items whose name or category matches this glob")
	return cmd
}

// configCmd prints the config path and the effective configuration
func configCmd(opts *runOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := configService(opts.configPath)
			cfg, err := svc.Load()
			if err != nil {
				return err
			}
			data, err := toml.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("failed to marshal config: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "# %s\n%s", svc.Path(), data)
			return nil
		},
	}
}
