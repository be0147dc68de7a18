package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts runOptions

	rootCmd := &cobra.Command{
		Use:           "tiermaker",
		Short:         "Build tier lists in the terminal",
		Long:          `tiermaker ranks imported items into tiers (S, A, B, C, D, F by default).`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd.Context(), opts)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "config file (default is the user config directory)")
	rootCmd.Flags().StringVarP(&opts.importPath, "import", "i", "", "item file to import at startup (.json, .yaml, .toml or text)")
	rootCmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "reload the import file when it changes")
	rootCmd.Flags().StringVarP(&opts.theme, "theme", "t", "", "theme to start with")

	rootCmd.AddCommand(defaultsCmd())
	rootCmd.AddCommand(importCmd())
	rootCmd.AddCommand(configCmd(&opts))

	return rootCmd
}
