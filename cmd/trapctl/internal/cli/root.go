// Package cli wires trapctl's cobra command tree over the trapcore engine.
package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Root builds trapctl's top-level command, per SPEC_FULL.md's CLI section:
// run, presets, qc subcommands layered with viper for env/flag overrides.
func Root() *cobra.Command {
	root := &cobra.Command{
		Use:   "trapctl",
		Short: "trapcore batch CLI: run the auto-trapping pipeline over a document fixture",
	}

	root.PersistentFlags().String("technology", "flexo", "technology preset to apply before overrides")
	_ = viper.BindPFlag("technology", root.PersistentFlags().Lookup("technology"))

	root.AddCommand(newRunCmd())
	root.AddCommand(newPresetsCmd())
	root.AddCommand(newQCCmd())
	return root
}
