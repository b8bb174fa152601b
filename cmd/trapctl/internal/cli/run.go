package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/coldpress/trapcore/internal/config"
	"github.com/coldpress/trapcore/internal/session"
	"github.com/coldpress/trapcore/internal/svgexport"
)

func newRunCmd() *cobra.Command {
	var rulesPath string
	var debugSVGPath string

	cmd := &cobra.Command{
		Use:   "run <fixture.json>",
		Short: "run the trapping pipeline over a document fixture and print a summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tech := config.Technology(viper.GetString("technology"))
			settings, err := config.ApplyPreset(tech)
			if err != nil {
				return err
			}
			if rulesPath != "" {
				rules, err := config.LoadCustomRules(rulesPath)
				if err != nil {
					return err
				}
				settings.CustomRules = rules
			}

			doc, err := LoadFixture(args[0])
			if err != nil {
				return err
			}

			sess := session.New(settings)
			result, err := sess.GenerateTraps(context.Background(), nil, doc)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "traps: %d (spread=%d choke=%d centerline=%d, skipped=%d, merged groups=%d)\n",
				result.Layer.Stats.TotalTraps, result.Layer.Stats.TotalSpread, result.Layer.Stats.TotalChoke,
				result.Layer.Stats.TotalCenterline, result.Layer.Stats.Skipped, result.Layer.Stats.MergedGroups)
			fmt.Fprintf(cmd.OutOrStdout(), "qc: passed=%v errors=%d warnings=%d info=%d\n",
				result.QC.Passed, len(result.QC.Errors), len(result.QC.Warnings), len(result.QC.Info))

			if debugSVGPath != "" {
				return svgexport.WriteFile(debugSVGPath, doc, result.Graph, result.Layer)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&rulesPath, "rules", "", "path to a custom-rules YAML file")
	cmd.Flags().StringVar(&debugSVGPath, "debug-svg", "", "write a debug SVG of the adjacency graph and traps to this path")
	return cmd
}
