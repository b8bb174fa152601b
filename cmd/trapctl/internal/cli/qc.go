package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/coldpress/trapcore/internal/config"
	"github.com/coldpress/trapcore/internal/session"
)

func newQCCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "qc <fixture.json>",
		Short: "run the pipeline and print only the QC findings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tech := config.Technology(viper.GetString("technology"))
			settings, err := config.ApplyPreset(tech)
			if err != nil {
				return err
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

			out := cmd.OutOrStdout()
			for _, f := range result.QC.Errors {
				fmt.Fprintf(out, "ERROR [%s] %s\n", f.Kind, f.Message)
			}
			for _, f := range result.QC.Warnings {
				fmt.Fprintf(out, "WARN  [%s] %s\n", f.Kind, f.Message)
			}
			for _, f := range result.QC.Info {
				fmt.Fprintf(out, "INFO  [%s] %s\n", f.Kind, f.Message)
			}
			if !result.QC.Passed {
				return fmt.Errorf("qc failed with %d error(s)", len(result.QC.Errors))
			}
			return nil
		},
	}
}
