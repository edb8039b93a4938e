package commands

import (
	"encoding/json"

	"github.com/spf13/cobra"
	"go.trai.ch/jsproj/internal/app"
)

func (c *CLI) newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [path]",
		Short: "Print the project configuration again whenever it changes",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			asJSON, _ := cmd.Flags().GetBool("json")
			out := cmd.OutOrStdout()
			enc := json.NewEncoder(out)

			var renderErr error
			err := c.app.Watch(cmd.Context(), pathArg(args), app.WatchOptions{
				Log: logOptions(cmd),
				OnReport: func(report *app.Report) {
					if renderErr != nil {
						return
					}
					if asJSON {
						renderErr = enc.Encode(report)
						return
					}
					renderErr = renderReport(out, report)
				},
			})
			if err != nil {
				return err
			}
			return renderErr
		},
	}
	cmd.Flags().Bool("json", false, "Print one JSON report per line")
	return cmd
}
