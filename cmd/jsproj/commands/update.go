package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/jsproj/internal/app"
)

func (c *CLI) newUpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <file> <json>",
		Short: "Merge JSON values into a project configuration file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			create, _ := cmd.Flags().GetBool("create")
			path, _ := cmd.Flags().GetString("path")

			return c.app.Update(cmd.Context(), path, args[0], []byte(args[1]), app.UpdateOptions{
				Create: create,
				Log:    logOptions(cmd),
			})
		},
	}
	cmd.Flags().Bool("create", false, "Create the file when it does not exist")
	cmd.Flags().StringP("path", "p", ".", "Path inside the project to update")
	return cmd
}
