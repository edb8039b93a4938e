package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.trai.ch/jsproj/internal/app"
	"go.trai.ch/jsproj/internal/ui/output"
	"go.trai.ch/jsproj/internal/ui/style"
)

func (c *CLI) newResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve [path]",
		Short: "Print the ECMA level and lint configuration of the project owning path",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			asJSON, _ := cmd.Flags().GetBool("json")

			report, err := c.app.Resolve(cmd.Context(), pathArg(args), app.ResolveOptions{
				Log: logOptions(cmd),
			})
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			}
			return renderReport(cmd.OutOrStdout(), report)
		},
	}
	cmd.Flags().Bool("json", false, "Print the report as JSON")
	return cmd
}

// renderReport writes a human-readable report to w.
func renderReport(w io.Writer, report *app.Report) error {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(output.ColorProfile())

	heading := style.Heading.Renderer(r)
	label := style.Label.Renderer(r)
	found := style.Found.Renderer(r)
	missing := style.Missing.Renderer(r)

	project := report.Project
	if project == "" {
		project = missing.Render("none")
	}

	lint := missing.Render("none")
	if report.LintConfig != nil {
		data, err := json.Marshal(report.LintConfig)
		if err != nil {
			return err
		}
		lint = string(data)
	}

	var b []byte
	b = fmt.Appendf(b, "%s\n", heading.Render(report.Input))
	b = fmt.Appendf(b, "  %s %s\n", label.Render("project"), project)
	b = fmt.Appendf(b, "  %s %d\n", label.Render("ecma   "), report.EcmaLevel)
	b = fmt.Appendf(b, "  %s %s\n", label.Render("lint   "), lint)
	for _, file := range report.Files {
		if file.Present {
			b = fmt.Appendf(b, "  %s %s %s\n", found.Render(style.Check), file.Name, label.Render(file.Digest))
			continue
		}
		b = fmt.Appendf(b, "  %s %s\n", label.Render(style.Dot), label.Render(file.Name))
	}

	_, err := w.Write(b)
	return err
}
