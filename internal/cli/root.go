package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/stackchart/pkg/buildinfo"
)

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Stackchart computes chart shape layouts",
		Long: `Stackchart positions the shapes of bar, line, area, step, scatter and bubble
charts: group indices, stacked offsets, curves and hit areas.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.hitCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.curvesCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}
