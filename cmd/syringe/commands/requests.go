package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/syringe/internal/app"
)

func (c *CLI) newRequestsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "requests [patterns...]",
		Short: "Print every dependency request of the matched packages",
		Long: "Loads the packages matching the given patterns, or the configured patterns when none\n" +
			"are given, and prints the dependency request of every injection site.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			configPath, _ := cmd.Flags().GetString("config")
			dir, _ := cmd.Flags().GetString("dir")

			return c.app.Requests(cmd.Context(), cmd.OutOrStdout(), app.RequestsOptions{
				Patterns:   args,
				Dir:        dir,
				ConfigPath: configPath,
				Format:     format,
			})
		},
	}
	cmd.Flags().StringP("format", "f", "text", "Report format: text or yaml")
	cmd.Flags().StringP("config", "c", "", "Config file, or a directory to search for syringe.yaml")
	cmd.Flags().StringP("dir", "C", ".", "Directory the patterns are relative to")
	return cmd
}
