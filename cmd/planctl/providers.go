package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"ai-tasker/pkg/llmprovider"
)

func newProvidersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "providers",
		Short: "List built-in provider presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tMODEL\tCREDENTIAL\tBASE URL")
			for _, name := range llmprovider.PresetNames() {
				p, _ := llmprovider.LookupPreset(name)
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", p.Name, p.DefaultModel, p.CredentialName, p.BaseURL)
			}
			return tw.Flush()
		},
	}
}
