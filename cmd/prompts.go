package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/SaiNageswarS/video-mcp/prompts"
	"github.com/spf13/cobra"
)

var promptsCmd = &cobra.Command{
	Use:   "prompts",
	Short: "List the prompt catalog",
	RunE:  runPrompts,
}

func runPrompts(cmd *cobra.Command, _ []string) error {
	catalog, err := prompts.Load()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tCATEGORY\tARGUMENTS\tDESCRIPTION")
	for _, p := range catalog.List() {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", p.Name, p.Category, argumentList(p), p.Description)
	}
	return w.Flush()
}

func argumentList(p prompts.Prompt) string {
	if len(p.Arguments) == 0 {
		return "-"
	}
	var out string
	for i, a := range p.Arguments {
		if i > 0 {
			out += ", "
		}
		out += a.Name
		if !a.Required {
			out += "?"
		}
	}
	return out
}
