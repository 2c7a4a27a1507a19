package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tacogips/pagegen/internal/app"
)

// tagsCmd represents the tags command
var tagsCmd = &cobra.Command{
	Use:   "tags <template>",
	Short: "List the tags of a template",
	Long: `List the distinct {tag} placeholders of a template in order of first use.

Examples:
  pagegen tags template.html
  pagegen tags template.html --positions`,
	Args: cobra.ExactArgs(1),
	RunE: runTags,
}

// Tags command flags
var tagsPositions bool

func init() {
	tagsCmd.Flags().BoolVar(&tagsPositions, "positions", false, "Show every occurrence with its byte offsets")
}

func runTags(cmd *cobra.Command, args []string) error {
	result, err := app.Tags(args[0])
	if err != nil {
		return err
	}

	if len(result.Tags) == 0 {
		printWarning("template has no tags; every page will be identical")
		return nil
	}

	if tagsPositions {
		for _, m := range result.Matches {
			fmt.Fprintf(stdout, "%s\t%d-%d\n", render(tagStyle, m.Name), m.Start, m.End)
		}
		return nil
	}

	for _, tag := range result.Tags {
		fmt.Fprintln(stdout, render(tagStyle, tag))
	}
	return nil
}
