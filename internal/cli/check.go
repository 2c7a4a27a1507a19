package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/tacogips/pagegen/internal/app"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Compare a template with its variation rows",
	Long: `Compare the tags of a template and output pattern with the columns of
the variation rows, without generating anything.

Reports tags no row supplies, columns no tag uses, and rows that leave
the output pattern without a value.

Examples:
  pagegen check --template template.html --rows cities.csv
  pagegen check -t template.html -r cities.csv -p "plumber-{city}.html"`,
	RunE: runCheck,
}

// Check command flags
var (
	checkTemplate string
	checkRows     []string
	checkPattern  string
	checkConfig   string
)

func init() {
	checkCmd.Flags().StringVarP(&checkTemplate, FlagTemplate, "t", "", DescTemplate)
	checkCmd.Flags().StringSliceVarP(&checkRows, FlagRows, "r", nil, DescRows)
	checkCmd.Flags().StringVarP(&checkPattern, FlagPattern, "p", "", DescPattern)
	checkCmd.Flags().StringVarP(&checkConfig, FlagConfig, "c", "", DescConfig)
	_ = checkCmd.MarkFlagRequired(FlagTemplate)
	_ = checkCmd.MarkFlagRequired(FlagRows)
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, checkConfig)
	if err != nil {
		return err
	}

	result, err := app.Check(app.CheckOptions{
		TemplatePath: checkTemplate,
		RowsPaths:    checkRows,
		Pattern:      stringFlag(cmd, FlagPattern, checkPattern, cfg.Generation.Pattern),
	})
	if err != nil {
		return err
	}

	printHeader("Check")
	printInfo("Template tags: " + joinOrNone(result.Tags))
	printInfo("Pattern tags:  " + joinOrNone(result.PatternTags))
	printInfo("Columns:       " + joinOrNone(result.Columns))
	printInfo("Rows:          " + plural(result.Rows, "row"))

	for _, tag := range result.MissingColumns {
		printWarning("tag `" + tag + "` has no column; it will be generated blank")
	}
	for _, col := range result.UnusedColumns {
		printWarning("column `" + col + "` is not used by the template or pattern")
	}
	printWarnings(result.Warnings)

	if len(result.MissingColumns) == 0 && len(result.UnusedColumns) == 0 && len(result.Warnings) == 0 {
		printSuccess("template and rows match")
	}
	return nil
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return render(mutedStyle, "(none)")
	}
	return strings.Join(items, ", ")
}
