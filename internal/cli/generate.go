package cli

import (
	"bytes"
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tacogips/pagegen/internal/app"
	"github.com/tacogips/pagegen/internal/filetree"
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate one page per variation row",
	Long: `Generate one page per row of a variation table.

Each row's values replace the {tag} placeholders of the template, and the
output pattern names the page. Tags without a value are generated blank and
reported as warnings. When two rows resolve to the same path the later row
wins.

Pages are written under the output directory, and also saved to the local
page store with --store.

Examples:
  pagegen generate -t template.html -r cities.csv -p "plumber-{city}.html"
  pagegen generate -t template.html -r cities.csv -r more.json -f services -o dist
  pagegen generate -t template.html -r cities.yaml --store --project site
  pagegen generate -t template.html -r cities.csv --dry-run`,
	RunE: runGenerate,
}

// Generate command flags
var (
	generateTemplate    string
	generateRows        []string
	generatePattern     string
	generateFolder      string
	generateOutput      string
	generateOverwrite   bool
	generateStore       bool
	generateStorePath   string
	generateProject     string
	generateConfig      string
	generateDryRun      bool
	generateInteractive bool
)

func init() {
	generateCmd.Flags().StringVarP(&generateTemplate, FlagTemplate, "t", "", DescTemplate)
	generateCmd.Flags().StringSliceVarP(&generateRows, FlagRows, "r", nil, DescRows)
	generateCmd.Flags().StringVarP(&generatePattern, FlagPattern, "p", "", DescPattern)
	generateCmd.Flags().StringVarP(&generateFolder, FlagFolder, "f", "", DescFolder)
	generateCmd.Flags().StringVarP(&generateOutput, FlagOutput, "o", "", DescOutput)
	generateCmd.Flags().BoolVar(&generateOverwrite, FlagOverwrite, false, DescOverwrite)
	generateCmd.Flags().BoolVar(&generateStore, FlagStore, false, DescStore)
	generateCmd.Flags().StringVar(&generateStorePath, FlagStorePath, "", DescStorePath)
	generateCmd.Flags().StringVar(&generateProject, FlagProject, "", DescProject)
	generateCmd.Flags().StringVarP(&generateConfig, FlagConfig, "c", "", DescConfig)
	generateCmd.Flags().BoolVarP(&generateDryRun, FlagDryRun, "n", false, DescDryRun)
	generateCmd.Flags().BoolVarP(&generateInteractive, FlagInteractive, "i", false, DescInteractive)
	_ = generateCmd.MarkFlagRequired(FlagTemplate)
	_ = generateCmd.MarkFlagRequired(FlagRows)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, generateConfig)
	if err != nil {
		return err
	}

	opts := app.GenerateOptions{
		TemplatePath:    generateTemplate,
		RowsPaths:       generateRows,
		Pattern:         stringFlag(cmd, FlagPattern, generatePattern, cfg.Generation.Pattern),
		Folder:          stringFlag(cmd, FlagFolder, generateFolder, cfg.Generation.Folder),
		FallbackPattern: cfg.Generation.FallbackPattern,
		OutputDir:       stringFlag(cmd, FlagOutput, generateOutput, cfg.Generation.OutputDir),
		Overwrite:       boolFlag(cmd, FlagOverwrite, generateOverwrite, cfg.Generation.Overwrite),
		DryRun:          generateDryRun,
	}
	if boolFlag(cmd, FlagStore, generateStore, cfg.Store.Enabled) {
		opts.StorePath = stringFlag(cmd, FlagStorePath, generateStorePath, cfg.Store.Path)
		opts.ProjectID = stringFlag(cmd, FlagProject, generateProject, cfg.Project.ID)
	}

	if generateInteractive {
		if opts.Pattern == "" {
			tags, err := app.Tags(opts.TemplatePath)
			if err != nil {
				return err
			}
			if opts.Pattern, err = promptPattern(tags.Tags); err != nil {
				return err
			}
		}
		opts.ConfirmOverwrite = promptOverwrite
	}

	if generateDryRun {
		printInfo(render(mutedStyle, "[dry run] nothing will be written"))
	}
	printProgress(fmt.Sprintf("Generating pages from %s", opts.TemplatePath))

	result, err := app.Generate(context.Background(), opts)
	if err != nil {
		return err
	}

	printWarnings(result.Warnings)

	if generateDryRun {
		printHeader("Pages")
		for _, page := range result.Pages {
			printInfo(fmt.Sprintf("%s %s", page.FilePath, render(mutedStyle, "("+formatBytes(int64(len(page.Content)))+")")))
		}
		if !globalQuiet && len(result.Tree) > 0 {
			var buf bytes.Buffer
			if err := filetree.Render(&buf, opts.OutputDir, result.Tree); err != nil {
				return err
			}
			printHeader("Tree")
			fmt.Fprint(stdout, buf.String())
		}
	}

	printSuccess(fmt.Sprintf("Generated %s from %s", plural(len(result.Pages), "page"), plural(result.Rows, "row")))
	if w := result.Write; w != nil {
		printInfo(fmt.Sprintf("  created: %d, overwritten: %d, skipped: %d (%s)",
			w.FilesCreated, w.FilesOverwritten, w.FilesSkipped, opts.OutputDir))
		if w.FilesSkipped > 0 && !opts.Overwrite {
			printInfo(render(mutedStyle, "  use --overwrite to replace existing files"))
		}
		for _, werr := range w.Errors {
			printErrorMsg(werr.Error())
		}
		if len(w.Errors) > 0 {
			return fmt.Errorf("%s could not be written", plural(len(w.Errors), "page"))
		}
	}
	if result.Stored > 0 {
		printInfo(fmt.Sprintf("  saved %s to project %q (%s)", plural(result.Stored, "page"), opts.ProjectID, opts.StorePath))
	}
	if len(result.Warnings) > 0 {
		printWarning(plural(len(result.Warnings), "warning"))
	}
	return nil
}
