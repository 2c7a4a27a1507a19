package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tacogips/pagegen/internal/app"
	"github.com/tacogips/pagegen/internal/filetree"
)

// treeCmd represents the tree command
var treeCmd = &cobra.Command{
	Use:   "tree [dir]",
	Short: "Show a project as a folder tree",
	Long: `Show the files of a project as a folder tree, sorted by path.

The project is read from a directory (default ".") or, with --store, from
the local page store.

Examples:
  pagegen tree
  pagegen tree dist
  pagegen tree --store --project site`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTree,
}

// Tree command flags
var (
	treeStore     bool
	treeStorePath string
	treeProject   string
	treeConfig    string
)

func init() {
	treeCmd.Flags().BoolVar(&treeStore, FlagStore, false, "Read the project from the local page store")
	treeCmd.Flags().StringVar(&treeStorePath, FlagStorePath, "", DescStorePath)
	treeCmd.Flags().StringVar(&treeProject, FlagProject, "", DescProject)
	treeCmd.Flags().StringVarP(&treeConfig, FlagConfig, "c", "", DescConfig)
}

func runTree(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, treeConfig)
	if err != nil {
		return err
	}

	opts := app.TreeOptions{
		ProjectID:        stringFlag(cmd, FlagProject, treeProject, cfg.Project.ID),
		IgnorePatterns:   cfg.Project.IgnorePatterns,
		BinaryExtensions: cfg.Project.BinaryExtensions,
	}
	if treeStore {
		if len(args) > 0 {
			return fmt.Errorf("a directory cannot be given together with --%s", FlagStore)
		}
		opts.StorePath = stringFlag(cmd, FlagStorePath, treeStorePath, cfg.Store.Path)
	} else {
		opts.Dir = "."
		if len(args) > 0 {
			opts.Dir = args[0]
		}
	}

	result, err := app.Tree(context.Background(), opts)
	if err != nil {
		return err
	}

	if err := filetree.Render(stdout, result.Root, result.Items); err != nil {
		return err
	}
	printInfo(render(mutedStyle, fmt.Sprintf("\n%s, %s", plural(result.Folders, "folder"), plural(result.Files, "file"))))
	return nil
}
