package app

import (
	"context"

	"github.com/tacogips/pagegen/internal/debug"
	"github.com/tacogips/pagegen/internal/filetree"
	"github.com/tacogips/pagegen/internal/project"
	"github.com/tacogips/pagegen/internal/store"
	"github.com/tacogips/pagegen/internal/template/model"
)

// TreeOptions contains options for building a project tree.
// Exactly one of Dir and StorePath must be set.
type TreeOptions struct {
	// Dir is a project directory on disk.
	Dir string
	// StorePath is the SQLite database to read the project from.
	StorePath string
	// ProjectID selects the project in the store.
	ProjectID string
	// IgnorePatterns are glob patterns skipped when reading Dir.
	IgnorePatterns []string
	// BinaryExtensions are extensions skipped when reading Dir.
	BinaryExtensions []string
}

// TreeResult holds a project's folder hierarchy.
type TreeResult struct {
	// Root is the display name of the project root.
	Root string
	// Items are the top-level tree items.
	Items []*model.FileTreeItem
	// Folders is the number of folders in the tree.
	Folders int
	// Files is the number of files in the tree.
	Files int
}

// Tree builds the folder hierarchy of a project read from disk or the store.
func Tree(ctx context.Context, opts TreeOptions) (*TreeResult, error) {
	debug.DebugSection("[app] Tree workflow start")
	debug.DebugValue("[app] Dir", opts.Dir)
	debug.DebugValue("[app] StorePath", opts.StorePath)
	debug.DebugValue("[app] ProjectID", opts.ProjectID)

	files, root, err := treeFiles(ctx, opts)
	if err != nil {
		return nil, err
	}

	items := filetree.BuildTree(files)
	folders, count := filetree.Count(items)
	debug.Debug("[app] Tree built: folders=%d, files=%d", folders, count)

	return &TreeResult{
		Root:    root,
		Items:   items,
		Folders: folders,
		Files:   count,
	}, nil
}

func treeFiles(ctx context.Context, opts TreeOptions) ([]model.ProjectFile, string, error) {
	switch {
	case opts.Dir != "" && opts.StorePath != "":
		return nil, "", NewValidationError("directory and store cannot both be given", nil)

	case opts.StorePath != "":
		if opts.ProjectID == "" {
			return nil, "", NewValidationError("project id is required when reading from the store", nil)
		}
		s, err := store.Open(ctx, opts.StorePath)
		if err != nil {
			return nil, "", NewStoreError("failed to open store", err)
		}
		defer s.Close()

		files, err := s.ListFiles(ctx, opts.ProjectID)
		if err != nil {
			return nil, "", NewStoreError("failed to list project files", err)
		}
		return files, opts.ProjectID, nil

	case opts.Dir != "":
		files, err := project.LoadDir(ctx, opts.Dir, project.LoadOptions{
			ProjectID:        opts.ProjectID,
			IgnorePatterns:   opts.IgnorePatterns,
			BinaryExtensions: opts.BinaryExtensions,
		})
		if err != nil {
			return nil, "", NewProjectLoadError("failed to read project directory", err)
		}
		return files, opts.Dir, nil

	default:
		return nil, "", NewValidationError("a directory or a store is required", nil)
	}
}
