package app

import (
	"context"
	"os"
	"time"

	"github.com/tacogips/pagegen/internal/debug"
	"github.com/tacogips/pagegen/internal/filetree"
	"github.com/tacogips/pagegen/internal/store"
	"github.com/tacogips/pagegen/internal/template/generator"
	"github.com/tacogips/pagegen/internal/template/model"
)

// GenerateOptions contains options for page generation.
type GenerateOptions struct {
	// TemplatePath is the template file.
	TemplatePath string
	// RowsPaths are the variation rows files, imported in order.
	RowsPaths []string
	// Pattern is the output pattern, e.g. "{slug}.html".
	Pattern string
	// Folder is the folder pages are placed in.
	Folder string
	// FallbackPattern names pages whose pattern resolves to nothing.
	FallbackPattern string
	// OutputDir is the directory pages are written to. Empty skips writing.
	OutputDir string
	// Overwrite replaces existing files in OutputDir.
	Overwrite bool
	// DryRun generates pages without writing or storing them.
	DryRun bool
	// StorePath is the SQLite database pages are saved to. Empty skips the store.
	StorePath string
	// ProjectID is the store project pages are saved under.
	ProjectID string
	// ConfirmOverwrite, if set, is asked before writing when Overwrite is
	// false and some pages would replace existing files. Returning true
	// overwrites them; false skips them.
	ConfirmOverwrite func(existing []string) (bool, error)
}

// GenerateResult contains the outcome of a generation run.
type GenerateResult struct {
	// Pages are the generated pages, deduplicated by path.
	Pages []model.GeneratedPage
	// Warnings are the data-quality issues found while generating.
	Warnings []model.Warning
	// Rows is the number of variation rows processed.
	Rows int
	// Write holds file statistics when pages were written.
	Write *generator.WriteResult
	// Stored is the number of pages saved to the store.
	Stored int
	// Hash fingerprints the generated pages.
	Hash string
	// Tree is the folder hierarchy of the project after the run: every file
	// stored for the project when pages were saved, otherwise the generated
	// pages alone.
	Tree []*model.FileTreeItem
}

// Generate multiplies a template into one page per variation row, then writes
// the pages to OutputDir and/or saves them to the store.
// Warnings never fail the run; errors loading inputs, writing or storing do.
func Generate(ctx context.Context, opts GenerateOptions) (*GenerateResult, error) {
	start := time.Now()
	debug.DebugSection("[app] Generate workflow start")
	debug.DebugValue("[app] Template", opts.TemplatePath)
	debug.DebugValue("[app] Rows", opts.RowsPaths)
	debug.DebugValue("[app] Pattern", opts.Pattern)
	debug.DebugValue("[app] Folder", opts.Folder)
	debug.DebugValue("[app] OutputDir", opts.OutputDir)
	debug.DebugValue("[app] StorePath", opts.StorePath)
	debug.DebugValue("[app] DryRun", opts.DryRun)

	if err := validateGenerateOptions(opts); err != nil {
		return nil, err
	}

	template, err := loadTemplate(opts.TemplatePath)
	if err != nil {
		return nil, err
	}
	table, err := loadTable(opts.RowsPaths)
	if err != nil {
		return nil, err
	}

	batch := generator.GenerateAll(template, table.Rows(), generator.Options{
		Pattern:         opts.Pattern,
		Folder:          opts.Folder,
		FallbackPattern: opts.FallbackPattern,
	})

	result := &GenerateResult{
		Pages:    batch.Pages,
		Warnings: batch.Warnings,
		Rows:     table.Len(),
		Hash:     HashPages(batch.Pages),
		Tree:     filetree.BuildTree(pageFiles(opts.ProjectID, batch.Pages)),
	}

	if opts.OutputDir != "" {
		overwrite, err := confirmOverwrite(opts, batch.Pages)
		if err != nil {
			return nil, err
		}
		writeResult, err := generator.WritePages(ctx, generator.NewFileWriter(0), batch.Pages, generator.WriteOptions{
			OutputDir: opts.OutputDir,
			Overwrite: overwrite,
			DryRun:    opts.DryRun,
		})
		if err != nil {
			return nil, NewWriteError("failed to write pages", err)
		}
		result.Write = writeResult
	}

	if opts.StorePath != "" && !opts.DryRun {
		files, err := savePages(ctx, opts.StorePath, opts.ProjectID, batch.Pages)
		if err != nil {
			return nil, err
		}
		result.Stored = len(batch.Pages)
		result.Tree = filetree.BuildTree(files)
	}

	debug.Debug("[app] Generate workflow completed: pages=%d, warnings=%d", len(result.Pages), len(result.Warnings))
	debug.DebugDuration("generate", start)
	return result, nil
}

func validateGenerateOptions(opts GenerateOptions) error {
	if opts.TemplatePath == "" {
		return NewValidationError("template path cannot be empty", nil)
	}
	if len(opts.RowsPaths) == 0 {
		return NewValidationError("at least one rows file is required", nil)
	}
	if opts.StorePath != "" && opts.ProjectID == "" {
		return NewValidationError("project id is required when saving to the store", nil)
	}
	return nil
}

func confirmOverwrite(opts GenerateOptions, pages []model.GeneratedPage) (bool, error) {
	if opts.Overwrite || opts.DryRun || opts.ConfirmOverwrite == nil {
		return opts.Overwrite, nil
	}

	var existing []string
	for _, page := range pages {
		path, err := generator.OutputPath(opts.OutputDir, page.FilePath)
		if err != nil {
			continue
		}
		if _, err := os.Stat(path); err == nil {
			existing = append(existing, path)
		}
	}
	if len(existing) == 0 {
		return false, nil
	}

	ok, err := opts.ConfirmOverwrite(existing)
	if err != nil {
		return false, NewValidationError("overwrite confirmation failed", err)
	}
	debug.Debug("[app] Overwrite of %d existing file(s) confirmed: %v", len(existing), ok)
	return ok, nil
}

func pageFiles(projectID string, pages []model.GeneratedPage) []model.ProjectFile {
	files := make([]model.ProjectFile, 0, len(pages))
	for _, page := range pages {
		files = append(files, model.ProjectFileFromPage(projectID, page))
	}
	return files
}

// savePages upserts pages into the store in one transaction and returns
// every file the project holds afterwards.
func savePages(ctx context.Context, storePath, projectID string, pages []model.GeneratedPage) ([]model.ProjectFile, error) {
	s, err := store.Open(ctx, storePath)
	if err != nil {
		return nil, NewStoreError("failed to open store", err)
	}
	defer s.Close()

	if err := s.UpsertFiles(ctx, pageFiles(projectID, pages)); err != nil {
		return nil, NewStoreError("failed to save pages", err)
	}
	debug.Debug("[app] Saved %d page(s) to project %s", len(pages), projectID)

	files, err := s.ListFiles(ctx, projectID)
	if err != nil {
		return nil, NewStoreError("failed to list project files", err)
	}
	return files, nil
}
