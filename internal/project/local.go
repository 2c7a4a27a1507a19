// Package project reads an on-disk project directory into project files.
package project

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/tacogips/pagegen/internal/debug"
	"github.com/tacogips/pagegen/internal/template/model"
)

// LoadOptions configures LoadDir.
type LoadOptions struct {
	// ProjectID is stamped on every loaded file.
	ProjectID string
	// IgnorePatterns are glob patterns of paths to skip.
	IgnorePatterns []string
	// BinaryExtensions are extensions whose files are skipped.
	BinaryExtensions []string
}

// LoadDir reads every text file under root as a ProjectFile.
// File paths are relative to root and use "/" separators; the file path
// doubles as the ID. Special, ignored and binary files are skipped, as are
// symbolic links.
func LoadDir(ctx context.Context, root string, opts LoadOptions) ([]model.ProjectFile, error) {
	debug.Debug("[project] LoadDir: root=%s", root)

	info, err := os.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, newProjectError(ProjectNotFound, root, "project directory not found", err)
		}
		return nil, newProjectError(ProjectReadFailed, root, "failed to stat project directory", err)
	}
	if !info.IsDir() {
		return nil, newProjectError(ProjectInvalid, root, "path must be a directory", nil)
	}

	files := []model.ProjectFile{}
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return newProjectError(ProjectReadFailed, path, "failed to walk project", walkErr)
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return newProjectError(ProjectReadFailed, path, "failed to compute relative path", err)
		}
		if rel == "." {
			return nil
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if ShouldIgnoreFile(rel, opts.IgnorePatterns) {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			debug.Debug("[project] Skipping non-regular file: %s", rel)
			return nil
		}
		if ShouldIgnoreFile(rel, opts.IgnorePatterns) {
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return newProjectError(ProjectReadFailed, path, "failed to read file", err)
		}
		if IsBinary(rel, content, opts.BinaryExtensions) {
			debug.Debug("[project] Skipping binary file: %s", rel)
			return nil
		}

		files = append(files, model.ProjectFile{
			ID:        rel,
			ProjectID: opts.ProjectID,
			FilePath:  rel,
			FileName:  filepath.Base(rel),
			FileType:  model.FileTypeOf(rel),
			Content:   string(content),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	debug.Debug("[project] LoadDir: loaded %d file(s)", len(files))
	return files, nil
}

// TemplateFile returns the content of a template file from disk.
func TemplateFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", newProjectError(ProjectNotFound, path, "template file not found", err)
		}
		return "", newProjectError(ProjectReadFailed, path, "failed to read template file", err)
	}
	return strings.TrimPrefix(string(data), "\ufeff"), nil
}
