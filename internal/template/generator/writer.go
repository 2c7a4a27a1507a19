package generator

import (
	"context"
	"os"
	"path/filepath"

	"github.com/tacogips/pagegen/internal/debug"
	"github.com/tacogips/pagegen/internal/template/model"
)

// Writer writes files to the filesystem.
type Writer interface {
	// WriteFile writes content to a file with the specified permissions.
	WriteFile(path string, content []byte, mode os.FileMode) error

	// CreateDir creates a directory and any necessary parent directories.
	CreateDir(path string) error

	// Exists checks if a file or directory exists at the given path.
	Exists(path string) bool
}

// FileWriter implements Writer for filesystem operations.
type FileWriter struct {
	fileMode os.FileMode
}

// NewFileWriter creates a new FileWriter.
// A zero mode writes pages with 0644.
func NewFileWriter(mode os.FileMode) Writer {
	if mode == 0 {
		mode = 0644
	}
	return &FileWriter{
		fileMode: mode,
	}
}

// WriteFile writes content to a file with the specified permissions.
// Creates parent directories if they don't exist.
// Writes atomically using a temporary file and rename.
func (w *FileWriter) WriteFile(path string, content []byte, mode os.FileMode) error {
	debug.Debug("[generator] Writing file: %s (size: %d bytes, mode: %o)", path, len(content), mode)

	// Create parent directories if needed
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := w.CreateDir(dir); err != nil {
			return newGeneratorError(GeneratorWriteFailed,
				"failed to create parent directory",
				path,
				err)
		}
	}

	fileMode := mode
	if fileMode == 0 {
		fileMode = w.fileMode
	}
	// Owner must be able to rewrite the page on the next run
	fileMode |= 0600

	// Write atomically using temporary file
	tempFile := path + ".tmp"
	debug.Debug("[generator] Creating temporary file: %s", tempFile)
	f, err := os.OpenFile(tempFile, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, fileMode)
	if err != nil {
		return newGeneratorError(GeneratorWriteFailed,
			"failed to create temporary file",
			path,
			err)
	}

	// Write content
	_, err = f.Write(content)
	closeErr := f.Close()

	if err != nil {
		_ = os.Remove(tempFile) // Clean up temp file
		return newGeneratorError(GeneratorWriteFailed,
			"failed to write file content",
			path,
			err)
	}

	if closeErr != nil {
		_ = os.Remove(tempFile) // Clean up temp file
		return newGeneratorError(GeneratorWriteFailed,
			"failed to close file",
			path,
			closeErr)
	}

	// Atomic rename
	debug.Debug("[generator] Renaming temporary file: %s -> %s", tempFile, path)
	if err := os.Rename(tempFile, path); err != nil {
		_ = os.Remove(tempFile) // Clean up temp file
		return newGeneratorError(GeneratorWriteFailed,
			"failed to rename temporary file",
			path,
			err)
	}

	debug.Debug("[generator] File written successfully: %s", path)
	return nil
}

// CreateDir creates a directory and any necessary parent directories.
// Uses 0755 permissions for created directories.
func (w *FileWriter) CreateDir(path string) error {
	debug.Debug("[generator] Creating directory: %s", path)
	if err := os.MkdirAll(path, 0755); err != nil {
		return newGeneratorError(GeneratorWriteFailed,
			"failed to create directory",
			path,
			err)
	}
	debug.Debug("[generator] Directory created: %s", path)
	return nil
}

// Exists checks if a file or directory exists at the given path.
func (w *FileWriter) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// WriteOptions configures WritePages.
type WriteOptions struct {
	// OutputDir is the directory pages are written under.
	OutputDir string
	// Overwrite replaces existing files. If false, existing files are skipped.
	Overwrite bool
	// DryRun reports what would be written without touching the filesystem.
	DryRun bool
}

// WriteResult contains write statistics.
type WriteResult struct {
	// FilesCreated is the number of new files created.
	FilesCreated int
	// FilesSkipped is the number of files skipped (already exist).
	FilesSkipped int
	// FilesOverwritten is the number of existing files overwritten.
	FilesOverwritten int
	// Files contains the output paths of all pages processed.
	Files []string
	// Errors contains non-fatal per-page errors.
	Errors []error
}

// WritePages writes generated pages under opts.OutputDir.
// A page that cannot be written is recorded in Errors and the rest continue.
// Returns early with ctx.Err() when ctx is cancelled.
func WritePages(ctx context.Context, w Writer, pages []model.GeneratedPage, opts WriteOptions) (*WriteResult, error) {
	if opts.OutputDir == "" {
		return nil, newGeneratorError(GeneratorPathError, "output directory cannot be empty", "", nil)
	}

	result := &WriteResult{
		Files:  []string{},
		Errors: []error{},
	}

	if !opts.DryRun && !w.Exists(opts.OutputDir) {
		if err := w.CreateDir(opts.OutputDir); err != nil {
			return nil, err
		}
	}

	for _, page := range pages {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		outputPath, err := OutputPath(opts.OutputDir, page.FilePath)
		if err != nil {
			result.Errors = append(result.Errors, err)
			continue
		}
		result.Files = append(result.Files, outputPath)

		exists := w.Exists(outputPath)
		if exists && !opts.Overwrite {
			debug.Debug("[generator] Skipping existing file: %s", outputPath)
			result.FilesSkipped++
			continue
		}

		if opts.DryRun {
			debug.Debug("[generator] Dry run: would write %s (size: %d bytes)", outputPath, len(page.Content))
		} else if err := w.WriteFile(outputPath, []byte(page.Content), 0); err != nil {
			result.Errors = append(result.Errors, err)
			continue
		}

		if exists {
			result.FilesOverwritten++
		} else {
			result.FilesCreated++
		}
	}

	debug.Debug("[generator] WritePages complete: created=%d, overwritten=%d, skipped=%d, errors=%d",
		result.FilesCreated, result.FilesOverwritten, result.FilesSkipped, len(result.Errors))
	return result, nil
}
