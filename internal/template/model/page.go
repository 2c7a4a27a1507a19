package model

import (
	"path"
	"strings"
)

// DefaultFileType is used for files whose name carries no extension.
const DefaultFileType = "html"

// GeneratedPage is the result of applying one row to a template.
type GeneratedPage struct {
	// FileName is the resolved output pattern.
	FileName string `json:"fileName"`
	// FilePath is FileName prefixed with the output folder, if any.
	FilePath string `json:"filePath"`
	// Content is the substituted template.
	Content string `json:"content"`
	// Row is the 1-based number of the row that produced the page.
	Row int `json:"row"`
}

// ProjectFile is the persisted form of a project file, generated or authored.
type ProjectFile struct {
	ID        string `json:"id"`
	ProjectID string `json:"project_id"`
	FilePath  string `json:"file_path"`
	FileName  string `json:"file_name"`
	FileType  string `json:"file_type"`
	Content   string `json:"content"`
}

// ProjectFileFromPage converts a generated page into a ProjectFile for projectID.
// The ID is left empty; the persistence layer assigns it.
func ProjectFileFromPage(projectID string, page GeneratedPage) ProjectFile {
	return ProjectFile{
		ProjectID: projectID,
		FilePath:  page.FilePath,
		FileName:  path.Base(page.FilePath),
		FileType:  FileTypeOf(page.FilePath),
		Content:   page.Content,
	}
}

// FileTypeOf returns the lower-cased extension of name without the dot,
// or DefaultFileType when name has none.
func FileTypeOf(name string) string {
	ext := strings.TrimPrefix(path.Ext(name), ".")
	if ext == "" {
		return DefaultFileType
	}
	return strings.ToLower(ext)
}
