package project

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, root, rel string, content []byte) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, content, 0644))
}

func TestLoadDir(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "index.html", []byte("<h1>{title}</h1>"))
	writeFile(t, root, "pages/recife.html", []byte("<p>Recife</p>"))
	writeFile(t, root, "css/site.css", []byte("body {}"))
	writeFile(t, root, "img/logo.png", []byte("png"))
	writeFile(t, root, "notes.txt.swp", []byte("swap"))
	writeFile(t, root, ".pagegen/config.yaml", []byte("project: {}"))
	writeFile(t, root, "data.bin", []byte{0x00, 0x01})

	files, err := LoadDir(context.Background(), root, LoadOptions{
		ProjectID:        "p1",
		IgnorePatterns:   []string{"*.swp"},
		BinaryExtensions: []string{".png"},
	})
	require.NoError(t, err)

	var paths []string
	for _, f := range files {
		paths = append(paths, f.FilePath)
		assert.Equal(t, "p1", f.ProjectID)
	}
	assert.ElementsMatch(t, []string{"index.html", "pages/recife.html", "css/site.css"}, paths)

	for _, f := range files {
		if f.FilePath == "pages/recife.html" {
			assert.Equal(t, "recife.html", f.FileName)
			assert.Equal(t, "html", f.FileType)
			assert.Equal(t, "<p>Recife</p>", f.Content)
		}
		if f.FilePath == "css/site.css" {
			assert.Equal(t, "css", f.FileType)
		}
	}
}

func TestLoadDirIgnoresDirectories(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "node_modules/lib/index.js", []byte("x"))
	writeFile(t, root, "a.html", []byte("a"))

	files, err := LoadDir(context.Background(), root, LoadOptions{IgnorePatterns: []string{"node_modules"}})
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "a.html", files[0].FilePath)
}

func TestLoadDirErrors(t *testing.T) {
	root := t.TempDir()

	_, err := LoadDir(context.Background(), filepath.Join(root, "missing"), LoadOptions{})
	var projErr *ProjectError
	require.True(t, errors.As(err, &projErr))
	assert.Equal(t, ProjectNotFound, projErr.Type)

	writeFile(t, root, "file.html", []byte("x"))
	_, err = LoadDir(context.Background(), filepath.Join(root, "file.html"), LoadOptions{})
	require.True(t, errors.As(err, &projErr))
	assert.Equal(t, ProjectInvalid, projErr.Type)
}

func TestLoadDirCancelled(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.html", []byte("a"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := LoadDir(ctx, root, LoadOptions{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestShouldIgnoreFile(t *testing.T) {
	tests := []struct {
		path     string
		patterns []string
		want     bool
	}{
		{path: ".pagegen", want: true},
		{path: ".pagegen/pages.db", want: true},
		{path: ".pagegenx/file", want: false},
		{path: "dir/.DS_Store", patterns: []string{".DS_Store"}, want: true},
		{path: "dir/file.swp", patterns: []string{"*.swp"}, want: true},
		{path: "dir/file.html", patterns: []string{"*.swp"}, want: false},
		{path: "build/out.html", patterns: []string{"build/*"}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, ShouldIgnoreFile(tt.path, tt.patterns))
		})
	}
}

func TestMatchesPattern(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		pattern string
		want    bool
	}{
		{name: "full path", path: "build/out.html", pattern: "build/*.html", want: true},
		{name: "basename in subdir", path: "a/b/file.swp", pattern: "*.swp", want: true},
		{name: "basename at root", path: "file.swp", pattern: "*.swp", want: true},
		{name: "folder glob does not match basename", path: "a/out.html", pattern: "build/*", want: false},
		{name: "no match", path: "a/index.html", pattern: "*.swp", want: false},
		{name: "malformed pattern", path: "a/[x", pattern: "[", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchesPattern(tt.path, tt.pattern))
		})
	}
}

func TestIsBinary(t *testing.T) {
	assert.True(t, IsBinary("logo.PNG", []byte("x"), []string{".png"}))
	assert.True(t, IsBinary("blob", []byte{'a', 0x00}, nil))
	assert.False(t, IsBinary("index.html", []byte("<html>"), []string{".png"}))
	assert.False(t, IsBinary("empty.html", nil, nil))
}

func TestTemplateFile(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "t.html", []byte("\xef\xbb\xbf<h1>{city}</h1>"))

	content, err := TemplateFile(filepath.Join(root, "t.html"))
	require.NoError(t, err)
	assert.Equal(t, "<h1>{city}</h1>", content)

	_, err = TemplateFile(filepath.Join(root, "missing.html"))
	var projErr *ProjectError
	require.True(t, errors.As(err, &projErr))
	assert.Equal(t, ProjectNotFound, projErr.Type)
}
