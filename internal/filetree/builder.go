// Package filetree rebuilds the folder hierarchy implied by flat file paths.
package filetree

import (
	"sort"
	"strings"

	"github.com/tacogips/pagegen/internal/debug"
	"github.com/tacogips/pagegen/internal/template/model"
)

// Separator is the path segment separator of project file paths.
const Separator = "/"

// Segments splits p on Separator and drops empty segments, so leading,
// trailing and repeated separators never produce empty names.
func Segments(p string) []string {
	parts := strings.Split(p, Separator)
	out := parts[:0]
	for _, s := range parts {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Normalize returns p with empty segments removed.
func Normalize(p string) string {
	return strings.Join(Segments(p), Separator)
}

// ComparePaths orders paths segment by segment, lexicographically.
func ComparePaths(a, b []string) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := strings.Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	return len(a) - len(b)
}

type entry struct {
	file     model.ProjectFile
	segments []string
}

// BuildTree turns files into a forest of folders and files.
//
// Files are sorted by path segments first, so the result does not depend on
// input order. Every folder is created once per distinct prefix and only
// when some file lives under it. Each input file yields exactly one file
// node; a file whose path normalizes to nothing falls back to its FileName
// and is skipped if that is empty too.
func BuildTree(files []model.ProjectFile) []*model.FileTreeItem {
	entries := make([]entry, 0, len(files))
	for _, f := range files {
		segments := Segments(f.FilePath)
		if len(segments) == 0 {
			segments = Segments(f.FileName)
		}
		if len(segments) == 0 {
			debug.Debug("[filetree] Skipping file with empty path: id=%s", f.ID)
			continue
		}
		entries = append(entries, entry{file: f, segments: segments})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return ComparePaths(entries[i].segments, entries[j].segments) < 0
	})

	root := []*model.FileTreeItem{}
	folders := make(map[string]*model.FileTreeItem)

	for _, e := range entries {
		var parent *model.FileTreeItem
		for depth := 0; depth < len(e.segments)-1; depth++ {
			folderPath := strings.Join(e.segments[:depth+1], Separator)
			folder, ok := folders[folderPath]
			if !ok {
				folder = &model.FileTreeItem{
					Name:     e.segments[depth],
					Path:     folderPath,
					Type:     model.ItemFolder,
					Children: []*model.FileTreeItem{},
				}
				folders[folderPath] = folder
				if parent == nil {
					root = append(root, folder)
				} else {
					parent.Children = append(parent.Children, folder)
				}
			}
			parent = folder
		}

		fileType := e.file.FileType
		if fileType == "" {
			fileType = model.FileTypeOf(e.segments[len(e.segments)-1])
		}
		node := &model.FileTreeItem{
			Name:     e.segments[len(e.segments)-1],
			Path:     strings.Join(e.segments, Separator),
			Type:     model.ItemFile,
			FileType: fileType,
		}
		if parent == nil {
			root = append(root, node)
		} else {
			parent.Children = append(parent.Children, node)
		}
	}

	debug.Debug("[filetree] BuildTree: files=%d, folders=%d", len(entries), len(folders))
	return root
}

// Walk visits items depth-first, parents before children. Returning false
// from fn skips the item's children.
func Walk(items []*model.FileTreeItem, fn func(item *model.FileTreeItem, depth int) bool) {
	walk(items, 0, fn)
}

func walk(items []*model.FileTreeItem, depth int, fn func(*model.FileTreeItem, int) bool) {
	for _, item := range items {
		if fn(item, depth) && len(item.Children) > 0 {
			walk(item.Children, depth+1, fn)
		}
	}
}

// Count returns the number of folder and file nodes in items.
func Count(items []*model.FileTreeItem) (folders, files int) {
	Walk(items, func(item *model.FileTreeItem, _ int) bool {
		if item.IsFolder() {
			folders++
		} else {
			files++
		}
		return true
	})
	return folders, files
}

// Find returns the node at path p, or nil.
func Find(items []*model.FileTreeItem, p string) *model.FileTreeItem {
	p = Normalize(p)
	var found *model.FileTreeItem
	Walk(items, func(item *model.FileTreeItem, _ int) bool {
		if found != nil {
			return false
		}
		if item.Path == p {
			found = item
			return false
		}
		return strings.HasPrefix(p, item.Path+Separator)
	})
	return found
}
