package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRowLookup(t *testing.T) {
	row := NewRow(map[string]string{"city": "Recife", "empty": ""})

	assert.Equal(t, "Recife", row.Value("city"))
	assert.Equal(t, "", row.Value("missing"))

	v, ok := row.Lookup("empty")
	assert.True(t, ok)
	assert.Equal(t, "", v)
	assert.False(t, row.Has("missing"))
	assert.Equal(t, 2, row.Len())
}

func TestRowNil(t *testing.T) {
	var row *Row
	assert.Equal(t, "", row.Value("x"))
	assert.False(t, row.Has("x"))
	assert.Equal(t, 0, row.Len())
	assert.Nil(t, row.Keys())
	assert.Nil(t, row.Clone())
	assert.Empty(t, row.Map())
}

func TestRowKeysOrder(t *testing.T) {
	row := NewRow(map[string]string{"b": "2", "a": "1"})
	assert.Equal(t, []string{"a", "b"}, row.Keys())

	row.Set("c", "3")
	row.Set("a", "changed")
	assert.Equal(t, []string{"a", "b", "c"}, row.Keys())
	assert.Equal(t, "changed", row.Value("a"))

	row.Delete("b")
	row.Delete("missing")
	assert.Equal(t, []string{"a", "c"}, row.Keys())
}

func TestRowZeroValue(t *testing.T) {
	var row Row
	row.Set("x", "1")
	assert.Equal(t, "1", row.Value("x"))
}

func TestRowCloneIsIndependent(t *testing.T) {
	row := NewRow(map[string]string{"a": "1"})
	clone := row.Clone()
	clone.Set("a", "2")
	clone.Set("b", "3")

	assert.Equal(t, "1", row.Value("a"))
	assert.False(t, row.Has("b"))

	m := row.Map()
	m["a"] = "mutated"
	assert.Equal(t, "1", row.Value("a"))
}

func TestFileTypeOf(t *testing.T) {
	tests := map[string]string{
		"index.html":       "html",
		"style.CSS":        "css",
		"a/b/app.min.js":   "js",
		"README":           "html",
		"services/plumber": "html",
	}
	for name, want := range tests {
		assert.Equal(t, want, FileTypeOf(name), name)
	}
}

func TestProjectFileFromPage(t *testing.T) {
	page := GeneratedPage{
		FileName: "recife.html",
		FilePath: "servicos/recife.html",
		Content:  "<h1>Recife</h1>",
		Row:      1,
	}

	f := ProjectFileFromPage("site", page)
	assert.Equal(t, ProjectFile{
		ProjectID: "site",
		FilePath:  "servicos/recife.html",
		FileName:  "recife.html",
		FileType:  "html",
		Content:   "<h1>Recife</h1>",
	}, f)
}

func TestWarningString(t *testing.T) {
	w := NewMissingValueWarning(4, "bairro")
	assert.Equal(t, "row 4: tag `bairro` has no value, generated with blank", w.String())
	assert.Equal(t, WarnMissingValue, w.Kind)

	batch := NewNoTagsWarning()
	assert.Equal(t, 0, batch.Row)
	assert.NotContains(t, batch.String(), "row")

	collision := NewPathCollisionWarning(3, 1, "a.html")
	assert.Equal(t, "a.html", collision.Path)
	assert.Contains(t, collision.String(), "row 1")

	failed := NewRowFailedWarning(2, errors.New("row is nil"))
	require.Equal(t, WarnRowFailed, failed.Kind)
	assert.Equal(t, "row 2: row skipped: row is nil", failed.String())
}

func TestFileTreeItemIsFolder(t *testing.T) {
	assert.True(t, (&FileTreeItem{Type: ItemFolder}).IsFolder())
	assert.False(t, (&FileTreeItem{Type: ItemFile}).IsFolder())
}
