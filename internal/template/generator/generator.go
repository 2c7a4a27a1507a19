// Package generator multiplies one template into many pages, one per variation row.
package generator

import (
	"github.com/tacogips/pagegen/internal/template/model"
	"github.com/tacogips/pagegen/internal/template/scanner"
)

// Options configures how pages are named and placed.
type Options struct {
	// Pattern computes each page's file name, e.g. "page-{city}.html".
	Pattern string

	// Folder is prepended to every file name. Empty means project root.
	Folder string

	// FallbackPattern names pages whose Pattern resolves to nothing.
	// Defaults to DefaultFallbackPattern.
	FallbackPattern string
}

// Rendered is a generated page plus what the substitution noticed on the way.
type Rendered struct {
	Page model.GeneratedPage

	// MissingTags are template or pattern tags the row has no value for,
	// in order of first occurrence.
	MissingTags []string

	// UsedFallback reports whether the page was named by FallbackPattern.
	UsedFallback bool
}

// Generate applies row to template and resolves the page's output path.
// index is the 0-based position of the row in its table.
//
// Missing values are substituted with the empty string and never fail.
// The only error is a nil row.
func Generate(template string, row *model.Row, index int, opts Options) (*model.GeneratedPage, error) {
	r, err := Render(template, row, index, opts)
	if err != nil {
		return nil, err
	}
	return &r.Page, nil
}

// Render is Generate with the substitution details the batch generator reports.
func Render(template string, row *model.Row, index int, opts Options) (*Rendered, error) {
	if row == nil {
		return nil, newGeneratorError(GeneratorInvalidRow, "row is nil", "", nil)
	}

	content := scanner.Replace(template, row.Value)
	fileName, fallback := ResolveFileName(opts.Pattern, opts.FallbackPattern, row, index)

	return &Rendered{
		Page: model.GeneratedPage{
			FileName: fileName,
			FilePath: JoinPath(opts.Folder, fileName),
			Content:  content,
			Row:      index + 1,
		},
		MissingTags:  missingTags(row, scanner.Tags(template), scanner.Tags(opts.Pattern)),
		UsedFallback: fallback,
	}, nil
}

func missingTags(row *model.Row, tagLists ...[]string) []string {
	seen := make(map[string]struct{})
	var missing []string
	for _, tags := range tagLists {
		for _, tag := range tags {
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			if !row.Has(tag) {
				missing = append(missing, tag)
			}
		}
	}
	return missing
}
