package generator

import (
	"time"

	"github.com/tacogips/pagegen/internal/debug"
	"github.com/tacogips/pagegen/internal/template/model"
	"github.com/tacogips/pagegen/internal/template/scanner"
)

// BatchResult holds the pages of one generation run and its warnings.
type BatchResult struct {
	// Pages in row order, deduplicated by FilePath.
	Pages []model.GeneratedPage

	// Warnings in the order they were found.
	Warnings []model.Warning
}

// HasWarnings reports whether the run produced any warning.
func (r *BatchResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// WarningsOfKind returns the warnings of one kind.
func (r *BatchResult) WarningsOfKind(kind model.WarningKind) []model.Warning {
	var out []model.Warning
	for _, w := range r.Warnings {
		if w.Kind == kind {
			out = append(out, w)
		}
	}
	return out
}

// GenerateAll applies every row to template in table order.
//
// A single row never aborts the batch: each row yields either a page or a
// row_failed warning. Pages are merged by FilePath, last write wins: a later
// page takes the slot of the earlier one it collides with and a
// path_collision warning is recorded. GenerateAll holds no shared state and
// is safe to call concurrently.
func GenerateAll(template string, rows []*model.Row, opts Options) *BatchResult {
	start := time.Now()
	logger := debug.Logger("generator")

	result := &BatchResult{
		Pages:    make([]model.GeneratedPage, 0, len(rows)),
		Warnings: []model.Warning{},
	}

	templateTags := scanner.TagSet(template)
	patternTags := scanner.TagSet(opts.Pattern)
	debug.Debug("[generator] GenerateAll: rows=%d, templateTags=%d, patternTags=%d, pattern=%q, folder=%q",
		len(rows), len(templateTags), len(patternTags), opts.Pattern, opts.Folder)

	if len(templateTags) == 0 {
		result.Warnings = append(result.Warnings, model.NewNoTagsWarning())
	}

	// slot maps a FilePath to its index in result.Pages.
	slot := make(map[string]int, len(rows))

	for i, row := range rows {
		number := i + 1

		rendered, err := Render(template, row, i, opts)
		if err != nil {
			logger.Debug().Int("row", number).Err(err).Msg("row skipped")
			result.Warnings = append(result.Warnings, model.NewRowFailedWarning(number, err))
			continue
		}

		for _, tag := range rendered.MissingTags {
			result.Warnings = append(result.Warnings, model.NewMissingValueWarning(number, tag))
		}
		for _, key := range row.Keys() {
			_, inTemplate := templateTags[key]
			_, inPattern := patternTags[key]
			if !inTemplate && !inPattern {
				result.Warnings = append(result.Warnings, model.NewUnusedValueWarning(number, key))
			}
		}
		if rendered.UsedFallback {
			result.Warnings = append(result.Warnings, model.NewEmptyPatternWarning(number, rendered.Page.FileName))
		}

		page := rendered.Page
		if idx, ok := slot[page.FilePath]; ok {
			previous := result.Pages[idx].Row
			logger.Debug().Int("row", number).Int("previous", previous).Str("path", page.FilePath).Msg("path collision")
			result.Warnings = append(result.Warnings, model.NewPathCollisionWarning(number, previous, page.FilePath))
			result.Pages[idx] = page
			continue
		}
		slot[page.FilePath] = len(result.Pages)
		result.Pages = append(result.Pages, page)
	}

	debug.Debug("[generator] GenerateAll complete: pages=%d, warnings=%d", len(result.Pages), len(result.Warnings))
	debug.DebugDuration("generate-all", start)
	return result
}
