package app

import (
	"sort"

	"github.com/tacogips/pagegen/internal/debug"
	"github.com/tacogips/pagegen/internal/template/model"
	"github.com/tacogips/pagegen/internal/template/scanner"
)

// CheckOptions holds options for checking a template against its rows.
type CheckOptions struct {
	// TemplatePath is the template file.
	TemplatePath string
	// RowsPaths are the variation rows files.
	RowsPaths []string
	// Pattern is the output pattern.
	Pattern string
}

// CheckResult holds the results of a template/rows check.
type CheckResult struct {
	// Tags are the template tags in order of first occurrence.
	Tags []string
	// PatternTags are the output pattern tags.
	PatternTags []string
	// Columns are the tags the rows supply, in order of first appearance.
	Columns []string
	// MissingColumns are template or pattern tags no row supplies, sorted.
	MissingColumns []string
	// UnusedColumns are columns neither the template nor the pattern uses, sorted.
	UnusedColumns []string
	// Rows is the number of rows checked.
	Rows int
	// Warnings lists rows that cannot name their page from the pattern.
	Warnings []model.Warning
}

// Check compares the tags of a template and pattern with the columns of its
// rows without generating anything.
func Check(opts CheckOptions) (*CheckResult, error) {
	debug.DebugSection("[app] Check workflow start")

	template, err := loadTemplate(opts.TemplatePath)
	if err != nil {
		return nil, err
	}
	table, err := loadTable(opts.RowsPaths)
	if err != nil {
		return nil, err
	}

	result := &CheckResult{
		Tags:           scanner.Tags(template),
		PatternTags:    scanner.Tags(opts.Pattern),
		Columns:        table.Columns(),
		MissingColumns: []string{},
		UnusedColumns:  []string{},
		Rows:           table.Len(),
		Warnings:       table.Validate(opts.Pattern),
	}

	used := scanner.TagSet(template)
	for tag := range scanner.TagSet(opts.Pattern) {
		used[tag] = struct{}{}
	}
	columns := make(map[string]struct{}, len(result.Columns))
	for _, c := range result.Columns {
		columns[c] = struct{}{}
		if _, ok := used[c]; !ok {
			result.UnusedColumns = append(result.UnusedColumns, c)
		}
	}
	for tag := range used {
		if _, ok := columns[tag]; !ok {
			result.MissingColumns = append(result.MissingColumns, tag)
		}
	}
	sort.Strings(result.MissingColumns)
	sort.Strings(result.UnusedColumns)

	debug.Debug("[app] Check completed: tags=%d, columns=%d, missing=%d, unused=%d",
		len(result.Tags), len(result.Columns), len(result.MissingColumns), len(result.UnusedColumns))
	return result, nil
}
