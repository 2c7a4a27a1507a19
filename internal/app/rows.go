package app

import (
	"github.com/tacogips/pagegen/internal/debug"
	"github.com/tacogips/pagegen/internal/project"
	"github.com/tacogips/pagegen/internal/template/variation"
)

// loadTemplate reads the template file.
func loadTemplate(path string) (string, error) {
	if path == "" {
		return "", NewValidationError("template path cannot be empty", nil)
	}
	template, err := project.TemplateFile(path)
	if err != nil {
		return "", NewTemplateLoadError("failed to load template", err)
	}
	debug.DebugValue("[app] Template size", len(template))
	return template, nil
}

// loadTable imports every rows file, in order, into one variation table.
func loadTable(paths []string) (*variation.Table, error) {
	table := variation.New()
	for _, path := range paths {
		rows, err := variation.LoadFile(path)
		if err != nil {
			return nil, NewRowsLoadError("failed to load rows from "+path, err)
		}
		debug.Debug("[app] Loaded %d row(s) from %s", len(rows), path)
		table.Import(rows, variation.ImportAppend)
	}
	return table, nil
}
