package app

import "github.com/tacogips/pagegen/internal/template/scanner"

// TagsResult lists the tags found in a template.
type TagsResult struct {
	// Tags are the distinct tag names in order of first occurrence.
	Tags []string
	// Matches are every occurrence with its byte offsets.
	Matches []scanner.Match
}

// Tags scans a template file for tags.
func Tags(templatePath string) (*TagsResult, error) {
	template, err := loadTemplate(templatePath)
	if err != nil {
		return nil, err
	}
	return &TagsResult{
		Tags:    scanner.Tags(template),
		Matches: scanner.Scan(template),
	}, nil
}
