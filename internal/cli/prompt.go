package cli

import (
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"

	"github.com/tacogips/pagegen/internal/template/scanner"
)

// suggestPattern proposes an output pattern from the template tags,
// preferring a tag that looks like a page slug.
func suggestPattern(tags []string) string {
	for _, preferred := range []string{"slug", "name", "city", "title"} {
		for _, tag := range tags {
			if strings.EqualFold(tag, preferred) {
				return "{" + tag + "}.html"
			}
		}
	}
	if len(tags) > 0 {
		return "{" + tags[0] + "}.html"
	}
	return ""
}

// validatePattern rejects patterns that would name every page the same.
func validatePattern(val interface{}) error {
	str, ok := val.(string)
	if !ok {
		return fmt.Errorf("expected string, got %T", val)
	}
	if strings.TrimSpace(str) == "" {
		return fmt.Errorf("pattern cannot be empty")
	}
	if len(scanner.Tags(str)) == 0 {
		return fmt.Errorf("pattern must contain at least one {tag}")
	}
	return nil
}

// promptPattern asks for the output pattern.
func promptPattern(tags []string) (string, error) {
	var pattern string
	prompt := &survey.Input{
		Message: "Output pattern:",
		Default: suggestPattern(tags),
		Help:    fmt.Sprintf("File name for each page; available tags: %s", strings.Join(tags, ", ")),
	}
	if err := survey.AskOne(prompt, &pattern, survey.WithValidator(validatePattern)); err != nil {
		return "", fmt.Errorf("prompt failed: %w", err)
	}
	return strings.TrimSpace(pattern), nil
}

// promptOverwrite asks whether existing files may be replaced.
func promptOverwrite(existing []string) (bool, error) {
	overwrite := false
	prompt := &survey.Confirm{
		Message: fmt.Sprintf("%s already exist. Overwrite?", plural(len(existing), "file")),
		Default: false,
		Help:    strings.Join(existing, "\n"),
	}
	if err := survey.AskOne(prompt, &overwrite); err != nil {
		return false, fmt.Errorf("prompt failed: %w", err)
	}
	return overwrite, nil
}
