// Package scanner finds {tag} placeholders in templates and output patterns.
package scanner

import (
	"regexp"
)

// Match is one tag occurrence in a template.
type Match struct {
	// Name is the tag identifier without braces.
	Name string
	// Start is the byte index of the opening brace.
	Start int
	// End is the byte index just past the closing brace.
	End int
}

// RawText returns the matched text including braces.
func (m Match) RawText() string {
	return "{" + m.Name + "}"
}

// tagPattern matches {identifier}. Anything else between braces is literal text.
var tagPattern = regexp.MustCompile(`\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// Scan returns every tag occurrence in input, left to right.
func Scan(input string) []Match {
	locs := tagPattern.FindAllStringSubmatchIndex(input, -1)
	if len(locs) == 0 {
		return nil
	}

	matches := make([]Match, 0, len(locs))
	for _, loc := range locs {
		// loc[0], loc[1]: full match; loc[2], loc[3]: identifier group
		matches = append(matches, Match{
			Name:  input[loc[2]:loc[3]],
			Start: loc[0],
			End:   loc[1],
		})
	}
	return matches
}

// Tags returns the distinct tag names in input, ordered by first occurrence.
func Tags(input string) []string {
	matches := Scan(input)
	if len(matches) == 0 {
		return []string{}
	}

	seen := make(map[string]struct{}, len(matches))
	tags := make([]string, 0, len(matches))
	for _, m := range matches {
		if _, ok := seen[m.Name]; ok {
			continue
		}
		seen[m.Name] = struct{}{}
		tags = append(tags, m.Name)
	}
	return tags
}

// TagSet returns the distinct tag names in input as a set.
func TagSet(input string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, m := range Scan(input) {
		set[m.Name] = struct{}{}
	}
	return set
}

// HasTag reports whether input references the tag name.
func HasTag(input, name string) bool {
	for _, m := range Scan(input) {
		if m.Name == name {
			return true
		}
	}
	return false
}

// IsTagName reports whether name is a valid tag identifier.
func IsTagName(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c == '_', c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z':
		case c >= '0' && c <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}

// Replace substitutes every tag in input with value(name) in a single pass.
// Substituted text is never rescanned, so values that look like tags stay literal.
func Replace(input string, value func(name string) string) string {
	matches := Scan(input)
	if len(matches) == 0 {
		return input
	}

	out := make([]byte, 0, len(input))
	last := 0
	for _, m := range matches {
		out = append(out, input[last:m.Start]...)
		out = append(out, value(m.Name)...)
		last = m.End
	}
	out = append(out, input[last:]...)
	return string(out)
}
