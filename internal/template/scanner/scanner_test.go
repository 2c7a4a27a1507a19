package scanner

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTags(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "single tag",
			input:    "<h1>{city}</h1>",
			expected: []string{"city"},
		},
		{
			name:     "ordered by first occurrence and deduplicated",
			input:    "{b} {a} {b} {c} {a}",
			expected: []string{"b", "a", "c"},
		},
		{
			name:     "underscore and digits",
			input:    "{_x} {bairro_2} {A1}",
			expected: []string{"_x", "bairro_2", "A1"},
		},
		{
			name:     "digit first is not a tag",
			input:    "{1invalid} {ok}",
			expected: []string{"ok"},
		},
		{
			name:     "symbols and spaces are not tags",
			input:    "{a-b} { a } {} {a.b} {a b}",
			expected: []string{},
		},
		{
			name:     "inner tag of double braces",
			input:    "{{name}}",
			expected: []string{"name"},
		},
		{
			name:     "outer braces around a tag are literal",
			input:    "{x{y}}",
			expected: []string{"y"},
		},
		{
			name:     "unmatched braces",
			input:    "{open and close} {also",
			expected: []string{},
		},
		{
			name:     "css and js blocks",
			input:    "body { color: red; } function f() {return 1} {title}",
			expected: []string{"title"},
		},
		{
			name:     "empty template",
			input:    "",
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Tags(tt.input))
		})
	}
}

func TestTagsIdempotent(t *testing.T) {
	input := "<title>{title}</title><p>{city} - {bairro}</p>{city}"
	first := Tags(input)
	second := Tags(input)
	assert.Equal(t, first, second)
	assert.Equal(t, "<title>{title}</title><p>{city} - {bairro}</p>{city}", input)
}

func TestScanPositions(t *testing.T) {
	input := "a{x}b{yy}"
	matches := Scan(input)
	require.Len(t, matches, 2)

	assert.Equal(t, Match{Name: "x", Start: 1, End: 4}, matches[0])
	assert.Equal(t, Match{Name: "yy", Start: 5, End: 9}, matches[1])

	for _, m := range matches {
		assert.Equal(t, m.RawText(), input[m.Start:m.End])
	}
}

func TestScanNoMatches(t *testing.T) {
	assert.Nil(t, Scan("plain text"))
}

func TestTagSetAndHasTag(t *testing.T) {
	input := "{a}{b}{a}"
	set := TagSet(input)
	assert.Len(t, set, 2)
	assert.Contains(t, set, "a")
	assert.Contains(t, set, "b")

	assert.True(t, HasTag(input, "b"))
	assert.False(t, HasTag(input, "c"))
	assert.False(t, HasTag("{1invalid}", "1invalid"))
}

func TestIsTagName(t *testing.T) {
	valid := []string{"a", "_", "city", "Bairro_2", "_x9"}
	invalid := []string{"", "1a", "a-b", "a b", "á", "{a}"}

	for _, name := range valid {
		assert.True(t, IsTagName(name), name)
	}
	for _, name := range invalid {
		assert.False(t, IsTagName(name), name)
	}
}

func TestReplace(t *testing.T) {
	values := map[string]string{"city": "Recife", "uf": "PE"}
	lookup := func(name string) string { return values[name] }

	t.Run("substitutes known and blanks unknown", func(t *testing.T) {
		got := Replace("{city}/{uf} {missing}!", lookup)
		assert.Equal(t, "Recife/PE !", got)
	})

	t.Run("malformed tags pass through", func(t *testing.T) {
		got := Replace("{1invalid} {city}", lookup)
		assert.Equal(t, "{1invalid} Recife", got)
	})

	t.Run("no recursive expansion", func(t *testing.T) {
		got := Replace("{a}", func(name string) string {
			if name == "a" {
				return "{b}"
			}
			return "expanded"
		})
		assert.Equal(t, "{b}", got)
	})

	t.Run("no tags returns input", func(t *testing.T) {
		assert.Equal(t, "<p>static</p>", Replace("<p>static</p>", lookup))
	})
}

func TestReplaceEmptyValuesRemovesTags(t *testing.T) {
	input := "<h1>{title}</h1>\n<p>{body} {1invalid} { x }</p>{{name}}"
	got := Replace(input, func(string) string { return "" })
	assert.Equal(t, "<h1></h1>\n<p> {1invalid} { x }</p>{}", got)
}

func TestReplaceOutputHasNoOriginalTags(t *testing.T) {
	input := "{title} and {city}"
	got := Replace(input, func(name string) string { return strings.ToUpper(name) })
	assert.Empty(t, Tags(got))
}
