package model

import "fmt"

// WarningKind categorizes a non-fatal data-quality issue found during generation.
type WarningKind string

const (
	// WarnMissingValue means a row has no value for a tag; it was substituted with "".
	WarnMissingValue WarningKind = "missing_value"
	// WarnUnusedValue means a row supplies a value for a tag the template and pattern never use.
	WarnUnusedValue WarningKind = "unused_value"
	// WarnPathCollision means a row resolved to the path of an earlier page and replaced it.
	WarnPathCollision WarningKind = "path_collision"
	// WarnEmptyPattern means the output pattern resolved to nothing and the fallback name was used.
	WarnEmptyPattern WarningKind = "empty_pattern"
	// WarnNoTags means the template contains no tags at all.
	WarnNoTags WarningKind = "no_tags"
	// WarnRowFailed means a row could not be processed and produced no page.
	WarnRowFailed WarningKind = "row_failed"
)

// Warning is a non-fatal issue attached to a generation run.
type Warning struct {
	Kind WarningKind `json:"kind"`
	// Row is the 1-based row number, 0 for batch-level warnings.
	Row int `json:"row"`
	// Tag is the tag involved, if any.
	Tag string `json:"tag,omitempty"`
	// Path is the output path involved, if any.
	Path string `json:"path,omitempty"`
	// Message is the human-readable description.
	Message string `json:"message"`
}

// String renders the warning with its row prefix.
func (w Warning) String() string {
	if w.Row > 0 {
		return fmt.Sprintf("row %d: %s", w.Row, w.Message)
	}
	return w.Message
}

// NewMissingValueWarning creates a missing_value warning for row and tag.
func NewMissingValueWarning(row int, tag string) Warning {
	return Warning{
		Kind:    WarnMissingValue,
		Row:     row,
		Tag:     tag,
		Message: fmt.Sprintf("tag `%s` has no value, generated with blank", tag),
	}
}

// NewUnusedValueWarning creates an unused_value warning for row and tag.
func NewUnusedValueWarning(row int, tag string) Warning {
	return Warning{
		Kind:    WarnUnusedValue,
		Row:     row,
		Tag:     tag,
		Message: fmt.Sprintf("tag `%s` is not used by the template, value ignored", tag),
	}
}

// NewPathCollisionWarning creates a path_collision warning.
func NewPathCollisionWarning(row, previousRow int, filePath string) Warning {
	return Warning{
		Kind:    WarnPathCollision,
		Row:     row,
		Path:    filePath,
		Message: fmt.Sprintf("output path %q already produced by row %d, replacing it", filePath, previousRow),
	}
}

// NewEmptyPatternWarning creates an empty_pattern warning.
func NewEmptyPatternWarning(row int, fileName string) Warning {
	return Warning{
		Kind:    WarnEmptyPattern,
		Row:     row,
		Path:    fileName,
		Message: fmt.Sprintf("output pattern resolved to an empty name, using %q", fileName),
	}
}

// NewNoTagsWarning creates the batch-level no_tags warning.
func NewNoTagsWarning() Warning {
	return Warning{
		Kind:    WarnNoTags,
		Message: "template contains no tags, every page gets the same content",
	}
}

// NewRowFailedWarning creates a row_failed warning from err.
func NewRowFailedWarning(row int, err error) Warning {
	return Warning{
		Kind:    WarnRowFailed,
		Row:     row,
		Message: fmt.Sprintf("row skipped: %v", err),
	}
}
