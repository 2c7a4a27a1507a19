package generator

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/tacogips/pagegen/internal/debug"
	"github.com/tacogips/pagegen/internal/template/model"
	"github.com/tacogips/pagegen/internal/template/scanner"
)

// IndexTag is the tag a fallback pattern uses for the 1-based row number.
const IndexTag = "index"

// DefaultFallbackPattern names a page whose output pattern resolves to nothing.
const DefaultFallbackPattern = "page-{index}.html"

// ResolveFileName substitutes row values into pattern. When the result is
// blank it resolves fallback instead, where {index} is index+1 and other tags
// come from the row. The second return value reports whether the fallback was used.
func ResolveFileName(pattern, fallback string, row *model.Row, index int) (string, bool) {
	name := scanner.Replace(pattern, row.Value)
	if strings.TrimSpace(name) != "" {
		return name, false
	}

	if strings.TrimSpace(fallback) == "" {
		fallback = DefaultFallbackPattern
	}
	number := strconv.Itoa(index + 1)
	name = scanner.Replace(fallback, func(tag string) string {
		if tag == IndexTag {
			return number
		}
		return row.Value(tag)
	})
	if strings.TrimSpace(name) == "" {
		// A fallback made only of blank tags still has to name something.
		name = scanner.Replace(DefaultFallbackPattern, func(string) string { return number })
	}

	debug.Debug("[generator] ResolveFileName: pattern %q resolved empty for row %d, using %q", pattern, index+1, name)
	return name, true
}

// JoinPath prefixes fileName with folder. The folder is trimmed of leading and
// trailing separators; an empty folder leaves fileName unchanged.
func JoinPath(folder, fileName string) string {
	folder = strings.Trim(folder, "/")
	if folder == "" {
		return fileName
	}
	return folder + "/" + fileName
}

// OutputPath maps a generated page path to a location under outputDir.
// Returns an error if the resulting path would be absolute, escape outputDir
// or name outputDir itself.
func OutputPath(outputDir, filePath string) (string, error) {
	if filepath.IsAbs(filePath) || strings.HasPrefix(filePath, "/") {
		return "", newGeneratorError(GeneratorPathError, "page path is absolute", filePath, nil)
	}

	cleaned := filepath.Clean(filepath.FromSlash(filePath))
	if cleaned == "." {
		return "", newGeneratorError(GeneratorPathError, "page path resolves to the output directory", filePath, nil)
	}
	if cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return "", newGeneratorError(GeneratorPathError, "page path escapes the output directory", filePath, nil)
	}

	return filepath.Join(outputDir, cleaned), nil
}
