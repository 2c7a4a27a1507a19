package project

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/tacogips/pagegen/internal/debug"
)

// StateDir is the directory pagegen keeps its configuration and store in.
const StateDir = ".pagegen"

// IsSpecialFile checks if a file belongs to pagegen's own state and must not
// be listed as a project file.
// Returns true for paths starting with ".pagegen/" or exactly ".pagegen".
func IsSpecialFile(path string) bool {
	// Normalize path separators
	path = filepath.ToSlash(path)

	return path == StateDir || strings.HasPrefix(path, StateDir+"/")
}

// ShouldIgnoreFile checks if a file should be left out of a project listing.
// Returns true if:
// - File is a special file (.pagegen/*)
// - File matches any of the ignore patterns (glob matching)
func ShouldIgnoreFile(path string, ignorePatterns []string) bool {
	// First check if it's a special file
	if IsSpecialFile(path) {
		debug.Debug("[project] Ignoring special file: %s", path)
		return true
	}

	// Check against ignore patterns
	for _, pattern := range ignorePatterns {
		if MatchesPattern(path, pattern) {
			debug.Debug("[project] Ignoring file: %s (matched pattern: %s)", path, pattern)
			return true
		}
	}

	return false
}

// MatchesPattern checks if a file path matches a glob pattern.
// Uses filepath.Match for glob matching.
func MatchesPattern(path, pattern string) bool {
	// Normalize path separators for consistent matching
	path = filepath.ToSlash(path)
	pattern = filepath.ToSlash(pattern)

	// Try matching the full path
	matched, err := filepath.Match(pattern, path)
	if err == nil && matched {
		return true
	}

	// Try matching just the filename
	filename := filepath.Base(path)
	matched, err = filepath.Match(pattern, filename)
	if err == nil && matched {
		return true
	}

	return false
}

// IsBinary reports whether a file should be left out of the project listing as binary.
// A file is binary if its extension is in binaryExtensions or its first
// 512 bytes contain a null byte.
func IsBinary(path string, content []byte, binaryExtensions []string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, binaryExt := range binaryExtensions {
		if ext == binaryExt {
			return true
		}
	}

	checkLen := len(content)
	if checkLen > 512 {
		checkLen = 512
	}
	return bytes.IndexByte(content[:checkLen], 0) != -1
}
