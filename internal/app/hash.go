package app

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/tacogips/pagegen/internal/template/model"
)

// HashPages calculates a SHA256 fingerprint of a generation run.
// Pages are hashed in the order given, which GenerateAll makes deterministic.
// Null byte separators between path and content, and between pages, keep
// different page sets from colliding.
func HashPages(pages []model.GeneratedPage) string {
	if len(pages) == 0 {
		return ""
	}

	h := sha256.New()

	for _, page := range pages {
		h.Write([]byte(page.FilePath))
		h.Write([]byte("\x00"))
		h.Write([]byte(page.Content))
		h.Write([]byte("\x00"))
	}

	return hex.EncodeToString(h.Sum(nil))
}
