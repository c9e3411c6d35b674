package models

import (
	"strings"

	"github.com/google/uuid"
)

// Slugify turns a display name into a lowercase URL-safe slug. Letters and
// digits are kept, runs of spaces, hyphens, underscores and punctuation
// collapse into a single hyphen. "C++" and "C#" keep a readable suffix so they
// do not collapse into "c".
func Slugify(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}

	replacer := strings.NewReplacer("++", "pp", "#", "sharp", "+", "plus", ".", "dot")
	value = replacer.Replace(strings.ToLower(value))

	var result strings.Builder
	pendingHyphen := false
	for _, r := range value {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingHyphen && result.Len() > 0 {
				result.WriteRune('-')
			}
			pendingHyphen = false
			result.WriteRune(r)
			continue
		}
		pendingHyphen = true
	}

	return result.String()
}

// IsSlug reports whether value is already a valid slug
func IsSlug(value string) bool {
	return value != "" && Slugify(value) == value
}

func ensureID(id *uuid.UUID) {
	if *id == uuid.Nil {
		*id = uuid.New()
	}
}
