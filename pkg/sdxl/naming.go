package sdxl

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"regexp"
	"strings"
)

var (
	punctRe       = regexp.MustCompile(`[,.'"]`)
	nonAlnumRe    = regexp.MustCompile(`[^A-Za-z0-9]`)
	underscoresRe = regexp.MustCompile(`_{2,}`)
)

// NormalizeString reduces a prompt string to a filename-safe slug:
// commas, periods and quotes are stripped, every other non-alphanumeric
// character becomes an underscore, underscore runs collapse to one, and
// leading/trailing underscores are trimmed. The result contains only
// [A-Za-z0-9_] and normalizing it again is a no-op.
func NormalizeString(s string) string {
	s = punctRe.ReplaceAllString(s, "")
	s = nonAlnumRe.ReplaceAllString(s, "_")
	s = underscoresRe.ReplaceAllString(s, "_")
	return strings.Trim(s, "_")
}

// PromptSlug joins the normalized prompt texts with underscores, in
// prompt order.
func PromptSlug(prompts []PromptEntry) string {
	parts := make([]string, len(prompts))
	for i, p := range prompts {
		parts[i] = NormalizeString(p.Text)
	}
	return strings.Join(parts, "_")
}

// Fingerprint returns the first 8 hex characters of the SHA-256 digest
// of the serialized request body.
func Fingerprint(body []byte) string {
	sum := sha256.Sum256(body)
	return hex.EncodeToString(sum[:])[:8]
}

// BaseName composes the shared basename for an artifact's output files.
// The first artifact gets no ordinal suffix; later ones get _1, _2, ...
func BaseName(slug, fingerprint string, index int) string {
	suffix := ""
	if index > 0 {
		suffix = fmt.Sprintf("_%d", index)
	}
	return fmt.Sprintf("%s%s_%s", slug, suffix, fingerprint)
}
