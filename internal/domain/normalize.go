package domain

import (
	"strings"
)

var umlautReplacer = strings.NewReplacer(
	"ä", "ae",
	"ö", "oe",
	"ü", "ue",
	"ß", "ss",
)

// NormalizeIDSegment prepares free text for use inside an identifier:
//   - converts to lowercase
//   - transliterates German umlauts and ß (ä→ae, ö→oe, ü→ue, ß→ss)
//   - replaces spaces with '-'
//   - drops every character outside [a-z0-9-]
func NormalizeIDSegment(text string) string {
	text = strings.ToLower(text)
	text = umlautReplacer.Replace(text)
	text = strings.ReplaceAll(text, " ", "-")

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// PartitionKey returns the store sharding key for a language pair.
func PartitionKey(source, target string) string {
	return strings.ToLower(source) + "-" + strings.ToLower(target) + "-vocabulary"
}
