// Package document turn a resume document into exportable text. Generation is
// pure: the same resume always yields byte-identical output and nothing here
// touches the network or the database.
package document

import (
	"strings"
	"time"
)

// date layouts accepted from the resume editor, most specific first
var dateLayouts = []string{"2006-01-02", "2006-01", time.RFC3339}

// FormatDate renders a resume date as "Mon YYYY". Unparseable or empty input
// renders as an empty string rather than failing the whole document.
func FormatDate(value string) string {
	if value == "" {
		return ""
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format("Jan 2006")
		}
	}
	return ""
}

// SplitBullets splits a free-text description on line breaks into one bullet
// per non-empty trimmed line.
func SplitBullets(description string) []string {
	bullets := []string{}
	for _, line := range strings.Split(description, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			bullets = append(bullets, line)
		}
	}
	return bullets
}

// stripScheme drops the https:// prefix for displayed link text
func stripScheme(link string) string {
	return strings.TrimPrefix(link, "https://")
}
