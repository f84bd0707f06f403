package models

import "strings"

// SplitTags splits a free-text comma-separated field into trimmed tags.
// Empty segments are dropped; no deduplication or normalization is applied,
// matching how the fields are stored.
func SplitTags(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	parts := strings.Split(s, ",")
	tags := make([]string, 0, len(parts))

	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}

	return tags
}
