package scad

import "regexp"

// maxNameLen caps the label so long inputs cannot produce oversized geometry.
const maxNameLen = 20

var disallowed = regexp.MustCompile(`[^a-zA-Z0-9 _-]`)

// SanitizeName strips every character outside A-Z, a-z, 0-9, space,
// underscore and hyphen, then truncates to the first 20 characters. The
// allowed set deliberately excludes anything with structural meaning in the
// generated scene program, so the result is safe to embed as a string
// literal. An empty result is valid.
func SanitizeName(raw string) string {
	clean := disallowed.ReplaceAllString(raw, "")
	if len(clean) > maxNameLen {
		clean = clean[:maxNameLen]
	}
	return clean
}
