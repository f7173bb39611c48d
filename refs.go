// SPDX-License-Identifier: MIT
// Copyright (c) 2026 mdocgen
// Source: github.com/mdocgen/schemamd

package schemamd

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// RefName derives the short display name of a $ref string. A reference with
// a fragment ("common.yaml#/defs/Foo") names the last slash segment of the
// fragment ("Foo"). A plain path ("common.yaml") names the second-to-last
// dot segment ("common"); a path without dots is returned unchanged.
func RefName(ref string) string {
	parts := strings.Split(ref, "#")
	if len(parts) == 1 {
		segments := strings.Split(parts[0], ".")
		if len(segments) < 2 {
			return parts[0]
		}

		return segments[len(segments)-2]
	}

	fragment := parts[len(parts)-1]
	segments := strings.Split(fragment, "/")
	return segments[len(segments)-1]
}

// HeadingAnchor converts heading or tag text into a markdown anchor slug:
// lowercase, diacritics folded away, runs of separators and punctuation
// collapsed into single dashes.
func HeadingAnchor(value string) string {
	trimmed := strings.TrimSpace(strings.ToLower(value))
	if trimmed == "" {
		return ""
	}

	folded := norm.NFKD.String(trimmed)

	var out strings.Builder
	out.Grow(len(folded))

	lastDash := false
	for _, r := range folded {
		switch {
		case unicode.Is(unicode.Mn, r):
			// Combining marks left over from the NFKD fold.
		case unicode.IsLetter(r), unicode.IsDigit(r):
			out.WriteRune(r)
			lastDash = false
		default:
			if lastDash || out.Len() == 0 {
				continue
			}

			out.WriteByte('-')
			lastDash = true
		}
	}

	return strings.Trim(out.String(), "-")
}
