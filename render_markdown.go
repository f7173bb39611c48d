// SPDX-License-Identifier: MIT
// Copyright (c) 2026 mdocgen
// Source: github.com/mdocgen/schemamd

package schemamd

import (
	"strings"
	"unicode/utf8"
)

// orNone renders empty metadata values as explicit (none) marker.
func orNone(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return "(none)"
	}

	return value
}

// sanitizeText trims and squashes repeated whitespace in plain text fields.
func sanitizeText(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}

	return strings.Join(strings.Fields(text), " ")
}

// normalizeWrapWidth validates wrap width and falls back to default.
func normalizeWrapWidth(value int) int {
	if value <= 0 {
		return defaultWrapWidth
	}

	return value
}

// normalizeListMarker validates list marker and falls back to default.
func normalizeListMarker(value string) string {
	switch strings.TrimSpace(value) {
	case "*":
		return "*"
	case "-":
		return "-"
	default:
		return defaultListMarker
	}
}

// normalizeMaxNesting validates section nesting depth and falls back to default.
func normalizeMaxNesting(value int) int {
	if value <= 0 {
		return DefaultMaxNesting
	}

	return value
}

// formatDescription wraps plain description paragraphs to the requested
// width. Fenced code, headings, quotes, tables and list items pass through
// unwrapped; unordered list items are rewritten to the configured marker.
func formatDescription(text string, wrapWidth int, listMarker string) string {
	text = strings.TrimSpace(normalizeLineEndings(text))
	if text == "" {
		return ""
	}

	listMarker = normalizeListMarker(listMarker)

	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	paragraph := make([]string, 0, 4)
	inFence := false

	flush := func() {
		if len(paragraph) == 0 {
			return
		}

		out = append(out, wrapParagraph(strings.Join(paragraph, " "), wrapWidth)...)
		paragraph = paragraph[:0]
	}

	for _, rawLine := range lines {
		line := strings.TrimRight(rawLine, " \t")
		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(trimmed, "```") {
			flush()
			out = append(out, line)
			inFence = !inFence
			continue
		}

		if inFence {
			out = append(out, line)
			continue
		}

		if trimmed == "" {
			flush()
			if len(out) > 0 && out[len(out)-1] != "" {
				out = append(out, "")
			}

			continue
		}

		if structuredLine(trimmed) {
			flush()
			out = append(out, normalizeListItem(line, listMarker))
			continue
		}

		paragraph = append(paragraph, trimmed)
	}

	flush()
	return strings.Join(out, "\n")
}

// structuredLine reports whether a line must bypass paragraph wrapping.
func structuredLine(trimmed string) bool {
	for _, prefix := range []string{"#", ">", "- ", "* ", "+ ", "|", "---"} {
		if strings.HasPrefix(trimmed, prefix) {
			return true
		}
	}

	return false
}

// normalizeListItem rewrites unordered list markers to the configured one.
func normalizeListItem(line, listMarker string) string {
	trimmed := strings.TrimSpace(line)
	for _, prefix := range []string{"- ", "* ", "+ "} {
		if strings.HasPrefix(trimmed, prefix) {
			indent := line[:strings.Index(line, trimmed[:1])]
			return indent + listMarker + " " + strings.TrimSpace(trimmed[2:])
		}
	}

	return line
}

// wrapParagraph wraps one plain paragraph to max rune width.
func wrapParagraph(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	if width <= 0 {
		return []string{strings.Join(words, " ")}
	}

	out := make([]string, 0, 2)
	current := words[0]
	currentLen := utf8.RuneCountInString(current)

	for _, word := range words[1:] {
		wordLen := utf8.RuneCountInString(word)
		if currentLen+1+wordLen <= width {
			current += " " + word
			currentLen += 1 + wordLen
			continue
		}

		out = append(out, current)
		current = word
		currentLen = wordLen
	}

	out = append(out, current)
	return out
}

// normalizeLineEndings converts CRLF/CR to LF.
func normalizeLineEndings(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}

// normalizeMarkdownOutput collapses extra blank lines outside fenced blocks.
func normalizeMarkdownOutput(text string) string {
	lines := strings.Split(normalizeLineEndings(text), "\n")
	out := make([]string, 0, len(lines))

	inFence := false
	blank := false
	for _, rawLine := range lines {
		line := strings.TrimRight(rawLine, " \t")
		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(trimmed, "```") {
			inFence = !inFence
			out = append(out, line)
			blank = false
			continue
		}

		if !inFence && trimmed == "" {
			if !blank {
				out = append(out, "")
			}

			blank = true
			continue
		}

		blank = false
		out = append(out, line)
	}

	return strings.TrimRight(strings.Join(out, "\n"), "\n")
}

// ensureTrailingNewline guarantees exactly one trailing newline in output.
func ensureTrailingNewline(value string) string {
	return strings.TrimRight(value, "\n") + "\n"
}
