// SPDX-License-Identifier: MIT
// Copyright (c) 2026 mdocgen
// Source: github.com/mdocgen/schemamd

package schemamd

import (
	"strings"
	"unicode/utf8"
)

// inlineMaxLineLength is the rune budget for fragments embedded in prose.
const inlineMaxLineLength = 50

// blockListMarker starts block-level list items produced by fragments.
const blockListMarker = "- "

// Fragment is one rendered markdown piece for a schema facet. Inline reports
// whether the text is short enough to embed in a single line of surrounding
// prose; block fragments must be placed on their own lines.
type Fragment struct {
	Text   string
	Inline bool
}

// Anchors carries the rendering context for link-producing facet renderers.
// Anchor slug conventions belong to the caller assembling the document.
type Anchors struct {
	// Path identifies the schema node relative to the document root.
	Path string
	// TagPrefix prefixes anchors of sections generated for this document.
	TagPrefix string
	// RefTagPrefix prefixes anchors of referenced schemas documented elsewhere.
	RefTagPrefix string
}

// sectionAnchor builds the anchor slug for a generated section of this node.
func (anchors Anchors) sectionAnchor(suffix string) string {
	return HeadingAnchor(anchors.TagPrefix + "-" + anchors.Path + "-" + suffix)
}

// refAnchor builds the anchor slug for a referenced schema's section.
func (anchors Anchors) refAnchor(ref string) string {
	return HeadingAnchor(anchors.RefTagPrefix + "-" + ref)
}

// textCanBeInline reports whether text fits the inline budget on one line.
func textCanBeInline(text string) bool {
	return !strings.Contains(text, "\n") && utf8.RuneCountInString(text) <= inlineMaxLineLength
}

// makeCodeList renders string items either as an inline comma-separated list
// of code tokens, or as a block bullet list when the summed item length
// reaches the inline budget.
func makeCodeList(items []string) Fragment {
	total := 0
	for _, item := range items {
		total += utf8.RuneCountInString(item)
	}

	if total < inlineMaxLineLength {
		return Fragment{Text: commaCodeList(items), Inline: true}
	}

	return Fragment{Text: bulletCodeList(items), Inline: false}
}

// commaCodeList joins items as inline code tokens separated by commas.
func commaCodeList(items []string) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		parts = append(parts, codeToken(item))
	}

	return strings.Join(parts, ", ")
}

// bulletCodeList renders items as a block list of code tokens.
func bulletCodeList(items []string) string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, blockListMarker+codeToken(item))
	}

	return strings.Join(lines, "\n")
}

// codeToken wraps text as one inline code span.
func codeToken(text string) string {
	return "`" + escapeInline(text) + "`"
}

// codeBlock wraps text as a fenced YAML code block.
func codeBlock(text string) string {
	return "```yaml\n" + strings.TrimRight(text, "\n") + "\n```"
}

// markdownLink builds one inline link with code-formatted text.
func markdownLink(text, anchor string) string {
	return "[" + codeToken(text) + "](#" + anchor + ")"
}

// escapeInline escapes backticks in inline code markdown segments.
func escapeInline(value string) string {
	return strings.ReplaceAll(value, "`", "\\`")
}
