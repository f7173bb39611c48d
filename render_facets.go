// SPDX-License-Identifier: MIT
// Copyright (c) 2026 mdocgen
// Source: github.com/mdocgen/schemamd

package schemamd

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/goccy/go-json"
)

// TypeToMarkdown renders the data type of a schema node. A $ref wins over
// everything and becomes a link to the referenced schema's section. A string
// type renders as one code token, a list of strings as an " or "-joined
// sequence. A node without a type renders as `complex` when composition or
// conditional keywords are present, otherwise as `any`. Any other type value
// is a schema-authoring error.
func TypeToMarkdown(node *Node, refTagPrefix string) (Fragment, error) {
	if ref := stringValue(node, "$ref"); ref != "" {
		anchors := Anchors{RefTagPrefix: refTagPrefix}
		return Fragment{Text: markdownLink(RefName(ref), anchors.refAnchor(ref)), Inline: true}, nil
	}

	value, ok := node.Get("type")
	if !ok || value == nil {
		if hasComplexKeywords(node) {
			return Fragment{Text: codeToken("complex"), Inline: true}, nil
		}

		return Fragment{Text: codeToken("any"), Inline: true}, nil
	}

	switch typed := value.(type) {
	case string:
		return Fragment{Text: codeToken(typed), Inline: true}, nil

	case []any:
		tokens := make([]string, 0, len(typed))
		for _, item := range typed {
			name, ok := item.(string)
			if !ok {
				return Fragment{}, fmt.Errorf("%w: list element %v", ErrUnsupportedType, item)
			}

			tokens = append(tokens, codeToken(name))
		}

		return Fragment{Text: strings.Join(tokens, " or "), Inline: true}, nil

	default:
		return Fragment{}, fmt.Errorf("%w: %v", ErrUnsupportedType, value)
	}
}

// NotToMarkdown renders the `not` keyword as a link: to the referenced
// schema when the sub-schema is a reference, otherwise to this node's own
// generated "not" section.
func NotToMarkdown(node *Node, anchors Anchors) (Fragment, bool) {
	value, ok := nodeValue(node, "not")
	if !ok {
		return Fragment{}, false
	}

	if ref := stringValue(value, "$ref"); ref != "" {
		return Fragment{Text: markdownLink(RefName(ref), anchors.refAnchor(ref)), Inline: true}, true
	}

	return Fragment{Text: markdownLink("not", anchors.sectionAnchor("not")), Inline: true}, true
}

// SomeOfToMarkdown renders one of anyOf/oneOf/allOf as a comma-separated
// list of links, each element pointing at its reference target or at the
// 1-indexed "key[n]" section generated for it.
func SomeOfToMarkdown(node *Node, key string, anchors Anchors) (Fragment, bool) {
	value, ok := node.Get(key)
	if !ok {
		return Fragment{}, false
	}

	items := asSlice(value)
	outputs := make([]string, 0, len(items))
	for index, item := range items {
		label := fmt.Sprintf("%s[%d]", key, index+1)
		if sub, ok := item.(*Node); ok {
			if ref := stringValue(sub, "$ref"); ref != "" {
				outputs = append(outputs, markdownLink(RefName(ref), anchors.refAnchor(ref)))
				continue
			}
		}

		outputs = append(outputs, markdownLink(label, anchors.sectionAnchor(label)))
	}

	return Fragment{Text: strings.Join(outputs, ", "), Inline: true}, true
}

// ConditionalToMarkdown renders the if/then/else keywords as keyword labels
// paired with reference or section links, joined by single spaces. Absent
// without an `if` key; `then` and `else` render independently of each other.
func ConditionalToMarkdown(node *Node, anchors Anchors) (Fragment, bool) {
	if !node.Has("if") {
		return Fragment{}, false
	}

	tokens := make([]string, 0, 6)
	for _, key := range []string{"if", "then", "else"} {
		value, ok := node.Get(key)
		if !ok {
			continue
		}

		tokens = append(tokens, key)
		if sub, ok := value.(*Node); ok {
			if ref := stringValue(sub, "$ref"); ref != "" {
				tokens = append(tokens, markdownLink(RefName(ref), anchors.refAnchor(ref)))
				continue
			}
		}

		tokens = append(tokens, markdownLink(key, anchors.sectionAnchor(key)))
	}

	return Fragment{Text: strings.Join(tokens, " "), Inline: true}, true
}

// AdditionalPropertiesToMarkdown renders the additionalProperties keyword.
// Booleans render as literal `false` or `any`. An absent keyword renders
// nothing when the node carries $ref or composition keywords (the type
// renderer documents those), renders `any` for plain objects, and nothing
// otherwise. A schema value renders a link to the generated
// additional-properties section, or a bare bracketed literal without an
// anchor.
func AdditionalPropertiesToMarkdown(node *Node, addPropsTag string) (Fragment, bool) {
	value, present := node.Get("additionalProperties")
	if !present || value == nil {
		if node.Has("$ref") || hasComplexKeywords(node) {
			return Fragment{}, false
		}

		if stringValue(node, "type") == "object" {
			return Fragment{Text: codeToken("any"), Inline: true}, true
		}

		return Fragment{}, false
	}

	if flag, ok := value.(bool); ok {
		if !flag {
			return Fragment{Text: codeToken("false"), Inline: true}, true
		}

		return Fragment{Text: codeToken("any"), Inline: true}, true
	}

	if addPropsTag == "" {
		return Fragment{Text: "[" + codeToken("true") + "]", Inline: true}, true
	}

	return Fragment{Text: markdownLink("true", addPropsTag), Inline: true}, true
}

// RequiredToMarkdown renders the required property names as a code list.
func RequiredToMarkdown(node *Node) (Fragment, bool) {
	value, ok := node.Get("required")
	if !ok {
		return Fragment{}, false
	}

	return makeCodeList(scalarTexts(asSlice(value))), true
}

// EnumToMarkdown renders the enum values as a code list.
func EnumToMarkdown(node *Node) (Fragment, bool) {
	value, ok := node.Get("enum")
	if !ok {
		return Fragment{}, false
	}

	return makeCodeList(scalarTexts(asSlice(value))), true
}

// DefaultToMarkdown renders the default value. An explicit `default` wins
// and is serialized to compact YAML, inline when short enough and as a
// fenced block otherwise. A `default_auto` fallback is pre-rendered prose:
// line breaks collapse to spaces and the text is emitted without code
// formatting.
func DefaultToMarkdown(node *Node) (Fragment, bool) {
	if value, ok := node.Get("default"); ok {
		text := mustYAMLText(value)
		if textCanBeInline(text) {
			return Fragment{Text: codeToken(text), Inline: true}, true
		}

		return Fragment{Text: codeBlock(text), Inline: false}, true
	}

	if value, ok := node.Get("default_auto"); ok {
		text := strings.ReplaceAll(strings.TrimSpace(asString(value)), "\n", " ")
		return Fragment{Text: text, Inline: textCanBeInline(text)}, true
	}

	return Fragment{}, false
}

// ExamplesToMarkdown renders the examples sequence. All examples inline and
// short in total: one comma-separated code list. All inline but too long
// together: a block bullet list. Any multiline example: one fenced code
// block per example.
func ExamplesToMarkdown(node *Node) (Fragment, bool) {
	value, ok := node.Get("examples")
	if !ok {
		return Fragment{}, false
	}

	examples := asSlice(value)
	texts := make([]string, 0, len(examples))
	allInline := true
	total := 0
	for _, example := range examples {
		text := mustYAMLText(example)
		texts = append(texts, text)
		total += utf8.RuneCountInString(text)
		if !textCanBeInline(text) {
			allInline = false
		}
	}

	if allInline && total <= inlineMaxLineLength {
		return Fragment{Text: commaCodeList(texts), Inline: true}, true
	}

	if allInline {
		return Fragment{Text: bulletCodeList(texts), Inline: false}, true
	}

	blocks := make([]string, 0, len(texts))
	for _, text := range texts {
		blocks = append(blocks, codeBlock(text))
	}

	return Fragment{Text: strings.Join(blocks, "\n"), Inline: false}, true
}

// ScalarToMarkdown renders a single scalar keyword (minimum, pattern, ...)
// as an inline code token; booleans are lowercased to their textual form.
func ScalarToMarkdown(node *Node, key string) (Fragment, bool) {
	value, ok := node.Get(key)
	if !ok {
		return Fragment{}, false
	}

	return Fragment{Text: codeToken(scalarText(value)), Inline: true}, true
}

// SchemaToMarkdown renders the cleaned schema node as a fenced YAML block
// for verbatim display.
func SchemaToMarkdown(node *Node) (Fragment, error) {
	clean, err := CleanSchema(node)
	if err != nil {
		return Fragment{}, err
	}

	text, err := yamlText(clean)
	if err != nil {
		return Fragment{}, err
	}

	return Fragment{Text: codeBlock(text), Inline: false}, nil
}

// scalarText formats one scalar value for inline code display.
func scalarText(value any) string {
	switch typed := value.(type) {
	case bool:
		return strconv.FormatBool(typed)
	case string:
		return typed
	case json.Number:
		return typed.String()
	case nil:
		return "null"
	default:
		return mustYAMLText(typed)
	}
}

// scalarTexts formats sequence elements for code-list display.
func scalarTexts(items []any) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, scalarText(item))
	}

	return out
}
