// SPDX-License-Identifier: MIT
// Copyright (c) 2026 mdocgen
// Source: github.com/mdocgen/schemamd

package schemamd

import (
	"fmt"
	"os"
	"sort"
	"strings"
)

const (
	// defaultTitle is used when caller does not provide custom title.
	defaultTitle = "schema reference"
	// defaultTemplateName is used when caller does not provide template name.
	defaultTemplateName = "list"
	// defaultWrapWidth wraps plain description paragraphs at this width.
	defaultWrapWidth = 80
	// defaultListMarker is used when caller does not provide list marker style.
	defaultListMarker = "*"
)

// Options configures markdown rendering.
type Options struct {
	// Title overrides the document heading.
	Title string
	// SourcePath names the schema source shown in the metadata block.
	SourcePath string
	// TemplateName selects a built-in markdown template.
	TemplateName string
	// TemplateText overrides built-in templates with custom template source.
	TemplateText string
	// TagPrefix prefixes every generated section anchor.
	TagPrefix string
	// RefTagPrefix prefixes anchors of referenced definitions.
	RefTagPrefix string
	// MaxNesting bounds how deep nested sub-schemas stay inline before they
	// are split into their own sections.
	MaxNesting int
	// WrapWidth wraps plain description paragraphs at this rune width.
	WrapWidth int
	// ListMarker sets the unordered list marker, "*" or "-".
	ListMarker string
	// ExampleMode enables a generated example in the root section.
	ExampleMode ExampleMode
	// ExampleFormat selects the generated example encoding.
	ExampleFormat ExampleFormat
}

// RenderFile reads a schema from file and renders markdown documentation.
func RenderFile(path string, opt Options) (string, error) {
	schemaBytes, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrReadSchemaFile, err)
	}

	if strings.TrimSpace(opt.SourcePath) == "" {
		opt.SourcePath = path
	}

	return Render(schemaBytes, opt)
}

// Render converts schema bytes into a deterministic CommonMark document.
func Render(schemaBytes []byte, opt Options) (string, error) {
	doc, err := parseDocument(schemaBytes)
	if err != nil {
		return "", err
	}

	view, err := buildRenderView(doc, opt)
	if err != nil {
		return "", err
	}

	markdownTemplate, err := resolveTemplate(opt)
	if err != nil {
		return "", err
	}

	var out strings.Builder
	if err := markdownTemplate.Execute(&out, view); err != nil {
		return "", fmt.Errorf("%w: %w", ErrExecuteMarkdownTemplate, err)
	}

	return ensureTrailingNewline(normalizeMarkdownOutput(out.String())), nil
}

// BuiltinTemplateNames returns all available built-in template names.
func BuiltinTemplateNames() []string {
	names := make([]string, 0, len(builtInTemplateFiles))
	for name := range builtInTemplateFiles {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}

// BuiltinTemplate returns one built-in template by name.
func BuiltinTemplate(name string) (string, error) {
	name = normalizeTemplateName(name)
	path, ok := builtInTemplateFiles[name]
	if !ok {
		return "", fmt.Errorf("%w %q", ErrUnknownBuiltinTemplate, name)
	}

	data, err := templateFS.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrReadBuiltinTemplate, err)
	}

	return string(data), nil
}
