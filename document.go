// SPDX-License-Identifier: MIT
// Copyright (c) 2026 mdocgen
// Source: github.com/mdocgen/schemamd

package schemamd

import (
	"errors"
	"fmt"
	"strings"
)

// renderView is the root view model passed to markdown templates.
type renderView struct {
	Title              string
	SourceSchema       string
	SchemaID           string
	SchemaDraft        string
	SchemaDraftSupport string
	ListMarker         string
	Sections           []sectionView
}

// sectionView represents one documented schema node.
type sectionView struct {
	Heading     string
	Description string
	Attributes  []attributeView
	Blocks      []blockView
	Properties  []propertyView
	Schema      string
	Example     string
}

// attributeView is a single rendered name/value metadata item.
type attributeView struct {
	Name  string
	Value string
}

// blockView is one named multi-line fragment rendered after the attribute list.
type blockView struct {
	Name string
	Text string
}

// propertyView is one property summarized inside its parent section.
type propertyView struct {
	Name        string
	Type        string
	Required    string
	Description string
}

// pendingSection is one queue item for breadth-first section traversal.
type pendingSection struct {
	Heading  string
	Path     string
	Node     *Node
	Required *bool
}

// scalarAttributeKeys lists single-value keywords rendered as attribute rows,
// in display order.
var scalarAttributeKeys = []struct {
	Keyword string
	Label   string
}{
	{"const", "Constant"},
	{"format", "Format"},
	{"pattern", "Pattern"},
	{"multipleOf", "Multiple of"},
	{"minimum", "Minimum"},
	{"exclusiveMinimum", "Exclusive minimum"},
	{"maximum", "Maximum"},
	{"exclusiveMaximum", "Exclusive maximum"},
	{"minLength", "Min length"},
	{"maxLength", "Max length"},
	{"minItems", "Min items"},
	{"maxItems", "Max items"},
	{"uniqueItems", "Unique items"},
	{"minProperties", "Min properties"},
	{"maxProperties", "Max properties"},
	{"contentEncoding", "Content encoding"},
	{"contentMediaType", "Content media type"},
	{"deprecated", "Deprecated"},
	{"readOnly", "Read only"},
	{"writeOnly", "Write only"},
}

// someOfLabels maps composition keywords to attribute row labels.
var someOfLabels = map[string]string{
	"anyOf": "Any of",
	"oneOf": "One of",
	"allOf": "All of",
}

// buildRenderView prepares data for markdown template rendering.
func buildRenderView(doc schemaDocument, opt Options) (renderView, error) {
	title := strings.TrimSpace(opt.Title)
	if title == "" {
		title = defaultTitle
	}

	wrapWidth := normalizeWrapWidth(opt.WrapWidth)
	listMarker := normalizeListMarker(opt.ListMarker)
	maxNesting := normalizeMaxNesting(opt.MaxNesting)

	sourcePath := strings.TrimSpace(opt.SourcePath)
	if sourcePath == "" {
		sourcePath = "(memory)"
	}

	if doc.Root == nil || doc.Root.Len() == 0 {
		return renderView{}, errors.New("schema has no content to render")
	}

	view := renderView{
		Title:              sanitizeText(title),
		SourceSchema:       escapeInline(sourcePath),
		SchemaID:           escapeInline(orNone(doc.ID)),
		SchemaDraft:        escapeInline(orNone(doc.Schema)),
		SchemaDraftSupport: draftSupportText(doc.Draft),
		ListMarker:         listMarker,
	}

	rootPath := strings.TrimSpace(doc.RootKey)
	if rootPath == "" {
		rootPath = "schema"
	}

	queue := []pendingSection{{
		Heading: headingText(opt.TagPrefix, rootPath),
		Path:    rootPath,
		Node:    doc.Root,
	}}
	queue = append(queue, definitionSections(doc.Root, opt)...)

	first := true
	for len(queue) > 0 {
		pending := queue[0]
		queue = queue[1:]

		section, children, err := buildSection(pending, opt, wrapWidth, listMarker, maxNesting)
		if err != nil {
			return renderView{}, err
		}

		if first {
			schemaFragment, err := SchemaToMarkdown(doc.Root)
			if err != nil {
				return renderView{}, err
			}

			section.Schema = schemaFragment.Text

			example, err := rootExample(doc, opt)
			if err != nil {
				return renderView{}, err
			}

			section.Example = example
			first = false
		}

		view.Sections = append(view.Sections, section)
		queue = append(queue, children...)
	}

	return view, nil
}

// buildSection renders one schema node into a section view and returns the
// child sections it spawns.
func buildSection(pending pendingSection, opt Options, wrapWidth int, listMarker string, maxNesting int) (sectionView, []pendingSection, error) {
	node := pending.Node
	anchors := Anchors{
		Path:         pending.Path,
		TagPrefix:    opt.TagPrefix,
		RefTagPrefix: opt.RefTagPrefix,
	}

	section := sectionView{
		Heading:     escapeInline(pending.Heading),
		Description: formatDescription(stringValue(node, "description"), wrapWidth, listMarker),
	}

	addFragment := func(name string, fragment Fragment) {
		if fragment.Inline {
			section.Attributes = append(section.Attributes, attributeView{Name: name, Value: fragment.Text})
			return
		}

		section.Blocks = append(section.Blocks, blockView{Name: name, Text: fragment.Text})
	}

	typeFragment, err := TypeToMarkdown(node, opt.RefTagPrefix)
	if err != nil {
		return sectionView{}, nil, fmt.Errorf("%q: %w", pending.Path, err)
	}

	addFragment("Type", typeFragment)

	if pending.Required != nil {
		section.Attributes = append(section.Attributes, attributeView{
			Name:  "Required",
			Value: codeToken(fmt.Sprintf("%t", *pending.Required)),
		})
	}

	for _, key := range []string{"anyOf", "oneOf", "allOf"} {
		if fragment, ok := SomeOfToMarkdown(node, key, anchors); ok {
			addFragment(someOfLabels[key], fragment)
		}
	}

	if fragment, ok := NotToMarkdown(node, anchors); ok {
		addFragment("Not", fragment)
	}

	if fragment, ok := ConditionalToMarkdown(node, anchors); ok {
		addFragment("Conditional", fragment)
	}

	if fragment, ok := additionalPropertiesFragment(node, anchors); ok {
		addFragment("Additional properties", fragment)
	}

	if fragment, ok := itemsFragment(node, anchors); ok {
		addFragment("Items", fragment)
	}

	if fragment, ok := EnumToMarkdown(node); ok {
		addFragment("Enum", fragment)
	}

	if fragment, ok := RequiredToMarkdown(node); ok {
		addFragment("Required properties", fragment)
	}

	if fragment, ok := DefaultToMarkdown(node); ok {
		addFragment("Default", fragment)
	}

	for _, scalar := range scalarAttributeKeys {
		if fragment, ok := ScalarToMarkdown(node, scalar.Keyword); ok {
			addFragment(scalar.Label, fragment)
		}
	}

	if fragment, ok := ExamplesToMarkdown(node); ok {
		addFragment("Examples", fragment)
	}

	children, err := childSections(&section, pending, opt, wrapWidth, listMarker, maxNesting)
	if err != nil {
		return sectionView{}, nil, err
	}

	return section, children, nil
}

// childSections walks the node's structural keywords and splits sub-schemas
// into separate sections or inline property summaries.
func childSections(section *sectionView, pending pendingSection, opt Options, wrapWidth int, listMarker string, maxNesting int) ([]pendingSection, error) {
	node := pending.Node
	children := make([]pendingSection, 0, 4)

	for _, keyword := range structuralKeywords {
		if !node.Has(keyword) {
			continue
		}

		names, subs, err := Subschemas(node, keyword)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", pending.Path, err)
		}

		for index, sub := range subs {
			if sub == nil {
				continue
			}

			name := names[index]
			path := pending.Path + "." + name

			if keyword == "properties" || keyword == "items" {
				required := SubschemaIsRequired(node, keyword, name)
				// Reference-valued properties never split; their type
				// renders as a link to the referenced section.
				if keyword == "properties" && !NeedsSeparateSection(sub, maxNesting) {
					section.Properties = append(section.Properties, inlineProperty(sub, name, required, opt, wrapWidth, listMarker))
					continue
				}

				if sub.Has("$ref") {
					continue
				}

				children = append(children, pendingSection{
					Heading:  headingText(opt.TagPrefix, path),
					Path:     path,
					Node:     sub,
					Required: &required,
				})
				continue
			}

			if sub.Has("$ref") {
				continue
			}

			children = append(children, pendingSection{
				Heading: headingText(opt.TagPrefix, path),
				Path:    path,
				Node:    sub,
			})
		}
	}

	return children, nil
}

// inlineProperty summarizes one property that does not get its own section.
func inlineProperty(sub *Node, name string, required bool, opt Options, wrapWidth int, listMarker string) propertyView {
	typeText := codeToken("any")
	if fragment, err := TypeToMarkdown(sub, opt.RefTagPrefix); err == nil {
		typeText = fragment.Text
	}

	return propertyView{
		Name:        escapeInline(name),
		Type:        typeText,
		Required:    codeToken(fmt.Sprintf("%t", required)),
		Description: sanitizeText(formatDescription(stringValue(sub, "description"), wrapWidth, listMarker)),
	}
}

// additionalPropertiesFragment renders the additionalProperties row with the
// anchor tag of the section a schema-valued keyword spawns.
func additionalPropertiesFragment(node *Node, anchors Anchors) (Fragment, bool) {
	tag := ""
	if value, ok := nodeValue(node, "additionalProperties"); ok && !value.Has("$ref") {
		tag = anchors.sectionAnchor("*")
	}

	return AdditionalPropertiesToMarkdown(node, tag)
}

// itemsFragment renders the items row as a link to the referenced schema or
// to the generated items section.
func itemsFragment(node *Node, anchors Anchors) (Fragment, bool) {
	value, ok := nodeValue(node, "items")
	if !ok {
		return Fragment{}, false
	}

	if ref := stringValue(value, "$ref"); ref != "" {
		return Fragment{Text: markdownLink(RefName(ref), anchors.refAnchor(ref)), Inline: true}, true
	}

	return Fragment{Text: markdownLink("items", anchors.sectionAnchor("[i]")), Inline: true}, true
}

// definitionSections queues one section per named definition under $defs or
// definitions, with headings matching the anchors reference links point at.
func definitionSections(root *Node, opt Options) []pendingSection {
	out := make([]pendingSection, 0, 4)
	for _, container := range []string{"$defs", "definitions"} {
		defs, ok := nodeValue(root, container)
		if !ok {
			continue
		}

		for _, name := range defs.Keys() {
			sub, ok := nodeValue(defs, name)
			if !ok {
				continue
			}

			ref := "#/" + container + "/" + name
			out = append(out, pendingSection{
				Heading: headingText(opt.RefTagPrefix, ref),
				Path:    container + "." + name,
				Node:    sub,
			})
		}
	}

	return out
}

// headingText joins the optional tag prefix with a schema path.
func headingText(prefix, path string) string {
	return strings.TrimSpace(strings.TrimSpace(prefix) + " " + path)
}

// rootExample generates the optional example snippet for the root section.
func rootExample(doc schemaDocument, opt Options) (string, error) {
	mode := ExampleMode(strings.TrimSpace(string(opt.ExampleMode)))
	if mode == "" {
		return "", nil
	}

	format, err := normalizeExampleFormat(opt.ExampleFormat)
	if err != nil {
		if strings.TrimSpace(string(opt.ExampleFormat)) != "" {
			return "", err
		}

		format = ExampleFormatYAML
	}

	var payload []byte
	switch format {
	case ExampleFormatJSON:
		payload, err = exampleJSON(doc, mode)
	default:
		payload, err = exampleYAML(doc, mode)
	}

	if err != nil {
		return "", err
	}

	text := strings.TrimRight(string(payload), "\n")
	return "```" + string(format) + "\n" + text + "\n```", nil
}

// draftSupportText formats draft support marker for markdown metadata block.
func draftSupportText(info DraftInfo) string {
	if !info.Supported {
		if strings.TrimSpace(info.Canonical) != "" {
			return "unknown (" + escapeInline(info.Canonical) + ")"
		}

		return "unknown"
	}

	return "supported (" + escapeInline(info.Canonical) + ")"
}
