// SPDX-License-Identifier: MIT
// Copyright (c) 2026 mdocgen
// Source: github.com/mdocgen/schemamd

package schemamd

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

const (
	// ExampleModeAll builds example with all declared properties.
	ExampleModeAll ExampleMode = "all"
	// ExampleModeRequired builds example with required properties only.
	ExampleModeRequired ExampleMode = "required"
)

// ExampleMode configures example generation property coverage.
type ExampleMode string

const (
	// ExampleFormatJSON encodes example payload as JSON.
	ExampleFormatJSON ExampleFormat = "json"
	// ExampleFormatYAML encodes example payload as YAML.
	ExampleFormatYAML ExampleFormat = "yaml"
)

// ExampleFormat configures output format for generated example payload.
type ExampleFormat string

// exampleScalarPlaceholders provides fallback values for scalar schema types.
var exampleScalarPlaceholders = map[string]any{
	"string":  "<string>",
	"number":  0,
	"integer": 0,
	"boolean": false,
	"null":    nil,
}

// exampleBuilder converts a parsed schema tree into example values.
type exampleBuilder struct {
	activeRefs map[string]int
	mode       ExampleMode
	root       *Node
}

// GenerateExample returns a generated example payload encoded in the
// selected format.
func GenerateExample(schemaBytes []byte, mode ExampleMode, format ExampleFormat) ([]byte, error) {
	format, err := normalizeExampleFormat(format)
	if err != nil {
		return nil, err
	}

	switch format {
	case ExampleFormatJSON:
		return GenerateExampleJSON(schemaBytes, mode)
	case ExampleFormatYAML:
		return GenerateExampleYAML(schemaBytes, mode)
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownExampleFormat, format)
	}
}

// GenerateExampleJSON returns a generated example payload as pretty JSON.
func GenerateExampleJSON(schemaBytes []byte, mode ExampleMode) ([]byte, error) {
	doc, err := parseDocument(schemaBytes)
	if err != nil {
		return nil, err
	}

	return exampleJSON(doc, mode)
}

// GenerateExampleYAML returns a generated example payload as YAML with
// property titles and descriptions attached as comments.
func GenerateExampleYAML(schemaBytes []byte, mode ExampleMode) ([]byte, error) {
	doc, err := parseDocument(schemaBytes)
	if err != nil {
		return nil, err
	}

	return exampleYAML(doc, mode)
}

// exampleJSON encodes the example value of an already-parsed document.
func exampleJSON(doc schemaDocument, mode ExampleMode) ([]byte, error) {
	mode, err := normalizeExampleMode(mode)
	if err != nil {
		return nil, err
	}

	builder := newExampleBuilder(doc, mode)
	value := builder.buildNode(doc.Root)

	var out bytes.Buffer
	encoder := json.NewEncoder(&out)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(value); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodeExampleJSON, err)
	}

	return out.Bytes(), nil
}

// exampleYAML encodes the example value of an already-parsed document.
func exampleYAML(doc schemaDocument, mode ExampleMode) ([]byte, error) {
	mode, err := normalizeExampleMode(mode)
	if err != nil {
		return nil, err
	}

	builder := newExampleBuilder(doc, mode)
	value := builder.buildNode(doc.Root)

	rootNode, err := yamlNodeForValue(value)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodeExampleYAML, err)
	}

	builder.annotateYAMLNode(rootNode, doc.Root)

	document := &yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{rootNode}}

	var out bytes.Buffer
	encoder := yaml.NewEncoder(&out)
	encoder.SetIndent(2)
	if err := encoder.Encode(document); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodeExampleYAML, err)
	}

	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodeExampleYAML, err)
	}

	return out.Bytes(), nil
}

func newExampleBuilder(doc schemaDocument, mode ExampleMode) *exampleBuilder {
	return &exampleBuilder{
		root:       doc.Root,
		mode:       mode,
		activeRefs: make(map[string]int),
	}
}

// normalizeExampleMode validates and normalizes caller mode value.
func normalizeExampleMode(mode ExampleMode) (ExampleMode, error) {
	normalized := ExampleMode(strings.ToLower(strings.TrimSpace(string(mode))))
	switch normalized {
	case ExampleModeAll, ExampleModeRequired:
		return normalized, nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownExampleMode, mode)
	}
}

// normalizeExampleFormat validates and normalizes caller format value.
func normalizeExampleFormat(format ExampleFormat) (ExampleFormat, error) {
	normalized := ExampleFormat(strings.ToLower(strings.TrimSpace(string(format))))
	switch normalized {
	case ExampleFormatJSON, ExampleFormatYAML:
		return normalized, nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownExampleFormat, format)
	}
}

// buildNode recursively builds the example value for one schema node.
func (builder *exampleBuilder) buildNode(node *Node) any {
	if node == nil {
		return nil
	}

	if resolved, release, handled := builder.resolveReference(node); handled {
		if release != nil {
			defer release()
		}

		if resolved == nil {
			return nil
		}

		return builder.buildNode(resolved)
	}

	schemaType := schemaTypeName(node)
	propNames, props, required := builder.collectObjectShape(node)

	if schemaType == "object" || len(propNames) > 0 || len(required) > 0 {
		return builder.buildObject(propNames, props, required)
	}

	if schemaType == "array" || hasArrayShape(node) {
		return builder.buildArray(node)
	}

	if value, ok := explicitExampleValue(node); ok {
		return value
	}

	if value, ok := node.Get("const"); ok {
		return value
	}

	if values := sliceValue(node, "enum"); len(values) > 0 {
		return values[0]
	}

	if value, ok := builder.compositionFallback(node); ok {
		return value
	}

	if value, ok := exampleScalarPlaceholders[schemaType]; ok {
		return value
	}

	return nil
}

// buildObject materializes an object value from the collected property shape.
func (builder *exampleBuilder) buildObject(propNames []string, props map[string]*Node, required []string) *Node {
	out := NewNode()
	order := propNames
	if builder.mode == ExampleModeRequired {
		order = make([]string, 0, len(required))
		for _, name := range required {
			if _, ok := props[name]; ok {
				order = append(order, name)
			}
		}
	}

	for _, name := range order {
		out.Set(name, builder.buildNode(props[name]))
	}

	return out
}

// buildArray materializes an array value from items or prefixItems.
func (builder *exampleBuilder) buildArray(node *Node) []any {
	if value, ok := explicitExampleValue(node); ok {
		if items, ok := value.([]any); ok {
			return items
		}
	}

	if prefixItems := sliceValue(node, "prefixItems"); len(prefixItems) > 0 {
		out := make([]any, 0, len(prefixItems))
		for _, raw := range prefixItems {
			item, ok := raw.(*Node)
			if !ok {
				out = append(out, nil)
				continue
			}

			out = append(out, builder.buildNode(item))
		}

		return out
	}

	value, ok := node.Get("items")
	if !ok {
		return []any{}
	}

	switch typed := value.(type) {
	case *Node:
		return []any{builder.buildNode(typed)}
	case []any:
		// Legacy tuple form.
		out := make([]any, 0, len(typed))
		for _, raw := range typed {
			if item, ok := raw.(*Node); ok {
				out = append(out, builder.buildNode(item))
				continue
			}

			out = append(out, nil)
		}

		return out
	default:
		return []any{}
	}
}

// collectObjectShape merges local properties with allOf overlays, preserving
// first-seen key order.
func (builder *exampleBuilder) collectObjectShape(node *Node) ([]string, map[string]*Node, []string) {
	if node == nil {
		return nil, nil, nil
	}

	if resolved, release, handled := builder.resolveReference(node); handled {
		if release != nil {
			defer release()
		}

		if resolved == nil {
			return nil, nil, nil
		}

		return builder.collectObjectShape(resolved)
	}

	names := make([]string, 0, 8)
	props := make(map[string]*Node, 8)
	required := asStringSlice(mustGet(node, "required"))

	if properties, ok := nodeValue(node, "properties"); ok {
		for _, name := range properties.Keys() {
			if sub, ok := nodeValue(properties, name); ok {
				names = append(names, name)
				props[name] = sub
			}
		}
	}

	for _, raw := range sliceValue(node, "allOf") {
		sub, ok := raw.(*Node)
		if !ok {
			continue
		}

		nestedNames, nestedProps, nestedRequired := builder.collectObjectShape(sub)
		for _, name := range nestedNames {
			if _, exists := props[name]; exists {
				continue
			}

			names = append(names, name)
			props[name] = nestedProps[name]
		}

		required = mergeRequiredKeys(required, nestedRequired)
	}

	return names, props, required
}

// mergeRequiredKeys appends unique required keys preserving first-seen order.
func mergeRequiredKeys(left, right []string) []string {
	seen := make(map[string]struct{}, len(left)+len(right))
	out := make([]string, 0, len(left)+len(right))
	for _, key := range append(left, right...) {
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}

		if _, exists := seen[key]; exists {
			continue
		}

		seen[key] = struct{}{}
		out = append(out, key)
	}

	return out
}

// compositionFallback builds a value from the first schema of oneOf/anyOf/allOf.
func (builder *exampleBuilder) compositionFallback(node *Node) (any, bool) {
	for _, keyword := range []string{"oneOf", "anyOf", "allOf"} {
		for _, raw := range sliceValue(node, keyword) {
			if sub, ok := raw.(*Node); ok {
				return builder.buildNode(sub), true
			}
		}
	}

	return nil, false
}

// resolveReference resolves a local $ref and merges sibling overrides on top
// of the resolved target. Cyclic references resolve to nil.
func (builder *exampleBuilder) resolveReference(node *Node) (*Node, func(), bool) {
	ref := stringValue(node, "$ref")
	if ref == "" {
		return nil, nil, false
	}

	resolved, ok := builder.resolveLocalPointer(ref)
	if !ok {
		return stripKey(node, "$ref"), nil, true
	}

	if builder.activeRefs[ref] > 0 {
		return nil, nil, true
	}

	builder.activeRefs[ref]++
	release := func() {
		builder.activeRefs[ref]--
		if builder.activeRefs[ref] <= 0 {
			delete(builder.activeRefs, ref)
		}
	}

	return mergeNodes(resolved, node), release, true
}

// resolveLocalPointer resolves a local JSON pointer against the root schema.
func (builder *exampleBuilder) resolveLocalPointer(ref string) (*Node, bool) {
	ref = strings.TrimSpace(ref)
	if builder.root == nil || !strings.HasPrefix(ref, "#") {
		return nil, false
	}

	if ref == "#" {
		return builder.root, true
	}

	if !strings.HasPrefix(ref, "#/") {
		return nil, false
	}

	var current any = builder.root
	for _, token := range strings.Split(strings.TrimPrefix(ref, "#/"), "/") {
		token = decodePointerToken(token)

		switch typed := current.(type) {
		case *Node:
			next, ok := typed.Get(token)
			if !ok {
				return nil, false
			}

			current = next
		case []any:
			index, err := strconv.Atoi(token)
			if err != nil || index < 0 || index >= len(typed) {
				return nil, false
			}

			current = typed[index]
		default:
			return nil, false
		}
	}

	node, ok := current.(*Node)
	return node, ok
}

// decodePointerToken unescapes one JSON pointer token.
func decodePointerToken(token string) string {
	token = strings.ReplaceAll(token, "~1", "/")
	return strings.ReplaceAll(token, "~0", "~")
}

// stripKey returns a shallow copy of the node without one key.
func stripKey(node *Node, drop string) *Node {
	out := NewNode()
	for _, key := range node.Keys() {
		if key == drop {
			continue
		}

		value, _ := node.Get(key)
		out.Set(key, value)
	}

	return out
}

// mergeNodes layers overlay keys (except $ref) over a base node.
func mergeNodes(base, overlay *Node) *Node {
	out := NewNode()
	for _, key := range base.Keys() {
		value, _ := base.Get(key)
		out.Set(key, value)
	}

	for _, key := range overlay.Keys() {
		if key == "$ref" {
			continue
		}

		value, _ := overlay.Get(key)
		out.Set(key, value)
	}

	return out
}

// schemaTypeName returns the first non-null type name declared by the node.
func schemaTypeName(node *Node) string {
	value, ok := node.Get("type")
	if !ok {
		return ""
	}

	if text := strings.ToLower(asString(value)); text != "" {
		return text
	}

	items := asSlice(value)
	for _, item := range items {
		text := strings.ToLower(asString(item))
		if text != "" && text != "null" {
			return text
		}
	}

	for _, item := range items {
		if strings.ToLower(asString(item)) == "null" {
			return "null"
		}
	}

	return ""
}

// hasArrayShape reports whether the node carries array structure keywords.
func hasArrayShape(node *Node) bool {
	if _, ok := nodeValue(node, "items"); ok {
		return true
	}

	return len(sliceValue(node, "prefixItems")) > 0
}

// explicitExampleValue returns the preferred authored example value.
func explicitExampleValue(node *Node) (any, bool) {
	if value, ok := node.Get("default"); ok {
		return value, true
	}

	if values := sliceValue(node, "examples"); len(values) > 0 {
		return values[0], true
	}

	if value, ok := node.Get("example"); ok {
		return value, true
	}

	return nil, false
}

// mustGet returns the value under key or nil.
func mustGet(node *Node, key string) any {
	value, _ := node.Get(key)
	return value
}

// annotateYAMLNode assigns schema title/description comments to YAML map keys.
func (builder *exampleBuilder) annotateYAMLNode(node *yaml.Node, schema *Node) {
	resolved := schema
	var release func()
	if merged, rel, handled := builder.resolveReference(schema); handled {
		resolved, release = merged, rel
	}

	if release != nil {
		defer release()
	}

	if resolved == nil {
		return
	}

	switch node.Kind {
	case yaml.MappingNode:
		properties, _ := nodeValue(resolved, "properties")
		for index := 0; index+1 < len(node.Content); index += 2 {
			keyNode := node.Content[index]
			valueNode := node.Content[index+1]

			property, ok := nodeValue(properties, keyNode.Value)
			if !ok {
				continue
			}

			if comment := schemaKeyComment(property); comment != "" {
				keyNode.HeadComment = comment
			}

			builder.annotateYAMLNode(valueNode, property)
		}
	case yaml.SequenceNode:
		item := sequenceItemSchema(resolved)
		if item == nil {
			return
		}

		for _, element := range node.Content {
			builder.annotateYAMLNode(element, item)
		}
	}
}

// sequenceItemSchema selects the schema used for sequence item annotations.
func sequenceItemSchema(schema *Node) *Node {
	if item, ok := nodeValue(schema, "items"); ok {
		return item
	}

	for _, raw := range sliceValue(schema, "prefixItems") {
		if item, ok := raw.(*Node); ok {
			return item
		}
	}

	return nil
}

// schemaKeyComment builds a YAML key comment from schema title and description.
func schemaKeyComment(schema *Node) string {
	title := strings.TrimSpace(stringValue(schema, "title"))
	description := strings.TrimSpace(stringValue(schema, "description"))

	switch {
	case title == "" && description == "":
		return ""
	case title == "":
		return description
	case description == "", title == description:
		return title
	default:
		return title + "\n" + description
	}
}
