// SPDX-License-Identifier: MIT
// Copyright (c) 2026 mdocgen
// Source: github.com/mdocgen/schemamd

/*
Package schemamd renders CommonMark documentation from JSON Schema documents.

The package parses JSON or YAML schema text into order-preserving nodes and
renders deterministic markdown: one section per schema node, with nested
sub-schemas split into their own sections past a configurable nesting depth.

Basic render from schema bytes:

	schemaBytes, err := os.ReadFile("schema.json")
	if err != nil {
		return err
	}

	md, err := schemamd.Render(schemaBytes, schemamd.Options{
		Title:      "Config Reference",
		SourcePath: "schema.json",
		WrapWidth:  100,
	})
	if err != nil {
		return err
	}

	fmt.Println(md)

Render directly from file:

	md, err := schemamd.RenderFile("schema.yaml", schemamd.Options{})
	if err != nil {
		return err
	}

	fmt.Println(md)

Render individual schema facets with the low-level API:

	node, err := schemamd.ParseNode(schemaBytes)
	if err != nil {
		return err
	}

	fragment, err := schemamd.TypeToMarkdown(node, "")
	if err != nil {
		return err
	}

	fmt.Println(fragment.Text, fragment.Inline)

Detect JSON Schema draft support:

	info := schemamd.DetectDraft("https://json-schema.org/draft/2020-12/schema")
	fmt.Printf("draft=%s supported=%v\n", info.Canonical, info.Supported)

Generate example payload from schema:

	jsonExample, err := schemamd.GenerateExampleJSON(schemaBytes, schemamd.ExampleModeRequired)
	if err != nil {
		return err
	}

	fmt.Println(string(jsonExample))

Enable embedded example block in markdown template output:

	md, err := schemamd.Render(schemaBytes, schemamd.Options{
		ExampleMode:   schemamd.ExampleModeRequired,
		ExampleFormat: schemamd.ExampleFormatYAML,
	})
	if err != nil {
		return err
	}

	fmt.Println(md)
*/
package schemamd
