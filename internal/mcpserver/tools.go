// SPDX-License-Identifier: MIT
// Copyright (c) 2026 mdocgen
// Source: github.com/mdocgen/schemamd

package mcpserver

import (
	"context"
	"fmt"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/mdocgen/schemamd"
)

// schemaInput selects the schema source for a tool call.
type schemaInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to a schema file (JSON or YAML)"`
	Content string `json:"content,omitempty" jsonschema:"Inline schema document text (JSON or YAML)"`
}

// bytes loads the schema document the input points at.
func (input schemaInput) bytes() ([]byte, string, error) {
	switch {
	case input.File != "" && input.Content != "":
		return nil, "", fmt.Errorf("set only one of file or content")
	case input.File != "":
		data, err := os.ReadFile(input.File)
		if err != nil {
			return nil, "", fmt.Errorf("read schema file: %w", err)
		}

		return data, input.File, nil
	case input.Content != "":
		return []byte(input.Content), "(inline)", nil
	default:
		return nil, "", fmt.Errorf("one of file or content must be provided")
	}
}

type renderInput struct {
	Schema        schemaInput `json:"schema"                   jsonschema:"The schema document to render"`
	Title         string      `json:"title,omitempty"          jsonschema:"Markdown document title"`
	MaxNesting    int         `json:"max_nesting,omitempty"    jsonschema:"Nesting depth before sub-schemas get their own section (default 2)"`
	WrapWidth     int         `json:"wrap_width,omitempty"     jsonschema:"Wrap width for plain text descriptions (default 80)"`
	ExampleMode   string      `json:"example_mode,omitempty"   jsonschema:"Embed a generated example: all or required"`
	ExampleFormat string      `json:"example_format,omitempty" jsonschema:"Embedded example encoding: json or yaml (default yaml)"`
}

type renderOutput struct {
	Source   string `json:"source"`
	Markdown string `json:"markdown"`
}

func handleRender(_ context.Context, _ *mcp.CallToolRequest, input renderInput) (*mcp.CallToolResult, renderOutput, error) {
	schemaBytes, source, err := input.Schema.bytes()
	if err != nil {
		return errResult(err), renderOutput{}, nil
	}

	markdown, err := schemamd.Render(schemaBytes, schemamd.Options{
		Title:         input.Title,
		SourcePath:    source,
		MaxNesting:    input.MaxNesting,
		WrapWidth:     input.WrapWidth,
		ExampleMode:   schemamd.ExampleMode(input.ExampleMode),
		ExampleFormat: schemamd.ExampleFormat(input.ExampleFormat),
	})
	if err != nil {
		return errResult(err), renderOutput{}, nil
	}

	return nil, renderOutput{Source: source, Markdown: markdown}, nil
}

type exampleInput struct {
	Schema schemaInput `json:"schema"           jsonschema:"The schema document to generate an example for"`
	Mode   string      `json:"mode,omitempty"   jsonschema:"Property coverage: all or required (default all)"`
	Format string      `json:"format,omitempty" jsonschema:"Payload encoding: json or yaml (default json)"`
}

type exampleOutput struct {
	Source  string `json:"source"`
	Format  string `json:"format"`
	Payload string `json:"payload"`
}

func handleExample(_ context.Context, _ *mcp.CallToolRequest, input exampleInput) (*mcp.CallToolResult, exampleOutput, error) {
	schemaBytes, source, err := input.Schema.bytes()
	if err != nil {
		return errResult(err), exampleOutput{}, nil
	}

	mode := schemamd.ExampleMode(input.Mode)
	if input.Mode == "" {
		mode = schemamd.ExampleModeAll
	}

	format := schemamd.ExampleFormat(input.Format)
	if input.Format == "" {
		format = schemamd.ExampleFormatJSON
	}

	payload, err := schemamd.GenerateExample(schemaBytes, mode, format)
	if err != nil {
		return errResult(err), exampleOutput{}, nil
	}

	return nil, exampleOutput{
		Source:  source,
		Format:  string(format),
		Payload: string(payload),
	}, nil
}

type detectDraftInput struct {
	URI string `json:"uri" jsonschema:"The $schema URI to inspect"`
}

type detectDraftOutput struct {
	Canonical string `json:"canonical,omitempty"`
	Known     bool   `json:"known"`
	Supported bool   `json:"supported"`
}

func handleDetectDraft(_ context.Context, _ *mcp.CallToolRequest, input detectDraftInput) (*mcp.CallToolResult, detectDraftOutput, error) {
	info := schemamd.DetectDraft(input.URI)
	return nil, detectDraftOutput{
		Canonical: info.Canonical,
		Known:     info.Canonical != "",
		Supported: info.Supported,
	}, nil
}
