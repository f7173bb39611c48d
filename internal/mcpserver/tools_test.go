// SPDX-License-Identifier: MIT
// Copyright (c) 2026 mdocgen
// Source: github.com/mdocgen/schemamd

package mcpserver

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const serviceSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["name"],
  "properties": {
    "name": {"type": "string", "description": "Service name."},
    "port": {"type": "integer", "default": 8080}
  }
}`

func TestSchemaInput_InlineContent(t *testing.T) {
	data, source, err := schemaInput{Content: serviceSchema}.bytes()
	require.NoError(t, err)

	assert.Equal(t, "(inline)", source)
	assert.Equal(t, serviceSchema, string(data))
}

func TestSchemaInput_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "service.schema.json")
	require.NoError(t, os.WriteFile(path, []byte(serviceSchema), 0o600))

	data, source, err := schemaInput{File: path}.bytes()
	require.NoError(t, err)

	assert.Equal(t, path, source)
	assert.Equal(t, serviceSchema, string(data))
}

func TestSchemaInput_RejectsBothAndNeither(t *testing.T) {
	_, _, err := schemaInput{File: "x", Content: "y"}.bytes()
	assert.Error(t, err)

	_, _, err = schemaInput{}.bytes()
	assert.Error(t, err)
}

func TestRenderTool_InlineSchema(t *testing.T) {
	input := renderInput{
		Schema: schemaInput{Content: serviceSchema},
		Title:  "Service reference",
	}
	result, output, err := handleRender(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.Nil(t, result)

	assert.Equal(t, "(inline)", output.Source)
	assert.Contains(t, output.Markdown, "# Service reference")
	assert.Contains(t, output.Markdown, "`name`")
}

func TestRenderTool_EmbeddedExample(t *testing.T) {
	input := renderInput{
		Schema:        schemaInput{Content: serviceSchema},
		ExampleMode:   "required",
		ExampleFormat: "json",
	}
	result, output, err := handleRender(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.Nil(t, result)

	assert.Contains(t, output.Markdown, "```json")
	assert.Contains(t, output.Markdown, `"name": "<string>"`)
}

func TestRenderTool_InvalidSchemaReturnsErrorResult(t *testing.T) {
	input := renderInput{Schema: schemaInput{Content: "[1, 2, 3]"}}
	result, _, err := handleRender(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.True(t, result.IsError)
}

func TestExampleTool_Defaults(t *testing.T) {
	input := exampleInput{Schema: schemaInput{Content: serviceSchema}}
	result, output, err := handleExample(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.Nil(t, result)

	assert.Equal(t, "json", output.Format)
	assert.Contains(t, output.Payload, `"name": "<string>"`)
	assert.Contains(t, output.Payload, `"port": 8080`)
}

func TestExampleTool_RequiredYAML(t *testing.T) {
	input := exampleInput{
		Schema: schemaInput{Content: serviceSchema},
		Mode:   "required",
		Format: "yaml",
	}
	result, output, err := handleExample(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.Nil(t, result)

	assert.Equal(t, "yaml", output.Format)
	assert.Contains(t, output.Payload, "name: <string>")
	assert.NotContains(t, output.Payload, "port")
}

func TestExampleTool_UnknownMode(t *testing.T) {
	input := exampleInput{
		Schema: schemaInput{Content: serviceSchema},
		Mode:   "partial",
	}
	result, _, err := handleExample(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.True(t, result.IsError)
}

func TestDetectDraftTool(t *testing.T) {
	cases := []struct {
		uri       string
		canonical string
		known     bool
		supported bool
	}{
		{"https://json-schema.org/draft/2020-12/schema", "2020-12", true, true},
		{"http://json-schema.org/draft-03/schema", "draft-03", true, false},
		{"https://example.com/custom", "", false, false},
	}

	for _, testCase := range cases {
		_, output, err := handleDetectDraft(context.Background(), &mcp.CallToolRequest{}, detectDraftInput{URI: testCase.uri})
		require.NoError(t, err)

		assert.Equal(t, testCase.canonical, output.Canonical)
		assert.Equal(t, testCase.known, output.Known)
		assert.Equal(t, testCase.supported, output.Supported)
	}
}
