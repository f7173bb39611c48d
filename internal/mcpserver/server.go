// SPDX-License-Identifier: MIT
// Copyright (c) 2026 mdocgen
// Source: github.com/mdocgen/schemamd

// Package mcpserver implements an MCP (Model Context Protocol) server that
// exposes schemamd capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"
	"fmt"
	"io"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `schemamd MCP server — renders CommonMark documentation and example payloads from JSON Schema documents.

Tools:
- render: convert a schema (JSON or YAML) into a markdown reference document
- example: generate a JSON or YAML example payload that satisfies the schema shape
- detect_draft: report which JSON Schema draft a $schema URI names and whether it is supported

Schemas are passed either by file path or inline content; exactly one of the two must be set.`

// Options configures the MCP server run.
type Options struct {
	// Version is reported to clients during the MCP handshake.
	Version string
	// Stderr receives server diagnostics. Unused streams may be nil.
	Stderr io.Writer
}

// Run starts the MCP server over stdio and blocks until the client
// disconnects or the context is cancelled.
func Run(ctx context.Context, opt Options) error {
	version := opt.Version
	if version == "" {
		version = "dev"
	}

	server := mcp.NewServer(
		&mcp.Implementation{Name: "schemamd", Version: version},
		&mcp.ServerOptions{Instructions: serverInstructions},
	)
	registerAllTools(server)

	if opt.Stderr != nil {
		fmt.Fprintf(opt.Stderr, "schemamd %s: MCP server listening on stdio\n", version)
	}

	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "render",
		Description: "Render a JSON Schema document (JSON or YAML) into CommonMark markdown. Sections are generated per schema node; nested sub-schemas beyond max_nesting get their own sections. Use example_mode to embed a generated example payload in the root section.",
	}, handleRender)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "example",
		Description: "Generate an example payload that satisfies the schema shape. Mode 'all' fills every declared property, 'required' only required ones. Format 'yaml' annotates keys with schema titles and descriptions as comments.",
	}, handleExample)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "detect_draft",
		Description: "Detect which JSON Schema draft a $schema URI names and whether schemamd fully supports its vocabulary.",
	}, handleDetectDraft)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
