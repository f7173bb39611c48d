// SPDX-License-Identifier: MIT
// Copyright (c) 2026 mdocgen
// Source: github.com/mdocgen/schemamd

package schemamd

import (
	"os"
	"path/filepath"
	"testing"
)

// BenchmarkParseDocument measures schema decoding and normalization cost.
func BenchmarkParseDocument(b *testing.B) {
	schemaBytes := readBenchmarkFile(b, filepath.Join("testdata", "schema.fixture.json"))

	b.ReportAllocs()
	b.SetBytes(int64(len(schemaBytes)))

	for i := 0; i < b.N; i++ {
		if _, err := parseDocument(schemaBytes); err != nil {
			b.Fatalf("parseDocument: %v", err)
		}
	}
}

// BenchmarkRenderListTemplate measures full in-memory render flow.
func BenchmarkRenderListTemplate(b *testing.B) {
	schemaPath := filepath.Join("testdata", "schema.fixture.json")
	schemaBytes := readBenchmarkFile(b, schemaPath)

	options := Options{
		Title:        "schema reference",
		SourcePath:   schemaPath,
		TemplateName: "list",
	}

	b.ReportAllocs()
	b.SetBytes(int64(len(schemaBytes)))

	for i := 0; i < b.N; i++ {
		if _, err := Render(schemaBytes, options); err != nil {
			b.Fatalf("Render: %v", err)
		}
	}
}

// BenchmarkGenerateExampleJSON measures example payload generation cost.
func BenchmarkGenerateExampleJSON(b *testing.B) {
	schemaBytes := readBenchmarkFile(b, filepath.Join("testdata", "schema.fixture.json"))

	b.ReportAllocs()
	b.SetBytes(int64(len(schemaBytes)))

	for i := 0; i < b.N; i++ {
		if _, err := GenerateExampleJSON(schemaBytes, ExampleModeAll); err != nil {
			b.Fatalf("GenerateExampleJSON: %v", err)
		}
	}
}

// readBenchmarkFile loads benchmark fixture file and fails benchmark on read errors.
func readBenchmarkFile(b *testing.B, path string) []byte {
	b.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		b.Fatalf("read benchmark file %q: %v", path, err)
	}

	if len(data) == 0 {
		b.Fatalf("empty benchmark file: %s", path)
	}

	return data
}
