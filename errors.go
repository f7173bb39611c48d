// SPDX-License-Identifier: MIT
// Copyright (c) 2026 mdocgen
// Source: github.com/mdocgen/schemamd

package schemamd

import "errors"

var (
	// ErrUnsupportedType is returned when the `type` keyword holds something
	// other than a string, a list of strings, or nothing.
	ErrUnsupportedType = errors.New("unsupported value for type keyword")
	// ErrUnsupportedContainer is returned when schema cleaning receives a
	// container that is neither a mapping nor a sequence.
	ErrUnsupportedContainer = errors.New("unsupported schema container type")
	// ErrMissingKeyword is returned when a walker helper is invoked for a
	// keyword that is not present in the schema node.
	ErrMissingKeyword = errors.New("structural keyword not present")
	// ErrUnsupportedKeyword is returned when a walker helper is invoked for a
	// keyword that introduces no sub-schemas.
	ErrUnsupportedKeyword = errors.New("unsupported structural keyword")
	// ErrDecodeSchema is returned when schema JSON/YAML decoding fails.
	ErrDecodeSchema = errors.New("decode schema")
	// ErrSchemaRootType is returned when schema root is not a mapping.
	ErrSchemaRootType = errors.New("schema root must be a mapping")
	// ErrReadSchemaFile is returned when schema file loading fails.
	ErrReadSchemaFile = errors.New("read schema file")
	// ErrReadDataFile is returned when embedded package data loading fails.
	ErrReadDataFile = errors.New("read package data file")
	// ErrExecuteMarkdownTemplate is returned when markdown template execution fails.
	ErrExecuteMarkdownTemplate = errors.New("execute markdown template")
	// ErrUnknownBuiltinTemplate is returned when requested built-in template name is not registered.
	ErrUnknownBuiltinTemplate = errors.New("unknown built-in template")
	// ErrReadBuiltinTemplate is returned when built-in template file loading fails.
	ErrReadBuiltinTemplate = errors.New("read built-in template")
	// ErrParseBuiltinTemplate is returned when built-in template parsing fails.
	ErrParseBuiltinTemplate = errors.New("parse built-in template")
	// ErrUnknownExampleMode is returned when example generation mode is not supported.
	ErrUnknownExampleMode = errors.New("unknown example mode")
	// ErrUnknownExampleFormat is returned when example generation format is not supported.
	ErrUnknownExampleFormat = errors.New("unknown example format")
	// ErrEncodeExampleJSON is returned when generated example JSON encoding fails.
	ErrEncodeExampleJSON = errors.New("encode example json")
	// ErrEncodeExampleYAML is returned when generated example YAML encoding fails.
	ErrEncodeExampleYAML = errors.New("encode example yaml")
)
