// SPDX-License-Identifier: MIT
// Copyright (c) 2026 mdocgen
// Source: github.com/mdocgen/schemamd

package schemamd

import (
	"embed"
	"fmt"
	"sync"
)

//go:embed data/*
var dataFS embed.FS

var datafileCache sync.Map // name -> string

// Datafile returns the contents of a bundled data file by name. Contents
// are cached after the first read so repeated lookups stay cheap.
func Datafile(name string) (string, error) {
	if cached, ok := datafileCache.Load(name); ok {
		return cached.(string), nil
	}

	raw, err := dataFS.ReadFile("data/" + name)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %w", ErrReadDataFile, name, err)
	}

	content := string(raw)
	datafileCache.Store(name, content)

	return content, nil
}
