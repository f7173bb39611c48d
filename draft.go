// SPDX-License-Identifier: MIT
// Copyright (c) 2026 mdocgen
// Source: github.com/mdocgen/schemamd

package schemamd

import (
	"regexp"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// DraftInfo describes the JSON Schema draft declared by a document's
// $schema URI.
type DraftInfo struct {
	// Canonical is the short draft name, e.g. "2020-12" or "draft-07".
	// Empty when the URI names no known draft.
	Canonical string

	// Supported reports whether the renderer handles the draft's
	// vocabulary in full.
	Supported bool
}

var draftSegment = regexp.MustCompile(`(^|/)(\d{4}-\d{2}|draft-\d{2}|draft-\d)(/|$)`)

var loadDrafts = sync.OnceValues(func() (map[string]bool, error) {
	content, err := Datafile("drafts.yaml")
	if err != nil {
		return nil, err
	}

	drafts := map[string]bool{}
	if err := yaml.Unmarshal([]byte(content), &drafts); err != nil {
		return nil, err
	}

	return drafts, nil
})

// DetectDraft inspects a $schema URI and reports the JSON Schema draft it
// names. Unknown or empty URIs yield a zero DraftInfo.
func DetectDraft(uri string) DraftInfo {
	name := canonicalDraftName(uri)
	if name == "" {
		return DraftInfo{}
	}

	drafts, err := loadDrafts()
	if err != nil {
		return DraftInfo{}
	}

	supported, known := drafts[name]
	if !known {
		return DraftInfo{}
	}

	return DraftInfo{Canonical: name, Supported: supported}
}

// canonicalDraftName extracts the short draft name from a $schema URI.
func canonicalDraftName(uri string) string {
	trimmed := strings.ToLower(strings.TrimSpace(uri))
	trimmed = strings.TrimSuffix(trimmed, "#")
	trimmed = strings.TrimSuffix(trimmed, "/")
	if trimmed == "" {
		return ""
	}

	match := draftSegment.FindStringSubmatch(trimmed)
	if match == nil {
		return ""
	}

	name := match[2]
	// Single-digit legacy drafts are stored zero-padded.
	if strings.HasPrefix(name, "draft-") && len(name) == len("draft-0") {
		name = "draft-0" + strings.TrimPrefix(name, "draft-")
	}

	return name
}
