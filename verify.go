// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/compattab

package compattab

import "strings"

// MissingLine is one rendered table line absent from the verified document.
type MissingLine struct {
	// Index is the zero-based line position inside the rendered table.
	Index int
	// Line is the literal rendered table line.
	Line string
}

// Verify reports every rendered table line that does not occur anywhere in
// the document lines. Each line is checked independently for membership, so
// the table does not have to appear as one contiguous block. The trailing
// empty element of the newline split participates in the check.
func Verify(table string, docLines []string) []MissingLine {
	present := make(map[string]struct{}, len(docLines))
	for _, line := range docLines {
		present[line] = struct{}{}
	}

	var missing []MissingLine
	for index, line := range strings.Split(table, "\n") {
		if _, ok := present[line]; !ok {
			missing = append(missing, MissingLine{Index: index, Line: line})
		}
	}

	return missing
}

// SplitDocument splits a document into lines with trailing whitespace
// removed, ready for Verify.
func SplitDocument(data []byte) []string {
	lines := strings.Split(normalizeLineEndings(string(data)), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}

	return lines
}

// normalizeLineEndings converts CRLF/CR to LF.
func normalizeLineEndings(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}
