// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/compattab

package compattab

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"
)

// RenderFile reads the configuration file, validates it and renders the
// markdown table.
func RenderFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrReadConfigFile, err)
	}

	conf, err := ParseConfig(data)
	if err != nil {
		return "", err
	}

	if err := Validate(conf); err != nil {
		return "", err
	}

	return Render(conf)
}

// Render produces the markdown compatibility table for a validated
// configuration. Output is deterministic: one header row, one separator row
// and one row per compiler, every line newline-terminated, every cell padded
// to the widest cell of its column.
func Render(conf Configuration) (string, error) {
	columns, err := buildColumns(conf)
	if err != nil {
		return "", err
	}

	widths := columnWidths(columns)

	var out strings.Builder
	writeRow(&out, columns, widths, 0)
	writeSeparator(&out, widths)
	for row := 1; row < len(columns[0]); row++ {
		writeRow(&out, columns, widths, row)
	}

	return out.String(), nil
}

// buildColumns assembles the column-major cell grid: the row-label column
// first, then one cell column per expected back-end.
func buildColumns(conf Configuration) ([][]string, error) {
	columns := make([][]string, 0, len(expectedBackends)+1)

	labels := make([]string, 0, len(conf)+1)
	labels = append(labels, rowLabelHeading)
	for _, compiler := range conf {
		labels = append(labels, compiler.Name)
	}

	columns = append(columns, labels)

	for _, backend := range expectedBackends {
		column := make([]string, 0, len(conf)+1)
		column = append(column, backend.Label)
		for _, compiler := range conf {
			cell, err := renderCell(compiler, backend)
			if err != nil {
				return nil, err
			}

			column = append(column, cell)
		}

		columns = append(columns, column)
	}

	return columns, nil
}

// renderCell renders the state glyph plus optional comment for one
// compiler/back-end pair.
func renderCell(compiler Compiler, backend Backend) (string, error) {
	status := compiler.Backends[backend.Key]

	state := ""
	if status.State != nil {
		state = *status.State
	}

	cell, ok := Status(state).Glyph()
	if !ok {
		return "", fmt.Errorf("%w: %s/%s/state unknown state: %s", ErrUnknownState, compiler.Name, backend.Key, state)
	}

	if status.Comment != nil {
		cell += " " + *status.Comment
	}

	return cell, nil
}

// columnWidths returns the widest cell rune count per column.
func columnWidths(columns [][]string) []int {
	widths := make([]int, len(columns))
	for i, column := range columns {
		for _, cell := range column {
			if n := utf8.RuneCountInString(cell); n > widths[i] {
				widths[i] = n
			}
		}
	}

	return widths
}

// writeRow emits one table row with every cell left-justified to its column
// width.
func writeRow(out *strings.Builder, columns [][]string, widths []int, row int) {
	out.WriteString("|")
	for i, column := range columns {
		cell := column[row]
		out.WriteString(" ")
		out.WriteString(cell)
		out.WriteString(strings.Repeat(" ", widths[i]-utf8.RuneCountInString(cell)))
		out.WriteString(" |")
	}

	out.WriteString("\n")
}

// writeSeparator emits the header separator row: width+2 dashes per column.
func writeSeparator(out *strings.Builder, widths []int) {
	out.WriteString("|")
	for _, width := range widths {
		out.WriteString(strings.Repeat("-", width+2))
		out.WriteString("|")
	}

	out.WriteString("\n")
}
