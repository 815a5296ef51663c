// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/compattab

/*
Package compattab renders the accelerator back-end compatibility table for
compiler support documentation.

The package turns a small JSON (or YAML) configuration keyed by compiler
name into a deterministic, byte-exact markdown pipe table, and can verify
that an existing README already contains every line of that table.

Render a table from a configuration file:

	table, err := compattab.RenderFile("supported_compilers.json")
	if err != nil {
		return err
	}

	fmt.Println(table)

Parse, validate and render step by step:

	conf, err := compattab.ParseConfig(data)
	if err != nil {
		return err
	}

	if err := compattab.Validate(conf); err != nil {
		return err
	}

	table, err := compattab.Render(conf)
	if err != nil {
		return err
	}

Verify that a README contains the rendered table:

	missing := compattab.Verify(table, compattab.SplitDocument(readmeBytes))
	for _, line := range missing {
		fmt.Printf("%d: %s\n", line.Index, line.Line)
	}

Generate a starter configuration for new compilers:

	data, err := compattab.Skeleton([]string{"GCC", "Clang"}, compattab.SkeletonFormatJSON)
	if err != nil {
		return err
	}

	fmt.Print(string(data))
*/
package compattab
