// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/compattab

// compattab generates the compiler support table for the README.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/jessevdk/go-flags"

	"github.com/woozymasta/compattab"
)

var (
	Version    = "dev"
	Commit     = "unknown"
	BuildTime  = time.Unix(0, 0)
	URL        = "https://github.com/woozymasta/compattab"
	_buildTime string
)

// cliOptions describes compattab CLI flags.
type cliOptions struct {
	ConfigPath string `short:"c" long:"config-path" description:"Path to the configuration file" default:"supported_compilers.json"`
	Verify     bool   `long:"verify" description:"Check that the generated compiler support table is present in the README instead of printing it"`
	ReadmePath string `long:"readme-path" description:"Path to the README checked in verify mode" default:"README.md"`
	Init       string `long:"init" description:"Print a skeleton configuration for the named compilers instead of a table" optional:"yes" optional-value:"json" choice:"json" choice:"yaml"`
	Version    bool   `short:"V" long:"version" description:"Print version information"`

	Args struct {
		Compilers []string `positional-arg-name:"compiler" description:"Compiler names used by --init"`
	} `positional-args:"yes"`
}

// cliRunner executes CLI operations with custom IO streams.
type cliRunner struct {
	stdout      io.Writer
	stderr      io.Writer
	programName string
}

func init() {
	if _buildTime != "" {
		if t, err := time.Parse(time.RFC3339, _buildTime); err == nil {
			BuildTime = t.UTC()
		}
	}
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes CLI logic and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	programName := strings.TrimSpace(os.Args[0])
	if programName == "" {
		programName = "compattab"
	}

	runner := cliRunner{
		programName: filepath.Base(programName),
		stdout:      stdout,
		stderr:      stderr,
	}

	return runner.run(args)
}

// run parses CLI args and dispatches the selected operation.
func (runner *cliRunner) run(args []string) int {
	options := &cliOptions{}
	parser := flags.NewParser(options, flags.HelpFlag)
	parser.Name = runner.programName
	parser.LongDescription = "Creates a Markdown table for the supported compilers from the configuration file."

	if _, err := parser.ParseArgs(args); err != nil {
		var flagErr *flags.Error
		if errors.As(err, &flagErr) && flagErr.Type == flags.ErrHelp {
			_, _ = fmt.Fprintln(runner.stdout, err.Error())
			return 0
		}

		_, _ = fmt.Fprintln(runner.stderr, err.Error())
		return 2
	}

	switch {
	case options.Version:
		runner.printVersionInfo()
		return 0
	case options.Init != "":
		return runner.runInit(options.Init, options.Args.Compilers)
	case options.Verify:
		return runner.runVerify(options.ConfigPath, options.ReadmePath)
	default:
		return runner.runGenerate(options.ConfigPath)
	}
}

// runGenerate prints the rendered table to stdout followed by a blank line.
func (runner *cliRunner) runGenerate(configPath string) int {
	table, ok := runner.loadTable(configPath)
	if !ok {
		return 1
	}

	_, _ = fmt.Fprintln(runner.stdout, table)
	return 0
}

// runVerify checks that every rendered table line is present in the README.
func (runner *cliRunner) runVerify(configPath, readmePath string) int {
	table, ok := runner.loadTable(configPath)
	if !ok {
		return 1
	}

	readme, err := os.ReadFile(readmePath)
	if err != nil {
		runner.printError("%s does not exist", readmePath)
		return 1
	}

	missing := compattab.Verify(table, compattab.SplitDocument(readme))
	if len(missing) == 0 {
		return 0
	}

	runner.printError("could not find the following lines in %s", readmePath)
	runner.printError("The first number is the line number of the generated markdown table.")
	for _, line := range missing {
		_, _ = fmt.Fprintf(runner.stdout, "%d: %s\n", line.Index, line.Line)
	}

	_, _ = fmt.Fprintln(runner.stdout)
	_, _ = fmt.Fprintf(runner.stdout, "Please check the configuration file %q\n", configPath)
	_, _ = fmt.Fprintf(runner.stdout, "Generate a new table with '%s -c %s'\n", runner.programName, configPath)
	_, _ = fmt.Fprintf(runner.stdout, "Copy the output into %s\n", readmePath)
	_, _ = fmt.Fprintf(runner.stdout, "Verify the README with '%s -c %s --verify'\n", runner.programName, configPath)
	return 1
}

// runInit prints a skeleton configuration for the named compilers.
func (runner *cliRunner) runInit(format string, compilers []string) int {
	data, err := compattab.Skeleton(compilers, compattab.SkeletonFormat(format))
	if err != nil {
		runner.printError("%s", err)
		return 1
	}

	_, _ = runner.stdout.Write(data)
	return 0
}

// loadTable reads, validates and renders the configured table. All failures
// are reported to stderr; no partial table is ever returned.
func (runner *cliRunner) loadTable(configPath string) (string, bool) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		runner.printError("%s does not exist", configPath)
		return "", false
	}

	conf, err := compattab.ParseConfig(data)
	if err != nil {
		runner.printError("%s", err)
		return "", false
	}

	if err := compattab.Validate(conf); err != nil {
		runner.printError("%s", err)
		return "", false
	}

	table, err := compattab.Render(conf)
	if err != nil {
		runner.printError("%s", err)
		return "", false
	}

	return table, true
}

// printError writes one red [ERROR] diagnostic line to stderr.
func (runner *cliRunner) printError(format string, args ...any) {
	_, _ = color.New(color.FgRed).Fprintf(runner.stderr, "[ERROR]: "+format+"\n", args...)
}

func (runner *cliRunner) printVersionInfo() {
	_, _ = fmt.Fprintf(runner.stdout, `url:      %s
file:     %s
version:  %s
commit:   %s
built:    %s
`, URL, os.Args[0], Version, Commit, BuildTime)
}
