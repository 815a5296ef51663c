// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/compattab

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// backendKeys is the expected back-end column set of the configuration format.
var backendKeys = []string{
	"serial", "OMPblock", "OMPthread", "thread", "tbb",
	"CUDAnvcc", "CUDAclang", "hip", "sycl",
}

// configFixtureJSON builds a full two-compiler configuration document.
func configFixtureJSON() string {
	var out strings.Builder
	out.WriteString("{\n")

	for i, compiler := range []string{"GCC", "Clang"} {
		if i > 0 {
			out.WriteString(",\n")
		}

		out.WriteString("  \"" + compiler + "\": {\n")
		for j, key := range backendKeys {
			if j > 0 {
				out.WriteString(",\n")
			}

			entry := "{ \"state\": \"yes\" }"
			if key == "tbb" {
				entry = "{ \"state\": \"no\", \"comment\": \"planned\" }"
			}

			out.WriteString("    \"" + key + "\": " + entry)
		}

		out.WriteString("\n  }")
	}

	out.WriteString("\n}\n")
	return out.String()
}

// writeConfigFixture stores a valid configuration file in a temp directory.
func writeConfigFixture(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "supported_compilers.json")
	if err := os.WriteFile(path, []byte(configFixtureJSON()), 0o600); err != nil {
		t.Fatalf("write config fixture: %v", err)
	}

	return path
}

func TestRunGenerateWritesTable(t *testing.T) {
	t.Parallel()

	configPath := writeConfigFixture(t)
	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"-c", configPath}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run exit code = %d, stderr: %s", code, stderr.String())
	}

	output := stdout.String()
	if !strings.Contains(output, "Accelerator Back-end") {
		t.Fatalf("stdout does not contain table header: %s", output)
	}

	if !strings.Contains(output, "❌ planned") {
		t.Fatalf("stdout does not contain commented cell: %s", output)
	}

	if !strings.HasSuffix(output, "|\n\n") {
		t.Fatalf("table is not followed by a blank line: %q", output)
	}
}

func TestRunGenerateMissingConfig(t *testing.T) {
	t.Parallel()

	missingPath := filepath.Join(t.TempDir(), "nope.json")
	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"-c", missingPath}, &stdout, &stderr)
	if code != 1 {
		t.Fatalf("run exit code = %d, want 1", code)
	}

	if !strings.Contains(stderr.String(), "does not exist") {
		t.Fatalf("stderr does not report missing config: %s", stderr.String())
	}

	if stdout.Len() != 0 {
		t.Fatalf("stdout should be empty on missing config: %s", stdout.String())
	}
}

func TestRunGenerateValidationFailure(t *testing.T) {
	t.Parallel()

	broken := strings.Replace(configFixtureJSON(), `"tbb"`, `"tbbX"`, 1)
	configPath := filepath.Join(t.TempDir(), "broken.json")
	if err := os.WriteFile(configPath, []byte(broken), 0o600); err != nil {
		t.Fatalf("write broken config: %v", err)
	}

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"-c", configPath}, &stdout, &stderr)
	if code != 1 {
		t.Fatalf("run exit code = %d, want 1", code)
	}

	for _, fragment := range []string{"GCC", "tbb"} {
		if !strings.Contains(stderr.String(), fragment) {
			t.Fatalf("stderr %q does not name %q", stderr.String(), fragment)
		}
	}

	if stdout.Len() != 0 {
		t.Fatalf("no partial table may be printed on validation failure: %s", stdout.String())
	}
}

func TestRunVerifySucceedsWhenTablePresent(t *testing.T) {
	t.Parallel()

	configPath := writeConfigFixture(t)

	var generated bytes.Buffer
	var stderr bytes.Buffer
	if code := run([]string{"-c", configPath}, &generated, &stderr); code != 0 {
		t.Fatalf("generate exit code = %d, stderr: %s", code, stderr.String())
	}

	readmePath := filepath.Join(t.TempDir(), "README.md")
	readme := "# Project\n\nSupported compilers:\n\n" + generated.String() + "\nMore prose.\n"
	if err := os.WriteFile(readmePath, []byte(readme), 0o600); err != nil {
		t.Fatalf("write README: %v", err)
	}

	var stdout bytes.Buffer
	stderr.Reset()
	code := run([]string{"-c", configPath, "--verify", "--readme-path", readmePath}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("verify exit code = %d, stdout: %s, stderr: %s", code, stdout.String(), stderr.String())
	}

	if stdout.Len() != 0 {
		t.Fatalf("successful verify should print nothing: %s", stdout.String())
	}
}

func TestRunVerifyReportsMissingLines(t *testing.T) {
	t.Parallel()

	configPath := writeConfigFixture(t)

	var generated bytes.Buffer
	var stderr bytes.Buffer
	if code := run([]string{"-c", configPath}, &generated, &stderr); code != 0 {
		t.Fatalf("generate exit code = %d, stderr: %s", code, stderr.String())
	}

	// Drop the last body row (table line index 3) from the README copy.
	lines := strings.Split(generated.String(), "\n")
	droppedLine := lines[3]
	readme := strings.Join(append(append([]string{}, lines[:3]...), lines[4:]...), "\n")

	readmePath := filepath.Join(t.TempDir(), "README.md")
	if err := os.WriteFile(readmePath, []byte(readme), 0o600); err != nil {
		t.Fatalf("write README: %v", err)
	}

	var stdout bytes.Buffer
	stderr.Reset()
	code := run([]string{"-c", configPath, "--verify", "--readme-path", readmePath}, &stdout, &stderr)
	if code != 1 {
		t.Fatalf("verify exit code = %d, want 1", code)
	}

	if !strings.Contains(stderr.String(), "could not find the following lines") {
		t.Fatalf("stderr does not report verification failure: %s", stderr.String())
	}

	if !strings.Contains(stdout.String(), "3: "+droppedLine) {
		t.Fatalf("stdout does not report the dropped line with its index: %s", stdout.String())
	}

	if !strings.Contains(stdout.String(), "Please check the configuration file") {
		t.Fatalf("stdout does not contain regeneration guidance: %s", stdout.String())
	}
}

func TestRunVerifyMissingReadme(t *testing.T) {
	t.Parallel()

	configPath := writeConfigFixture(t)
	missingReadme := filepath.Join(t.TempDir(), "README.md")

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"-c", configPath, "--verify", "--readme-path", missingReadme}, &stdout, &stderr)
	if code != 1 {
		t.Fatalf("verify exit code = %d, want 1", code)
	}

	if !strings.Contains(stderr.String(), "does not exist") {
		t.Fatalf("stderr does not report missing README: %s", stderr.String())
	}
}

func TestRunInitSkeletonJSON(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"--init", "GCC", "Clang"}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("init exit code = %d, stderr: %s", code, stderr.String())
	}

	configPath := filepath.Join(t.TempDir(), "skeleton.json")
	if err := os.WriteFile(configPath, stdout.Bytes(), 0o600); err != nil {
		t.Fatalf("write skeleton: %v", err)
	}

	var generated bytes.Buffer
	stderr.Reset()
	if code := run([]string{"-c", configPath}, &generated, &stderr); code != 0 {
		t.Fatalf("generate from skeleton exit code = %d, stderr: %s", code, stderr.String())
	}

	for _, name := range []string{"GCC", "Clang"} {
		if !strings.Contains(generated.String(), "| "+name) {
			t.Fatalf("skeleton table misses row for %s: %s", name, generated.String())
		}
	}
}

func TestRunInitSkeletonYAML(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"--init=yaml", "GCC"}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("init exit code = %d, stderr: %s", code, stderr.String())
	}

	if !strings.Contains(stdout.String(), "GCC:") {
		t.Fatalf("YAML skeleton misses compiler mapping: %s", stdout.String())
	}

	if !strings.Contains(stdout.String(), "state: none") {
		t.Fatalf("YAML skeleton misses state entries: %s", stdout.String())
	}
}

func TestRunVersion(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"--version"}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("version exit code = %d, stderr: %s", code, stderr.String())
	}

	if !strings.Contains(stdout.String(), "version:") {
		t.Fatalf("version output missing version field: %s", stdout.String())
	}
}

func TestRunHelpExitsZero(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"--help"}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("help exit code = %d", code)
	}

	if !strings.Contains(stdout.String(), "Usage") {
		t.Fatalf("help output missing usage text: %s", stdout.String())
	}
}

func TestRunUnknownFlagFails(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"--bogus"}, &stdout, &stderr)
	if code != 2 {
		t.Fatalf("unknown flag exit code = %d, want 2", code)
	}

	if stderr.Len() == 0 {
		t.Fatal("stderr should describe the flag error")
	}
}
