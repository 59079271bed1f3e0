// Copyright 2024 The Slice Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCLI invokes the root command with args, capturing stdout and the code
// passed to exitWithCode (overridden here so the test process survives).
func runCLI(t *testing.T, args ...string) (stdout string, code int) {
	t.Helper()
	origExit := exitWithCode
	exitCode := -1
	exitWithCode = func(c int) { exitCode = c }
	defer func() { exitWithCode = origExit }()

	cmd := newRootCommand()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())
	return buf.String(), exitCode
}

func TestCompileCmd_CleanCompileExitsZero(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.slice")
	writeFile(t, path, "module M { struct S { x: int32 } }")

	out, code := runCLI(t, "compile", path, "--no-color")
	assert.Equal(t, 0, code)
	assert.Empty(t, out)
}

func TestCompileCmd_ErrorExitsOneAndPrintsDiagnostic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.slice")
	writeFile(t, path, "module M { struct S { x: Bogus } }")

	out, code := runCLI(t, "compile", path, "--no-color")
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "E003")
	assert.Contains(t, out, "1 error")
}

func TestCompileCmd_JSONOutput(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.slice")
	writeFile(t, path, "module M { struct S { x: Bogus } }")

	out, code := runCLI(t, "compile", path, "--json")
	assert.Equal(t, 1, code)
	assert.Contains(t, out, `"error_code": "E003"`)
}

func TestCompileCmd_ProjectFileSuppliesSources(t *testing.T) {
	dir := t.TempDir()
	slicePath := filepath.Join(dir, "a.slice")
	writeFile(t, slicePath, "module M { struct S { x: int32 } }")

	projectPath := filepath.Join(dir, "slice.yaml")
	writeFile(t, projectPath, "sources:\n  - "+slicePath+"\n")

	out, code := runCLI(t, "compile", "--project", projectPath, "--no-color")
	assert.Equal(t, 0, code)
	assert.Empty(t, out)
}

func TestExpandGlobs_LiteralPathWithNoMatchPassesThrough(t *testing.T) {
	out, err := expandGlobs([]string{"/nonexistent/does-not-exist.slice"})
	require.NoError(t, err)
	assert.Equal(t, []string{"/nonexistent/does-not-exist.slice"}, out)
}

func TestExpandGlobs_GlobExpandsAndDeduplicates(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.slice")
	b := filepath.Join(dir, "b.slice")
	writeFile(t, a, "")
	writeFile(t, b, "")

	out, err := expandGlobs([]string{filepath.Join(dir, "*.slice"), a})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{a, b}, out)
}
