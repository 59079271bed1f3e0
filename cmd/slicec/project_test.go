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
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadProjectFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "slice.yaml")
	writeFile(t, path, `
sources:
  - a.slice
  - b.slice
references:
  - ref.slice
definitions:
  - FOO
allowedWarnings:
  - W001
`)

	proj, err := loadProjectFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.slice", "b.slice"}, proj.Sources)
	assert.Equal(t, []string{"ref.slice"}, proj.References)
	assert.Equal(t, []string{"FOO"}, proj.Definitions)
	assert.Equal(t, []string{"W001"}, proj.AllowedWarnings)
}

func TestLoadProjectFile_MissingFile(t *testing.T) {
	_, err := loadProjectFile("/nonexistent/slice.yaml")
	assert.Error(t, err)
}

func TestMergeProject_ExplicitFlagsWinOverProjectFile(t *testing.T) {
	proj := &projectFile{
		Sources:         []string{"proj-a.slice"},
		References:      []string{"proj-ref.slice"},
		Definitions:     []string{"PROJ_DEF"},
		AllowedWarnings: []string{"W002"},
	}

	sources, references, definitions, allowed := mergeProject(proj, []string{"cli-a.slice"}, nil, nil, nil)
	assert.Equal(t, []string{"cli-a.slice"}, sources)
	assert.Equal(t, []string{"proj-ref.slice"}, references)
	assert.Equal(t, []string{"PROJ_DEF"}, definitions)
	assert.Equal(t, []string{"W002"}, allowed)
}

func TestFirstNonEmpty(t *testing.T) {
	assert.Equal(t, []string{"flag"}, firstNonEmpty([]string{"flag"}, []string{"project"}))
	assert.Equal(t, []string{"project"}, firstNonEmpty(nil, []string{"project"}))
	assert.Nil(t, firstNonEmpty(nil, nil))
}
