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
	"os"

	"gopkg.in/yaml.v3"
)

// projectFile is the decoded shape of a "slice.yaml" project file: an
// ambient configuration layer with no effect on the core's own semantics.
type projectFile struct {
	Sources         []string `yaml:"sources"`
	References      []string `yaml:"references"`
	Definitions     []string `yaml:"definitions"`
	AllowedWarnings []string `yaml:"allowedWarnings"`
}

// loadProjectFile decodes path with yaml.v3. A missing --project flag
// means this is never called; a present-but-unreadable file is a real
// error the caller should surface.
func loadProjectFile(path string) (*projectFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var p projectFile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// mergeProject layers flagValues over the project file's values: an
// explicitly given flag always wins over the project file.
func mergeProject(p *projectFile, sources, references, definitions, allowedWarnings []string) (mSources, mReferences, mDefinitions, mAllowed []string) {
	mSources = firstNonEmpty(sources, p.Sources)
	mReferences = firstNonEmpty(references, p.References)
	mDefinitions = firstNonEmpty(definitions, p.Definitions)
	mAllowed = firstNonEmpty(allowedWarnings, p.AllowedWarnings)
	return
}

func firstNonEmpty(flagValue, projectValue []string) []string {
	if len(flagValue) > 0 {
		return flagValue
	}
	return projectValue
}
