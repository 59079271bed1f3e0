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

// Command slicec is a thin command-line wrapper around the slicec
// compiler core. It contains no compiler logic of its own: it parses
// flags and an optional project file into a slicec.Options value, calls
// slicec.CompileFromSources, and renders the resulting diagnostics. File
// discovery (glob expansion) stays here too, keeping that concern out of
// the core.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

// exitWithCode is split out from main so it can be overridden in tests
// without calling os.Exit.
var exitWithCode = os.Exit

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}
