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

	"github.com/bmatcuk/doublestar/v4"
	"github.com/kr/pretty"
	"github.com/spf13/cobra"

	slicec "github.com/InsertCreativityHere/slicec-go"
	"github.com/InsertCreativityHere/slicec-go/internal/render"
)

// newCompileCommand builds "slicec compile", mapping 1:1 onto the Options
// fields slicec.Options defines.
func newCompileCommand() *cobra.Command {
	var (
		references      []string
		definitions     []string
		warnAsError     bool
		allowedWarnings []string
		jsonOutput      bool
		noColor         bool
		outputDir       string
		projectPath     string
		dumpAST         bool
	)

	cmd := &cobra.Command{
		Use:   "compile <sources...>",
		Short: "Compile Slice source files",
		RunE: func(cmd *cobra.Command, args []string) error {
			sources := args
			if projectPath != "" {
				proj, err := loadProjectFile(projectPath)
				if err != nil {
					return err
				}
				sources, references, definitions, allowedWarnings = mergeProject(proj, sources, references, definitions, allowedWarnings)
			}

			sourcePaths, err := expandGlobs(sources)
			if err != nil {
				return err
			}
			referencePaths, err := expandGlobs(references)
			if err != nil {
				return err
			}

			opts := slicec.Options{
				Sources:         sourcePaths,
				References:      referencePaths,
				Definitions:     definitions,
				WarnAsError:     warnAsError,
				AllowedWarnings: allowedWarnings,
				DisableColor:    noColor,
				OutputDir:       outputDir,
			}
			if jsonOutput {
				opts.DiagnosticFormat = slicec.JSON
			}

			state, err := slicec.CompileFromSources(opts)
			if err != nil {
				return err
			}

			if jsonOutput {
				if err := render.JSON(cmd.OutOrStdout(), state.Diagnostics); err != nil {
					return err
				}
			} else {
				color := !noColor && isTerminal(os.Stdout)
				render.Human(cmd.OutOrStdout(), state.Diagnostics, color)
				render.Summary(cmd.OutOrStdout(), state.Diagnostics)
			}

			if dumpAST {
				pretty.Fprintf(cmd.OutOrStdout(), "%# v\n", state.AST.TopLevelModules)
			}

			exitWithCode(state.ExitCode)
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&references, "reference", nil, "reference file or glob, parsed and validated but excluded from generation")
	cmd.Flags().StringArrayVarP(&definitions, "define", "D", nil, "preprocessor symbol to define")
	cmd.Flags().BoolVar(&warnAsError, "warn-as-error", false, "treat warnings as errors")
	cmd.Flags().StringSliceVar(&allowedWarnings, "allow", nil, "warning code to suppress (or \"All\")")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "emit diagnostics as JSON")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable ANSI color in human-readable output")
	cmd.Flags().StringVar(&outputDir, "output-dir", "", "directory for generator output (unused by the core itself)")
	cmd.Flags().StringVar(&projectPath, "project", "", "slice.yaml project file")
	cmd.Flags().BoolVar(&dumpAST, "dump-ast", false, "pretty-print the resolved AST after compiling")

	return cmd
}

// expandGlobs expands every "**"-glob pattern in patterns with
// doublestar, deduplicating the result; a pattern with no match expands to
// itself so a plain, non-glob path still reaches the core even if the
// file does not (yet) exist, letting the core's own IO-error diagnostic
// fire instead of silently dropping the input.
func expandGlobs(patterns []string) ([]string, error) {
	seen := map[string]bool{}
	var out []string
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, err
		}
		if len(matches) == 0 {
			matches = []string{pattern}
		}
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				out = append(out, m)
			}
		}
	}
	return out, nil
}
