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

package parser

import "strings"

// Preprocess runs the minimal C-style conditional-compilation pass over raw
// source bytes before lexing: "# if SYMBOL", "# elif SYMBOL", "# else" and
// "# endif" lines (one per line, optional space after '#') gate whether the
// lines between them are kept, based on membership in definitions
// (options.Definitions).
//
// Disabled regions are blanked out byte-for-byte (replaced with spaces,
// newlines preserved) rather than removed, so every surviving token keeps
// the exact line/column position it would have had in the original file.
func Preprocess(src []byte, definitions map[string]bool) []byte {
	lines := splitKeepingNewlines(src)
	out := make([]byte, 0, len(src))

	type frame struct {
		// wasTaken records whether this #if/#elif chain has already taken
		// a branch, so a later #elif/#else in the same chain is skipped
		// even if its own condition would hold.
		wasTaken bool
		// active is whether the *current* branch of this frame is live.
		active bool
		// parentActive is whether the enclosing frame was itself active,
		// since a directive nested inside a disabled region never takes
		// effect.
		parentActive bool
	}
	var stack []frame

	currentlyActive := func() bool {
		for _, f := range stack {
			if !f.active {
				return false
			}
		}
		return true
	}

	for _, line := range lines {
		trimmed := strings.TrimSpace(stripTrailingNewline(line))
		directive, arg, isDirective := parseDirectiveLine(trimmed)

		if !isDirective {
			if currentlyActive() {
				out = append(out, line...)
			} else {
				out = append(out, blankLine(line)...)
			}
			continue
		}

		parentActive := currentlyActive()
		switch directive {
		case "if":
			taken := parentActive && definitions[arg]
			stack = append(stack, frame{wasTaken: taken, active: taken, parentActive: parentActive})
		case "elif":
			if len(stack) == 0 {
				continue
			}
			top := &stack[len(stack)-1]
			if top.parentActive && !top.wasTaken && definitions[arg] {
				top.active = true
				top.wasTaken = true
			} else {
				top.active = false
			}
		case "else":
			if len(stack) == 0 {
				continue
			}
			top := &stack[len(stack)-1]
			top.active = top.parentActive && !top.wasTaken
			top.wasTaken = true
		case "endif":
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		}
		out = append(out, blankLine(line)...)
	}
	return out
}

// parseDirectiveLine recognizes "#if X", "#elif X", "#else" and "#endif",
// returning the directive name and (for if/elif) its argument symbol.
func parseDirectiveLine(trimmed string) (directive, arg string, ok bool) {
	if !strings.HasPrefix(trimmed, "#") {
		return "", "", false
	}
	rest := strings.TrimSpace(trimmed[1:])
	switch {
	case strings.HasPrefix(rest, "if "):
		return "if", strings.TrimSpace(rest[len("if "):]), true
	case strings.HasPrefix(rest, "elif "):
		return "elif", strings.TrimSpace(rest[len("elif "):]), true
	case rest == "else":
		return "else", "", true
	case rest == "endif":
		return "endif", "", true
	}
	return "", "", false
}

func splitKeepingNewlines(src []byte) [][]byte {
	var lines [][]byte
	start := 0
	for i, b := range src {
		if b == '\n' {
			lines = append(lines, src[start:i+1])
			start = i + 1
		}
	}
	if start < len(src) {
		lines = append(lines, src[start:])
	}
	return lines
}

func stripTrailingNewline(line []byte) string {
	s := string(line)
	s = strings.TrimSuffix(s, "\n")
	s = strings.TrimSuffix(s, "\r")
	return s
}

// blankLine replaces every non-newline byte of line with a space, keeping
// its length (and therefore every later byte offset) identical.
func blankLine(line []byte) []byte {
	out := make([]byte, len(line))
	for i, b := range line {
		if b == '\n' || b == '\r' {
			out[i] = b
		} else {
			out[i] = ' '
		}
	}
	return out
}
