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

package token

import "sort"

// File tracks the line-offset table for a single source file, so the lexer
// can hand out cheap byte offsets during scanning and convert them to
// human-readable line:column positions lazily, only when a diagnostic or
// AST node actually needs one rendered.
//
// Grounded on cue/token's File, with the concurrency-safety stripped: the
// compiler is single-threaded cooperative (spec §5), so there is never a
// second goroutine that could race on the line table.
type File struct {
	name    string
	content []byte
	lines   []int // byte offset of the first character of each line; lines[0] == 0
}

// NewFile creates a File for name with the given content. The line table is
// built eagerly since every subsequent Position call needs it.
func NewFile(name string, content []byte) *File {
	f := &File{name: name, content: content, lines: []int{0}}
	for i, b := range content {
		if b == '\n' && i+1 < len(content) {
			f.lines = append(f.lines, i+1)
		}
	}
	return f
}

// Name returns the file's path as given to NewFile.
func (f *File) Name() string { return f.name }

// Size returns the number of bytes in the file.
func (f *File) Size() int { return len(f.content) }

// Position converts a byte offset into a line:column Position clamped to
// the bounds of the file.
func (f *File) Position(offset int) Position {
	switch {
	case offset < 0:
		offset = 0
	case offset > len(f.content):
		offset = len(f.content)
	}
	// lines[i] is the offset of the first byte of line i+1; find the last
	// line whose start is <= offset.
	i := sort.Search(len(f.lines), func(i int) bool { return f.lines[i] > offset }) - 1
	if i < 0 {
		i = 0
	}
	return Position{
		Filename: f.name,
		Offset:   offset,
		Line:     i + 1,
		Column:   offset - f.lines[i] + 1,
	}
}

// Span builds a Span from a start/end byte offset pair.
func (f *File) Span(start, end int) Span {
	return Span{Start: f.Position(start), End: f.Position(end)}
}
