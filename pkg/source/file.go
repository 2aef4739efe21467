// Package source models Swift source files and resolves byte offsets
// to line/column positions.
package source

import (
	"bytes"
	"sort"

	"github.com/cottonBuddha/SwiftLint/pkg/types"
)

// File is an immutable source file snapshot with a line index.
type File struct {
	path       string
	content    []byte
	lineStarts []int // byte offset of the first character of each line
}

// NewFile creates a File from raw content. The content is not copied;
// callers must not mutate it while the File is in use.
func NewFile(path string, content []byte) *File {
	starts := []int{0}
	for i, b := range content {
		if b == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &File{
		path:       path,
		content:    content,
		lineStarts: starts,
	}
}

// Path returns the file path the content was loaded from.
func (f *File) Path() string {
	return f.path
}

// Content returns the raw file content.
func (f *File) Content() []byte {
	return f.content
}

// Resolve maps a byte offset to a 1-based line:column position.
// Offsets in [0, len(content)] are valid; the offset one past the end
// resolves to the position just after the last character. Returns
// ok=false for offsets outside that range.
func (f *File) Resolve(offset int) (types.SourcePoint, bool) {
	if offset < 0 || offset > len(f.content) {
		return types.SourcePoint{}, false
	}

	// Index of the last line start <= offset.
	idx := sort.SearchInts(f.lineStarts, offset+1) - 1
	return types.SourcePoint{
		Line:   idx + 1,
		Column: offset - f.lineStarts[idx] + 1,
	}, true
}

// NumLines returns the number of lines in the file. A trailing newline
// starts a final empty line, matching editor line numbering.
func (f *File) NumLines() int {
	return len(f.lineStarts)
}

// LineSpan returns the byte span of the 1-based line n, excluding the
// newline. Returns ok=false for out-of-range line numbers.
func (f *File) LineSpan(n int) (types.OffsetSpan, bool) {
	if n < 1 || n > len(f.lineStarts) {
		return types.OffsetSpan{}, false
	}
	start := f.lineStarts[n-1]
	end := len(f.content)
	if n < len(f.lineStarts) {
		end = f.lineStarts[n] - 1
	}
	return types.OffsetSpan{Start: start, End: end}, true
}

// Line returns the content of the 1-based line n without its newline.
// Returns an empty string for out-of-range line numbers.
func (f *File) Line(n int) string {
	if n < 1 || n > len(f.lineStarts) {
		return ""
	}
	start := f.lineStarts[n-1]
	end := len(f.content)
	if n < len(f.lineStarts) {
		end = f.lineStarts[n] - 1
	}
	return string(bytes.TrimSuffix(f.content[start:end], []byte("\r")))
}
