package source

import (
	"testing"

	"github.com/cottonBuddha/SwiftLint/pkg/types"
	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	f := NewFile("test.swift", []byte("let a = 1\nlet b = 2\n"))

	tests := []struct {
		name   string
		offset int
		want   types.SourcePoint
		wantOK bool
	}{
		{"start of file", 0, types.SourcePoint{Line: 1, Column: 1}, true},
		{"middle of first line", 4, types.SourcePoint{Line: 1, Column: 5}, true},
		{"at first newline", 9, types.SourcePoint{Line: 1, Column: 10}, true},
		{"start of second line", 10, types.SourcePoint{Line: 2, Column: 1}, true},
		{"end of content", 20, types.SourcePoint{Line: 3, Column: 1}, true},
		{"negative offset", -1, types.SourcePoint{}, false},
		{"past end of content", 21, types.SourcePoint{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := f.Resolve(tt.offset)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveMatchesComputeLineColumn(t *testing.T) {
	content := []byte("foo(a: 1,\n    b: 2)\n\nbar()\n")
	f := NewFile("test.swift", content)

	for offset := 0; offset <= len(content); offset++ {
		line, col := types.ComputeLineColumn(content, offset)
		pt, ok := f.Resolve(offset)
		assert.True(t, ok, "offset %d", offset)
		assert.Equal(t, line, pt.Line, "offset %d", offset)
		assert.Equal(t, col, pt.Column, "offset %d", offset)
	}
}

func TestLine(t *testing.T) {
	f := NewFile("test.swift", []byte("first\nsecond\r\nthird"))

	assert.Equal(t, "first", f.Line(1))
	assert.Equal(t, "second", f.Line(2))
	assert.Equal(t, "third", f.Line(3))
	assert.Equal(t, "", f.Line(0))
	assert.Equal(t, "", f.Line(4))
	assert.Equal(t, 3, f.NumLines())
}

func TestEmptyFile(t *testing.T) {
	f := NewFile("empty.swift", nil)

	pt, ok := f.Resolve(0)
	assert.True(t, ok)
	assert.Equal(t, types.SourcePoint{Line: 1, Column: 1}, pt)
	assert.Equal(t, 1, f.NumLines())
}
