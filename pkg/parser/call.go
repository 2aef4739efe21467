// Package parser extracts function call sites and their argument
// layout from Swift source. It is a lightweight single-pass scanner,
// not a grammar: it tracks bracket nesting and skips string literals
// and comments, which is enough to recover argument offsets and
// closure body spans for layout rules.
package parser

import "github.com/cottonBuddha/SwiftLint/pkg/types"

// Call is one function or method invocation site.
type Call struct {
	// Offset is the byte offset of the callee identifier.
	Offset int

	// Length is the byte length of the whole call expression. When the
	// call uses trailing-closure syntax the length extends past the
	// closing parenthesis, so the call's source slice does not end
	// with ')'.
	Length int

	// Arguments in source order. A trailing closure is included as the
	// final argument.
	Arguments []Argument
}

// Argument is one positional or labeled argument of a Call.
type Argument struct {
	// Offset is the byte offset where the argument starts (the label
	// if present, otherwise the value).
	Offset int

	// Body is the span of the argument's closure literal, from the
	// opening brace through the closing brace. Nil when the argument's
	// value is not a closure literal.
	Body *types.OffsetSpan
}

// End returns the byte offset just past the call expression.
func (c Call) End() int {
	return c.Offset + c.Length
}
