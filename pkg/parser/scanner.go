package parser

import "github.com/cottonBuddha/SwiftLint/pkg/types"

// swiftKeywords are identifiers that precede '(' without being a call.
var swiftKeywords = map[string]bool{
	"if": true, "else": true, "guard": true, "while": true, "for": true,
	"repeat": true, "switch": true, "case": true, "return": true,
	"throw": true, "defer": true, "do": true, "catch": true,
	"where": true, "in": true, "as": true, "is": true, "try": true,
	"deinit": true, "subscript": true, "func": true,
}

// controlKeywords introduce a statement whose body brace must not be
// mistaken for a trailing closure of a call in the condition.
var controlKeywords = map[string]bool{
	"if": true, "guard": true, "while": true, "switch": true,
	"for": true, "in": true, "catch": true, "repeat": true,
}

// ExtractCalls scans content and returns every call site it can
// recover, outermost and nested alike, in source order of the
// opening parenthesis.
func ExtractCalls(content []byte) []Call {
	var calls []Call
	for i := 0; i < len(content); i++ {
		c := content[i]
		switch {
		case c == '/' && i+1 < len(content) && content[i+1] == '/':
			i = skipLineComment(content, i) - 1
		case c == '/' && i+1 < len(content) && content[i+1] == '*':
			i = skipBlockComment(content, i) - 1
		case c == '"':
			i = skipString(content, i) - 1
		case c == '(':
			identStart, ok := callIdentifier(content, i)
			if !ok {
				continue
			}
			if call, ok := parseCall(content, identStart, i); ok {
				calls = append(calls, call)
			}
		}
	}
	return calls
}

// callIdentifier locates the callee identifier ending at parenPos.
// Returns ok=false when the parenthesis is grouping, a tuple, a
// declaration parameter list, or follows a keyword.
func callIdentifier(content []byte, parenPos int) (int, bool) {
	j := parenPos - 1
	if j < 0 || !isIdentByte(content[j]) {
		return 0, false
	}
	for j >= 0 && isIdentByte(content[j]) {
		j--
	}
	start := j + 1
	if content[start] >= '0' && content[start] <= '9' {
		return 0, false
	}

	ident := string(content[start:parenPos])
	if ident == "init" {
		// init(...) is a declaration unless invoked as .init or super.init.
		if start == 0 || content[start-1] != '.' {
			return 0, false
		}
	} else if swiftKeywords[ident] {
		return 0, false
	}

	if precedingWord(content, start) == "func" {
		return 0, false
	}
	return start, true
}

// parseCall consumes one call expression starting at the callee
// identifier, including a trailing closure if present.
func parseCall(content []byte, identStart, open int) (Call, bool) {
	var args []Argument
	depth := 0
	expectArg := true
	closeParen := -1

	i := open + 1
scan:
	for i < len(content) {
		c := content[i]
		switch {
		case c == '/' && i+1 < len(content) && content[i+1] == '/':
			i = skipLineComment(content, i)
			continue
		case c == '/' && i+1 < len(content) && content[i+1] == '*':
			i = skipBlockComment(content, i)
			continue
		case c == '"':
			i = skipString(content, i)
			continue
		}

		if expectArg && !isSpaceByte(c) && c != ')' {
			arg, next := parseArgument(content, i)
			args = append(args, arg)
			expectArg = false
			i = next
			continue
		}

		switch c {
		case '(', '[', '{':
			depth++
		case ']', '}':
			if depth > 0 {
				depth--
			}
		case ')':
			if depth == 0 {
				closeParen = i
				break scan
			}
			depth--
		case ',':
			if depth == 0 {
				expectArg = true
			}
		}
		i++
	}
	if closeParen < 0 {
		return Call{}, false
	}

	length := closeParen + 1 - identStart

	// Trailing closure: a brace block after the closing parenthesis,
	// unless the call sits in a control-flow condition where the brace
	// is the statement body.
	j := closeParen + 1
	for j < len(content) && isSpaceByte(content[j]) {
		j++
	}
	if j < len(content) && content[j] == '{' && !controlKeywords[precedingWord(content, identStart)] {
		if end := matchBrace(content, j); end > 0 {
			args = append(args, Argument{
				Offset: j,
				Body:   &types.OffsetSpan{Start: j, End: end},
			})
			length = end - identStart
		}
	}

	return Call{Offset: identStart, Length: length, Arguments: args}, true
}

// parseArgument records the argument start and, when the value is a
// closure literal (after an optional "label:"), its body span.
// Returns the index to resume scanning from.
func parseArgument(content []byte, start int) (Argument, int) {
	valuePos := start

	// Optional label.
	j := start
	for j < len(content) && isIdentByte(content[j]) {
		j++
	}
	if j > start {
		k := j
		for k < len(content) && (content[k] == ' ' || content[k] == '\t') {
			k++
		}
		if k < len(content) && content[k] == ':' {
			k++
			for k < len(content) && isSpaceByte(content[k]) {
				k++
			}
			valuePos = k
		}
	}

	if valuePos < len(content) && content[valuePos] == '{' {
		if end := matchBrace(content, valuePos); end > 0 {
			return Argument{
				Offset: start,
				Body:   &types.OffsetSpan{Start: valuePos, End: end},
			}, end
		}
	}
	return Argument{Offset: start}, start
}

// matchBrace returns the index just past the brace block opened at
// open, or -1 if the block is unterminated.
func matchBrace(content []byte, open int) int {
	depth := 1
	i := open + 1
	for i < len(content) {
		c := content[i]
		switch {
		case c == '/' && i+1 < len(content) && content[i+1] == '/':
			i = skipLineComment(content, i)
			continue
		case c == '/' && i+1 < len(content) && content[i+1] == '*':
			i = skipBlockComment(content, i)
			continue
		case c == '"':
			i = skipString(content, i)
			continue
		case c == '{':
			depth++
		case c == '}':
			depth--
			if depth == 0 {
				return i + 1
			}
		}
		i++
	}
	return -1
}

// precedingWord returns the identifier word immediately before pos,
// skipping horizontal whitespace.
func precedingWord(content []byte, pos int) string {
	k := pos - 1
	for k >= 0 && (content[k] == ' ' || content[k] == '\t') {
		k--
	}
	end := k + 1
	for k >= 0 && isIdentByte(content[k]) {
		k--
	}
	return string(content[k+1 : end])
}

func skipLineComment(content []byte, i int) int {
	for i < len(content) && content[i] != '\n' {
		i++
	}
	return i
}

// skipBlockComment handles Swift's nested /* */ comments.
func skipBlockComment(content []byte, i int) int {
	depth := 0
	for i < len(content) {
		if content[i] == '/' && i+1 < len(content) && content[i+1] == '*' {
			depth++
			i += 2
			continue
		}
		if content[i] == '*' && i+1 < len(content) && content[i+1] == '/' {
			depth--
			i += 2
			if depth == 0 {
				return i
			}
			continue
		}
		i++
	}
	return i
}

// skipString consumes a string literal starting at the opening quote.
// Handles backslash escapes and multiline """ delimiters. A single-line
// literal that hits a newline is treated as unterminated and left there.
func skipString(content []byte, i int) int {
	if i+2 < len(content) && content[i+1] == '"' && content[i+2] == '"' {
		i += 3
		for i+2 < len(content) {
			if content[i] == '"' && content[i+1] == '"' && content[i+2] == '"' {
				return i + 3
			}
			i++
		}
		return len(content)
	}

	i++
	for i < len(content) {
		switch content[i] {
		case '\\':
			i += 2
		case '"':
			return i + 1
		case '\n':
			return i
		default:
			i++
		}
	}
	return i
}

func isIdentByte(c byte) bool {
	return c == '_' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}

func isSpaceByte(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
