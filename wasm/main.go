//go:build wasm

package main

import (
	"syscall/js"
)

func main() {
	// Export functions to JavaScript
	js.Global().Set("SwiftLintNewLinter", js.FuncOf(newLinter))
	js.Global().Set("SwiftLintLint", js.FuncOf(lint))
	js.Global().Set("SwiftLintCloseLinter", js.FuncOf(closeLinter))
	js.Global().Set("SwiftLintGetRules", js.FuncOf(getRules))

	// Keep WASM running
	<-make(chan struct{})
}
