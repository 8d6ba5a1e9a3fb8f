package ui

import (
	"fmt"
	"io"
)

// OK prints a success line.
func OK(w io.Writer, msg string) {
	fmt.Fprintln(w, current.Success.Render(current.SymDone+" "+msg))
}

// Fail prints an error line.
func Fail(w io.Writer, msg string) {
	fmt.Fprintln(w, current.Error.Render("✖ "+msg))
}

// Warn prints a non-fatal diagnostic.
func Warn(w io.Writer, msg string) {
	fmt.Fprintln(w, current.Pending.Render("! "+msg))
}

// Hint prints a muted follow-up line.
func Hint(w io.Writer, msg string) {
	fmt.Fprintln(w, current.Muted.Render(msg))
}
