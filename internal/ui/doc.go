// Package ui holds the presentation helpers shared by the CLI and the TUI:
// themes, status lines, panels and markdown rendering.
package ui
