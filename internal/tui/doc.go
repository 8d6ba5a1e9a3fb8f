// Package tui is the interactive todo list.
//
// Every domain operation announces a change and the list is rebuilt from
// the store in full. The inline edit form is the one piece of state that
// lives outside that cycle; it is owned by an editmode.Controller.
package tui
