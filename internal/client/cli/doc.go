// Package cli provides the interactive volunteer community client.
//
// It wires configuration, local storage, the application context and an
// interactive REPL that stands in for the screens of the original UI:
//
//	1 welcome   2 about   3 registration
//	4 cabinet   5 create event   6 create report
//
// Screens above the cabinet need a registered profile. The events list is a
// modal that stays open until "close" (or "esc").
//
// The REPL is started via App.Run(ctx), which blocks until the user exits or
// input ends. See Navigator and runREPL for details.
package cli
