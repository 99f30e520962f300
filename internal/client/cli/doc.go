// Package cli provides the interactive gyulist command-line client.
//
// It wires configuration, the local SQLite store that keeps the session
// token, the operator services and an interactive REPL. A typical session:
// log in once, then list the herd, inspect an animal, change its status or
// look at the schedule and breeding KPIs. The token survives restarts until
// "logout" or until the server rejects it.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
