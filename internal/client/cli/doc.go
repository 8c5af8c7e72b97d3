// Package cli provides the interactive gophauth command-line client.
//
// It restores the previous session from the local SQLite file, connects to
// the server and runs a REPL with account commands: register, login (with
// step-up code entry), enable-2fa, profile, refresh, logout, forgot and
// reset. Token changes are written back to the session file after every
// command.
package cli
