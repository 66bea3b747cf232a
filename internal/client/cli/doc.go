// Package cli provides the interactive gamecatalog command-line client.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// A session token obtained by "login" is kept in memory only and is dropped
// on "logout", on exit, or when the server rejects it.
package cli
