// Package cli provides the interactive admin command-line client.
//
// It wires configuration, local storage, the session and profile stores, the
// API client and services, and an interactive REPL. Typical flow: restore a
// saved session, prompt for credentials when there is none, then execute
// user commands until exit.
//
// Key features:
//   - Register / Login / Logout / Whoami
//   - List, show, add, edit and delete users; upload an avatar
//   - List and show projects
//   - Automatic return to the login prompt when the server rejects the session
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
