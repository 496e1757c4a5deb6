// Package cli is the interactive LawLink command-line client.
//
// NewApp wires configuration, the local database, the session, the HTTP
// gateway and the optional object-storage uploader. App.Run restores any
// persisted session and starts the REPL, which blocks until the user exits.
// The chat command opens a full-screen bubbletea view bound to the
// messaging view-model.
package cli
