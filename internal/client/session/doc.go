// Package session holds the authoritative client session: the bearer token
// and the user it belongs to.
//
// A single Store is shared by every reader in the process. The HTTP client
// reads the token from it on each request and calls Logout on it when the
// server answers 401; derived stores (see package profile) follow it through
// Subscribe. The token, and only the token, is persisted in the metadata
// repository under common.TokenStorageKey so a restarted process can Restore
// it.
//
// Store is safe for concurrent use.
package session
