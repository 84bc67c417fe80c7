// Package session owns the operator's authentication lifecycle.
//
// A session moves through three states: anonymous, authenticating, and
// authenticated. A bearer credential alone never makes a session
// authenticated; the operator profile must first be confirmed with a
// /auth/me round-trip. Only a validated credential is persisted to the
// token slot, so a fresh process bootstrapping from the slot reproduces
// the same authenticated state, or falls back to anonymous when the
// server rejects the stored value.
//
// The TokenStore interface abstracts the single persisted slot; the
// file-backed implementation keeps it under the user config directory.
package session
