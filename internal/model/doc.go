// Package model defines the wire-format entity types of the banking
// API. Fields mirror the server's JSON shapes exactly; the client never
// derives or recomputes server-owned values such as balances, holdings,
// or penalty amounts.
package model
