// Package session implements the two-state interactive session and the
// controller that orchestrates credential and ledger operations around it.
//
// A Session is an explicit value passed into and returned from every
// controller operation; the hosting layer (a signed cookie in the web UI)
// is responsible for persisting it between interactions.
package session

// Session is the identity of one interactive client. The zero value is the
// unauthenticated state. Username and LoginToken are set only while
// Authenticated is true; Logout clears all three fields together.
type Session struct {
	Authenticated bool
	Username      string
	LoginToken    string
}
