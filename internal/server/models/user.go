// Package models contains the server-side data records shared by
// repositories and services.
package models

import "time"

// User is one credential record. LoginString is the sole secret: a
// server-generated random token handed to the registrant once. Records are
// immutable after creation; no update operation exists.
type User struct {
	ID          string
	UserName    string
	LoginString string
	CreatedAt   time.Time
}
