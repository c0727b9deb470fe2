package domain

import "time"

type IdentityID string

// Identity is an authenticated principal. It is not owned by this service;
// the auth layer resolves it from a bearer token on connect.
type Identity struct {
	ID          IdentityID
	DisplayName string
	LastSeen    time.Time
}
