package domain

import "github.com/google/uuid"

// ClientID identifies an authenticated API client. It is the subject of the
// client's bearer token.
type ClientID uuid.UUID

func (id ClientID) String() string {
	return uuid.UUID(id).String()
}
