package api

import (
	"context"

	"portfolio-deck-api/domain"
)

// Generator renders a record list into a finished deck document.
type Generator interface {
	Generate(ctx context.Context, records []domain.Record) (deck []byte, pages int, err error)
}

// Deliverer pushes a finished deck to the downstream channel.
type Deliverer interface {
	Deliver(ctx context.Context, filename string, deck []byte) error
}

// Authenticator is implemented by types able to extract user IDs from headers.
type Authenticator interface {
	UserIDFromAuthHeader(string) (string, error)
}

// Deduper suppresses reprocessing of identical payloads.
type Deduper interface {
	// Add records the payload digest and returns true if it was newly added.
	Add(ctx context.Context, userID, key string) (bool, error)
	// Remove deletes a previously added digest, used when downstream
	// processing fails so the caller may retry.
	Remove(ctx context.Context, userID, key string) error
}
