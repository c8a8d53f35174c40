// Package session holds the server-side half of the cookie session:
// a keyed store mapping an opaque session id to the logged-in user's
// identity, with a fixed time-to-live. An expired or deleted entry
// reads as absent.
package session

import (
	"context"
	"time"

	"job_portal/internal/model"
)

// TTL is the lifetime of a session from issuance. The cookie Max-Age
// and the token expiry claim mirror this value.
const TTL = time.Hour

// Store is the session store contract. Get returns (nil, nil) when the
// id does not resolve to a live session; Delete on a missing id is not
// an error, so logout stays idempotent.
type Store interface {
	Save(ctx context.Context, sessionID string, identity model.Identity, ttl time.Duration) error
	Get(ctx context.Context, sessionID string) (*model.Identity, error)
	Delete(ctx context.Context, sessionID string) error
}
