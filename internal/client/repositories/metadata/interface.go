// Package metadata is a key/value store in the local client database. It
// holds the persisted session (sealed token, role, user id).
package metadata

import (
	"context"
)

// Well-known keys.
const (
	KeySessionToken = "session.token"
	KeySessionRole  = "session.role"
	KeySessionUser  = "session.user_id"
)

// SessionKeys lists every key owned by the session; logout deletes them.
var SessionKeys = []string{KeySessionToken, KeySessionRole, KeySessionUser}

type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, keys ...string) error
}
