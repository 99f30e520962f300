// Package metadata stores small key/value settings of the CLI in its local
// SQLite database, such as the session token.
package metadata

import (
	"context"
)

type Repository interface {
	// Get returns common.ErrorNotFound when the key is absent.
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
