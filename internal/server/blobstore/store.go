// Package blobstore abstracts the durable byte store that holds the content
// document and uploaded media. The server treats it as an opaque key-value
// store; backends are selected by configuration.
package blobstore

import "context"

// Store is an opaque key-value byte store.
//
// Get returns common.ErrNotFound if the key does not exist. Set overwrites
// any previous value for the key. Implementations must be safe for
// concurrent use; no cross-key transactionality is provided.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, data []byte) error
	Exists(ctx context.Context, key string) (bool, error)
}
