// Package kv persists small string blobs under well-known keys, the way a
// browser's local storage would.
package kv

import "context"

// Store is the persistence contract shared by the completion and preference
// stores. Writes are applied synchronously in call order.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}
