package preferences

import "context"

// KV is the durable key/value store preferences are kept in. Get returns
// entities.ErrNotFound when the key has never been written.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}
