package metadata

import (
	"context"
)

// Repository is a durable string key/value store. Get reports a missing key
// with common.ErrorNotFound; Delete of a missing key is not an error.
type Repository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
}
