// Package kv contains the concrete implementation of the persistence layer
// over the flat key-value keyspace. Every repository reads its whole slice,
// applies the change and overwrites it; slices are independent JSON blobs and
// no relational integrity is enforced between them.
package kv

import (
	"context"
	"encoding/json"

	"posterstore/internal/infra/kvstore"

	"github.com/pkg/errors"
)

// loadJSON reads and decodes the value under key into target. It returns
// false without error when the key has never been written.
func loadJSON[T any](ctx context.Context, store kvstore.Store, key string, target *T) (bool, error) {
	raw, err := store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, kvstore.ErrKeyNotFound) {
			return false, nil
		}

		return false, errors.Wrapf(err, "failed to read %s", key)
	}

	if err := json.Unmarshal(raw, target); err != nil {
		return false, errors.Wrapf(err, "failed to decode %s", key)
	}

	return true, nil
}

// saveJSON encodes value and overwrites the key with it.
func saveJSON(ctx context.Context, store kvstore.Store, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return errors.Wrapf(err, "failed to encode %s", key)
	}

	if err := store.Set(ctx, key, raw); err != nil {
		return errors.Wrapf(err, "failed to write %s", key)
	}

	return nil
}
