// Package storage persists the serialized whole-store snapshot in a single
// durable key-value slot. The key name carries the schema version: changing
// the schema changes the key, which orphans data written under the old key.
// That is the versioning scheme: no migrations, old keys are orphaned.
package storage

import "context"

// SnapshotKey is the fixed, schema-versioned name of the snapshot slot.
const SnapshotKey = "tinytrack_data_v5"

// Backend stores and retrieves one opaque snapshot blob.
//
// Load returns ok=false when no snapshot has ever been stored. Backends do
// not interpret the blob; unparseable content is the store's problem (it
// falls back to the empty default there).
type Backend interface {
	Load(ctx context.Context) (data []byte, ok bool, err error)
	Store(ctx context.Context, data []byte) error
	Clear(ctx context.Context) error
}
