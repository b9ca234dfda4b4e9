// Package snapshot persists serialized console sessions.
//
// A Store keeps one opaque JSON document per session id. Four backends are
// provided:
//   - Memory keeps documents in process, useful for tests and single node use.
//   - Database stores them in the console_snapshots table through gorm.
//   - Object stores them as <prefix>/<id>.json objects in a storage bucket.
//   - Redis stores them under <key_prefix><id> with an optional expiry.
//
// Every backend returns ErrNotFound for unknown ids.
package snapshot
