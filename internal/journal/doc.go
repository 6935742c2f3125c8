// Package journal is an append-only SQLite log of interaction events.
//
// Every mutation the interact.Engine performs (toggles, comments,
// submitted requests, profile edits) is recorded as one Entry stamped
// with a monotonic sequence number. Replaying the entries in order
// against a freshly seeded catalog deterministically rebuilds both the
// session's toggle state and the appended entities.
//
// The default location is ":memory:" - the log lives exactly as long as
// the session, and durability is explicitly not a guarantee. Pointing it
// at a file makes a session resumable across processes, which is how the
// CLI carries toggle state between invocations.
package journal
