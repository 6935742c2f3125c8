// Package interact is the single-writer mutation engine for the
// SkillBridge catalog.
//
// All writes - per-user toggles (bookmark, upvote), counters (comment
// likes), appends (comments, requests), and profile edits - go through
// the Engine, which serializes them behind one mutex and records each
// successful mutation in the interaction journal before applying it.
// From the caller's point of view every operation is atomic: either the
// entity, the toggle state, and the journal all advance, or none do.
//
// Toggle semantics worth knowing:
//   - Bookmark and helpful are plain flag flips, idempotent per state.
//   - Upvote is edge-triggered: each call flips the voted flag and moves
//     the count by exactly the delta the flip implies.
//   - Comment likes are an unguarded +1 per call with no per-user
//     de-duplication. That mirrors the product behavior deliberately;
//     see DESIGN.md before "fixing" it.
package interact
