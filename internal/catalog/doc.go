// Package catalog holds the canonical SkillBridge entity collections:
// skills, users, comments, requests, and the closed category set.
//
// The Store is a dumb indexed container. It guarantees O(1) lookup by id,
// stable insertion-order iteration, and referential integrity at insert
// time. All query logic lives in the query package; all mutation logic
// lives in the interact package.
package catalog
