// Package seed loads catalog fixtures from YAML files.
//
// A seed file declares the full starting catalog: the closed category
// set, users, skills, and optionally comments and requests. Files are
// decoded strictly (unknown fields are rejected, catching typos at load
// time), validated against an embedded CUE schema, and then applied to
// a fresh catalog.Store, which performs the referential checks.
//
// An embedded default seed ships with the binary so the CLI works out
// of the box without any file on disk.
package seed
