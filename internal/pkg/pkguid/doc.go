// Package pkguid provides helpers for generating unique identifiers.
//
// The codebase uses these interfaces to avoid hard-coding a specific UID
// strategy. Two kinds are in use:
//   - String IDs (UUIDv7) for session correlation and audit event ids.
//   - Numeric IDs (Snowflake) for receipt reference numbers.
package pkguid
