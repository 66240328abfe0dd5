// Package pkgroutine contains helpers for running goroutines safely.
//
// The Manager type limits concurrency, collects returned errors, and logs
// panics so that background work (the console session, audit draining) does
// not crash the process silently.
package pkgroutine
