// Package pkgconfig provides a small abstraction for reading configuration values.
//
// The application expects config values to come from a concrete implementation
// (for example Viper). Business code should depend on the Config interface so it
// stays easy to test and does not care where values come from (file, defaults).
//
// This package focuses on convenience getters for common types, comma-separated
// arrays and decoding of structured sections such as the seed accounts.
package pkgconfig
