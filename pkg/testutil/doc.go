// Package testutil provides shared test infrastructure: an in-memory
// types.FS implementation with error injection and resource fixture
// builders.
package testutil
