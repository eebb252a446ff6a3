// Package filesystem provides filesystem implementations for assort.
//
// This package contains implementations of the types.FS interface.
// The in-memory filesystem used by tests lives in pkg/testutil.
package filesystem
