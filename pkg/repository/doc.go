// Package repository implements the path-addressable resource store:
// YAML resource files loaded into types.Resource values, byte-level
// copying with sidecar handling, unique destination path generation,
// and save-on-modify persistence. An LRU cache fronts file reads.
package repository
