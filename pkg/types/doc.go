// Package types defines the core types and interfaces used throughout assort.
// This includes the Resource and Ref data model, the Value tree that carries
// resource fields, and the FS and Repository interfaces the pipeline runs on.
package types
