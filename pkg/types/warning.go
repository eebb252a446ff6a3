package types

import "fmt"

// WarningKind labels non-fatal, item-level problems reported by a run
type WarningKind string

const (
	// WarnCopyFailed means a single dependency failed to copy and was
	// skipped; the run continues.
	WarnCopyFailed WarningKind = "copy-failed"

	// WarnCorrespondence means sub-resource counts differed between an
	// old path and its copy; remapping proceeded with the pairs found.
	WarnCorrespondence WarningKind = "correspondence-mismatch"
)

// Warning is a human-readable item-level caveat. Warnings never turn a
// run into a failure; partial organization is reported as success.
type Warning struct {
	Kind        WarningKind
	Path        string
	Destination string
	Message     string
}

func (w Warning) String() string {
	if w.Destination != "" {
		return fmt.Sprintf("%s: %s -> %s: %s", w.Kind, w.Path, w.Destination, w.Message)
	}
	return fmt.Sprintf("%s: %s: %s", w.Kind, w.Path, w.Message)
}
