package organize

import (
	"github.com/arthur-debert/assort/pkg/copier"
	"github.com/arthur-debert/assort/pkg/types"
)

// Phase names the pipeline's state machine states
type Phase string

const (
	PhaseIdle                  Phase = "Idle"
	PhaseCollecting            Phase = "Collecting"
	PhaseCopying               Phase = "Copying"
	PhaseRemappingDependencies Phase = "RemappingDependencies"
	PhaseInstantiatingRoot     Phase = "InstantiatingRoot"
	PhaseRemappingRoot         Phase = "RemappingRoot"
	PhasePersisting            Phase = "Persisting"
	PhaseDone                  Phase = "Done"
	PhaseFailed                Phase = "Failed"
)

// Status is the single terminal signal of a run
type Status string

const (
	StatusSuccess Status = "success"
	StatusFailure Status = "failure"
)

// Result reports the outcome of one organize run. Item-level problems
// come back as warnings on a successful result; partial organization
// is strictly an improvement over none and is never reported as
// failure.
type Result struct {
	Status   Status
	Err      error
	Warnings []types.Warning

	// Dependencies is the collected closure, in traversal order
	Dependencies []string

	// Copied lists the new paths of relocated dependencies
	Copied []string

	// Plan carries the per-item verdicts of a dry run
	Plan []copier.Item

	DryRun bool
}

// Failed reports whether the run ended in the Failed state
func (r Result) Failed() bool {
	return r.Status == StatusFailure
}
