package search

import "errors"

// Sentinel errors for the planner, checkable with errors.Is, following the
// lvlath package's per-package sentinel-error convention (spec.md §7).
var (
	// ErrInvalidParameters is returned by New when the parameter bundle
	// fails construction-time validation.
	ErrInvalidParameters = errors.New("search: invalid planner parameters")
	// ErrCollaboratorFault is returned by Plan/expand when a collaborator
	// returns a malformed trajectory or an invalid cost.
	ErrCollaboratorFault = errors.New("search: collaborator returned a malformed result")
)
