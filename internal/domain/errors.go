package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")

	// ErrPoolExists gates destructive regeneration: a pool already
	// exists and the caller did not pass regenerate=true.
	ErrPoolExists = errors.New("address pool already exists")

	// ErrInvalidState means an assign/release hit an address that is
	// not in the expected starting state. The client view is stale;
	// refetch before retrying.
	ErrInvalidState = errors.New("address not in expected state")
)

// OverlapError is returned when a candidate subnet range intersects one
// or more existing subnets. Conflicts may be empty when the overlap was
// caught by the database exclusion constraint rather than the fast-path
// check.
type OverlapError struct {
	Conflicts []SubnetRef
}

func (e *OverlapError) Error() string {
	if len(e.Conflicts) == 0 {
		return "overlaps with an existing subnet"
	}
	parts := make([]string, 0, len(e.Conflicts))
	for _, c := range e.Conflicts {
		if c.Name != "" {
			parts = append(parts, fmt.Sprintf("%s (%s)", c.Name, c.CIDR))
			continue
		}
		parts = append(parts, c.CIDR)
	}
	return "overlaps with: " + strings.Join(parts, ", ")
}
