package graph

import (
	"fmt"
	"strings"
)

// UnknownUnitError reports a wiring directive naming a unit id that was not
// part of the composed sequence.
type UnknownUnitError struct {
	Unit      string
	Available []string
}

func (e *UnknownUnitError) Error() string {
	if len(e.Available) == 0 {
		return fmt.Sprintf("graph: unknown unit %q (no units composed)", e.Unit)
	}
	return fmt.Sprintf("graph: unknown unit %q (available: %s)", e.Unit, strings.Join(e.Available, ", "))
}

// DuplicateInputError reports a second cable aimed at an input jack that
// already has one; module-style documents accept a single cable per input.
type DuplicateInputError struct {
	Unit string
	Port string
}

func (e *DuplicateInputError) Error() string {
	return fmt.Sprintf("graph: input %q on unit %q already has an incoming connection", e.Port, e.Unit)
}

// MalformedGraphError is the internal consistency guard raised before
// serialization. It indicates a composer or injector defect and should never
// surface in correct operation.
type MalformedGraphError struct {
	Detail string
}

func (e *MalformedGraphError) Error() string {
	return "graph: malformed graph: " + e.Detail
}
