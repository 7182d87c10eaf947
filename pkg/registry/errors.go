package registry

import (
	"fmt"
	"strings"
)

// UnknownEntryError reports a failed catalog lookup, carrying the sorted
// list of names that would have matched.
type UnknownEntryError struct {
	Namespace string
	Name      string
	Available []string
}

func (e *UnknownEntryError) Error() string {
	if e.Namespace == "" {
		return fmt.Sprintf("registry: unknown namespace for entry %q (available namespaces: %s)",
			e.Name, joinAvailable(e.Available))
	}
	return fmt.Sprintf("registry: unknown entry %q in namespace %q (available: %s)",
		e.Name, e.Namespace, joinAvailable(e.Available))
}

// UnknownPortError reports a failed port resolution against one entry.
type UnknownPortError struct {
	Entry     string
	Port      string
	Direction Direction
	Available []string
}

func (e *UnknownPortError) Error() string {
	return fmt.Sprintf("registry: entry %s has no %s port %q (available: %s)",
		e.Entry, e.Direction, e.Port, joinAvailable(e.Available))
}

// UnknownParameterError reports a failed parameter resolution against one
// entry.
type UnknownParameterError struct {
	Entry     string
	Parameter string
	Available []string
}

func (e *UnknownParameterError) Error() string {
	return fmt.Sprintf("registry: entry %s has no parameter %q (available: %s)",
		e.Entry, e.Parameter, joinAvailable(e.Available))
}

func joinAvailable(names []string) string {
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, ", ")
}
