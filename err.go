package userdesk

import (
	"fmt"
	"strings"
)

// ValidationError carries the full ordered list of rule violations for a
// rejected draft, never just the first.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return "invalid user: " + strings.Join(e.Violations, "; ")
}

// NotFoundError reports an update or delete aimed at an id that is not
// in the collection.
type NotFoundError struct {
	ID int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("user %d not found", e.ID)
}
