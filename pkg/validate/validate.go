// Package validate checks candidate user records before they reach the
// collaborator.
package validate

import (
	"regexp"
	"strings"

	"github.com/userdesk/userdesk.go/pkg/models"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// User returns one human-readable message per failed rule, in a fixed
// order: first name, last name, email, department. Rules are evaluated
// independently, never short-circuited. An empty result means the record
// is acceptable.
func User(u models.User) []string {
	var errs []string

	if strings.TrimSpace(u.FirstName) == "" {
		errs = append(errs, "First name is required")
	}

	if strings.TrimSpace(u.LastName) == "" {
		errs = append(errs, "Last name is required")
	}

	if strings.TrimSpace(u.Email) == "" {
		errs = append(errs, "Email is required")
	} else if !emailPattern.MatchString(u.Email) {
		errs = append(errs, "Invalid email format")
	}

	if strings.TrimSpace(u.Department) == "" {
		errs = append(errs, "Department is required")
	}

	return errs
}
