// Package transform maps between the collaborator's wire shape and the
// application's user records.
//
// The mapping is deliberately lossy: address and geo data never make it
// past ingress, and the wire carries a single name field, so a
// multi-token first name ("Mary Jane") joins into the wire name and
// re-splits with everything after the first token in the last name. Both
// directions are pure and never fail for well-formed input.
package transform

import (
	"strings"

	"github.com/userdesk/userdesk.go/pkg/models"
)

// ToUser converts a wire record to an application record. The wire name
// splits on whitespace: the first token becomes the first name, the
// remaining tokens joined by a single space become the last name.
func ToUser(api models.APIUser) models.User {
	var first, last string
	if parts := strings.Fields(api.Name); len(parts) > 0 {
		first = parts[0]
		last = strings.Join(parts[1:], " ")
	}

	return models.User{
		ID:         api.ID,
		FirstName:  first,
		LastName:   last,
		Email:      api.Email,
		Department: api.Company.Name,
		Phone:      api.Phone,
		Website:    api.Website,
	}
}

// ToAPIUser converts an application record to the wire shape the
// collaborator accepts. The department nests under company.name with the
// remaining company fields left empty.
func ToAPIUser(u models.User) models.APIUser {
	return models.APIUser{
		ID:      u.ID,
		Name:    strings.TrimSpace(u.FirstName + " " + u.LastName),
		Email:   u.Email,
		Phone:   u.Phone,
		Website: u.Website,
		Company: models.Company{
			Name: u.Department,
		},
	}
}
