// Package models holds the data shapes shared between the store, the
// gateway and the view layer: the application-side User, the
// collaborator's wire shape, and the view parameters (filters, sort,
// paging).
package models

// User is the application-side record for a directory entry. The id is
// assigned on create and never changes afterwards.
type User struct {
	ID         int    `json:"id"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	Department string `json:"department"`
	Phone      string `json:"phone,omitempty"`
	Website    string `json:"website,omitempty"`
}

// Patch carries a partial update for a User. Nil fields keep their
// current value; the id is never part of a patch.
type Patch struct {
	FirstName  *string
	LastName   *string
	Email      *string
	Department *string
	Phone      *string
	Website    *string
}

// Apply overlays the patch on u and returns the merged record.
func (p Patch) Apply(u User) User {
	if p.FirstName != nil {
		u.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		u.LastName = *p.LastName
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Department != nil {
		u.Department = *p.Department
	}
	if p.Phone != nil {
		u.Phone = *p.Phone
	}
	if p.Website != nil {
		u.Website = *p.Website
	}
	return u
}

// String returns a pointer to s, for building patches inline.
func String(s string) *string {
	return &s
}
