package models

// Filters are per-field substring patterns, matched case-insensitively.
// An empty field matches everything; the zero value applies no filter.
type Filters struct {
	FirstName  string
	LastName   string
	Email      string
	Department string
}

// Empty reports whether no filter pattern is set.
func (f Filters) Empty() bool {
	return f == Filters{}
}

// SortField names a sortable User field. SortNone keeps the collection's
// current relative order.
type SortField string

const (
	SortNone         SortField = ""
	SortByID         SortField = "id"
	SortByFirstName  SortField = "firstName"
	SortByLastName   SortField = "lastName"
	SortByEmail      SortField = "email"
	SortByDepartment SortField = "department"
)

type SortDirection string

const (
	Ascending  SortDirection = "asc"
	Descending SortDirection = "desc"
)

// SortSpec is the active ordering of the derived view.
type SortSpec struct {
	Field     SortField
	Direction SortDirection
}

// PageSpec is the active slice of the derived view. Index is 1-based.
// Total is the pre-slice length of the filtered and searched list, not
// the size of the raw collection.
type PageSpec struct {
	Index int
	Size  int
	Total int
}
