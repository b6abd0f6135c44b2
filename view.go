package userdesk

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/userdesk/userdesk.go/pkg/models"
)

// View is the observable output of the store: the visible slice of the
// derived list plus the paging and status fields the view layer renders
// from.
type View struct {
	Users      []models.User
	TotalCount int
	PageIndex  int
	PageSize   int
	Loading    bool
	LastErr    error
}

// recomputeView derives the visible page from explicit inputs: filter,
// then search, then sort, then slice. The source slice is never
// reordered or mutated, and equal inputs always produce equal output.
func recomputeView(users []models.User, filters models.Filters, search string, spec models.SortSpec, page models.PageSpec) ([]models.User, int) {
	derived := make([]models.User, 0, len(users))
	for _, u := range users {
		if matchFilters(u, filters) && matchSearch(u, search) {
			derived = append(derived, u)
		}
	}

	sortUsers(derived, spec)

	total := len(derived)
	start := (page.Index - 1) * page.Size
	if start < 0 || start >= total {
		return nil, total
	}
	end := start + page.Size
	if end > total {
		end = total
	}
	return derived[start:end], total
}

func matchFilters(u models.User, f models.Filters) bool {
	if f.FirstName != "" && !containsFold(u.FirstName, f.FirstName) {
		return false
	}
	if f.LastName != "" && !containsFold(u.LastName, f.LastName) {
		return false
	}
	if f.Email != "" && !containsFold(u.Email, f.Email) {
		return false
	}
	if f.Department != "" && !containsFold(u.Department, f.Department) {
		return false
	}
	return true
}

// matchSearch matches the term against all four textual fields with OR
// semantics, as an additional narrowing after the filters.
func matchSearch(u models.User, term string) bool {
	if term == "" {
		return true
	}
	return containsFold(u.FirstName, term) ||
		containsFold(u.LastName, term) ||
		containsFold(u.Email, term) ||
		containsFold(u.Department, term)
}

// containsFold is a plain case-insensitive substring check, never a
// regex or glob.
func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// sortUsers orders the derived list in place. String fields compare with
// locale-aware ordering, the id numerically. SortNone preserves the
// current relative order, and ties keep it too (stable sort).
func sortUsers(users []models.User, spec models.SortSpec) {
	if spec.Field == models.SortNone {
		return
	}

	// Collators are not safe for concurrent use, so each sort gets its own.
	col := collate.New(language.Und)
	sort.SliceStable(users, func(i, j int) bool {
		c := compareField(col, users[i], users[j], spec.Field)
		if spec.Direction == models.Descending {
			return c > 0
		}
		return c < 0
	})
}

func compareField(col *collate.Collator, a, b models.User, field models.SortField) int {
	if field == models.SortByID {
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		default:
			return 0
		}
	}
	return col.CompareString(stringField(a, field), stringField(b, field))
}

func stringField(u models.User, field models.SortField) string {
	switch field {
	case models.SortByFirstName:
		return u.FirstName
	case models.SortByLastName:
		return u.LastName
	case models.SortByEmail:
		return u.Email
	case models.SortByDepartment:
		return u.Department
	}
	return ""
}
