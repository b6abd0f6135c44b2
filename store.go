package userdesk

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/userdesk/userdesk.go/pkg/constants"
	"github.com/userdesk/userdesk.go/pkg/models"
	"github.com/userdesk/userdesk.go/pkg/transform"
	"github.com/userdesk/userdesk.go/pkg/validate"
)

// Gateway is the remote side of the store.
// [github.com/userdesk/userdesk.go/pkg/gateway.Gateway] implements it;
// tests substitute an in-process fake.
type Gateway interface {
	List(ctx context.Context) ([]models.APIUser, error)
	Create(ctx context.Context, user models.APIUser) (models.APIUser, error)
	Update(ctx context.Context, id int, user models.APIUser) (models.APIUser, error)
	Delete(ctx context.Context, id int) error
}

// Store owns the authoritative user collection and every view parameter,
// and keeps the derived view in step with both.
//
// The four remote-backed operations (Load, Create, Update, Remove) are
// each a single suspension point: the loading flag is set before the
// remote call begins and cleared after it settles, on every exit path.
// The remote call itself runs outside the state lock, so View stays
// readable while a request is in flight.
type Store struct {
	gw     Gateway
	logger zerolog.Logger

	mu      sync.Mutex
	users   []models.User
	filters models.Filters
	search  string
	sort    models.SortSpec
	page    models.PageSpec
	loading bool
	lastErr error

	view View
}

// NewStore creates a Store over the given gateway with an empty
// collection, no filters and the default page size.
func NewStore(gw Gateway) *Store {
	s := &Store{
		gw:     gw,
		logger: zerolog.Nop(),
		page: models.PageSpec{
			Index: 1,
			Size:  constants.DefaultPageSize,
		},
	}
	s.recompute()
	return s
}

func (s *Store) SetLogger(logger zerolog.Logger) *Store {
	s.logger = logger
	return s
}

// View returns a snapshot of the derived view. The returned slice is the
// caller's to keep.
func (s *Store) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := s.view
	v.Users = append([]models.User(nil), s.view.Users...)
	return v
}

// Load replaces the collection wholesale with the remote list. On
// failure the collection is untouched and the error is held as the
// view's last error.
func (s *Store) Load(ctx context.Context) error {
	if s.gw == nil {
		return constants.ErrNoGateway
	}

	s.begin()
	defer s.finish()

	apiUsers, err := s.gw.List(ctx)
	if err != nil {
		s.fail("load", err)
		return err
	}

	users := make([]models.User, 0, len(apiUsers))
	for _, au := range apiUsers {
		users = append(users, transform.ToUser(au))
	}

	s.mu.Lock()
	s.users = users
	s.mu.Unlock()

	s.logger.Info().Int("count", len(users)).Msg("collection loaded")
	return nil
}

// Create validates the draft, sends it to the remote side and appends
// the result locally. A rejected draft returns a *ValidationError with
// the full ordered violation list and touches neither remote nor local
// state. The collaborator's echoed id is not durable, so the stored
// record gets max(existing ids)+1 instead, or 1 on an empty collection.
func (s *Store) Create(ctx context.Context, draft models.User) (models.User, error) {
	if s.gw == nil {
		return models.User{}, constants.ErrNoGateway
	}
	if violations := validate.User(draft); len(violations) > 0 {
		return models.User{}, &ValidationError{Violations: violations}
	}

	s.begin()
	defer s.finish()

	echo, err := s.gw.Create(ctx, transform.ToAPIUser(draft))
	if err != nil {
		s.fail("create", err)
		return models.User{}, err
	}

	created := transform.ToUser(echo)

	s.mu.Lock()
	created.ID = s.nextID()
	s.users = append(s.users, created)
	s.mu.Unlock()

	s.logger.Info().Int("id", created.ID).Msg("user created")
	return created, nil
}

// Update merges the patch over the record with the given id, validates
// the merged result, sends it to the remote side and replaces the record
// in place. The id never changes. A missing id yields a *NotFoundError
// with no remote call and no state change.
func (s *Store) Update(ctx context.Context, id int, patch models.Patch) (models.User, error) {
	if s.gw == nil {
		return models.User{}, constants.ErrNoGateway
	}

	s.mu.Lock()
	idx := s.indexOf(id)
	if idx < 0 {
		err := &NotFoundError{ID: id}
		s.lastErr = err
		s.recompute()
		s.mu.Unlock()
		return models.User{}, err
	}
	merged := patch.Apply(s.users[idx])
	s.mu.Unlock()

	if violations := validate.User(merged); len(violations) > 0 {
		return models.User{}, &ValidationError{Violations: violations}
	}

	s.begin()
	defer s.finish()

	echo, err := s.gw.Update(ctx, id, transform.ToAPIUser(merged))
	if err != nil {
		s.fail("update", err)
		return models.User{}, err
	}

	updated := transform.ToUser(echo)
	updated.ID = id

	s.mu.Lock()
	if i := s.indexOf(id); i >= 0 {
		s.users[i] = updated
	}
	s.mu.Unlock()

	s.logger.Info().Int("id", id).Msg("user updated")
	return updated, nil
}

// Remove deletes the record with the given id remotely and locally. A
// missing id yields a *NotFoundError with no remote call and no state
// change.
func (s *Store) Remove(ctx context.Context, id int) error {
	if s.gw == nil {
		return constants.ErrNoGateway
	}

	s.mu.Lock()
	if s.indexOf(id) < 0 {
		err := &NotFoundError{ID: id}
		s.lastErr = err
		s.recompute()
		s.mu.Unlock()
		return err
	}
	s.mu.Unlock()

	s.begin()
	defer s.finish()

	if err := s.gw.Delete(ctx, id); err != nil {
		s.fail("remove", err)
		return err
	}

	s.mu.Lock()
	if i := s.indexOf(id); i >= 0 {
		s.users = append(s.users[:i], s.users[i+1:]...)
	}
	s.mu.Unlock()

	s.logger.Info().Int("id", id).Msg("user removed")
	return nil
}

// SetFilters replaces the filter criteria and resets to the first page.
func (s *Store) SetFilters(f models.Filters) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters = f
	s.page.Index = 1
	s.recompute()
}

// ClearFilters drops every filter pattern.
func (s *Store) ClearFilters() {
	s.SetFilters(models.Filters{})
}

// SetSearch replaces the search term and resets to the first page.
func (s *Store) SetSearch(term string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.search = term
	s.page.Index = 1
	s.recompute()
}

// SetSort orders by the given field. Selecting the already-active field
// flips the direction; a new field starts ascending.
func (s *Store) SetSort(field models.SortField) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if field != models.SortNone && s.sort.Field == field {
		if s.sort.Direction == models.Ascending {
			s.sort.Direction = models.Descending
		} else {
			s.sort.Direction = models.Ascending
		}
	} else {
		s.sort = models.SortSpec{Field: field, Direction: models.Ascending}
	}
	s.recompute()
}

// SetPage moves to the given 1-based page.
func (s *Store) SetPage(index int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 1 {
		index = 1
	}
	s.page.Index = index
	s.recompute()
}

// SetPageSize changes the rows per page and resets to the first page.
func (s *Store) SetPageSize(size int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if size < 1 {
		size = constants.DefaultPageSize
	}
	s.page.Size = size
	s.page.Index = 1
	s.recompute()
}

// DismissError clears the view's last error without retrying anything.
func (s *Store) DismissError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastErr = nil
	s.recompute()
}

// Filters returns the active filter criteria.
func (s *Store) Filters() models.Filters {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filters
}

// Search returns the active search term.
func (s *Store) Search() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.search
}

// Sort returns the active sort spec.
func (s *Store) Sort() models.SortSpec {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sort
}

// --------------------------------------------------
// Private methods
// --------------------------------------------------

// begin marks an operation in flight and clears any previous error, so
// the view layer can disable duplicate submissions.
func (s *Store) begin() {
	s.mu.Lock()
	s.loading = true
	s.lastErr = nil
	s.recompute()
	s.mu.Unlock()
}

// finish clears the in-flight flag on every exit path.
func (s *Store) finish() {
	s.mu.Lock()
	s.loading = false
	s.recompute()
	s.mu.Unlock()
}

func (s *Store) fail(op string, err error) {
	s.mu.Lock()
	s.lastErr = err
	s.mu.Unlock()
	s.logger.Error().Err(err).Str("op", op).Msg("operation failed")
}

// indexOf and nextID require s.mu to be held.

func (s *Store) indexOf(id int) int {
	for i, u := range s.users {
		if u.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) nextID() int {
	max := 0
	for _, u := range s.users {
		if u.ID > max {
			max = u.ID
		}
	}
	return max + 1
}

// recompute requires s.mu to be held.
func (s *Store) recompute() {
	visible, total := recomputeView(s.users, s.filters, s.search, s.sort, s.page)
	s.page.Total = total
	s.view = View{
		Users:      visible,
		TotalCount: total,
		PageIndex:  s.page.Index,
		PageSize:   s.page.Size,
		Loading:    s.loading,
		LastErr:    s.lastErr,
	}
}
