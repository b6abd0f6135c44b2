package userdesk_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/userdesk/userdesk.go"
	"github.com/userdesk/userdesk.go/pkg/gateway"
	"github.com/userdesk/userdesk.go/pkg/models"
)

// fakeGateway echoes writes without persisting anything, like the real
// collaborator. The echoed create id is deliberately bogus to prove the
// store never trusts it.
type fakeGateway struct {
	listResult []models.APIUser
	listErr    error
	createErr  error
	updateErr  error
	deleteErr  error

	createCalls int
	updateCalls int
	deleteCalls int
}

func (f *fakeGateway) List(ctx context.Context) ([]models.APIUser, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listResult, nil
}

func (f *fakeGateway) Create(ctx context.Context, user models.APIUser) (models.APIUser, error) {
	f.createCalls++
	if f.createErr != nil {
		return models.APIUser{}, f.createErr
	}
	user.ID = 9999
	return user, nil
}

func (f *fakeGateway) Update(ctx context.Context, id int, user models.APIUser) (models.APIUser, error) {
	f.updateCalls++
	if f.updateErr != nil {
		return models.APIUser{}, f.updateErr
	}
	user.ID = id
	return user, nil
}

func (f *fakeGateway) Delete(ctx context.Context, id int) error {
	f.deleteCalls++
	return f.deleteErr
}

func wire(id int, name, email, department string) models.APIUser {
	return models.APIUser{
		ID:      id,
		Name:    name,
		Email:   email,
		Company: models.Company{Name: department},
	}
}

func seededStore(t *testing.T) (*userdesk.Store, *fakeGateway) {
	t.Helper()
	gw := &fakeGateway{
		listResult: []models.APIUser{
			wire(1, "Leanne Graham", "Sincere@april.biz", "Eng"),
			wire(2, "Ervin Howell", "Shanna@melissa.tv", "Sales"),
			wire(3, "Clementine Bauch", "Nathan@yesenia.net", "Eng"),
		},
	}
	store := userdesk.NewStore(gw)
	require.NoError(t, store.Load(context.Background()))
	return store, gw
}

func TestLoadReplacesCollection(t *testing.T) {
	store, _ := seededStore(t)

	v := store.View()
	require.Equal(t, 3, v.TotalCount)
	assert.False(t, v.Loading)
	assert.NoError(t, v.LastErr)
	assert.Equal(t, "Leanne", v.Users[0].FirstName)
	assert.Equal(t, "Graham", v.Users[0].LastName)
	assert.Equal(t, "Eng", v.Users[0].Department)
}

func TestLoadFailureKeepsCollection(t *testing.T) {
	store, gw := seededStore(t)

	gw.listErr = &gateway.TransportError{Op: "list", Status: "Internal Server Error"}
	err := store.Load(context.Background())
	require.Error(t, err)

	v := store.View()
	assert.Equal(t, 3, v.TotalCount, "failed load must not drop the collection")
	assert.False(t, v.Loading, "loading clears on the failure path too")
	assert.Equal(t, err, v.LastErr)
}

func TestCreateSynthesizesNextID(t *testing.T) {
	store, gw := seededStore(t)

	created, err := store.Create(context.Background(), models.User{
		FirstName:  "Patricia",
		LastName:   "Lebsack",
		Email:      "Julianne.OConner@kory.org",
		Department: "Eng",
	})
	require.NoError(t, err)

	assert.Equal(t, 4, created.ID, "max(existing)+1, never the gateway echo")
	assert.Equal(t, 1, gw.createCalls)

	v := store.View()
	assert.Equal(t, 4, v.TotalCount)
	assert.Equal(t, "Patricia", v.Users[3].FirstName)
}

func TestCreateOnEmptyCollection(t *testing.T) {
	store := userdesk.NewStore(&fakeGateway{})

	created, err := store.Create(context.Background(), models.User{
		FirstName:  "Kurtis",
		LastName:   "Weissnat",
		Email:      "Telly.Hoeger@billy.biz",
		Department: "Ops",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, created.ID)
}

func TestCreateRejectsInvalidDraft(t *testing.T) {
	store, gw := seededStore(t)

	_, err := store.Create(context.Background(), models.User{
		FirstName:  "",
		LastName:   "Doe",
		Email:      "bad",
		Department: "Eng",
	})

	var verr *userdesk.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"First name is required", "Invalid email format"}, verr.Violations)
	assert.Equal(t, 0, gw.createCalls, "rejected drafts never reach the remote side")

	v := store.View()
	assert.Equal(t, 3, v.TotalCount)
	assert.NoError(t, v.LastErr)
}

func TestCreateRemoteFailureLeavesStateUntouched(t *testing.T) {
	store, gw := seededStore(t)
	gw.createErr = &gateway.TransportError{Op: "create", Status: "Service Unavailable"}

	_, err := store.Create(context.Background(), models.User{
		FirstName:  "Glenna",
		LastName:   "Reichert",
		Email:      "Chaim_McDermott@dana.io",
		Department: "Eng",
	})
	require.Error(t, err)

	v := store.View()
	assert.Equal(t, 3, v.TotalCount)
	assert.Equal(t, err, v.LastErr)
	assert.False(t, v.Loading)
}

func TestUpdateMergesAndKeepsID(t *testing.T) {
	store, gw := seededStore(t)

	updated, err := store.Update(context.Background(), 2, models.Patch{
		Email: models.String("ervin@chiefs.example"),
	})
	require.NoError(t, err)

	assert.Equal(t, 2, updated.ID)
	assert.Equal(t, "ervin@chiefs.example", updated.Email)
	assert.Equal(t, "Ervin", updated.FirstName, "untouched fields keep their prior value")
	assert.Equal(t, "Sales", updated.Department)
	assert.Equal(t, 1, gw.updateCalls)

	v := store.View()
	assert.Equal(t, 3, v.TotalCount)
	assert.Equal(t, "ervin@chiefs.example", v.Users[1].Email)
}

func TestUpdateValidatesMergedRecord(t *testing.T) {
	store, gw := seededStore(t)

	_, err := store.Update(context.Background(), 2, models.Patch{
		Email: models.String("not-an-email"),
	})

	var verr *userdesk.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"Invalid email format"}, verr.Violations)
	assert.Equal(t, 0, gw.updateCalls)
}

func TestUpdateMissingID(t *testing.T) {
	store, gw := seededStore(t)

	_, err := store.Update(context.Background(), 42, models.Patch{
		Email: models.String("ghost@nowhere.example"),
	})

	var nerr *userdesk.NotFoundError
	require.ErrorAs(t, err, &nerr)
	assert.Equal(t, 42, nerr.ID)
	assert.Equal(t, 0, gw.updateCalls, "missing targets never reach the remote side")

	v := store.View()
	assert.Equal(t, 3, v.TotalCount)
	assert.Equal(t, err, v.LastErr)
}

func TestUpdateRemoteFailureLeavesRecord(t *testing.T) {
	store, gw := seededStore(t)
	gw.updateErr = &gateway.TransportError{Op: "update", Status: "Bad Gateway"}

	_, err := store.Update(context.Background(), 1, models.Patch{
		Department: models.String("Support"),
	})
	require.Error(t, err)

	v := store.View()
	assert.Equal(t, "Eng", v.Users[0].Department, "failed update must not apply locally")
	assert.Equal(t, err, v.LastErr)
}

func TestRemove(t *testing.T) {
	store, gw := seededStore(t)

	require.NoError(t, store.Remove(context.Background(), 2))
	assert.Equal(t, 1, gw.deleteCalls)

	v := store.View()
	assert.Equal(t, 2, v.TotalCount)
	for _, u := range v.Users {
		assert.NotEqual(t, 2, u.ID)
	}
}

func TestRemoveMissingID(t *testing.T) {
	store, gw := seededStore(t)

	err := store.Remove(context.Background(), 42)

	var nerr *userdesk.NotFoundError
	require.ErrorAs(t, err, &nerr)
	assert.Equal(t, 0, gw.deleteCalls)
	assert.Equal(t, 3, store.View().TotalCount)
}

func TestRemoveRemoteFailureKeepsRecord(t *testing.T) {
	store, gw := seededStore(t)
	gw.deleteErr = &gateway.TransportError{Op: "delete", Status: "Forbidden"}

	err := store.Remove(context.Background(), 1)
	require.Error(t, err)

	v := store.View()
	assert.Equal(t, 3, v.TotalCount)
	assert.Equal(t, err, v.LastErr)
}

func TestViewIsIdempotent(t *testing.T) {
	store, _ := seededStore(t)
	store.SetFilters(models.Filters{Department: "eng"})
	store.SetSort(models.SortByLastName)

	first := store.View()
	second := store.View()

	assert.Equal(t, first, second)
}

func TestFilterByDepartment(t *testing.T) {
	store, _ := seededStore(t)

	store.SetFilters(models.Filters{Department: "Eng"})
	store.SetPageSize(10)

	v := store.View()
	assert.Equal(t, 2, v.TotalCount)
	for _, u := range v.Users {
		assert.Equal(t, "Eng", u.Department)
	}
}

func TestFilterIsCaseInsensitiveSubstring(t *testing.T) {
	store, _ := seededStore(t)

	store.SetFilters(models.Filters{FirstName: "LEAN"})

	v := store.View()
	require.Equal(t, 1, v.TotalCount)
	assert.Equal(t, "Leanne", v.Users[0].FirstName)
}

func TestSearchNarrowsAfterFilters(t *testing.T) {
	store, _ := seededStore(t)

	// Filter keeps the two Eng users, search keeps only Clementine.
	store.SetFilters(models.Filters{Department: "Eng"})
	store.SetSearch("bauch")

	v := store.View()
	require.Equal(t, 1, v.TotalCount)
	assert.Equal(t, "Clementine", v.Users[0].FirstName)
}

func TestSearchMatchesAnyTextualField(t *testing.T) {
	store, _ := seededStore(t)

	store.SetSearch("melissa.tv")

	v := store.View()
	require.Equal(t, 1, v.TotalCount)
	assert.Equal(t, "Ervin", v.Users[0].FirstName)
}

func TestSortToggleFlipsDirection(t *testing.T) {
	store, _ := seededStore(t)

	store.SetSort(models.SortByLastName)
	asc := store.View()
	require.Equal(t, 3, asc.TotalCount)
	assert.Equal(t, "Bauch", asc.Users[0].LastName)
	assert.Equal(t, "Howell", asc.Users[2].LastName)

	store.SetSort(models.SortByLastName)
	desc := store.View()
	assert.Equal(t, 3, desc.TotalCount, "toggling never changes membership")
	assert.Equal(t, "Howell", desc.Users[0].LastName)
	assert.Equal(t, "Bauch", desc.Users[2].LastName)
}

func TestSortNewFieldResetsAscending(t *testing.T) {
	store, _ := seededStore(t)

	store.SetSort(models.SortByLastName)
	store.SetSort(models.SortByLastName) // now descending
	store.SetSort(models.SortByFirstName)

	assert.Equal(t, models.SortSpec{
		Field:     models.SortByFirstName,
		Direction: models.Ascending,
	}, store.Sort())
}

func TestSortByIDIsNumeric(t *testing.T) {
	gw := &fakeGateway{listResult: []models.APIUser{
		wire(10, "Ten Was", "ten@x.example", "Eng"),
		wire(2, "Two Comes", "two@x.example", "Eng"),
	}}
	store := userdesk.NewStore(gw)
	require.NoError(t, store.Load(context.Background()))

	store.SetSort(models.SortByID)

	v := store.View()
	assert.Equal(t, 2, v.Users[0].ID)
	assert.Equal(t, 10, v.Users[1].ID)
}

func TestNoSortPreservesRelativeOrder(t *testing.T) {
	store, _ := seededStore(t)

	store.SetFilters(models.Filters{Department: "Eng"})

	v := store.View()
	require.Equal(t, 2, v.TotalCount)
	assert.Equal(t, 1, v.Users[0].ID, "filtering only removes, never reorders")
	assert.Equal(t, 3, v.Users[1].ID)
}

func TestPagination(t *testing.T) {
	store, _ := seededStore(t)

	store.SetPageSize(2)
	v := store.View()
	assert.Equal(t, 1, v.PageIndex)
	assert.Len(t, v.Users, 2)
	assert.Equal(t, 3, v.TotalCount, "total is the pre-slice length")

	store.SetPage(2)
	v = store.View()
	assert.Equal(t, 2, v.PageIndex)
	require.Len(t, v.Users, 1)
	assert.Equal(t, 3, v.Users[0].ID)
}

func TestFilterChangeResetsPage(t *testing.T) {
	store, _ := seededStore(t)
	store.SetPageSize(2)
	store.SetPage(2)

	store.SetFilters(models.Filters{Department: "Eng"})
	assert.Equal(t, 1, store.View().PageIndex)

	store.SetPage(2)
	store.SetSearch("a")
	assert.Equal(t, 1, store.View().PageIndex)
}

func TestPageSizeChangeResetsPage(t *testing.T) {
	store, _ := seededStore(t)
	store.SetPageSize(1)
	store.SetPage(3)

	store.SetPageSize(2)
	v := store.View()
	assert.Equal(t, 1, v.PageIndex)
	assert.Equal(t, 2, v.PageSize)
}

func TestOutOfRangePageShowsNothing(t *testing.T) {
	store, _ := seededStore(t)

	store.SetPage(5)

	v := store.View()
	assert.Empty(t, v.Users)
	assert.Equal(t, 3, v.TotalCount)
}

func TestClearFilters(t *testing.T) {
	store, _ := seededStore(t)
	store.SetFilters(models.Filters{Department: "Sales"})
	require.Equal(t, 1, store.View().TotalCount)

	store.ClearFilters()
	assert.Equal(t, 3, store.View().TotalCount)
	assert.True(t, store.Filters().Empty())
}

func TestDismissError(t *testing.T) {
	store, gw := seededStore(t)
	gw.deleteErr = &gateway.TransportError{Op: "delete", Status: "Forbidden"}
	require.Error(t, store.Remove(context.Background(), 1))
	require.Error(t, store.View().LastErr)

	store.DismissError()

	v := store.View()
	assert.NoError(t, v.LastErr)
	assert.Equal(t, 3, v.TotalCount, "dismissal never retries or mutates")
}

func TestIDReuseAfterRemove(t *testing.T) {
	// max+1 deliberately reuses the highest id once the record holding
	// it is gone. Preserved behavior, see DESIGN.md.
	store, _ := seededStore(t)
	require.NoError(t, store.Remove(context.Background(), 3))

	created, err := store.Create(context.Background(), models.User{
		FirstName:  "Nicholas",
		LastName:   "Runolfsdottir",
		Email:      "Sherwood@rosamond.me",
		Department: "Eng",
	})
	require.NoError(t, err)
	assert.Equal(t, 3, created.ID)
}

func TestNoGateway(t *testing.T) {
	store := userdesk.NewStore(nil)

	err := store.Load(context.Background())
	assert.Error(t, err)
	assert.Equal(t, 0, store.View().TotalCount)
}
