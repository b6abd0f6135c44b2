// Package dashboard is the terminal view layer over the userdesk store.
//
// It owns no collection state of its own: every key press either raises
// an intent on the store (load, create, edit, delete, filter, search,
// sort, page) or navigates between the table, the filter form, the
// add/edit form and the delete confirmation. After each intent the table
// re-renders from the store's derived view.
package dashboard

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/userdesk/userdesk.go"
	"github.com/userdesk/userdesk.go/contrib/mockapi"
	"github.com/userdesk/userdesk.go/pkg/models"
)

type mode int

const (
	modeTable mode = iota
	modeSearch
	modeFilter
	modeForm
	modeConfirm
)

// opDoneMsg reports a finished store operation. The error may be nil, a
// validation error, a not-found error or a transport error; the store
// has already recorded whatever needs recording.
type opDoneMsg struct {
	err error
}

type liveEventMsg mockapi.Event

type liveClosedMsg struct{}

// Model is the bubbletea model for the dashboard.
type Model struct {
	store  *userdesk.Store
	logger zerolog.Logger
	styles Styles

	mode      mode
	table     table.Model
	search    textinput.Model
	filter    filterModel
	form      formModel
	confirmID int

	live     <-chan mockapi.Event
	liveNote string

	width  int
	height int
}

// NewModel builds the dashboard over the given store. live may be nil.
func NewModel(store *userdesk.Store, live <-chan mockapi.Event, logger zerolog.Logger) Model {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "ID", Width: 5},
			{Title: "First name", Width: 14},
			{Title: "Last name", Width: 16},
			{Title: "Email", Width: 28},
			{Title: "Department", Width: 20},
		}),
		table.WithFocused(true),
		table.WithHeight(12),
	)

	si := textinput.New()
	si.Placeholder = "Search all fields..."
	si.CharLimit = 80
	si.Width = 40

	return Model{
		store:  store,
		logger: logger,
		styles: DefaultStyles(),
		table:  t,
		search: si,
		filter: newFilterModel(),
		form:   newFormModel(),
		live:   live,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadCmd(), m.listenLive())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case opDoneMsg:
		if verr, ok := errAsValidation(msg.err); ok && m.mode == modeForm {
			// Keep the form open with the full violation list.
			m.form.errs = verr.Violations
			return m, nil
		}
		if msg.err == nil && m.mode == modeForm {
			m.mode = modeTable
			m.form = newFormModel()
		}
		m.refreshTable()
		return m, nil

	case liveEventMsg:
		m.liveNote = fmt.Sprintf("remote %s #%d", msg.Action, msg.ID)
		return m, m.listenLive()

	case liveClosedMsg:
		m.liveNote = "live feed closed"
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case modeSearch:
			return m.updateSearch(msg)
		case modeFilter:
			return m.updateFilter(msg)
		case modeForm:
			return m.updateForm(msg)
		case modeConfirm:
			return m.updateConfirm(msg)
		}
		return m.updateTable(msg)
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) updateTable(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "r":
		return m, m.loadCmd()
	case "/":
		m.mode = modeSearch
		m.search.SetValue(m.store.Search())
		m.search.Focus()
		return m, nil
	case "f":
		m.mode = modeFilter
		m.filter = m.filter.withFilters(m.store.Filters())
		return m, nil
	case "c":
		m.store.ClearFilters()
		m.store.SetSearch("")
		m.search.SetValue("")
		m.refreshTable()
		return m, nil
	case "a":
		m.mode = modeForm
		m.form = newFormModel()
		return m, nil
	case "e", "enter":
		if u, ok := m.selectedUser(); ok {
			m.mode = modeForm
			m.form = newFormModel().withUser(u)
		}
		return m, nil
	case "d":
		if u, ok := m.selectedUser(); ok {
			m.mode = modeConfirm
			m.confirmID = u.ID
		}
		return m, nil
	case "x":
		m.store.DismissError()
		m.refreshTable()
		return m, nil
	case "1", "2", "3", "4", "5":
		fields := []models.SortField{
			models.SortByID,
			models.SortByFirstName,
			models.SortByLastName,
			models.SortByEmail,
			models.SortByDepartment,
		}
		idx, _ := strconv.Atoi(msg.String())
		m.store.SetSort(fields[idx-1])
		m.refreshTable()
		return m, nil
	case "0":
		m.store.SetSort(models.SortNone)
		m.refreshTable()
		return m, nil
	case "n", "right":
		m.store.SetPage(m.store.View().PageIndex + 1)
		m.refreshTable()
		return m, nil
	case "p", "left":
		m.store.SetPage(m.store.View().PageIndex - 1)
		m.refreshTable()
		return m, nil
	case "+":
		m.store.SetPageSize(m.store.View().PageSize + 5)
		m.refreshTable()
		return m, nil
	case "-":
		if size := m.store.View().PageSize - 5; size >= 5 {
			m.store.SetPageSize(size)
			m.refreshTable()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc":
		m.mode = modeTable
		m.search.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	// Live narrowing on every keystroke.
	m.store.SetSearch(m.search.Value())
	m.refreshTable()
	return m, cmd
}

func (m Model) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.store.SetFilters(m.filter.criteria())
		m.mode = modeTable
		m.refreshTable()
		return m, nil
	case "esc":
		m.mode = modeTable
		return m, nil
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.update(msg)
	return m, cmd
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		if m.form.editID == 0 {
			return m, m.createCmd(m.form.draft())
		}
		return m, m.updateCmd(m.form.editID, m.form.patch())
	case "esc":
		m.mode = modeTable
		m.form = newFormModel()
		return m, nil
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.update(msg)
	return m, cmd
}

func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		id := m.confirmID
		m.mode = modeTable
		m.confirmID = 0
		return m, m.removeCmd(id)
	case "n", "esc":
		m.mode = modeTable
		m.confirmID = 0
		return m, nil
	}
	return m, nil
}

func (m Model) View() string {
	v := m.store.View()

	header := m.styles.Title.Render("userdesk")
	if v.Loading {
		header = lipgloss.JoinHorizontal(lipgloss.Top, header, " ", m.styles.Loading.Render("loading..."))
	}

	var banner string
	if v.LastErr != nil {
		banner = m.styles.ErrBanner.Render(v.LastErr.Error()+"  (x to dismiss)") + "\n"
	}

	var body string
	switch m.mode {
	case modeFilter:
		body = m.styles.Border.Render(m.filter.view(m.styles))
	case modeForm:
		body = m.styles.Border.Render(m.form.view(m.styles))
	case modeConfirm:
		body = m.styles.Border.Render(fmt.Sprintf("Delete user #%d? (y/n)", m.confirmID))
	default:
		body = m.table.View()
		if m.mode == modeSearch {
			body += "\n" + m.search.View()
		}
	}

	status := m.statusLine(v)
	help := m.styles.Help.Render(
		"r reload · / search · f filter · c clear · a add · e edit · d delete · 1-5 sort · n/p page · q quit")

	return header + "\n" + banner + body + "\n" + status + "\n" + help + "\n"
}

func (m Model) statusLine(v userdesk.View) string {
	pages := (v.TotalCount + v.PageSize - 1) / v.PageSize
	if pages < 1 {
		pages = 1
	}
	s := fmt.Sprintf("page %d/%d · %d users · %d per page", v.PageIndex, pages, v.TotalCount, v.PageSize)
	if spec := m.store.Sort(); spec.Field != models.SortNone {
		s += fmt.Sprintf(" · sort %s %s", spec.Field, spec.Direction)
	}
	if m.liveNote != "" {
		s += " · " + m.liveNote
	}
	return m.styles.Status.Render(s)
}

// refreshTable re-renders the table rows from the store's derived view.
func (m *Model) refreshTable() {
	v := m.store.View()
	rows := make([]table.Row, 0, len(v.Users))
	for _, u := range v.Users {
		rows = append(rows, table.Row{
			strconv.Itoa(u.ID),
			u.FirstName,
			u.LastName,
			u.Email,
			u.Department,
		})
	}
	m.table.SetRows(rows)
}

func (m Model) selectedUser() (models.User, bool) {
	row := m.table.SelectedRow()
	if row == nil {
		return models.User{}, false
	}
	id, err := strconv.Atoi(row[0])
	if err != nil {
		return models.User{}, false
	}
	for _, u := range m.store.View().Users {
		if u.ID == id {
			return u, true
		}
	}
	return models.User{}, false
}

// --------------------------------------------------
// Commands
// --------------------------------------------------

func (m Model) loadCmd() tea.Cmd {
	store := m.store
	return func() tea.Msg {
		return opDoneMsg{err: store.Load(context.Background())}
	}
}

func (m Model) createCmd(draft models.User) tea.Cmd {
	store := m.store
	return func() tea.Msg {
		_, err := store.Create(context.Background(), draft)
		return opDoneMsg{err: err}
	}
}

func (m Model) updateCmd(id int, patch models.Patch) tea.Cmd {
	store := m.store
	return func() tea.Msg {
		_, err := store.Update(context.Background(), id, patch)
		return opDoneMsg{err: err}
	}
}

func (m Model) removeCmd(id int) tea.Cmd {
	store := m.store
	return func() tea.Msg {
		return opDoneMsg{err: store.Remove(context.Background(), id)}
	}
}

func (m Model) listenLive() tea.Cmd {
	if m.live == nil {
		return nil
	}
	ch := m.live
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return liveClosedMsg{}
		}
		return liveEventMsg(ev)
	}
}

func errAsValidation(err error) (*userdesk.ValidationError, bool) {
	if err == nil {
		return nil, false
	}
	verr, ok := err.(*userdesk.ValidationError)
	return verr, ok
}
