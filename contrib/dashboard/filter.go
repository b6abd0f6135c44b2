package dashboard

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/userdesk/userdesk.go/pkg/models"
)

const (
	filterFirstName = iota
	filterLastName
	filterEmail
	filterDepartment
	filterCount
)

var filterLabels = [filterCount]string{
	"First name",
	"Last name",
	"Email",
	"Department",
}

// filterModel edits the per-field substring patterns.
type filterModel struct {
	inputs [filterCount]textinput.Model
	focus  int
}

func newFilterModel() filterModel {
	var f filterModel
	for i := range f.inputs {
		ti := textinput.New()
		ti.Placeholder = filterLabels[i] + " contains..."
		ti.CharLimit = 80
		ti.Width = 30
		f.inputs[i] = ti
	}
	f.inputs[0].Focus()
	return f
}

func (f filterModel) withFilters(criteria models.Filters) filterModel {
	f.inputs[filterFirstName].SetValue(criteria.FirstName)
	f.inputs[filterLastName].SetValue(criteria.LastName)
	f.inputs[filterEmail].SetValue(criteria.Email)
	f.inputs[filterDepartment].SetValue(criteria.Department)
	return f
}

func (f filterModel) criteria() models.Filters {
	return models.Filters{
		FirstName:  f.inputs[filterFirstName].Value(),
		LastName:   f.inputs[filterLastName].Value(),
		Email:      f.inputs[filterEmail].Value(),
		Department: f.inputs[filterDepartment].Value(),
	}
}

func (f filterModel) update(msg tea.Msg) (filterModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "down":
			f = f.moveFocus(1)
			return f, nil
		case "shift+tab", "up":
			f = f.moveFocus(-1)
			return f, nil
		}
	}

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd
}

func (f filterModel) moveFocus(delta int) filterModel {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + delta + filterCount) % filterCount
	f.inputs[f.focus].Focus()
	return f
}

func (f filterModel) view(styles Styles) string {
	var b strings.Builder
	b.WriteString(styles.FormLabel.Render("Filter users"))
	b.WriteString("\n\n")
	for i, in := range f.inputs {
		b.WriteString(styles.FormLabel.Render(filterLabels[i]))
		b.WriteString("\n")
		b.WriteString(in.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(styles.Help.Render("enter apply · esc cancel · tab next field"))
	return b.String()
}
