package dashboard

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/userdesk/userdesk.go/pkg/models"
)

const (
	fieldFirstName = iota
	fieldLastName
	fieldEmail
	fieldDepartment
	fieldPhone
	fieldWebsite
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"First name",
	"Last name",
	"Email",
	"Department",
	"Phone",
	"Website",
}

// formModel is the add/edit form. editID is zero for a new user.
type formModel struct {
	inputs [fieldCount]textinput.Model
	focus  int
	editID int
	errs   []string
}

func newFormModel() formModel {
	var f formModel
	for i := range f.inputs {
		ti := textinput.New()
		ti.Placeholder = fieldLabels[i]
		ti.CharLimit = 80
		ti.Width = 40
		f.inputs[i] = ti
	}
	f.inputs[0].Focus()
	return f
}

func (f formModel) withUser(u models.User) formModel {
	f.editID = u.ID
	f.inputs[fieldFirstName].SetValue(u.FirstName)
	f.inputs[fieldLastName].SetValue(u.LastName)
	f.inputs[fieldEmail].SetValue(u.Email)
	f.inputs[fieldDepartment].SetValue(u.Department)
	f.inputs[fieldPhone].SetValue(u.Phone)
	f.inputs[fieldWebsite].SetValue(u.Website)
	return f
}

// draft builds the candidate record the store validates.
func (f formModel) draft() models.User {
	return models.User{
		ID:         f.editID,
		FirstName:  f.inputs[fieldFirstName].Value(),
		LastName:   f.inputs[fieldLastName].Value(),
		Email:      f.inputs[fieldEmail].Value(),
		Department: f.inputs[fieldDepartment].Value(),
		Phone:      f.inputs[fieldPhone].Value(),
		Website:    f.inputs[fieldWebsite].Value(),
	}
}

// patch builds a full patch for an edit; the form always shows every
// field, so every field is set.
func (f formModel) patch() models.Patch {
	return models.Patch{
		FirstName:  models.String(f.inputs[fieldFirstName].Value()),
		LastName:   models.String(f.inputs[fieldLastName].Value()),
		Email:      models.String(f.inputs[fieldEmail].Value()),
		Department: models.String(f.inputs[fieldDepartment].Value()),
		Phone:      models.String(f.inputs[fieldPhone].Value()),
		Website:    models.String(f.inputs[fieldWebsite].Value()),
	}
}

func (f formModel) update(msg tea.Msg) (formModel, tea.Cmd) {
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

func (f formModel) moveFocus(delta int) formModel {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + delta + fieldCount) % fieldCount
	f.inputs[f.focus].Focus()
	return f
}

func (f formModel) view(styles Styles) string {
	var b strings.Builder
	if f.editID == 0 {
		b.WriteString(styles.FormLabel.Render("Add user"))
	} else {
		b.WriteString(styles.FormLabel.Render("Edit user"))
	}
	b.WriteString("\n\n")
	for i, in := range f.inputs {
		b.WriteString(styles.FormLabel.Render(fieldLabels[i]))
		b.WriteString("\n")
		b.WriteString(in.View())
		b.WriteString("\n")
	}
	for _, e := range f.errs {
		b.WriteString(styles.FormError.Render("• " + e))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(styles.Help.Render("enter save · esc cancel · tab next field"))
	return b.String()
}
