package dashboard

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles the dashboard renders with.
type Styles struct {
	Title     lipgloss.Style
	Status    lipgloss.Style
	ErrBanner lipgloss.Style
	Loading   lipgloss.Style
	Help      lipgloss.Style
	FormLabel lipgloss.Style
	FormError lipgloss.Style
	Border    lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#8BC34A")).
			Padding(0, 1),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")),
		ErrBanner: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffffff")).
			Background(lipgloss.Color("#e53935")).
			Padding(0, 1),
		Loading: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFC107")),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		FormLabel: lipgloss.NewStyle().
			Bold(true),
		FormError: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#e53935")),
		Border: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1),
	}
}
