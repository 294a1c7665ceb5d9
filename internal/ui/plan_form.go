package ui

import (
	"errors"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/floorboard/internal/plans"
)

// planSubmittedMsg carries the completed form values.
type planSubmittedMsg struct {
	form plans.Form
}

// planCancelledMsg is sent when the form is dismissed with esc.
type planCancelledMsg struct{}

// planForm wraps the huh form that registers a production order. Field values
// live behind a pointer so the bound huh inputs keep writing to the same
// struct as the Model is copied.
type planForm struct {
	form   *huh.Form
	values *plans.Form
}

func newPlanForm(th Theme, now time.Time) *planForm {
	values := &plans.Form{
		Date:     now.Format(plans.DateLayout),
		Priority: string(plans.PriorityNormal),
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Item").
				Placeholder("Bracket Assembly").
				Value(&values.Item).
				Validate(validateItem),
			huh.NewInput().
				Title("Quantity").
				Placeholder("1000").
				Value(&values.Qty).
				Validate(validateQty),
			huh.NewInput().
				Title("Due date (YYYY-MM-DD)").
				Placeholder(values.Date).
				Value(&values.Date).
				Validate(validateDate),
			huh.NewSelect[string]().
				Title("Priority").
				Options(
					huh.NewOption("Normal", string(plans.PriorityNormal)),
					huh.NewOption("Urgent", string(plans.PriorityUrgent)),
				).
				Value(&values.Priority),
		),
	).WithTheme(floorboardHuhTheme(th)).WithShowHelp(false)

	return &planForm{form: form, values: values}
}

func (f *planForm) Init() tea.Cmd {
	return f.form.Init()
}

// Update forwards msg to the form. Esc cancels; completion emits
// planSubmittedMsg with a copy of the values.
func (f *planForm) Update(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		return func() tea.Msg { return planCancelledMsg{} }
	}

	form, cmd := f.form.Update(msg)
	if hf, ok := form.(*huh.Form); ok {
		f.form = hf
	}

	switch f.form.State {
	case huh.StateCompleted:
		values := *f.values
		return tea.Batch(cmd, func() tea.Msg { return planSubmittedMsg{form: values} })
	case huh.StateAborted:
		return tea.Batch(cmd, func() tea.Msg { return planCancelledMsg{} })
	}
	return cmd
}

func (f *planForm) View() string {
	return f.form.View()
}

// floorboardHuhTheme tints huh's base theme with the active palette.
func floorboardHuhTheme(th Theme) *huh.Theme {
	t := huh.ThemeBase()

	accent := lipgloss.Color(th.Accent)
	text := lipgloss.Color(th.Text)
	faint := lipgloss.Color(th.Faint)

	t.Focused.Title = lipgloss.NewStyle().Foreground(accent).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(accent)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(lipgloss.Color(th.Success))
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(text)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(accent)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(accent)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(text)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(faint)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(lipgloss.Color(th.Danger))

	t.Blurred.Title = lipgloss.NewStyle().Foreground(faint)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(faint)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(faint)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(faint)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(faint)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(faint)

	return t
}

func validateItem(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("enter an item name")
	}
	return nil
}

// validateQty blocks submission of anything that is not a non-negative
// integer.
func validateQty(s string) error {
	if _, err := plans.ParseQty(s); err != nil {
		return errors.New("enter a non-negative whole number")
	}
	return nil
}

func validateDate(s string) error {
	if _, err := time.Parse(plans.DateLayout, strings.TrimSpace(s)); err != nil {
		return errors.New("use YYYY-MM-DD format")
	}
	return nil
}
