package ui

import (
	"strings"

	"qualitybuilt/internal/site"
	"qualitybuilt/internal/ui/textutil"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Quote form field IDs, in tab order.
const (
	FieldName    = "name"
	FieldPhone   = "phone"
	FieldService = "service"
	FieldDetails = "details"
	FieldSubmit  = "submit"
)

const formWidth = 48

// QuoteRequest is what a visitor submits through the quote form.
type QuoteRequest struct {
	Name    string
	Phone   string
	Service string
	Details string
}

// Validate returns a message per missing required field, keyed by field ID.
func (q QuoteRequest) Validate() map[string]string {
	errs := make(map[string]string)
	if q.Name == "" {
		errs[FieldName] = "Full name is required"
	}
	if q.Phone == "" {
		errs[FieldPhone] = "Phone number is required"
	}
	if q.Details == "" {
		errs[FieldDetails] = "Project details are required"
	}
	return errs
}

// ContactFormModal is the "Request a Free Quote" form. Submitting only
// swaps in the thank-you state; nothing is sent anywhere.
type ContactFormModal struct {
	name      textinput.Model
	phone     textinput.Model
	details   textarea.Model
	services  []string
	service   int
	focus     *FocusRing
	focusCmd  tea.Cmd
	errs      map[string]string
	submitted bool
}

var _ View = (*ContactFormModal)(nil)

// NewContactFormModal creates an empty form focused on the name field.
func NewContactFormModal() *ContactFormModal {
	name := textinput.New()
	name.Placeholder = "John Doe"
	name.Width = formWidth - 4
	name.CharLimit = 80

	phone := textinput.New()
	phone.Placeholder = "076 000 0000"
	phone.Width = formWidth - 4
	phone.CharLimit = 20

	details := textarea.New()
	details.Placeholder = "Tell us about your project..."
	details.ShowLineNumbers = false
	details.SetWidth(formWidth)
	details.SetHeight(4)

	m := &ContactFormModal{
		name:     name,
		phone:    phone,
		details:  details,
		services: site.ServiceOptions(),
		focus:    NewFocusRing(FieldName, FieldPhone, FieldService, FieldDetails, FieldSubmit),
		errs:     map[string]string{},
	}
	m.focus.OnChange = m.moveFocus
	m.focusField(FieldName)
	return m
}

// Init implements View.
func (m *ContactFormModal) Init() tea.Cmd {
	return textinput.Blink
}

// Submitted reports whether the form is showing the thank-you state.
func (m *ContactFormModal) Submitted() bool {
	return m.submitted
}

// Focused returns the ID of the focused field.
func (m *ContactFormModal) Focused() string {
	return m.focus.Current
}

// Errors returns the validation messages from the last submit attempt.
func (m *ContactFormModal) Errors() map[string]string {
	return m.errs
}

// Request returns the form's current values, trimmed.
func (m *ContactFormModal) Request() QuoteRequest {
	svc := ""
	if len(m.services) > 0 {
		svc = m.services[m.service]
	}
	return QuoteRequest{
		Name:    strings.TrimSpace(m.name.Value()),
		Phone:   strings.TrimSpace(m.phone.Value()),
		Service: svc,
		Details: strings.TrimSpace(m.details.Value()),
	}
}

// Update implements View.
func (m *ContactFormModal) Update(msg tea.Msg) (View, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, m.updateFocused(msg)
	}

	if m.submitted {
		switch keyMsg.String() {
		case "esc":
			return m, func() tea.Msg { return DismissModalMsg{} }
		case "enter":
			m.Reset()
			return m, textinput.Blink
		}
		return m, nil
	}

	switch keyMsg.String() {
	case "esc":
		return m, func() tea.Msg { return DismissModalMsg{} }
	case "ctrl+s":
		return m, m.submit()
	case "tab":
		m.focus.Next()
		return m, m.takeFocusCmd()
	case "shift+tab":
		m.focus.Prev()
		return m, m.takeFocusCmd()
	}

	switch m.focus.Current {
	case FieldService:
		switch keyMsg.String() {
		case "left", "h":
			m.cycleService(-1)
		case "right", "l", " ":
			m.cycleService(1)
		case "enter", "down":
			m.focus.Next()
			return m, m.takeFocusCmd()
		case "up":
			m.focus.Prev()
			return m, m.takeFocusCmd()
		}
		return m, nil
	case FieldSubmit:
		if keyMsg.String() == "enter" {
			return m, m.submit()
		}
		return m, nil
	case FieldName, FieldPhone:
		if keyMsg.String() == "enter" {
			m.focus.Next()
			return m, m.takeFocusCmd()
		}
	}
	return m, m.updateFocused(msg)
}

// Reset clears every field and returns to the editing state.
func (m *ContactFormModal) Reset() {
	m.name.Reset()
	m.phone.Reset()
	m.details.Reset()
	m.service = 0
	m.errs = map[string]string{}
	m.submitted = false
	m.focus.SetFocus(FieldName)
	m.focusCmd = nil
}

func (m *ContactFormModal) submit() tea.Cmd {
	req := m.Request()
	m.errs = req.Validate()
	if len(m.errs) > 0 {
		for _, id := range m.focus.Order {
			if _, bad := m.errs[id]; bad {
				m.focus.SetFocus(id)
				break
			}
		}
		return m.takeFocusCmd()
	}
	m.submitted = true
	return func() tea.Msg { return QuoteSubmittedMsg{Request: req} }
}

func (m *ContactFormModal) cycleService(delta int) {
	n := len(m.services)
	if n == 0 {
		return
	}
	m.service = ((m.service+delta)%n + n) % n
}

// moveFocus is the focus ring's change hook: it blurs the input being left
// and focuses the new one, keeping the cursor cmd for the caller.
func (m *ContactFormModal) moveFocus(from, to string) {
	switch from {
	case FieldName:
		m.name.Blur()
	case FieldPhone:
		m.phone.Blur()
	case FieldDetails:
		m.details.Blur()
	}
	m.focusCmd = m.focusField(to)
}

func (m *ContactFormModal) focusField(id string) tea.Cmd {
	switch id {
	case FieldName:
		return m.name.Focus()
	case FieldPhone:
		return m.phone.Focus()
	case FieldDetails:
		return m.details.Focus()
	}
	return nil
}

func (m *ContactFormModal) takeFocusCmd() tea.Cmd {
	cmd := m.focusCmd
	m.focusCmd = nil
	return cmd
}

func (m *ContactFormModal) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.focus.Current {
	case FieldName:
		m.name, cmd = m.name.Update(msg)
	case FieldPhone:
		m.phone, cmd = m.phone.Update(msg)
	case FieldDetails:
		m.details, cmd = m.details.Update(msg)
	}
	return cmd
}

// View implements View.
func (m *ContactFormModal) View() string {
	if m.submitted {
		return Styles.Box.Width(formWidth + 6).Render(lipgloss.JoinVertical(lipgloss.Left,
			Styles.Success.Render("✔ Request Sent!"),
			"",
			Styles.Body.Render(lipgloss.NewStyle().Width(formWidth).Render(site.ThankYou)),
			"",
			Styles.ButtonOn.Render("Send Another Message"),
			"",
			Styles.Muted.Render("Enter: new message  Esc: close"),
		))
	}

	rows := []string{
		Styles.Heading.Render("Request a Free Quote"),
		"",
		m.fieldLabel(FieldName, "Full Name"),
		m.name.View(),
		m.fieldError(FieldName),
		m.fieldLabel(FieldPhone, "Phone Number"),
		m.phone.View(),
		m.fieldError(FieldPhone),
		m.fieldLabel(FieldService, "Service Required"),
		m.serviceView(),
		"",
		m.fieldLabel(FieldDetails, "Project Details"),
		m.details.View(),
		m.fieldError(FieldDetails),
		m.submitView(),
		"",
		Styles.Muted.Render("Tab: next field  Ctrl+S: send  Esc: close"),
	}
	return Styles.Box.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (m *ContactFormModal) fieldLabel(id, label string) string {
	if m.focus.Is(id) {
		return Styles.FieldOn.Render("› " + label)
	}
	return Styles.FieldOff.Render("  " + label)
}

func (m *ContactFormModal) fieldError(id string) string {
	if e, ok := m.errs[id]; ok {
		return Styles.Error.Render("  " + e)
	}
	return ""
}

func (m *ContactFormModal) serviceView() string {
	if len(m.services) == 0 {
		return ""
	}
	style := Styles.FieldOff
	if m.focus.Is(FieldService) {
		style = Styles.FieldOn
	}
	// pad to the longest option so the arrows stay put while cycling
	opt := textutil.PadRight(m.services[m.service], textutil.MaxWidth(m.services))
	return style.Render("  ‹ " + opt + " ›")
}

func (m *ContactFormModal) submitView() string {
	if m.focus.Is(FieldSubmit) {
		return Styles.ButtonOn.Render("Send Request")
	}
	return Styles.ButtonOff.Render("Send Request")
}
