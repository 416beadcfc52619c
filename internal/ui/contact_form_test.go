package ui

import (
	"testing"

	"qualitybuilt/internal/site"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func typeInto(m *ContactFormModal, s string) {
	for _, r := range s {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func TestContactForm_TabOrder(t *testing.T) {
	m := NewContactFormModal()
	assert.Equal(t, FieldName, m.Focused())

	var order []string
	for range 5 {
		m.Update(keyMsg("tab"))
		order = append(order, m.Focused())
	}
	assert.Equal(t, []string{FieldPhone, FieldService, FieldDetails, FieldSubmit, FieldName}, order)

	m.Update(keyMsg("shift+tab"))
	assert.Equal(t, FieldSubmit, m.Focused())
}

func TestContactForm_OnlyFocusedInputTakesCursor(t *testing.T) {
	m := NewContactFormModal()
	assert.True(t, m.name.Focused())

	_, cmd := m.Update(keyMsg("tab"))
	assert.NotNil(t, cmd, "focusing an input starts its cursor")
	assert.False(t, m.name.Focused())
	assert.True(t, m.phone.Focused())

	m.Update(keyMsg("tab"))
	m.Update(keyMsg("tab"))
	assert.False(t, m.phone.Focused())
	assert.True(t, m.details.Focused())

	m.Update(keyMsg("tab"))
	assert.False(t, m.details.Focused(), "submit button has no input")
}

func TestContactForm_EnterAdvancesSingleLineFields(t *testing.T) {
	m := NewContactFormModal()
	m.Update(keyMsg("enter"))
	assert.Equal(t, FieldPhone, m.Focused())
	m.Update(keyMsg("enter"))
	assert.Equal(t, FieldService, m.Focused())
	m.Update(keyMsg("enter"))
	assert.Equal(t, FieldDetails, m.Focused())
}

func TestContactForm_ServiceCycles(t *testing.T) {
	m := NewContactFormModal()
	m.focus.SetFocus(FieldService)
	opts := site.ServiceOptions()

	assert.Equal(t, opts[0], m.Request().Service)
	m.Update(keyMsg("right"))
	assert.Equal(t, opts[1], m.Request().Service)
	m.Update(keyMsg("left"))
	m.Update(keyMsg("left"))
	assert.Equal(t, opts[len(opts)-1], m.Request().Service, "left wraps to the last option")
}

func TestContactForm_ServiceArrowsStayAligned(t *testing.T) {
	m := NewContactFormModal()
	m.focus.SetFocus(FieldService)

	width := -1
	for range site.ServiceOptions() {
		row := ansi.Strip(m.serviceView())
		if width >= 0 {
			assert.Equal(t, width, ansi.StringWidth(row), "row %q", row)
		}
		width = ansi.StringWidth(row)
		m.Update(keyMsg("right"))
	}
}

func TestContactForm_RequiresFields(t *testing.T) {
	m := NewContactFormModal()
	typeInto(m, "Sipho")

	m.Update(keyMsg("ctrl+s"))
	assert.False(t, m.Submitted(), "incomplete form must not submit")
	errs := m.Errors()
	assert.Contains(t, errs, FieldPhone)
	assert.Contains(t, errs, FieldDetails)
	assert.NotContains(t, errs, FieldName)
	assert.Equal(t, FieldPhone, m.Focused(), "focus jumps to the first invalid field")
	assert.Contains(t, ansi.Strip(m.View()), "Phone number is required")
}

func TestContactForm_SubmitAndReset(t *testing.T) {
	m := NewContactFormModal()
	typeInto(m, "  Sipho Dlamini ")
	m.Update(keyMsg("tab"))
	typeInto(m, "076 123 4567")
	m.Update(keyMsg("tab"))
	m.Update(keyMsg("right"))
	m.Update(keyMsg("tab"))
	typeInto(m, "Two-room extension")
	m.Update(keyMsg("tab"))
	require.Equal(t, FieldSubmit, m.Focused())

	_, cmd := m.Update(keyMsg("enter"))
	require.NotNil(t, cmd)
	msg, ok := cmd().(QuoteSubmittedMsg)
	require.True(t, ok)
	assert.Equal(t, QuoteRequest{
		Name:    "Sipho Dlamini",
		Phone:   "076 123 4567",
		Service: site.ServiceOptions()[1],
		Details: "Two-room extension",
	}, msg.Request)

	assert.True(t, m.Submitted())
	view := ansi.Strip(m.View())
	assert.Contains(t, view, "Request Sent!")
	assert.Contains(t, view, "Send Another Message")

	// Typing is ignored in the thank-you state
	typeInto(m, "x")
	assert.True(t, m.Submitted())

	m.Update(keyMsg("enter"))
	assert.False(t, m.Submitted())
	assert.Equal(t, QuoteRequest{Service: site.ServiceOptions()[0]}, m.Request())
	assert.Equal(t, FieldName, m.Focused())
}

func TestContactForm_EscDismisses(t *testing.T) {
	for _, submitted := range []bool{false, true} {
		m := NewContactFormModal()
		m.submitted = submitted
		_, cmd := m.Update(keyMsg("esc"))
		require.NotNil(t, cmd)
		assert.IsType(t, DismissModalMsg{}, cmd())
	}
}

func TestQuoteRequest_Validate(t *testing.T) {
	assert.Empty(t, QuoteRequest{Name: "a", Phone: "b", Details: "c"}.Validate())
	assert.Len(t, QuoteRequest{}.Validate(), 3)
}

func TestFocusRing(t *testing.T) {
	var changes []string
	f := NewFocusRing("a", "b", "c")
	f.OnChange = func(from, to string) { changes = append(changes, from+">"+to) }

	assert.Equal(t, "c", f.Prev())
	assert.Equal(t, "a", f.Next())
	assert.True(t, f.SetFocus("b"))
	assert.False(t, f.SetFocus("z"))
	assert.True(t, f.SetFocus("b"), "refocusing is allowed")
	assert.Equal(t, []string{"a>c", "c>a", "a>b"}, changes)

	empty := &FocusRing{}
	assert.Equal(t, "", empty.Next())
}

func TestOverlayStack(t *testing.T) {
	var s OverlayStack
	_, ok := s.Peek()
	assert.False(t, ok)

	form := NewContactFormModal()
	assert.NotNil(t, s.Push(Overlay{Name: "quote", View: form}))
	assert.Equal(t, 1, s.Len())

	_, updated := s.UpdateTop(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("z")})
	assert.True(t, updated)
	assert.Equal(t, "z", form.Request().Name)

	top, ok := s.Pop()
	assert.True(t, ok)
	assert.Equal(t, "quote", top.Name)
	_, ok = s.Pop()
	assert.False(t, ok)
}
