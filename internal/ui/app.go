package ui

import (
	"time"

	"qualitybuilt/internal/nav"
	"qualitybuilt/internal/site"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)

// Options configures NewAppModel.
type Options struct {
	InitialView nav.View
	Nav         nav.Config
	Logger      *zap.Logger
	Observer    nav.Observer
	// Now supplies the footer year. Defaults to time.Now.
	Now func() time.Time
}

// AppModel is the root model. It owns the page selector and routes
// messages to the navbar, the mounted page and any open overlay.
type AppModel struct {
	Selector   *nav.Selector
	Page       *PageView
	Navbar     *Navbar
	KeyHandler *KeyHandler
	Overlays   OverlayStack
	Renderer   *PageRenderer
	Log        *zap.Logger

	// Category is the gallery filter; empty shows everything.
	Category string
	// Quotes holds the requests accepted this session.
	Quotes []QuoteRequest

	width  int
	height int
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root application model with the initial page
// already mounted.
func NewAppModel(opts Options) *AppModel {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	cfg := opts.Nav
	if cfg == (nav.Config{}) {
		cfg = nav.DefaultConfig()
	}
	renderer := NewPageRenderer()
	if opts.Now != nil {
		renderer.Now = opts.Now
	}

	page := NewPageView(defaultWidth, defaultHeight)
	navOpts := []nav.Option{
		nav.WithConfig(cfg),
		nav.WithLogger(log.Named("nav")),
		nav.WithInitialView(opts.InitialView),
	}
	if opts.Observer != nil {
		navOpts = append(navOpts, nav.WithObserver(opts.Observer))
	}

	a := &AppModel{
		Selector:   nav.NewSelector(page, navOpts...),
		Page:       page,
		Navbar:     NewNavbar(),
		KeyHandler: NewKeyHandler(newRegistry()),
		Renderer:   renderer,
		Log:        log,
		width:      defaultWidth,
		height:     defaultHeight,
	}
	a.Navbar.Width = a.width
	a.mount()
	a.layout()
	return a
}

// leaderRoutes are the SPC page shortcuts. Footer links show theirs.
var leaderRoutes = []struct {
	seq    string
	desc   string
	target nav.View
	anchor string
}{
	{"SPC h", "Home", nav.Home, ""},
	{"SPC s", "Services", nav.Services, ""},
	{"SPC a", "About us", nav.Home, site.AnchorAbout},
	{"SPC p", "Projects", nav.Gallery, ""},
	{"SPC c", "Contact", nav.Home, site.AnchorContact},
	{"SPC t", "Terms", nav.Terms, ""},
	{"SPC v", "Privacy", nav.Privacy, ""},
}

// routeSeq returns the leader sequence that follows l.
func routeSeq(l site.NavLink) (string, bool) {
	for _, r := range leaderRoutes {
		if r.target == l.Target && r.anchor == l.Anchor {
			return r.seq, true
		}
	}
	return "", false
}

// newRegistry binds the global keys. Page-specific keys carry a view filter.
func newRegistry() *KeybindRegistry {
	reg := NewKeybindRegistry()
	subPages := []nav.View{nav.Gallery, nav.Services, nav.Terms, nav.Privacy}

	reg.BindWithDesc("q", tea.Quit, "Quit")
	reg.BindWithDesc("ctrl+c", tea.Quit, "Quit")
	reg.BindWithDesc("SPC q", tea.Quit, "Quit")
	for _, r := range leaderRoutes {
		reg.BindWithDesc(r.seq, navigateCmd(r.target, r.anchor), r.desc)
	}
	reg.BindWithDesc("SPC f", func() tea.Msg { return ShowQuoteFormMsg{} }, "Free quote")
	reg.BindWithDesc("m", func() tea.Msg { return ToggleMenuMsg{} }, "Menu")
	reg.BindWithDescForViews("esc", navigateCmd(nav.Home, ""), "Back", subPages)
	reg.BindWithDescForViews("b", navigateCmd(nav.Home, ""), "Back", subPages)
	reg.BindWithDescForViews("c", func() tea.Msg { return CycleCategoryMsg{} }, "Category", []nav.View{nav.Gallery})
	reg.BindWithDescForViews("f", func() tea.Msg { return ScrollToAnchorMsg{Anchor: site.AnchorContact} }, "Get a quote", []nav.View{nav.Home})
	return reg
}

func navigateCmd(target nav.View, anchor string) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{Target: target, Anchor: anchor} }
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}

// Current returns the displayed page.
func (a *AppModel) Current() nav.View {
	return a.Selector.Current()
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return a.Page.Init()
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := a.update(msg)
	a.layout()
	return a, cmd
}

func (a *AppModel) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.Navbar.Width = msg.Width
		a.mount()
		return nil
	case NavigateMsg:
		return a.navigate(msg.Target, msg.Anchor)
	case AnchorScrollMsg:
		return a.resolveAnchor(msg.Request)
	case ScrollToAnchorMsg:
		a.Selector.ScrollToAnchorNow(msg.Anchor)
		return nil
	case ShowQuoteFormMsg:
		return a.showQuoteForm()
	case DismissModalMsg:
		a.Overlays.Pop()
		return nil
	case QuoteSubmittedMsg:
		a.handleQuoteSubmitted(msg.Request)
		return nil
	case CycleCategoryMsg:
		a.cycleCategory()
		return nil
	case ToggleMenuMsg:
		if a.Navbar.Compact() {
			a.Navbar.ToggleMenu()
		}
		return nil
	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	if a.Overlays.Len() > 0 {
		cmd, _ := a.Overlays.UpdateTop(msg)
		return cmd
	}
	_, cmd := a.Page.Update(msg)
	return cmd
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	if top, ok := a.Overlays.Peek(); ok {
		return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, top.View.View())
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		a.Navbar.Render(a.Current(), a.Page.YOffset()),
		a.Page.View(),
		a.bottomBar(),
	)
}

func (a *AppModel) bottomBar() string {
	if a.KeyHandler.LeaderWaiting {
		return RenderKeybindHelp(a.KeyHandler, a.Current())
	}
	hint := "SPC: menu  tab: links  j/k: scroll  q: quit"
	if a.Current() != nav.Home {
		hint = "esc: back  " + hint
	}
	return Styles.Status.Render(hint)
}

// layout sizes the page to the space left by the navbar and bottom bar.
func (a *AppModel) layout() {
	chrome := lipgloss.Height(a.Navbar.Render(a.Current(), a.Page.YOffset())) +
		lipgloss.Height(a.bottomBar())
	a.Page.SetSize(a.width, max(a.height-chrome, 1))
}

// mount renders the current page at the current width.
func (a *AppModel) mount() {
	a.Page.Mount(a.Renderer.Render(a.Current(), RenderOptions{
		Width:    a.width,
		Category: a.Category,
	}))
}
