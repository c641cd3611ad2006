package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"go.uber.org/zap"

	"github.com/Makepad-fr/packing/internal/model"
	"github.com/Makepad-fr/packing/internal/store"
)

// listItem adapts model.Item to bubbles/list.Item
type listItem struct {
	model.Item
}

func (i listItem) FilterValue() string { return i.Name }

// Custom delegate to control how items render (single line)
type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(listItem)
	if !ok {
		return
	}
	width := m.Width() - 12
	if width < 10 {
		width = 10
	}
	name := truncate.StringWithTail(it.Name, uint(width), "…")

	box := mutedStyle.Render(boxUnpacked)
	badge := badgeStyle.Render(fmt.Sprintf("×%d", it.Quantity))
	if it.Packed {
		box = successStyle.Render(boxPacked)
		name = packedStyle.Render(name)
		badge = mutedStyle.Render(fmt.Sprintf("×%d", it.Quantity))
	}

	prefix := "  "
	if index == m.Index() {
		prefix = selectedStyle.Render("> ")
	}
	fmt.Fprintf(w, "%s%s %s %s", prefix, box, name, badge)
}

type mode int

const (
	browsing mode = iota
	adding
	editing
)

type keyMap struct {
	Toggle key.Binding
	Delete key.Binding
	Add    key.Binding
	Edit   key.Binding
	Clear  key.Binding
	Quit   key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Toggle: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "pack/unpack")),
		Delete: key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "delete")),
		Add:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Edit:   key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		Clear:  key.NewBinding(key.WithKeys("C"), key.WithHelp("C", "clear all")),
		Quit:   key.NewBinding(key.WithKeys("q", "esc"), key.WithHelp("q", "quit")),
	}
}

// Model is the Bubble Tea model of the packing list screen. It never
// touches items directly: every intent goes through the store and the
// list is rebuilt from the snapshot the store returns.
type Model struct {
	store *store.Store
	log   *zap.Logger
	keys  keyMap

	list list.Model
	bar  progress.Model

	// Add / edit form
	mode   mode
	name   textinput.Model
	qty    textinput.Model
	onQty  bool   // quantity field has focus
	editID string // item being edited

	width, height int
}

// New builds the screen over s.
func New(s *store.Store, log *zap.Logger) Model {
	if log == nil {
		log = zap.NewNop()
	}
	m := Model{
		store:  s,
		log:    log,
		keys:   defaultKeys(),
		width:  80,
		height: 24,
	}

	l := list.New(toListItems(s.Snapshot()), itemDelegate{}, 0, 0)
	l.Title = "Items"
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = boldStyle
	l.Styles.HelpStyle = helpStyle
	l.Styles.PaginationStyle = helpStyle
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("item", "items")
	l.DisableQuitKeybindings()
	extra := func() []key.Binding {
		return []key.Binding{m.keys.Toggle, m.keys.Delete, m.keys.Add, m.keys.Edit, m.keys.Clear, m.keys.Quit}
	}
	l.AdditionalShortHelpKeys = extra
	l.AdditionalFullHelpKeys = extra
	m.list = l

	m.bar = progress.New(progress.WithGradient("#8b5cf6", "#c4b5fd"), progress.WithoutPercentage())

	m.name = textinput.New()
	m.name.Prompt = "Item: "
	m.name.Placeholder = "Add item..."
	m.name.CharLimit = 200

	m.qty = textinput.New()
	m.qty.Prompt = "Qty: "
	m.qty.CharLimit = 4
	m.qty.Width = 4
	m.qty.SetValue("1")

	m.resize()
	return m
}

// Run starts the program and returns the list as it was on quit.
func Run(s *store.Store, log *zap.Logger, opts ...tea.ProgramOption) (store.Collection, error) {
	p := tea.NewProgram(New(s, log), opts...)
	if _, err := p.Run(); err != nil {
		return s.Snapshot(), err
	}
	return s.Snapshot(), nil
}

func toListItems(c store.Collection) []list.Item {
	out := make([]list.Item, 0, c.Len())
	for _, it := range c.Items() {
		out = append(out, listItem{it})
	}
	return out
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = ws.Width, ws.Height
		m.resize()
		return m, nil
	}
	if m.mode != browsing {
		return m.updateForm(msg)
	}

	km, ok := msg.(tea.KeyMsg)
	// While the filter prompt is open every key belongs to it.
	if !ok || m.list.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(km, m.keys.Quit):
		if km.String() == "esc" && m.list.FilterState() == list.FilterApplied {
			break
		}
		m.log.Info("quit", zap.Int("total", store.Total(m.store.Snapshot())))
		return m, tea.Quit

	case key.Matches(km, m.keys.Toggle):
		if it, ok := m.selected(); ok {
			c := m.store.Toggle(it.ID)
			m.log.Debug("toggle", zap.String("id", it.ID), zap.Int("packed", store.PackedCount(c)))
			return m, m.sync()
		}
		return m, nil

	case key.Matches(km, m.keys.Delete):
		if it, ok := m.selected(); ok {
			c := m.store.Remove(it.ID)
			m.log.Debug("remove", zap.String("id", it.ID), zap.Int("total", store.Total(c)))
			return m, m.sync()
		}
		return m, nil

	case key.Matches(km, m.keys.Clear):
		m.store.Clear()
		m.log.Debug("clear")
		return m, m.sync()

	case key.Matches(km, m.keys.Add):
		m.openForm(adding, model.Item{Quantity: 1})
		return m, textinput.Blink

	case key.Matches(km, m.keys.Edit):
		if it, ok := m.selected(); ok {
			m.openForm(editing, it)
			return m, textinput.Blink
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.String() {
		case "esc":
			m.closeForm()
			return m, nil
		case "tab", "shift+tab":
			m.onQty = !m.onQty
			m.focusForm()
			return m, nil
		case "enter":
			return m.submit()
		}
	}
	var cmd tea.Cmd
	if m.onQty {
		m.qty, cmd = m.qty.Update(msg)
	} else {
		m.name, cmd = m.name.Update(msg)
	}
	return m, cmd
}

// submit forwards the form to the store. Blank names are ignored and the
// form stays open, like an empty web form submission.
func (m Model) submit() (tea.Model, tea.Cmd) {
	name := m.name.Value()
	if !model.ValidName(name) {
		return m, nil
	}
	qty := model.ParseQuantity(m.qty.Value())

	if m.mode == editing {
		c := m.store.Edit(m.editID, name, qty)
		m.log.Debug("edit", zap.String("id", m.editID), zap.Int("total", store.Total(c)))
		m.closeForm()
		return m, m.sync()
	}

	c := m.store.Add(name, qty)
	m.log.Debug("add", zap.String("name", name), zap.Int("quantity", qty), zap.Int("total", store.Total(c)))
	// keep the form open for the next item
	m.name.SetValue("")
	m.qty.SetValue("1")
	m.onQty = false
	m.focusForm()
	cmd := m.sync()
	if n := len(m.list.VisibleItems()); n > 0 {
		m.list.Select(n - 1)
	}
	return m, cmd
}

func (m *Model) openForm(md mode, it model.Item) {
	m.mode = md
	m.editID = it.ID
	m.name.SetValue(it.Name)
	m.name.CursorEnd()
	m.qty.SetValue(fmt.Sprint(model.CoerceQuantity(it.Quantity)))
	m.onQty = false
	m.focusForm()
	m.resize()
}

func (m *Model) closeForm() {
	m.mode = browsing
	m.editID = ""
	m.name.SetValue("")
	m.qty.SetValue("1")
	m.name.Blur()
	m.qty.Blur()
	m.resize()
}

func (m *Model) focusForm() {
	if m.onQty {
		m.name.Blur()
		m.qty.Focus()
		m.qty.CursorEnd()
		return
	}
	m.qty.Blur()
	m.name.Focus()
}

// sync rebuilds the list rows from the current snapshot.
func (m *Model) sync() tea.Cmd {
	cmd := m.list.SetItems(toListItems(m.store.Snapshot()))
	if n := len(m.list.VisibleItems()); n > 0 && m.list.Index() >= n {
		m.list.Select(n - 1)
	}
	return cmd
}

func (m Model) selected() (model.Item, bool) {
	li, ok := m.list.SelectedItem().(listItem)
	if !ok {
		return model.Item{}, false
	}
	return li.Item, true
}

func (m *Model) resize() {
	inner := m.width - 4
	if inner < 20 {
		inner = 20
	}
	m.bar.Width = inner - 8
	if m.bar.Width < 10 {
		m.bar.Width = 10
	}
	m.name.Width = inner - 20

	// header (3) + progress (1) + status (1) + frame (2) + gaps
	h := m.height - 9
	if m.mode != browsing {
		h -= 5
	}
	if h < 3 {
		h = 3
	}
	m.list.SetSize(inner, h)
}

func (m Model) View() string {
	c := m.store.Snapshot()

	header := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Packing List"),
		subtitleStyle.Render("Ready for your trip?"),
	)
	pct := store.PercentPacked(c)
	bar := m.bar.ViewAs(store.Fraction(c)) + " " + accentStyle.Render(fmt.Sprintf("%.1f%%", pct))

	status := boldStyle.Render(fmt.Sprint(store.PackedCount(c))) +
		mutedStyle.Render(fmt.Sprintf("/%d", store.Total(c))) + "  "
	if store.Total(c) > 0 && store.PackedCount(c) == store.Total(c) {
		status += successStyle.Render(store.Status(c))
	} else {
		status += pendingStyle.Render(store.Status(c))
	}

	parts := []string{header, "", bar, status, ""}
	if m.mode != browsing {
		title := "Add item"
		if m.mode == editing {
			title = "Edit item"
		}
		form := lipgloss.JoinVertical(lipgloss.Left,
			boldStyle.Render(title),
			lipgloss.JoinHorizontal(lipgloss.Top, m.name.View(), "  ", m.qty.View()),
			helpStyle.Render("enter save • tab switch field • esc close"),
		)
		parts = append(parts, formStyle.Render(form))
	}
	parts = append(parts, m.list.View())
	return frameStyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}
