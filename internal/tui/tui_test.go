package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Makepad-fr/packing/internal/model"
	"github.com/Makepad-fr/packing/internal/store"
)

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

var (
	space = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	tab   = tea.KeyMsg{Type: tea.KeyTab}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
	down  = tea.KeyMsg{Type: tea.KeyDown}
)

func newModel(t *testing.T, seed bool) (Model, *store.Store) {
	t.Helper()
	ids := &model.Counter{}
	var c store.Collection
	if seed {
		c = store.Seed(ids)
	}
	s := store.New(ids, c)
	m := New(s, zap.NewNop())
	return send(t, m, tea.WindowSizeMsg{Width: 80, Height: 40}), s
}

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m
}

func TestToggleSelected(t *testing.T) {
	m, s := newModel(t, true)

	m = send(t, m, space)
	it, _ := s.Snapshot().At(0)
	assert.True(t, it.Packed)
	assert.Equal(t, 1, store.PackedCount(s.Snapshot()))

	m = send(t, m, down, space)
	assert.Equal(t, 2, store.PackedCount(s.Snapshot()))

	send(t, m, space)
	second, _ := s.Snapshot().At(1)
	assert.False(t, second.Packed, "toggling twice restores the item")
}

func TestDeleteSelected(t *testing.T) {
	m, s := newModel(t, true)
	m = send(t, m, down, runes("d"))

	_, ok := s.Snapshot().Get("2")
	assert.False(t, ok)
	assert.Equal(t, 4, store.Total(s.Snapshot()))
	assert.Len(t, m.list.Items(), 4)
}

func TestClearAll(t *testing.T) {
	m, s := newModel(t, true)
	m = send(t, m, runes("C"))
	assert.Equal(t, 0, store.Total(s.Snapshot()))
	assert.Empty(t, m.list.Items())

	// nothing selected: toggle and delete are no-ops
	m = send(t, m, space, runes("d"))
	assert.Equal(t, 0, store.Total(s.Snapshot()))
	assert.Contains(t, m.View(), "Nothing to pack")
}

func TestAddThroughForm(t *testing.T) {
	m, s := newModel(t, false)

	m = send(t, m, runes("a"))
	require.Equal(t, adding, m.mode)

	m = send(t, m, runes("passport"), enter)
	assert.Equal(t, 1, store.Total(s.Snapshot()))
	assert.Equal(t, adding, m.mode, "form stays open after submit")
	assert.Equal(t, "", m.name.Value())
	assert.Equal(t, "1", m.qty.Value())

	m = send(t, m, runes("shirt"), tab)
	m.qty.SetValue("3")
	m = send(t, m, enter)

	it, ok := s.Snapshot().At(1)
	require.True(t, ok)
	assert.Equal(t, model.Item{ID: "2", Name: "shirt", Quantity: 3}, it)

	m = send(t, m, esc)
	assert.Equal(t, browsing, m.mode)
	assert.Len(t, m.list.Items(), 2)
}

func TestAddIgnoresBlankNameAndCoercesQuantity(t *testing.T) {
	m, s := newModel(t, false)
	m = send(t, m, runes("a"), runes("   "), enter)
	assert.Equal(t, 0, store.Total(s.Snapshot()))

	m.name.SetValue("socks")
	m.qty.SetValue("0")
	send(t, m, enter)

	it, ok := s.Snapshot().At(0)
	require.True(t, ok)
	assert.Equal(t, 1, it.Quantity)
}

func TestEditSelected(t *testing.T) {
	m, s := newModel(t, true)
	m = send(t, m, space, runes("e"))
	require.Equal(t, editing, m.mode)
	assert.Equal(t, "passport", m.name.Value())

	m.name.SetValue("passports")
	m.qty.SetValue("2")
	m = send(t, m, enter)

	assert.Equal(t, browsing, m.mode)
	it, _ := s.Snapshot().Get("1")
	assert.Equal(t, model.Item{ID: "1", Name: "passports", Quantity: 2, Packed: true}, it)
}

func TestQuit(t *testing.T) {
	m, _ := newModel(t, false)
	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestViewShowsProgress(t *testing.T) {
	m, _ := newModel(t, true)
	m = send(t, m, space)

	v := m.View()
	assert.Contains(t, v, "Packing List")
	assert.Contains(t, v, "Ready for your trip?")
	assert.Contains(t, v, "20.0%")
	assert.Contains(t, v, "/5")
	assert.Contains(t, v, "In progress")
	assert.Contains(t, v, "phone charger")
}
