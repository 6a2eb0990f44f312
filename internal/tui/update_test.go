package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resizebox/internal/geom"
	"resizebox/internal/resize"
)

// With scale 10×20 the default rectangle spans canvas columns 10..19 and
// rows 5..9, i.e. screen rows 6..10 below the header.
func newTestModel(t *testing.T) Model {
	t.Helper()
	m := New(Options{Geometry: geom.DefaultGeometry(), ScaleX: 10, ScaleY: 20, Logger: zerolog.Nop()})
	return send(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
}

func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok)
	return out
}

func press(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func motion(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft}
}

func release(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease}
}

func screenCell(m Model, h resize.Handle) (int, int) {
	x, y := handleCell(m.cellRect(), h)
	return x, y + headerHeight
}

func TestHandleCells(t *testing.T) {
	m := newTestModel(t)
	r := m.cellRect()
	assert.Equal(t, cellRect{x0: 10, y0: 5, x1: 20, y1: 10}, r)
	assert.Equal(t, resize.TopLeft, handleAt(r, 10, 5))
	assert.Equal(t, resize.BottomRight, handleAt(r, 19, 9))
	assert.Equal(t, resize.TopCenter, handleAt(r, 14, 5))
	assert.Equal(t, resize.RightCenter, handleAt(r, 19, 7))
	assert.Equal(t, resize.NoHandle, handleAt(r, 12, 6))
}

func TestResizeFromRightCenter(t *testing.T) {
	m := newTestModel(t)
	x, y := screenCell(m, resize.RightCenter)
	m = send(t, m, press(x, y))
	require.True(t, m.IsResizing())
	assert.False(t, m.drag.Dragging(), "handle press must not start a drag")
	assert.True(t, m.drag.Disabled)

	m = send(t, m, motion(x+3, y))
	assert.Equal(t, geom.Geometry{Top: 100, Left: 100, Width: 130, Height: 100}, m.Geometry())

	// release far away still ends the session
	m = send(t, m, release(0, 0))
	assert.False(t, m.IsResizing())
}

func TestResizeFromLeftCenter(t *testing.T) {
	m := newTestModel(t)
	x, y := screenCell(m, resize.LeftCenter)
	m = send(t, m, press(x, y))
	m = send(t, m, motion(x-1, y))
	m = send(t, m, motion(x-2, y))
	assert.Equal(t, geom.Geometry{Top: 100, Left: 80, Width: 120, Height: 100}, m.Geometry())
}

func TestReleaseThenDragKeepsSize(t *testing.T) {
	m := newTestModel(t)
	x, y := screenCell(m, resize.BottomRight)
	m = send(t, m, press(x, y))
	m = send(t, m, motion(x+2, y+1))
	m = send(t, m, release(x+2, y+1))
	require.False(t, m.IsResizing())
	resized := m.Geometry()
	assert.Equal(t, geom.Geometry{Top: 100, Left: 100, Width: 120, Height: 120}, resized)

	m = send(t, m, press(12, 7))
	require.True(t, m.drag.Dragging())
	m = send(t, m, motion(15, 9))
	m = send(t, m, release(15, 9))

	g := m.Geometry()
	assert.Equal(t, resized.Width, g.Width)
	assert.Equal(t, resized.Height, g.Height)
	assert.Equal(t, 130.0, g.Left)
	assert.Equal(t, 140.0, g.Top)
	assert.False(t, m.drag.Dragging())
}

func TestDragStaysInsideParent(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, press(12, 7))
	m = send(t, m, motion(0, 0))
	g := m.Geometry()
	assert.Equal(t, 0.0, g.Left)
	assert.Equal(t, 0.0, g.Top)

	m = send(t, m, motion(79, 23))
	g = m.Geometry()
	b := m.parentBounds()
	assert.Equal(t, b.Width-g.Width, g.Left)
	assert.Equal(t, b.Height-g.Height, g.Top)
}

func TestPressOutsideDoesNothing(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, press(50, 20))
	assert.False(t, m.IsResizing())
	assert.False(t, m.drag.Dragging())
	m = send(t, m, motion(55, 22))
	assert.Equal(t, geom.DefaultGeometry(), m.Geometry())
}

func TestMotionWithoutPressOnlyHovers(t *testing.T) {
	m := newTestModel(t)
	x, y := screenCell(m, resize.TopRight)
	m = send(t, m, tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone})
	assert.Equal(t, geom.DefaultGeometry(), m.Geometry())
	assert.Equal(t, resize.CursorNESW, m.cursorHint())

	m = send(t, m, tea.MouseMsg{X: 50, Y: 20, Action: tea.MouseActionMotion})
	assert.Equal(t, resize.CursorMove, m.cursorHint())
}

func TestCursorWhileResizing(t *testing.T) {
	m := newTestModel(t)
	x, y := screenCell(m, resize.LeftCenter)
	m = send(t, m, press(x, y))
	assert.Equal(t, resize.CursorNS, m.cursorHint())
}

func TestBlurAndEscCancel(t *testing.T) {
	m := newTestModel(t)
	x, y := screenCell(m, resize.TopCenter)
	m = send(t, m, press(x, y))
	m = send(t, m, tea.BlurMsg{})
	assert.False(t, m.IsResizing())

	m = send(t, m, press(x, y))
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.IsResizing())
}

func TestKeys(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("p")})
	assert.Equal(t, resize.PolicyStrict, m.ctrl.Policy())

	x, y := screenCell(m, resize.BottomRight)
	m = send(t, m, press(x, y))
	m = send(t, m, motion(x+4, y+4))
	m = send(t, m, release(x+4, y+4))
	require.NotEqual(t, geom.DefaultGeometry(), m.Geometry())

	m = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	assert.Equal(t, geom.DefaultGeometry(), m.Geometry())

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestViewShowsStatus(t *testing.T) {
	m := newTestModel(t)
	v := m.View()
	assert.Contains(t, v, "resizebox")
	assert.Contains(t, v, "w=100 h=100")
	assert.Contains(t, v, "cursor: move")
	assert.Contains(t, v, "■")

	assert.Empty(t, New(Options{}).View())
}

func TestDragPinnedUntilPointerReturns(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, press(12, 7))
	m = send(t, m, motion(0, 1))
	g := m.Geometry()
	require.Equal(t, 0.0, g.Left)
	require.Equal(t, 0.0, g.Top)

	// back to where the box was clamped, not past it
	m = send(t, m, motion(2, 2))
	g = m.Geometry()
	assert.Equal(t, 0.0, g.Left)
	assert.Equal(t, 0.0, g.Top)

	m = send(t, m, motion(4, 3))
	g = m.Geometry()
	assert.Equal(t, 20.0, g.Left)
	assert.Equal(t, 20.0, g.Top)
	assert.Equal(t, 100.0, g.Width)
	assert.Equal(t, 100.0, g.Height)
}

func TestDragStaysDisabledForWholeResize(t *testing.T) {
	m := newTestModel(t)
	x, y := screenCell(m, resize.RightCenter)
	m = send(t, m, press(x, y))
	m = send(t, m, motion(x+2, y))
	require.Equal(t, 120.0, m.Geometry().Width)

	// a press on the body mid-session must not start a drag
	m = send(t, m, press(12, 7))
	assert.True(t, m.IsResizing())
	assert.True(t, m.drag.Disabled)
	assert.False(t, m.drag.Dragging())

	m = send(t, m, motion(14, 7))
	assert.False(t, m.drag.Dragging())
	assert.Equal(t, geom.Geometry{Top: 100, Left: 100, Width: 140, Height: 100}, m.Geometry())
}

func TestCancelRefreshesHover(t *testing.T) {
	m := newTestModel(t)
	x, y := screenCell(m, resize.TopRight)
	m = send(t, m, tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion})
	require.Equal(t, resize.CursorNESW, m.cursorHint())

	x, y = screenCell(m, resize.LeftCenter)
	m = send(t, m, press(x, y))
	m = send(t, m, tea.BlurMsg{})
	require.False(t, m.IsResizing())
	assert.Equal(t, resize.LeftCenter, m.hover)
	assert.Equal(t, resize.CursorEW, m.cursorHint())

	m = send(t, m, press(50, 20))
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, resize.CursorEW, m.cursorHint(), "no session, esc leaves hover alone")
}
