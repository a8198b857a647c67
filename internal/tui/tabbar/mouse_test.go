package tabbar

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func press(button tea.MouseButton, x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Button: button, Action: tea.MouseActionPress}
}

func TestMouse(t *testing.T) {
	// Each tab is " x.txt × ", nine cells wide.
	setupMouse := func(t *testing.T, names ...string) (*Bar, *spyEditors) {
		bar, editors := setup(t, func(o *Options) {
			o.Actions = &fakeActions{}
		})
		openAll(t, editors, names...)
		bar.SetWidth(80)
		return bar, editors
	}

	t.Run("tab at column", func(t *testing.T) {
		bar, _ := setupMouse(t, "a.txt", "b.txt", "c.txt")

		assert.Equal(t, 0, bar.TabAt(0))
		assert.Equal(t, 0, bar.TabAt(8))
		assert.Equal(t, 1, bar.TabAt(9))
		assert.Equal(t, 2, bar.TabAt(26))
		assert.Equal(t, -1, bar.TabAt(27))
	})

	t.Run("left click selects", func(t *testing.T) {
		bar, editors := setupMouse(t, "a.txt", "b.txt", "c.txt")

		handled, _ := bar.HandleMouse(press(tea.MouseButtonLeft, 12, 0))

		assert.True(t, handled)
		assert.Equal(t, 1, bar.CurrentIndex())
		assertAligned(t, bar, editors)
	})

	t.Run("clicking close glyph closes tab", func(t *testing.T) {
		bar, editors := setupMouse(t, "a.txt", "b.txt", "c.txt")

		bar.HandleMouse(press(tea.MouseButtonLeft, 7, 0))

		assert.Equal(t, []string{"b.txt", "c.txt"}, labels(bar))
		assertAligned(t, bar, editors)
	})

	t.Run("middle click closes tab", func(t *testing.T) {
		bar, editors := setupMouse(t, "a.txt", "b.txt", "c.txt")

		bar.HandleMouse(press(tea.MouseButtonMiddle, 10, 1))

		assert.Equal(t, []string{"a.txt", "c.txt"}, labels(bar))
		assertAligned(t, bar, editors)
	})

	t.Run("middle click outside tabs is ignored", func(t *testing.T) {
		bar, _ := setupMouse(t, "a.txt")

		bar.HandleMouse(press(tea.MouseButtonMiddle, 50, 0))

		assert.Equal(t, 1, bar.Count())
	})

	t.Run("clicks beneath the bar are not handled", func(t *testing.T) {
		bar, _ := setupMouse(t, "a.txt", "b.txt")

		handled, _ := bar.HandleMouse(press(tea.MouseButtonLeft, 1, Height))

		assert.False(t, handled)
		assert.Equal(t, 1, bar.CurrentIndex())
	})

	t.Run("drag moves tab", func(t *testing.T) {
		bar, editors := setupMouse(t, "a.txt", "b.txt", "c.txt")

		bar.HandleMouse(press(tea.MouseButtonLeft, 1, 0))
		bar.HandleMouse(tea.MouseMsg{X: 10, Y: 0, Button: tea.MouseButtonLeft, Action: tea.MouseActionMotion})
		bar.HandleMouse(tea.MouseMsg{X: 20, Y: 0, Button: tea.MouseButtonLeft, Action: tea.MouseActionMotion})
		bar.HandleMouse(tea.MouseMsg{X: 20, Y: 0, Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease})

		assert.Equal(t, []string{"b.txt", "c.txt", "a.txt"}, labels(bar))
		assert.Equal(t, 2, bar.CurrentIndex())
		assertAligned(t, bar, editors)

		// motion after release moves nothing
		handled, _ := bar.HandleMouse(tea.MouseMsg{X: 1, Y: 0, Button: tea.MouseButtonLeft, Action: tea.MouseActionMotion})
		assert.False(t, handled)
		assert.Equal(t, []string{"b.txt", "c.txt", "a.txt"}, labels(bar))
	})

	t.Run("wheel changes tab", func(t *testing.T) {
		bar, _ := setupMouse(t, "a.txt", "b.txt")

		bar.HandleMouse(press(tea.MouseButtonWheelUp, 1, 0))
		assert.Equal(t, 0, bar.CurrentIndex())
		bar.HandleMouse(press(tea.MouseButtonWheelUp, 1, 0))
		assert.Equal(t, 0, bar.CurrentIndex())
		bar.HandleMouse(press(tea.MouseButtonWheelDown, 1, 0))
		assert.Equal(t, 1, bar.CurrentIndex())
	})

	t.Run("scroll arrows", func(t *testing.T) {
		bar, _ := setupMouse(t, "a.txt", "b.txt", "c.txt", "d.txt", "e.txt")
		bar.SetWidth(20)
		require.Equal(t, 4, bar.CurrentIndex())
		require.Equal(t, 4, bar.offset)
		assert.Equal(t, 4, bar.TabAt(2))
		assert.Equal(t, -1, bar.TabAt(1))

		// left arrow
		bar.HandleMouse(press(tea.MouseButtonLeft, 0, 0))
		assert.Equal(t, 3, bar.offset)
		assert.Equal(t, 3, bar.TabAt(2))

		// right arrow
		bar.HandleMouse(press(tea.MouseButtonLeft, 19, 0))
		assert.Equal(t, 4, bar.offset)
		// no more tabs to the right
		bar.HandleMouse(press(tea.MouseButtonLeft, 19, 0))
		assert.Equal(t, 4, bar.offset)
	})
}

func TestView(t *testing.T) {
	t.Run("renders tabs", func(t *testing.T) {
		bar, editors := setup(t)
		openAll(t, editors, "a.txt", "b.txt")
		bar.SetWidth(40)

		lines := strings.Split(bar.View(), "\n")

		require.Len(t, lines, Height)
		assert.Equal(t, " a.txt ×  b.txt × "+strings.Repeat(" ", 22), lines[0])
		assert.Equal(t, strings.Repeat("─", 9)+strings.Repeat("━", 9)+strings.Repeat("─", 22), lines[1])
	})

	t.Run("renders scroll arrows when overflowing", func(t *testing.T) {
		bar, editors := setup(t)
		openAll(t, editors, "a.txt", "b.txt", "c.txt")
		bar.SetWidth(20)

		lines := strings.Split(bar.View(), "\n")

		assert.True(t, strings.HasPrefix(lines[0], "‹ "))
		assert.True(t, strings.HasSuffix(lines[0], "› "))
		assert.Contains(t, lines[0], "c.txt")
		assert.NotContains(t, lines[0], "a.txt")
	})
}
