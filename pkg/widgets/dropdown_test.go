package widgets_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-glane/glane/pkg/core"
	"github.com/go-glane/glane/pkg/graphics"
	"github.com/go-glane/glane/pkg/input"
	glanetest "github.com/go-glane/glane/pkg/testing"
	"github.com/go-glane/glane/pkg/widgets"
)

func openDropdown(t *testing.T, dd *widgets.Dropdown, root core.Widget) *glanetest.SceneTester {
	t.Helper()
	tester := glanetest.NewSceneTesterWithT(t)
	tester.SetSize(graphics.Size{Width: 200, Height: 300})
	require.NoError(t, tester.PumpWidget(root))

	events, err := tester.ClickAt(graphics.Point{X: 10, Y: 10})
	require.NoError(t, err)
	_, _, opened := core.FindMessage[widgets.DropdownOpened](events, dd)
	require.True(t, opened)
	require.True(t, dd.IsOpen())
	require.NoError(t, tester.Pump())
	return tester
}

func hasPayload[M any](events *core.Events) bool {
	for _, e := range events.All() {
		if _, ok := e.Payload().(M); ok {
			return true
		}
	}
	return false
}

func TestDropdown_ShowsSelectedItem(t *testing.T) {
	tester := glanetest.NewSceneTesterWithT(t)
	dd := widgets.NewDropdown("red", "green", "blue")
	require.NoError(t, tester.PumpWidget(dd))

	assert.Equal(t, 3, dd.Len())
	assert.Equal(t, []string{"red"}, tester.Texts())
	assert.Equal(t, graphics.RectFromLTWH(0, 0, 800, 26), tester.Find(glanetest.ByOwner(dd)).Rect())
	assert.Equal(t, graphics.RectFromLTWH(5, 3, 30, 20), tester.Find(glanetest.ByText("red")).Rect())
}

func TestDropdown_OpenListOnNextLayer(t *testing.T) {
	dd := widgets.NewDropdown("red", "green", "blue")
	tester := openDropdown(t, dd, dd)

	assert.Equal(t, []string{"red", "red", "green", "blue"}, tester.Texts())
	var top []core.LayoutElement
	for _, e := range tester.Layout().All() {
		if e.Layer() == 1 {
			top = append(top, e)
		}
	}
	require.NotEmpty(t, top)
	clip, ok := top[0].(*core.StartClipping)
	require.True(t, ok)
	assert.Equal(t, graphics.RectFromLTWH(0, 26, 200, 100), clip.Rect())
}

func TestDropdown_PickFromList(t *testing.T) {
	dd := widgets.NewDropdown("red", "green", "blue")
	tester := openDropdown(t, dd, dd)

	// Rows start below the box at 26 plus the list's top padding.
	events, err := tester.ClickAt(graphics.Point{X: 50, Y: 55})
	require.NoError(t, err)

	i, msg, ok := core.FindMessage[widgets.DropdownSelected](events, dd)
	require.True(t, ok)
	assert.Equal(t, 1, msg.Index)
	_, _, closed := core.FindMessage[widgets.DropdownClosed](events, dd)
	assert.True(t, closed)
	assert.Equal(t, widgets.DropdownClosed{}, events.At(i+1).Payload())
	assert.False(t, hasPayload[widgets.ListSelected](events), "the list's own selection is consumed")

	assert.False(t, dd.IsOpen())
	sel, _ := dd.Selected()
	assert.Equal(t, 1, sel)
	require.NoError(t, tester.Pump())
	assert.Equal(t, []string{"green"}, tester.Texts())
}

func TestDropdown_PressOutsideCloses(t *testing.T) {
	dd := widgets.NewDropdown("red", "green")
	tester := openDropdown(t, dd, dd)

	events, _ := tester.ClickAt(graphics.Point{X: 150, Y: 250})
	_, _, closed := core.FindMessage[widgets.DropdownClosed](events, dd)
	assert.True(t, closed)
	assert.False(t, dd.IsOpen())
	_, _, selectedMsg := core.FindMessage[widgets.DropdownSelected](events, dd)
	assert.False(t, selectedMsg)
}

func TestDropdown_PressBoxToggles(t *testing.T) {
	dd := widgets.NewDropdown("red")
	tester := openDropdown(t, dd, dd)

	events, _ := tester.ClickAt(graphics.Point{X: 10, Y: 10})
	_, _, closed := core.FindMessage[widgets.DropdownClosed](events, dd)
	assert.True(t, closed)
	assert.False(t, dd.IsOpen())
}

func TestDropdown_OpenListBlocksSiblings(t *testing.T) {
	dd := widgets.NewDropdown("red", "green")
	btn := widgets.ButtonOf("below")
	tester := openDropdown(t, dd, widgets.ColumnOf(dd, btn))

	// The button sits at y=36, under the open list.
	require.Equal(t, 36.0, tester.Find(glanetest.ByOwner(btn)).Rect().Top)
	tester.Press(graphics.Point{X: 10, Y: 45}, input.MouseButtonLeft)

	assert.Equal(t, core.StateNone, btn.State())
	sel, _ := dd.Selected()
	assert.Equal(t, 0, sel)
}

func TestDropdown_EmptyHasLineHeight(t *testing.T) {
	tester := glanetest.NewSceneTesterWithT(t)
	dd := widgets.NewDropdown()
	require.NoError(t, tester.PumpWidget(dd))

	_, ok := dd.Selected()
	assert.False(t, ok)
	assert.Equal(t, 26.0, tester.Find(glanetest.ByOwner(dd)).Rect().Height())
}
