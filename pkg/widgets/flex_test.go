package widgets_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-glane/glane/pkg/core"
	"github.com/go-glane/glane/pkg/graphics"
	glanetest "github.com/go-glane/glane/pkg/testing"
	"github.com/go-glane/glane/pkg/widgets"
)

func TestRow_PlacesChildrenWithSpace(t *testing.T) {
	tester := glanetest.NewSceneTesterWithT(t)
	btn := widgets.ButtonOf("OK")
	name := widgets.TextOf("name")
	require.NoError(t, tester.PumpWidget(widgets.RowOf(btn, name)))

	assert.Equal(t, graphics.RectFromLTWH(0, 0, 34, 26), tester.Find(glanetest.ByOwner(btn)).Rect())
	assert.Equal(t, graphics.RectFromLTWH(44, 0, 40, 20), tester.Find(glanetest.ByOwner(name)).Rect())
}

func TestRow_FlexibleTakesRest(t *testing.T) {
	tester := glanetest.NewSceneTesterWithT(t)
	tb := widgets.NewTextBox()
	require.NoError(t, tester.PumpWidget(widgets.RowOf(widgets.TextOf("ab"), tb)))

	area, ok := core.FirstOf[*core.Area](tester.Layout(), tb)
	require.True(t, ok)
	assert.Equal(t, graphics.RectFromLTWH(30, 0, 770, 26), area.Rect())
}

func TestRow_FlexibleChildrenShareEqually(t *testing.T) {
	tester := glanetest.NewSceneTesterWithT(t)
	tester.SetSize(graphics.Size{Width: 200, Height: 100})
	label := widgets.TextOf("abcd")
	tb := widgets.NewTextBox()
	require.NoError(t, tester.PumpWidget(widgets.RowOf(widgets.NewEmpty(), label, tb)))

	assert.Equal(t, graphics.RectFromLTWH(80, 0, 40, 20), tester.Find(glanetest.ByOwner(label)).Rect())
	area, ok := core.FirstOf[*core.Area](tester.Layout(), tb)
	require.True(t, ok)
	assert.Equal(t, graphics.RectFromLTWH(130, 0, 70, 26), area.Rect())
}

func TestRow_MaxWidth(t *testing.T) {
	tester := glanetest.NewSceneTesterWithT(t)
	tb := widgets.NewTextBox()
	row := widgets.RowOf(tb)
	row.MaxWidth = 100
	require.NoError(t, tester.PumpWidget(row))

	area, ok := core.FirstOf[*core.Area](tester.Layout(), tb)
	require.True(t, ok)
	assert.Equal(t, 100.0, area.Rect().Width())
}

func TestColumn_StacksChildren(t *testing.T) {
	tester := glanetest.NewSceneTesterWithT(t)
	a, b := widgets.TextOf("a"), widgets.TextOf("bb")
	require.NoError(t, tester.PumpWidget(widgets.ColumnOf(a, b)))

	assert.Equal(t, graphics.RectFromLTWH(0, 0, 10, 20), tester.Find(glanetest.ByOwner(a)).Rect())
	assert.Equal(t, graphics.RectFromLTWH(0, 30, 20, 20), tester.Find(glanetest.ByOwner(b)).Rect())
}

func TestColumn_SkipsChildrenThatDoNotFit(t *testing.T) {
	tester := glanetest.NewSceneTesterWithT(t)
	tester.SetSize(graphics.Size{Width: 100, Height: 45})
	require.NoError(t, tester.PumpWidget(widgets.ColumnOf(
		widgets.TextOf("a"), widgets.TextOf("b"), widgets.TextOf("c"),
	)))

	assert.Equal(t, []string{"a", "b"}, tester.Texts())
}

func TestRow_AncestorChain(t *testing.T) {
	tester := glanetest.NewSceneTesterWithT(t)
	inner := widgets.TextOf("x")
	col := widgets.ColumnOf(inner)
	row := widgets.RowOf(col)
	require.NoError(t, tester.PumpWidget(row))

	ancestors := tester.Find(glanetest.ByOwner(inner)).First().Ancestors()
	require.Len(t, ancestors, 2)
	assert.True(t, ancestors[0].Is(row))
	assert.True(t, ancestors[1].Is(col))
}
