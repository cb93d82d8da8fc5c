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

func TestButton_Layout(t *testing.T) {
	tester := glanetest.NewSceneTesterWithT(t)
	btn := widgets.ButtonOf("OK")
	require.NoError(t, tester.PumpWidget(btn))

	result := tester.Find(glanetest.ByOwner(btn))
	require.Equal(t, 2, result.Count())
	assert.IsType(t, &core.Area{}, result.At(0))
	assert.Equal(t, graphics.RectFromLTWH(0, 0, 34, 26), result.At(0).Rect())
	label := result.At(1).(*core.Text)
	assert.Equal(t, "OK", label.String)
	assert.Equal(t, graphics.RectFromLTWH(7, 3, 20, 20), label.Rect())
}

func TestButton_Click(t *testing.T) {
	tester := glanetest.NewSceneTesterWithT(t)
	btn := widgets.ButtonOf("OK")
	require.NoError(t, tester.PumpWidget(btn))

	events, err := tester.Click(glanetest.ByOwner(btn))
	require.NoError(t, err)

	_, _, clicked := core.FindMessage[widgets.ButtonClicked](events, btn)
	assert.True(t, clicked)
	assert.Equal(t, core.StateHover, btn.State())
}

func TestButton_StateTransitions(t *testing.T) {
	tester := glanetest.NewSceneTesterWithT(t)
	btn := widgets.ButtonOf("OK")
	require.NoError(t, tester.PumpWidget(btn))
	inside := graphics.Point{X: 10, Y: 10}

	var got []core.StateChanged
	record := func(events *core.Events) {
		for _, e := range events.All() {
			if sc, ok := e.StateChanged(btn); ok {
				got = append(got, sc)
			}
		}
	}

	events, _ := tester.MoveTo(inside)
	record(events)
	events, _ = tester.Press(inside, input.MouseButtonLeft)
	record(events)
	events, _ = tester.MoveTo(graphics.Point{X: 300, Y: 300})
	record(events)
	events, _ = tester.Release(graphics.Point{X: 300, Y: 300}, input.MouseButtonLeft)
	record(events)

	_, _, clicked := core.FindMessage[widgets.ButtonClicked](events, btn)
	assert.False(t, clicked, "release outside must not click")
	assert.Equal(t, []core.StateChanged{
		{Current: core.StateHover, Prev: core.StateNone},
		{Current: core.StatePressed, Prev: core.StateHover},
		{Current: core.StateNone, Prev: core.StatePressed},
	}, got)
}

func TestButton_LeaveResetsState(t *testing.T) {
	tester := glanetest.NewSceneTesterWithT(t)
	btn := widgets.ButtonOf("OK")
	require.NoError(t, tester.PumpWidget(btn))

	tester.MoveTo(graphics.Point{X: 5, Y: 5})
	require.Equal(t, core.StateHover, btn.State())

	tester.Leave()
	assert.Equal(t, core.StateNone, btn.State())
}

func TestButton_StateStylesElements(t *testing.T) {
	tester := glanetest.NewSceneTesterWithT(t)
	btn := widgets.ButtonOf("OK")
	require.NoError(t, tester.PumpWidget(btn))

	tester.MoveTo(graphics.Point{X: 5, Y: 5})
	require.NoError(t, tester.Pump())

	area, ok := core.FirstOf[*core.Area](tester.Layout(), btn)
	require.True(t, ok)
	assert.Equal(t, core.StateHover, area.State)
}
