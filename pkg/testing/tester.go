package testing

import (
	"errors"
	"testing"

	"github.com/go-glane/glane/pkg/core"
	glaneerrors "github.com/go-glane/glane/pkg/errors"
	"github.com/go-glane/glane/pkg/graphics"
	"github.com/go-glane/glane/pkg/input"
	"github.com/go-glane/glane/pkg/text"
)

const (
	// DefaultTestWidth is the default logical width of the viewport.
	DefaultTestWidth = 800
	// DefaultTestHeight is the default logical height of the viewport.
	DefaultTestHeight = 600
	// DefaultCellWidth is the width of one measured text cell.
	DefaultCellWidth = 10
	// DefaultCellHeight is the height of one line of measured text.
	DefaultCellHeight = 20
)

// ErrNoScene is returned when input or a frame is requested before
// PumpWidget.
var ErrNoScene = errors.New("glanetest: no widget pumped")

// SceneTester owns a Scene and the pointer state of a simulated mouse.
type SceneTester struct {
	scene    *core.Scene
	size     graphics.Size
	measurer text.Measurer
	opts     []core.Option
	events   *core.Events
	mouse    input.MouseState
}

// NewSceneTester creates a tester with the default viewport and cell
// measurer. Call Cleanup when done, or use NewSceneTesterWithT instead.
func NewSceneTester() *SceneTester {
	return &SceneTester{
		size:     graphics.Size{Width: DefaultTestWidth, Height: DefaultTestHeight},
		measurer: text.CellMeasurer{CellWidth: DefaultCellWidth, CellHeight: DefaultCellHeight},
		events:   core.NewEvents(),
	}
}

// NewSceneTesterWithT creates a tester in strict mode: invariant violations
// and widget panics fail loudly instead of being logged. Global error state
// is restored via t.Cleanup.
func NewSceneTesterWithT(t *testing.T) *SceneTester {
	tester := NewSceneTester()
	glaneerrors.SetStrict(true)
	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup restores global error state.
func (t *SceneTester) Cleanup() {
	glaneerrors.SetStrict(false)
	t.scene = nil
}

// SetSize sets the viewport. It applies to the mounted scene immediately.
func (t *SceneTester) SetSize(size graphics.Size) {
	t.size = size
	if t.scene != nil {
		t.scene.SetViewport(size)
	}
}

// SetMeasurer replaces the cell measurer for scenes pumped afterwards.
func (t *SceneTester) SetMeasurer(m text.Measurer) {
	t.measurer = m
}

// SetOptions adds scene options for scenes pumped afterwards.
func (t *SceneTester) SetOptions(opts ...core.Option) {
	t.opts = opts
}

// PumpWidget mounts root in a fresh scene and runs one layout.
func (t *SceneTester) PumpWidget(root core.Widget) error {
	opts := append([]core.Option{
		core.WithViewport(t.size),
		core.WithMeasurer(t.measurer),
	}, t.opts...)
	t.scene, _ = core.NewScene(root, opts...)
	t.mouse = input.MouseState{}
	return t.Pump()
}

// Pump runs one layout pass.
func (t *SceneTester) Pump() error {
	if t.scene == nil {
		return ErrNoScene
	}
	t.scene.Layout()
	return nil
}

// Scene returns the mounted scene.
func (t *SceneTester) Scene() *core.Scene {
	return t.scene
}

// Layout returns the snapshot of the last Pump.
func (t *SceneTester) Layout() *core.Layout {
	if t.scene == nil {
		return core.EmptyLayout()
	}
	return t.scene.Context().Layout()
}

// Input dispatches in and returns the events it produced. The returned
// batch is reused by the next call.
func (t *SceneTester) Input(in input.Input) (*core.Events, error) {
	if t.scene == nil {
		return t.events, ErrNoScene
	}
	t.scene.Input(in, t.events)
	return t.events, nil
}

// Events returns the events of the last input.
func (t *SceneTester) Events() *core.Events {
	return t.events
}

// HasFocus reports whether h has focus.
func (t *SceneTester) HasFocus(h core.HasID) bool {
	return t.scene != nil && t.scene.Context().HasFocus(h)
}

// Find evaluates a finder against the last layout.
func (t *SceneTester) Find(finder Finder) FinderResult {
	return FinderResult{
		elements: finder.Evaluate(t.Layout()),
		finder:   finder,
	}
}

// Texts returns the strings of every Text element in paint order.
func (t *SceneTester) Texts() []string {
	var out []string
	for _, e := range t.Layout().All() {
		if txt, ok := e.(*core.Text); ok {
			out = append(out, txt.String)
		}
	}
	return out
}
