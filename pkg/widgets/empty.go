package widgets

import (
	"github.com/go-glane/glane/pkg/core"
	"github.com/go-glane/glane/pkg/graphics"
	"github.com/go-glane/glane/pkg/input"
)

// Empty fills whatever space it is offered and draws nothing. Use it as a
// spacer between Fix siblings.
type Empty struct {
	core.Base
}

// NewEmpty creates a spacer.
func NewEmpty() *Empty {
	return &Empty{Base: core.NewBase()}
}

func (e *Empty) Input(*core.Context, input.Input, *core.Events) core.ControlFlow {
	return core.Continue
}

func (e *Empty) Apply(funcs *core.ApplyFuncs) { funcs.Apply(e) }

func (e *Empty) Size(lc *core.LayoutContext) graphics.Size { return lc.Rect.Size() }

func (e *Empty) SizeTypes() core.SizeTypes { return core.FlexibleSize }

func (e *Empty) Layout(*core.LayoutContext, *core.LayoutConstructor) {}
