package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/go-glane/glane/pkg/core"
	"github.com/go-glane/glane/pkg/graphics"
	"github.com/go-glane/glane/pkg/input"
)

func init() {
	RegisterCommand(&Command{
		Name:  "dump",
		Short: "Print the sample scene's layout",
		Long: `Lay out the sample scene with the project's glane.yaml and print every
layout element in paint order.

Flags are applied in order before the final layout:
  --click X,Y        Press and release the left button at X,Y
  --type TEXT        Type TEXT into the focused widget
  --wheel X,Y,N      Scroll N notches with the pointer at X,Y
  --size WxH         Override the viewport size

Each input is dispatched against the previous layout and followed by a new
layout, the way a host event loop drives a scene.`,
		Usage: "glane dump [--click X,Y] [--type TEXT] [--wheel X,Y,N] [--size WxH]",
		Run:   runDump,
	})
}

func runDump(env *Env, args []string) error {
	resolved, err := env.resolve()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	resolved.InstallErrorHandling(nil)

	g := newGallery(resolved.SceneOptions()...)
	var steps []func()
	mouse := input.MouseState{}
	events := core.NewEvents()
	dispatch := func(ins ...input.Input) {
		for _, in := range ins {
			g.scene.Input(in, events)
			g.scene.Layout()
		}
	}

	for i := 0; i < len(args); i++ {
		name := args[i]
		if i+1 >= len(args) {
			return fmt.Errorf("%s requires a value", name)
		}
		value := args[i+1]
		i++

		switch name {
		case "--click":
			p, err := parsePoint(value)
			if err != nil {
				return err
			}
			steps = append(steps, func() {
				down := input.MouseState{Position: p, Buttons: input.ButtonsOf(input.MouseButtonLeft)}
				mouse = input.MouseState{Position: p}
				dispatch(
					input.MouseInput{Button: input.MouseButtonLeft, ButtonState: input.Pressed, MouseState: down},
					input.MouseInput{Button: input.MouseButtonLeft, ButtonState: input.Released, MouseState: mouse},
				)
			})
		case "--type":
			steps = append(steps, func() {
				for _, r := range value {
					dispatch(input.CharInput{Char: r})
				}
			})
		case "--wheel":
			parts := strings.Split(value, ",")
			if len(parts) != 3 {
				return fmt.Errorf("--wheel wants X,Y,N, got %q", value)
			}
			p, err := parsePoint(parts[0] + "," + parts[1])
			if err != nil {
				return err
			}
			n, err := strconv.Atoi(strings.TrimSpace(parts[2]))
			if err != nil {
				return fmt.Errorf("--wheel notches: %w", err)
			}
			steps = append(steps, func() {
				mouse.Position = p
				dispatch(input.MouseWheel{Axis: input.WheelVertical, Distance: n, MouseState: mouse})
			})
		case "--size":
			s, err := parseSize(value)
			if err != nil {
				return err
			}
			g.scene.SetViewport(s)
		default:
			return fmt.Errorf("unknown flag %q", name)
		}
	}

	g.scene.Layout()
	for _, step := range steps {
		step()
	}

	fmt.Fprintf(env.Out, "# %s\n", resolved.AppName)
	return writeLayout(env.Out, g.scene.Context().Layout())
}

// writeLayout prints one row per element in paint order.
func writeLayout(w io.Writer, l *core.Layout) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "LAYER\tKIND\tOWNER\tRECT\tDETAIL")
	for _, e := range l.All() {
		r := e.Rect()
		fmt.Fprintf(tw, "%d\t%s\t%s\t%g,%g %gx%g\t%s\n",
			e.Layer(), kind(e), ownerName(e.Owner()), r.Left, r.Top, r.Width(), r.Height(), detail(e))
	}
	return tw.Flush()
}

func ownerName(h core.AnyHandle) string {
	if h.Tag() == nil {
		return h.ID().String()
	}
	return h.Tag().String() + h.ID().String()
}

func kind(e core.LayoutElement) string {
	switch e.(type) {
	case *core.Area:
		return "area"
	case *core.Collision:
		return "collision"
	case *core.Text:
		return "text"
	case *core.CompositionText:
		return "composition"
	case *core.Cursor:
		return "cursor"
	case *core.StartClipping:
		return "clip{"
	case *core.EndClipping:
		return "}clip"
	}
	return fmt.Sprintf("%T", e)
}

func detail(e core.LayoutElement) string {
	switch e := e.(type) {
	case *core.Area:
		if e.Selected {
			return e.State.String() + " selected"
		}
		return e.State.String()
	case *core.Collision:
		return e.State.String()
	case *core.Text:
		return strconv.Quote(e.String)
	case *core.CompositionText:
		if e.Targeted {
			return strconv.Quote(e.String) + " targeted"
		}
		return strconv.Quote(e.String)
	case *core.Cursor:
		if e.HasChar {
			return "at " + strconv.QuoteRune(e.Char)
		}
	}
	return ""
}

func parsePoint(s string) (graphics.Point, error) {
	x, y, ok := strings.Cut(s, ",")
	if !ok {
		return graphics.Point{}, fmt.Errorf("want X,Y, got %q", s)
	}
	px, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
	if err != nil {
		return graphics.Point{}, fmt.Errorf("bad x in %q: %w", s, err)
	}
	py, err := strconv.ParseFloat(strings.TrimSpace(y), 64)
	if err != nil {
		return graphics.Point{}, fmt.Errorf("bad y in %q: %w", s, err)
	}
	return graphics.Point{X: px, Y: py}, nil
}

func parseSize(s string) (graphics.Size, error) {
	w, h, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return graphics.Size{}, fmt.Errorf("want WxH, got %q", s)
	}
	width, err := strconv.ParseFloat(w, 64)
	if err != nil {
		return graphics.Size{}, fmt.Errorf("bad width in %q: %w", s, err)
	}
	height, err := strconv.ParseFloat(h, 64)
	if err != nil {
		return graphics.Size{}, fmt.Errorf("bad height in %q: %w", s, err)
	}
	if width <= 0 || height <= 0 {
		return graphics.Size{}, fmt.Errorf("size must be positive, got %q", s)
	}
	return graphics.Size{Width: width, Height: height}, nil
}
