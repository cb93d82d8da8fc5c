package testing

import (
	"errors"
	"testing"

	"github.com/go-glane/glane/pkg/core"
	glaneerrors "github.com/go-glane/glane/pkg/errors"
	"github.com/go-glane/glane/pkg/graphics"
	"github.com/go-glane/glane/pkg/input"
	"github.com/go-glane/glane/pkg/testing/internal/testbed"
	"github.com/go-glane/glane/pkg/widgets"
)

func TestSceneTester_NoScene(t *testing.T) {
	tester := NewSceneTesterWithT(t)

	if err := tester.Pump(); !errors.Is(err, ErrNoScene) {
		t.Fatalf("expected ErrNoScene, got %v", err)
	}
	if _, err := tester.Input(input.CursorLeft{}); !errors.Is(err, ErrNoScene) {
		t.Fatalf("expected ErrNoScene, got %v", err)
	}
	if !tester.Layout().IsEmpty() {
		t.Error("expected empty layout before PumpWidget")
	}
}

func TestSceneTester_StrictModeRestored(t *testing.T) {
	t.Run("strict", func(t *testing.T) {
		NewSceneTesterWithT(t)
		if !glaneerrors.Strict() {
			t.Error("expected strict mode inside tester")
		}
	})
	if glaneerrors.Strict() {
		t.Error("expected strict mode restored after cleanup")
	}
}

func TestSceneTester_Texts(t *testing.T) {
	tester := NewSceneTesterWithT(t)
	tester.PumpWidget(widgets.ColumnOf(widgets.TextOf("one"), widgets.TextOf("two")))

	got := tester.Texts()
	if len(got) != 2 || got[0] != "one" || got[1] != "two" {
		t.Errorf("unexpected texts: %v", got)
	}
}

func TestSceneTester_SetSize(t *testing.T) {
	tester := NewSceneTesterWithT(t)
	empty := widgets.NewEmpty()
	tester.PumpWidget(widgets.ClipOf(empty))

	tester.SetSize(graphics.Size{Width: 120, Height: 40})
	tester.Pump()

	clip := tester.Find(ByElement[*core.StartClipping]()).Rect()
	if clip != graphics.RectFromLTWH(0, 0, 120, 40) {
		t.Errorf("unexpected clip rect after resize: %v", clip)
	}
}

func TestSceneTester_InputSeesPreviousLayout(t *testing.T) {
	tester := NewSceneTesterWithT(t)
	counter := testbed.NewCounter(0)
	tester.PumpWidget(counter)

	if _, err := tester.Click(ByOwner(counter)); err != nil {
		t.Fatal(err)
	}
	if counter.Count != 1 {
		t.Fatalf("expected count 1, got %d", counter.Count)
	}
	if !tester.Find(ByText("Count: 0")).Exists() {
		t.Error("layout must not change until Pump")
	}

	tester.Pump()
	if !tester.Find(ByText("Count: 1")).Exists() {
		t.Errorf("expected updated text, got %v", tester.Texts())
	}
}

func TestSceneTester_Focus(t *testing.T) {
	tester := NewSceneTesterWithT(t)
	box := testbed.NewLayoutBox(50, 50)
	box.Focusable = true
	tester.PumpWidget(box)

	if _, err := tester.Click(ByOwner(box)); err != nil {
		t.Fatal(err)
	}
	if !tester.HasFocus(box) {
		t.Error("expected focus after click")
	}
}
