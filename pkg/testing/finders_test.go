package testing

import (
	"testing"

	"github.com/go-glane/glane/pkg/core"
	"github.com/go-glane/glane/pkg/testing/internal/testbed"
	"github.com/go-glane/glane/pkg/widgets"
)

func pumpForm(t *testing.T) (*SceneTester, *widgets.Row, *widgets.Button) {
	t.Helper()
	tester := NewSceneTesterWithT(t)
	btn := widgets.ButtonOf("Save")
	row := widgets.RowOf(widgets.TextOf("Name"), testbed.NewLayoutBox(30, 10), btn)
	if err := tester.PumpWidget(row); err != nil {
		t.Fatal(err)
	}
	return tester, row, btn
}

func TestByOwner(t *testing.T) {
	tester, _, btn := pumpForm(t)

	result := tester.Find(ByOwner(btn))
	if result.Count() != 2 {
		t.Fatalf("expected area and text, got %d", result.Count())
	}
	if _, ok := result.First().(*core.Area); !ok {
		t.Errorf("expected area first, got %T", result.First())
	}
	if _, ok := result.At(1).(*core.Text); !ok {
		t.Errorf("expected text second, got %T", result.At(1))
	}
}

func TestByType(t *testing.T) {
	tester, _, _ := pumpForm(t)

	if n := tester.Find(ByType[*widgets.Text]()).Count(); n != 1 {
		t.Errorf("expected 1 element from Text, got %d", n)
	}
	if tester.Find(ByType[*widgets.TextBox]()).Exists() {
		t.Error("expected no TextBox elements")
	}
}

func TestByElementAndText(t *testing.T) {
	tester, _, _ := pumpForm(t)

	if n := tester.Find(ByElement[*core.Area]()).Count(); n != 2 {
		t.Errorf("expected 2 areas, got %d", n)
	}
	if !tester.Find(ByText("Save")).Exists() {
		t.Error("expected Save text")
	}
	if tester.Find(ByText("Sav")).Exists() {
		t.Error("ByText must match exactly")
	}
	if n := tester.Find(ByTextContaining("a")).Count(); n != 2 {
		t.Errorf("expected 2 texts containing 'a', got %d", n)
	}
}

func TestDescendant(t *testing.T) {
	tester := NewSceneTesterWithT(t)
	inner := widgets.RowOf(widgets.TextOf("inside"))
	tester.PumpWidget(widgets.ColumnOf(inner, widgets.TextOf("outside")))

	// inner pushes nothing itself, so match on the ancestor chain.
	found := tester.Find(ByPredicate(func(e core.LayoutElement) bool {
		for _, a := range e.Ancestors() {
			if a.Is(inner) {
				return true
			}
		}
		return false
	}))
	if found.Count() != 1 {
		t.Fatalf("expected 1 element under inner row, got %d", found.Count())
	}

	btn := widgets.ButtonOf("x")
	tester.PumpWidget(widgets.RowOf(btn))
	if n := tester.Find(Descendant(ByOwner(btn), ByText("x"))).Count(); n != 0 {
		t.Errorf("button text is not a descendant of the button, got %d", n)
	}
}

func TestFinderResult_FirstPanicsWhenEmpty(t *testing.T) {
	tester, _, _ := pumpForm(t)
	result := tester.Find(ByText("missing"))

	if result.FirstOrNil() != nil {
		t.Error("expected nil")
	}
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	result.First()
}
