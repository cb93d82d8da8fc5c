// Package testing drives a glane scene with synthetic input for tests.
//
// # Quick Start
//
// Mount a root widget, lay it out, send input and inspect the snapshot:
//
//	func TestSubmit(t *testing.T) {
//	    tester := glanetest.NewSceneTesterWithT(t)
//	    btn := widgets.ButtonOf("Submit")
//	    tester.PumpWidget(widgets.RowOf(btn))
//
//	    events, err := tester.Click(glanetest.ByOwner(btn))
//	    require.NoError(t, err)
//	    _, _, clicked := core.FindMessage[widgets.ButtonClicked](events, btn)
//	    assert.True(t, clicked)
//	}
//
// Input is dispatched against the layout of the last Pump, exactly as a
// host would: call Pump after input whose effect should be visible.
//
// The tester measures text in fixed cells of DefaultCellWidth by
// DefaultCellHeight so geometry is deterministic without font files.
//
// # Snapshot Testing
//
// Capture the layout and compare it to a golden file:
//
//	tester.CaptureSnapshot().MatchesFile(t, "testdata/form.snapshot.json")
//
// Update golden files with:
//
//	GLANE_UPDATE_SNAPSHOTS=1 go test ./...
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import glanetest "github.com/go-glane/glane/pkg/testing"
package testing
