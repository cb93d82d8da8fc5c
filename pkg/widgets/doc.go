// Package widgets provides reference widgets built on the core contract.
//
// Layout widgets (Row, Column, MaxSize, Padding, Abs, Empty, Clip) position their
// children; display and input widgets (Text, Button, TextBox, ListBox,
// CheckBox, Dropdown) push layout elements and emit messages.
//
// # Construction
//
// Every widget carries an identity, so widgets are created through their
// constructor rather than a bare struct literal:
//
//	row := widgets.RowOf(
//	    widgets.TextOf("Name"),
//	    widgets.NewTextBox(),
//	    widgets.ButtonOf("OK"),
//	)
//
// Exported fields may be set right after construction, or later through
// core.Apply once the widget is owned by a scene.
//
// # Messages
//
// Widgets report interaction through typed messages on the event bus.
// Read them with core.Message or core.FindMessage and a handle:
//
//	scene.Input(in, events)
//	if _, _, ok := core.FindMessage[widgets.ButtonClicked](events, okButton); ok {
//	    submit()
//	}
package widgets
