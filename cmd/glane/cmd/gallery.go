package cmd

import (
	"github.com/go-glane/glane/pkg/core"
	"github.com/go-glane/glane/pkg/graphics"
	"github.com/go-glane/glane/pkg/widgets"
)

// gallery is the sample scene: one labelled row per reference widget,
// assembled through the scene's deferred child API.
type gallery struct {
	scene    *core.Scene
	button   core.Handle[*widgets.Button]
	textBox  core.Handle[*widgets.TextBox]
	dropdown core.Handle[*widgets.Dropdown]
	list     core.Handle[*widgets.ListBox]
	checkBox core.Handle[*widgets.CheckBox]
}

var galleryItems = []string{"Alpha", "Beta", "Gamma", "Delta", "Epsilon", "Zeta", "Eta"}

func newGallery(opts ...core.Option) *gallery {
	scene, root := core.NewScene(widgets.ColumnOf(), opts...)
	g := &gallery{scene: scene}

	row := core.PushChild(scene, root, widgets.RowOf())
	core.PushChild(scene, row, widgets.TextOf("Button"))
	g.button = core.PushChild(scene, row, widgets.ButtonOf("Push"))

	row = core.PushChild(scene, root, widgets.RowOf())
	core.PushChild(scene, row, widgets.TextOf("TextBox"))
	g.textBox = core.PushChild(scene, row, widgets.NewTextBox())

	row = core.PushChild(scene, root, widgets.RowOf())
	core.PushChild(scene, row, widgets.TextOf("Dropdown"))
	dropdown := widgets.NewDropdown(galleryItems...)
	g.dropdown = core.NewHandle(dropdown)
	core.PushChild(scene, row, widgets.MaxSizeOf(200, 0, dropdown))

	row = core.PushChild(scene, root, widgets.RowOf())
	core.PushChild(scene, row, widgets.TextOf("ListBox"))
	list := widgets.NewListBox()
	g.list = core.NewHandle(list)
	core.PushChild(scene, row, widgets.MaxSizeOf(200, 100, list))
	core.Apply(scene, g.list, func(l *widgets.ListBox) {
		for _, s := range galleryItems {
			l.Push(widgets.TextOf(s))
		}
	})

	row = core.PushChild(scene, root, widgets.RowOf())
	core.PushChild(scene, row, widgets.TextOf("CheckBox"))
	checkBox := widgets.CheckBoxOf("Enabled", true)
	g.checkBox = core.NewHandle(checkBox)
	core.PushChild(scene, row, widgets.PaddingOf(graphics.EdgeInsets{Left: 4}, checkBox))

	return g
}
