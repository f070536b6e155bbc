package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	flowlayout "github.com/dweymouth/fyne-flowlayout"
)

var sampleTags = []string{
	"go", "fyne", "layout", "flex-wrap", "rows", "stretch",
	"a-much-longer-tag-to-force-wrapping", "ui", "widgets",
	"proportional", "equal-width", "padding",
}

func main() {
	fyneApp := app.New()
	window := fyneApp.NewWindow("FlowLayout demo")

	box := flowlayout.NewFlowBox()
	for _, tag := range sampleTags {
		box.Add(widget.NewButton(tag, func() {}))
	}

	count := len(sampleTags)
	addBtn := widget.NewButton("Add item", func() {
		count++
		box.Add(widget.NewButton(fmt.Sprintf("item %d", count), func() {}))
	})
	clearBtn := widget.NewButton("Clear", func() {
		box.RemoveAll()
		count = 0
	})
	padding := widget.NewSlider(0, 40)
	padding.Value = float64(flowlayout.DefaultPadding)
	padding.OnChanged = func(v float64) {
		box.HorizontalPadding = float32(v)
		box.VerticalPadding = float32(v)
		box.Refresh()
	}

	controls := container.NewBorder(nil, nil,
		container.NewHBox(addBtn, clearBtn), nil,
		padding)
	window.SetContent(container.NewBorder(controls, nil, nil, nil, box))
	window.Resize(fyne.NewSize(540, 400))
	window.ShowAndRun()
}
