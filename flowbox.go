package flowlayout

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Declare conformity with Widget interface.
var _ fyne.Widget = (*FlowBox)(nil)

// FlowBox is a widget that arranges its items with a FlowLayout inside a
// vertical scroll, so content taller than the widget can be scrolled.
type FlowBox struct {
	widget.BaseWidget

	// HorizontalPadding is the spacing between items in a row,
	// VerticalPadding the spacing between rows. Call Refresh after
	// changing either.
	HorizontalPadding float32
	VerticalPadding   float32

	layout   *FlowLayout
	content  *fyne.Container
	scroller *container.Scroll
}

// NewFlowBox creates a FlowBox holding the given objects with default
// padding between them.
func NewFlowBox(objects ...fyne.CanvasObject) *FlowBox {
	f := &FlowBox{
		HorizontalPadding: DefaultPadding,
		VerticalPadding:   DefaultPadding,
		layout:            NewFlowLayout(),
	}
	f.content = container.New(f.layout, objects...)
	f.ExtendBaseWidget(f)
	return f
}

// Add appends an object to the end of the flow.
func (f *FlowBox) Add(obj fyne.CanvasObject) {
	f.content.Add(obj)
}

// Remove removes the first occurrence of obj from the flow.
func (f *FlowBox) Remove(obj fyne.CanvasObject) {
	f.content.Remove(obj)
}

// RemoveAll removes every object from the flow.
func (f *FlowBox) RemoveAll() {
	f.content.RemoveAll()
}

// Objects returns the objects in the flow, in placement order.
func (f *FlowBox) Objects() []fyne.CanvasObject {
	return f.content.Objects
}

// MeasureForWidth reports the total size the flow content would occupy at
// the given width.
func (f *FlowBox) MeasureForWidth(maxWidth float32) fyne.Size {
	f.layout.HorizontalPadding = f.HorizontalPadding
	f.layout.VerticalPadding = f.VerticalPadding
	return f.layout.MeasureForWidth(f.content.Objects, maxWidth)
}

// CreateRenderer is a private method to Fyne which links this widget to
// its renderer.
func (f *FlowBox) CreateRenderer() fyne.WidgetRenderer {
	f.ExtendBaseWidget(f)
	f.scroller = container.NewVScroll(f.content)
	return &flowBoxRenderer{box: f, scroller: f.scroller}
}

// Declare conformity with WidgetRenderer interface.
var _ fyne.WidgetRenderer = (*flowBoxRenderer)(nil)

type flowBoxRenderer struct {
	box      *FlowBox
	scroller *container.Scroll
}

func (r *flowBoxRenderer) Layout(size fyne.Size) {
	r.scroller.Resize(size)
}

func (r *flowBoxRenderer) MinSize() fyne.Size {
	return r.scroller.MinSize()
}

func (r *flowBoxRenderer) Refresh() {
	r.box.layout.HorizontalPadding = r.box.HorizontalPadding
	r.box.layout.VerticalPadding = r.box.VerticalPadding
	r.box.content.Refresh()
	r.scroller.Refresh()
	canvas.Refresh(r.box)
}

func (r *flowBoxRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.scroller}
}

func (r *flowBoxRenderer) Destroy() {
}
