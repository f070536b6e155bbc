package flowlayout

import (
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
)

// DefaultPadding is the spacing used between items when a FlowLayout is
// created with NewFlowLayout.
const DefaultPadding float32 = 10

var _ fyne.Layout = (*FlowLayout)(nil)

// FlowLayout lays out items left to right, wrapping to a new row when the
// next item would not fit, then stretches each row's items so the row spans
// the full layout width. Rows take the height of their tallest item and
// item heights are never changed. Hidden items are skipped and take up
// no space.
//
// When every item in the layout would fit at a single uniform width, all
// items are given that width instead of a proportional stretch, producing
// an even grid.
type FlowLayout struct {
	// HorizontalPadding is the spacing between items in a row,
	// VerticalPadding the spacing between rows. Negative values are
	// treated as zero.
	HorizontalPadding float32
	VerticalPadding   float32

	// MeasureItem overrides how an item's natural size is obtained,
	// given the width currently available to the layout. It must be
	// deterministic for the duration of a layout pass. When nil, the
	// item's MinSize is used.
	MeasureItem func(obj fyne.CanvasObject, maxWidth float32) fyne.Size

	lastWidth float32
}

// NewFlowLayout returns a FlowLayout with DefaultPadding between items
// and between rows.
func NewFlowLayout() *FlowLayout {
	return &FlowLayout{
		HorizontalPadding: DefaultPadding,
		VerticalPadding:   DefaultPadding,
	}
}

// NewFlowContainer returns a container laying out the given objects with
// a default-padded FlowLayout.
func NewFlowContainer(objects ...fyne.CanvasObject) *fyne.Container {
	return container.New(NewFlowLayout(), objects...)
}

// Layout positions and sizes the objects within size.
func (f *FlowLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	if !validWidth(size.Width) {
		fyne.LogError("FlowLayout: refusing layout with invalid width", nil)
		return
	}
	f.lastWidth = size.Width

	visible, sizes := f.measureVisible(objects, size.Width)
	if len(visible) == 0 {
		return
	}

	hPad, vPad := f.pads()
	rows, _ := buildRows(sizes, size.Width, hPad)
	offsets, finals, _ := composeRows(sizes, rows, size.Width, hPad, vPad)
	for i, obj := range visible {
		obj.Move(offsets[i])
		obj.Resize(finals[i])
	}
}

// MinSize returns the size this layout should not shrink below: the width
// of its widest item, and the height the rows need. A wrapping layout's
// height depends on the width it is offered, which the fyne.Layout
// interface does not carry; the height reported here assumes wrapping at
// the most recently laid-out width. Before the first layout pass all items
// are assumed to fit on one row.
func (f *FlowLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	hPad, vPad := f.pads()
	visible, sizes := f.measureVisible(objects, f.lastWidth)
	if len(visible) == 0 {
		return fyne.NewSize(0, 0)
	}

	var widest, tallest float32
	for _, size := range sizes {
		widest = fyne.Max(widest, size.Width)
		tallest = fyne.Max(tallest, size.Height)
	}
	if f.lastWidth <= 0 {
		return fyne.NewSize(widest, tallest)
	}
	return fyne.NewSize(widest, measureRows(sizes, f.lastWidth, hPad, vPad).Height)
}

// MeasureForWidth reports the total size the layout would occupy if given
// maxWidth of horizontal space, without laying anything out. The returned
// width is always maxWidth; an invalid width yields a zero size.
func (f *FlowLayout) MeasureForWidth(objects []fyne.CanvasObject, maxWidth float32) fyne.Size {
	if !validWidth(maxWidth) {
		fyne.LogError("FlowLayout: refusing measure with invalid width", nil)
		return fyne.Size{}
	}
	hPad, vPad := f.pads()
	_, sizes := f.measureVisible(objects, maxWidth)
	return measureRows(sizes, maxWidth, hPad, vPad)
}

func (f *FlowLayout) measureVisible(objects []fyne.CanvasObject, maxWidth float32) ([]fyne.CanvasObject, []fyne.Size) {
	visible := make([]fyne.CanvasObject, 0, len(objects))
	sizes := make([]fyne.Size, 0, len(objects))
	for _, obj := range objects {
		if !obj.Visible() {
			continue
		}
		visible = append(visible, obj)
		if f.MeasureItem != nil {
			sizes = append(sizes, f.MeasureItem(obj, maxWidth))
		} else {
			sizes = append(sizes, obj.MinSize())
		}
	}
	return visible, sizes
}

func (f *FlowLayout) pads() (float32, float32) {
	return fyne.Max(f.HorizontalPadding, 0), fyne.Max(f.VerticalPadding, 0)
}

func validWidth(w float32) bool {
	return w >= 0 && !math.IsNaN(float64(w)) && !math.IsInf(float64(w), 0)
}
