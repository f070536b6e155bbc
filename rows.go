package flowlayout

import "fyne.io/fyne/v2"

// rowInfo is the metadata accumulated for one row while building:
// the number of items assigned to it, the width consumed so far
// (natural widths plus the inter-item padding between them, before
// any stretch), and the tallest natural height among its items.
// Rows are rebuilt from scratch on every layout pass.
type rowInfo struct {
	count  int
	width  float32
	height float32
}

// buildRows partitions the measured natural sizes into rows no wider than
// maxWidth, consuming items in order. It returns the rows top to bottom,
// plus a slice mapping each item index to the index of the row it was
// placed in; row indexes are non-decreasing in item order.
//
// Padding is only charged between items in a row, never before the first
// or after the last. An item wider than maxWidth still gets a row of its
// own rather than being skipped, so every item is always assigned.
func buildRows(sizes []fyne.Size, maxWidth, hPad float32) ([]rowInfo, []int) {
	rows := make([]rowInfo, 0, 4)
	itemRow := make([]int, len(sizes))

	var cur rowInfo
	for i, size := range sizes {
		needed := size.Width
		if cur.count > 0 {
			needed += hPad
		}
		if maxWidth-cur.width < needed && cur.count > 0 {
			rows = append(rows, cur)
			cur = rowInfo{}
			needed = size.Width
		}
		itemRow[i] = len(rows)
		cur.count++
		cur.width += needed
		cur.height = fyne.Max(cur.height, size.Height)
	}
	if cur.count > 0 {
		rows = append(rows, cur)
	}
	return rows, itemRow
}

// composeRows assigns each item its final position and size from the rows
// that buildRows produced, stretching widths so each row spans maxWidth.
//
// Each row's leftover space is normally split equally among its items on
// top of their natural widths. When a single uniform width per row slot
// would fit the widest item anywhere in the layout (plus padding), every
// item in that row gets that uniform width instead, producing an even grid.
// The widest-item scan covers the whole item set, not just the row being
// composed, so one wide item anywhere disables the uniform grid everywhere.
//
// The last item of every row after the first gets one extra hPad of width
// as trailing padding. Item heights are never changed.
func composeRows(sizes []fyne.Size, rows []rowInfo, maxWidth, hPad, vPad float32) ([]fyne.Position, []fyne.Size, fyne.Size) {
	offsets := make([]fyne.Position, len(sizes))
	finals := make([]fyne.Size, len(sizes))

	var biggestNeeded float32
	for _, size := range sizes {
		biggestNeeded = fyne.Max(biggestNeeded, size.Width+hPad)
	}

	item := 0
	var y float32
	for r, row := range rows {
		leftover := maxWidth - row.width
		share := leftover / float32(row.count)
		if share < 0 {
			// single item wider than maxWidth; keep its natural width
			share = 0
		}
		equalWidth := (maxWidth - hPad*float32(row.count-1)) / float32(row.count)
		useEqual := equalWidth >= biggestNeeded

		var x float32
		for j := 0; j < row.count; j++ {
			width := sizes[item].Width + share
			if useEqual {
				width = equalWidth
			}
			if r > 0 && j == row.count-1 {
				width += hPad
			}
			offsets[item] = fyne.NewPos(x, y)
			finals[item] = fyne.NewSize(width, sizes[item].Height)
			x += width + hPad
			item++
		}

		y += row.height
		if r < len(rows)-1 {
			y += vPad
		}
	}
	return offsets, finals, fyne.NewSize(maxWidth, y)
}

// measureRows runs the same accumulation as buildRows without retaining
// any per-item assignment, returning only the total size the layout would
// occupy at the given width.
func measureRows(sizes []fyne.Size, maxWidth, hPad, vPad float32) fyne.Size {
	var rowWidth, rowHeight float32
	var totalHeight float32
	inRow := 0
	rowCount := 0
	for _, size := range sizes {
		needed := size.Width
		if inRow > 0 {
			needed += hPad
		}
		if maxWidth-rowWidth < needed && inRow > 0 {
			totalHeight += rowHeight
			rowCount++
			rowWidth, rowHeight, inRow = 0, 0, 0
			needed = size.Width
		}
		inRow++
		rowWidth += needed
		rowHeight = fyne.Max(rowHeight, size.Height)
	}
	if inRow > 0 {
		totalHeight += rowHeight
		rowCount++
	}
	if rowCount > 1 {
		totalHeight += vPad * float32(rowCount-1)
	}
	return fyne.NewSize(maxWidth, totalHeight)
}
