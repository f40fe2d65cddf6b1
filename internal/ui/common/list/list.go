package list

import "io"

type IList interface {
	Len() int
	GetItemRenderer(index int) IItemRenderer
}

// IItemRenderer draws one list item wrapped to the given width. Height must
// report the exact number of lines Render writes for the same width, so the
// renderer can lay items out without drawing them first.
type IItemRenderer interface {
	Render(w io.Writer, width int)
	Height(width int) int
}
