package list

import (
	"bytes"
	"strings"

	"github.com/hack3ric/termscp/internal/ui/common"
)

// ListRenderer lays out list items bottom-anchored: item 0 occupies the
// bottom of the viewport and higher indexes grow upwards, the convention for
// live log views where index 0 is the most recent entry.
type ListRenderer struct {
	*common.Sizeable
	list  IList
	start int
}

func NewRenderer(list IList, size *common.Sizeable) *ListRenderer {
	return &ListRenderer{
		Sizeable: size,
		list:     list,
	}
}

// Reset forgets the view window. Called when content is replaced.
func (r *ListRenderer) Reset() {
	r.start = 0
}

// Render draws the visible window, keeping the focused item inside it. The
// returned string has exactly r.Height lines, blank-padded at the top when
// the content is shorter than the viewport.
func (r *ListRenderer) Render(focused int) string {
	if r.list.Len() == 0 {
		return strings.Repeat("\n", max(r.Height-1, 0))
	}
	if focused < 0 || focused >= r.list.Len() {
		focused = 0
	}
	if r.start > focused {
		r.start = focused
	}
	if r.start < 0 {
		r.start = 0
	}

	last := r.lastVisible()
	for focused > last && r.start < r.list.Len()-1 {
		r.start++
		last = r.lastVisible()
	}

	var lines []string
	for i := last; i >= r.start; i-- {
		lines = append(lines, r.renderItem(i)...)
	}

	if len(lines) > r.Height {
		lines = lines[len(lines)-r.Height:]
	}
	for len(lines) < r.Height {
		lines = append([]string{""}, lines...)
	}
	return strings.Join(lines, "\n")
}

// lastVisible returns the highest item index that still fits in the viewport
// when stacking upwards from r.start. The item at r.start is always counted,
// even when taller than the viewport.
func (r *ListRenderer) lastVisible() int {
	used := 0
	last := r.start
	for i := r.start; i < r.list.Len(); i++ {
		h := r.list.GetItemRenderer(i).Height(r.Width)
		if used+h > r.Height && i > r.start {
			break
		}
		used += h
		last = i
	}
	return last
}

func (r *ListRenderer) renderItem(index int) []string {
	var buf bytes.Buffer
	r.list.GetItemRenderer(index).Render(&buf, r.Width)
	return strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
}
