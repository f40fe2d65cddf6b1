// Package scroll tracks a selection index over a list whose length changes
// independently of navigation. Every mutator reports whether the visible
// index actually changed, so owners can skip redraws on boundary no-ops.
package scroll

type Cursor struct {
	index  int
	length int
}

// SetLength replaces the tracked list length and resets the cursor to the
// first element. There is no preserve-position behavior across content
// updates. Lengths below zero are treated as an empty list.
func (c *Cursor) SetLength(n int) {
	if n < 0 {
		n = 0
	}
	c.length = n
	c.index = 0
}

// MoveDown advances the cursor by one element.
func (c *Cursor) MoveDown() bool {
	if c.index+1 >= c.length {
		return false
	}
	c.index++
	return true
}

// MoveUp retreats the cursor by one element.
func (c *Cursor) MoveUp() bool {
	if c.index <= 0 {
		return false
	}
	c.index--
	return true
}

// ScrollDown applies step single moves; the net effect clamps at the last
// element.
func (c *Cursor) ScrollDown(step int) bool {
	prev := c.index
	for i := 0; i < step; i++ {
		c.MoveDown()
	}
	return c.index != prev
}

// ScrollUp applies step single moves; the net effect clamps at zero.
func (c *Cursor) ScrollUp(step int) bool {
	prev := c.index
	for i := 0; i < step; i++ {
		c.MoveUp()
	}
	return c.index != prev
}

func (c *Cursor) JumpToStart() bool {
	prev := c.index
	c.index = 0
	return c.index != prev
}

func (c *Cursor) JumpToEnd() bool {
	prev := c.index
	if c.length == 0 {
		c.index = 0
	} else {
		c.index = c.length - 1
	}
	return c.index != prev
}

func (c *Cursor) Index() int {
	return c.index
}

func (c *Cursor) Len() int {
	return c.length
}
