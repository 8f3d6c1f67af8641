package catalog

// Cursor tracks a current position into one mode's filtered list.
// Next and Prev wrap around; on an empty list every operation is a
// no-op and the position stays 0.
type Cursor struct {
	pos int
	len int
}

// NewCursor returns a cursor over a list of the given length,
// positioned at 0.
func NewCursor(length int) Cursor {
	if length < 0 {
		length = 0
	}
	return Cursor{len: length}
}

// Pos returns the current position. It is only meaningful when Len > 0.
func (c Cursor) Pos() int { return c.pos }

// Len returns the length of the underlying list.
func (c Cursor) Len() int { return c.len }

// Empty reports whether the underlying list has no items.
func (c Cursor) Empty() bool { return c.len == 0 }

// Next advances by one, wrapping from the last position to 0.
func (c Cursor) Next() Cursor {
	if c.len == 0 {
		return c
	}
	c.pos = (c.pos + 1) % c.len
	return c
}

// Prev steps back by one, wrapping from 0 to the last position.
func (c Cursor) Prev() Cursor {
	if c.len == 0 {
		return c
	}
	c.pos = (c.pos - 1 + c.len) % c.len
	return c
}

// Reset moves back to position 0. Called whenever the list identity
// changes (new filter, data reload).
func (c Cursor) Reset() Cursor {
	c.pos = 0
	return c
}

// JumpTo moves to position i, clamped into [0, len-1].
func (c Cursor) JumpTo(i int) Cursor {
	if c.len == 0 {
		c.pos = 0
		return c
	}
	if i < 0 {
		i = 0
	}
	if i >= c.len {
		i = c.len - 1
	}
	c.pos = i
	return c
}

// Resize rebinds the cursor to a list of the given length and resets
// the position, preserving the invariant pos ∈ [0, len-1].
func (c Cursor) Resize(length int) Cursor {
	return NewCursor(length)
}

// WordAt returns the word under the cursor, or ok=false when the list
// is empty.
func WordAt(words []Word, c Cursor) (Word, bool) {
	if c.Empty() || c.Pos() >= len(words) {
		return Word{}, false
	}
	return words[c.Pos()], true
}

// CardAt returns the drill card under the cursor, or ok=false when the
// list is empty.
func CardAt(cards []DrillCard, c Cursor) (DrillCard, bool) {
	if c.Empty() || c.Pos() >= len(cards) {
		return DrillCard{}, false
	}
	return cards[c.Pos()], true
}
