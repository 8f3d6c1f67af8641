package catalog

import "testing"

func TestCursorNextWraps(t *testing.T) {
	c := NewCursor(3).JumpTo(2)
	c = c.Next()
	if c.Pos() != 0 {
		t.Errorf("pos after wrap = %d, want 0", c.Pos())
	}
}

func TestCursorPrevWraps(t *testing.T) {
	c := NewCursor(3)
	c = c.Prev()
	if c.Pos() != 2 {
		t.Errorf("pos after prev from 0 = %d, want 2", c.Pos())
	}
}

func TestCursorNextLengthTimesIsIdentity(t *testing.T) {
	for _, length := range []int{1, 2, 5, 9} {
		for start := 0; start < length; start++ {
			c := NewCursor(length).JumpTo(start)
			for i := 0; i < length; i++ {
				c = c.Next()
			}
			if c.Pos() != start {
				t.Errorf("len %d start %d: pos = %d after %d nexts", length, start, c.Pos(), length)
			}
		}
	}
}

func TestCursorPrevUndoesNext(t *testing.T) {
	for _, length := range []int{2, 3, 7} {
		for start := 0; start < length; start++ {
			c := NewCursor(length).JumpTo(start)
			if got := c.Next().Prev().Pos(); got != start {
				t.Errorf("len %d: prev(next(%d)) = %d", length, start, got)
			}
			if got := c.Prev().Next().Pos(); got != start {
				t.Errorf("len %d: next(prev(%d)) = %d", length, start, got)
			}
		}
	}
}

func TestCursorSingleElementIsNoOp(t *testing.T) {
	c := NewCursor(1)
	if c.Next().Pos() != 0 || c.Prev().Pos() != 0 {
		t.Error("next/prev on single-element list should stay at 0")
	}
}

func TestCursorEmptyList(t *testing.T) {
	c := NewCursor(0)
	if !c.Empty() {
		t.Fatal("expected empty cursor")
	}
	if c.Next().Pos() != 0 || c.Prev().Pos() != 0 || c.JumpTo(3).Pos() != 0 {
		t.Error("operations on an empty cursor should keep pos 0")
	}
	if _, ok := WordAt(nil, c); ok {
		t.Error("WordAt on empty list should report absence, not a value")
	}
	if _, ok := CardAt(nil, c); ok {
		t.Error("CardAt on empty list should report absence, not a value")
	}
}

func TestCursorJumpToClamps(t *testing.T) {
	c := NewCursor(4)
	if got := c.JumpTo(10).Pos(); got != 3 {
		t.Errorf("JumpTo(10) = %d, want 3", got)
	}
	if got := c.JumpTo(-2).Pos(); got != 0 {
		t.Errorf("JumpTo(-2) = %d, want 0", got)
	}
}

func TestCursorResizeResets(t *testing.T) {
	c := NewCursor(5).JumpTo(4)
	c = c.Resize(2)
	if c.Pos() != 0 || c.Len() != 2 {
		t.Errorf("after resize: pos=%d len=%d, want 0/2", c.Pos(), c.Len())
	}
}

func TestWordAt(t *testing.T) {
	words := []Word{{ID: 1}, {ID: 2}}
	c := NewCursor(len(words)).Next()
	w, ok := WordAt(words, c)
	if !ok || w.ID != 2 {
		t.Errorf("WordAt = %+v ok=%v, want word 2", w, ok)
	}
}
