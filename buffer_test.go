package elemtui

import (
	"strings"
	"testing"
)

func TestBufferSetGet(t *testing.T) {
	buf := NewBuffer(3, 2)
	buf.Set(1, 1, NewCell('x', DefaultStyle()))
	if got := buf.Get(1, 1).Rune; got != 'x' {
		t.Errorf("Get(1,1) = %q, want 'x'", got)
	}
	if got := buf.Get(0, 0).Rune; got != ' ' {
		t.Errorf("untouched cell = %q, want space", got)
	}
}

func TestBufferOutOfBounds(t *testing.T) {
	buf := NewBuffer(2, 2)
	// Writes outside are dropped, reads return an empty cell.
	buf.Set(-1, 0, NewCell('x', DefaultStyle()))
	buf.Set(2, 0, NewCell('x', DefaultStyle()))
	buf.Set(0, 2, NewCell('x', DefaultStyle()))
	if strings.ContainsRune(buf.String(), 'x') {
		t.Error("out of bounds write landed in buffer")
	}
	if got := buf.Get(5, 5).Rune; got != ' ' {
		t.Errorf("out of bounds read = %q, want space", got)
	}
}

func TestBufferWriteStringClips(t *testing.T) {
	buf := NewBuffer(10, 1)
	n := buf.WriteString(7, 0, "abcdef", DefaultStyle(), 6)
	if n != 3 {
		t.Errorf("wrote %d cells, want 3", n)
	}
	if got := buf.String(); got != "       abc" {
		t.Errorf("buffer = %q", got)
	}
}

func TestBufferWriteStringMaxWidth(t *testing.T) {
	buf := NewBuffer(10, 1)
	buf.WriteString(0, 0, "abcdef", DefaultStyle(), 4)
	if got := buf.StringTrimmed(); got != "abcd" {
		t.Errorf("buffer = %q, want %q", got, "abcd")
	}
}

func TestBorderMerge(t *testing.T) {
	// Two adjacent borders share an edge; the shared verticals become tees.
	buf := NewBuffer(7, 3)
	buf.DrawBorder(NewRect(0, 0, 4, 3), BorderSingle, DefaultStyle())
	buf.DrawBorder(NewRect(3, 0, 4, 3), BorderSingle, DefaultStyle())

	if got := buf.Get(3, 0).Rune; got != BoxTeeDown {
		t.Errorf("top junction = %q, want %q", got, BoxTeeDown)
	}
	if got := buf.Get(3, 2).Rune; got != BoxTeeUp {
		t.Errorf("bottom junction = %q, want %q", got, BoxTeeUp)
	}
}

func TestBufferResizePreservesContent(t *testing.T) {
	buf := NewBuffer(4, 2)
	buf.Set(1, 0, NewCell('a', DefaultStyle()))
	buf.Resize(6, 3)
	if got := buf.Get(1, 0).Rune; got != 'a' {
		t.Errorf("cell lost on grow: %q", got)
	}
	buf.Resize(1, 1)
	if buf.Width() != 1 || buf.Height() != 1 {
		t.Errorf("shrink to 1x1 got %dx%d", buf.Width(), buf.Height())
	}
}

func TestBufferStringTrimmed(t *testing.T) {
	buf := NewBuffer(5, 3)
	buf.WriteString(0, 0, "ab", DefaultStyle(), 5)
	got := buf.StringTrimmed()
	if got != "ab" {
		t.Errorf("trimmed = %q, want %q", got, "ab")
	}
}
