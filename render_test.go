package elemtui

import (
	"strings"
	"testing"
)

func TestRenderChildOverParent(t *testing.T) {
	w := NewWorld()
	root := mustSpawn(t, w, Ui(NewFill('.')).Children(
		Ui(NewFill('X')).With(Width(Fixed(2)), Height(Fixed(1))),
	))
	mustLayout(t, w, root, NewRect(0, 0, 4, 2))

	buf := NewBuffer(4, 2)
	w.Render(root, buf.Area(), buf)

	want := "XX..\n...."
	if got := buf.String(); got != want {
		t.Errorf("buffer:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderClipsToArea(t *testing.T) {
	w := NewWorld()
	root := mustSpawn(t, w, Ui(NewFill('#')))
	mustLayout(t, w, root, NewRect(0, 0, 6, 3))

	buf := NewBuffer(6, 3)
	w.Render(root, NewRect(0, 0, 3, 2), buf)

	want := "###   \n###   \n      "
	if got := buf.String(); got != want {
		t.Errorf("buffer:\n%q\nwant:\n%q", got, want)
	}
}

func TestRenderIdempotent(t *testing.T) {
	w := NewWorld()
	root := mustSpawn(t, w, Ui(NewBlock("t")).Children(
		Ui(NewText("body")).With(Width(Grow()), Height(Grow())),
	))
	mustLayout(t, w, root, NewRect(0, 0, 12, 4))

	buf := NewBuffer(12, 4)
	w.Render(root, buf.Area(), buf)
	first := buf.String()
	w.Render(root, buf.Area(), buf)
	if second := buf.String(); second != first {
		t.Errorf("second render differs:\n%s\nvs\n%s", second, first)
	}
}

func TestRenderSiblingsInOrder(t *testing.T) {
	// Later siblings paint over earlier ones where rects overlap; here they
	// tile, so both must appear.
	w := NewWorld()
	root := mustSpawn(t, w, Ui(nil).Children(
		Ui(NewFill('a')).With(Width(Grow()), Height(Grow())),
		Ui(NewFill('b')).With(Width(Grow()), Height(Grow())),
	))
	mustLayout(t, w, root, NewRect(0, 0, 4, 1))

	buf := NewBuffer(4, 1)
	w.Render(root, buf.Area(), buf)
	if got := buf.String(); got != "aabb" {
		t.Errorf("buffer = %q, want %q", got, "aabb")
	}
}

func TestRenderNilWidgetPaintsNothing(t *testing.T) {
	w := NewWorld()
	root := mustSpawn(t, w, Ui(nil))
	mustLayout(t, w, root, NewRect(0, 0, 3, 1))

	buf := NewBuffer(3, 1)
	w.Render(root, buf.Area(), buf)
	if got := buf.String(); strings.TrimSpace(got) != "" {
		t.Errorf("buffer = %q, want blank", got)
	}
}

func TestRenderUnknownRootIsNoop(t *testing.T) {
	w := NewWorld()
	root := mustSpawn(t, w, Ui(NewFill('x')))
	mustLayout(t, w, root, NewRect(0, 0, 2, 1))
	w.ecs.Remove(root)

	buf := NewBuffer(2, 1)
	w.Render(root, buf.Area(), buf)
	if got := buf.String(); got != "  " {
		t.Errorf("buffer = %q, want blank", got)
	}
}
