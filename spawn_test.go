package elemtui

import "testing"

func TestSpawnDefaults(t *testing.T) {
	w := NewWorld()
	root := mustSpawn(t, w, Ui(nil))

	entry := w.ecs.Entry(root)
	if k := Size(*compWidth.Get(entry)).Kind; k != SizeFit {
		t.Errorf("default width kind = %d, want SizeFit", k)
	}
	if k := Size(*compHeight.Get(entry)).Kind; k != SizeFit {
		t.Errorf("default height kind = %d, want SizeFit", k)
	}
	if d := *compDirection.Get(entry); d != Horizontal {
		t.Errorf("default direction = %d, want Horizontal", d)
	}
	if p := *compPadding.Get(entry); p != (Padding{}) {
		t.Errorf("default padding = %v, want zero", p)
	}
	if g := *compGap.Get(entry); g != 0 {
		t.Errorf("default gap = %d, want 0", g)
	}
	if j := *compJustify.Get(entry); j != JustifyStart {
		t.Errorf("default justify = %d, want JustifyStart", j)
	}
}

func TestSpawnChildOrder(t *testing.T) {
	w := NewWorld()
	root := mustSpawn(t, w, Ui(nil).Children(
		Ui(NewText("a")),
		Ui(NewText("b")),
		Ui(NewText("c")),
	))

	kids, err := w.ChildrenOf(root)
	if err != nil {
		t.Fatal(err)
	}
	if len(kids) != 3 {
		t.Fatalf("got %d children, want 3", len(kids))
	}
	want := []string{"a", "b", "c"}
	for i, kid := range kids {
		entry := w.ecs.Entry(kid)
		text, ok := compWidget.Get(entry).widget.(*Text)
		if !ok {
			t.Fatalf("child %d widget is %T, want *Text", i, compWidget.Get(entry).widget)
		}
		if text.content != want[i] {
			t.Errorf("child %d content = %q, want %q", i, text.content, want[i])
		}
	}
}

func TestSpawnPaddingHint(t *testing.T) {
	w := NewWorld()
	hinted := mustSpawn(t, w, Ui(NewBlock("x")))
	if p := *compPadding.Get(w.ecs.Entry(hinted)); p != PadAll(1) {
		t.Errorf("hinted padding = %v, want PadAll(1)", p)
	}

	explicit := mustSpawn(t, w, Ui(NewBlock("x")).With(PadAll(3)))
	if p := *compPadding.Get(w.ecs.Entry(explicit)); p != PadAll(3) {
		t.Errorf("explicit padding = %v, want PadAll(3)", p)
	}
}

func TestSpawnNilNode(t *testing.T) {
	w := NewWorld()
	if _, err := w.Spawn(nil); err == nil {
		t.Error("spawn of nil node should fail")
	}
}

func TestAttrLastWins(t *testing.T) {
	n := Ui(nil).With(Width(Fixed(3)), Width(Fixed(9)))
	if n.width == nil || Size(*n.width).Cells != 9 {
		t.Errorf("width = %v, want Fixed(9)", n.width)
	}
}

func TestBuilderChaining(t *testing.T) {
	n := Ui(nil).
		With(Vertical, Gap(2)).
		Child(Ui(NewText("one"))).
		Child(Ui(NewText("two")))
	if len(n.children) != 2 {
		t.Errorf("got %d children, want 2", len(n.children))
	}
	if n.direction == nil || *n.direction != Vertical {
		t.Error("direction not applied")
	}
	if n.gap == nil || *n.gap != 2 {
		t.Error("gap not applied")
	}
}
