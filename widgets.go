package elemtui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Text paints styled lines of text, clipped to its rect.
type Text struct {
	content string
	style   Style
}

// NewText creates a text widget. Embedded newlines start new lines.
func NewText(content string) *Text {
	return &Text{content: content}
}

// SetContent replaces the text. Re-run the layout pass afterwards if the
// node sizes to fit; the intrinsic size changes with the content.
func (t *Text) SetContent(content string) *Text {
	t.content = content
	return t
}

// Styled replaces the text's style.
func (t *Text) Styled(s Style) *Text {
	t.style = s
	return t
}

// Foreground sets the text colour.
func (t *Text) Foreground(c Color) *Text {
	t.style = t.style.Foreground(c)
	return t
}

// Bold renders the text bold.
func (t *Text) Bold() *Text {
	t.style = t.style.Bold()
	return t
}

func (t *Text) IntrinsicSize() (int, int) {
	lines := strings.Split(t.content, "\n")
	w := 0
	for _, line := range lines {
		if lw := runewidth.StringWidth(line); lw > w {
			w = lw
		}
	}
	return w, len(lines)
}

func (t *Text) Paint(r Rect, buf *Buffer) {
	for i, line := range strings.Split(t.content, "\n") {
		if i >= r.H {
			break
		}
		buf.WriteString(r.X, r.Y+i, line, t.style, r.W)
	}
}

// Block draws a border around its rect with an optional title on the top
// edge. It hints one cell of padding per side so children land inside the
// frame when the node declares no explicit padding.
type Block struct {
	title  string
	border BorderStyle
	style  Style
}

// NewBlock creates a bordered block.
func NewBlock(title string) *Block {
	return &Block{title: title, border: BorderSingle}
}

// Bordered replaces the border character set.
func (b *Block) Bordered(bs BorderStyle) *Block {
	b.border = bs
	return b
}

// Styled sets the style the border and title draw with.
func (b *Block) Styled(s Style) *Block {
	b.style = s
	return b
}

func (b *Block) IntrinsicSize() (int, int) {
	if b.title == "" {
		return 0, 0
	}
	return runewidth.StringWidth(b.title) + 2, 0
}

func (b *Block) PaddingHint() Padding {
	return PadAll(1)
}

func (b *Block) Paint(r Rect, buf *Buffer) {
	if r.W < 2 || r.H < 2 {
		return
	}
	buf.DrawBorder(r, b.border, b.style)
	if b.title != "" {
		buf.WriteString(r.X+2, r.Y, " "+b.title+" ", b.style, r.W-4)
	}
}

// Gauge paints a one-line progress bar. Ratio is clamped to [0, 1].
type Gauge struct {
	ratio float64
	style Style
}

// NewGauge creates a gauge at the given fill ratio.
func NewGauge(ratio float64) *Gauge {
	return &Gauge{ratio: ratio}
}

// SetRatio updates the fill ratio.
func (g *Gauge) SetRatio(ratio float64) *Gauge {
	g.ratio = ratio
	return g
}

// Styled sets the bar style.
func (g *Gauge) Styled(s Style) *Gauge {
	g.style = s
	return g
}

func (g *Gauge) IntrinsicSize() (int, int) {
	return 22, 1
}

func (g *Gauge) Paint(r Rect, buf *Buffer) {
	if r.W < 3 || r.H < 1 {
		return
	}
	ratio := g.ratio
	if ratio < 0 {
		ratio = 0
	} else if ratio > 1 {
		ratio = 1
	}
	inner := r.W - 2
	filled := int(float64(inner) * ratio)
	buf.Set(r.X, r.Y, NewCell('[', g.style))
	buf.Set(r.X+r.W-1, r.Y, NewCell(']', g.style))
	for i := 0; i < inner; i++ {
		ch := '░'
		if i < filled {
			ch = '█'
		}
		buf.Set(r.X+1+i, r.Y, NewCell(ch, g.style))
	}
}

// Spacer occupies layout space and paints nothing. Pair it with Grow
// sizing to push siblings apart.
type Spacer struct{}

// NewSpacer creates a spacer.
func NewSpacer() *Spacer {
	return &Spacer{}
}

func (s *Spacer) IntrinsicSize() (int, int) { return 0, 0 }

func (s *Spacer) Paint(Rect, *Buffer) {}

// Fill floods its rect with a single styled rune. Useful for backgrounds
// and separators.
type Fill struct {
	ch    rune
	style Style
}

// NewFill creates a fill widget painting ch.
func NewFill(ch rune) *Fill {
	return &Fill{ch: ch}
}

// Styled sets the fill style.
func (f *Fill) Styled(s Style) *Fill {
	f.style = s
	return f
}

func (f *Fill) IntrinsicSize() (int, int) { return 0, 0 }

func (f *Fill) Paint(r Rect, buf *Buffer) {
	buf.FillRect(r, NewCell(f.ch, f.style))
}
