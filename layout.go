package elemtui

import (
	"fmt"
	"math"

	"github.com/yohamta/donburi"
)

// intrinsic is the size a subtree wants before space distribution.
type intrinsic struct {
	w, h int
}

// solver holds the scratch state for one layout pass. Results accumulate in
// rects and are only written back to the store once both passes succeed, so
// a failed pass leaves every ComputedRect untouched.
type solver struct {
	world  *World
	sizes  map[Entity]intrinsic
	rects  map[Entity]Rect
	onPath map[Entity]bool
}

// CalculateLayout solves the tree rooted at root within available and
// stores a ComputedRect on every reachable entity. The root always fills
// available regardless of its own sizing policy.
//
// The pass is two traversals: a post-order measure that folds intrinsic
// sizes upward, then a pre-order arrange that splits each node's content
// box among its children. Fixed children take their cells, Fit children
// take their measured size, and Grow children share whatever main-axis
// space remains in proportion to their weights.
//
// Errors leave the previously computed rects in place:
//   - ErrOverflow when fixed and fit demands exceed a content box
//   - ErrUnknownEntity when a Children list names a missing entity
//   - ErrCycle when the child graph revisits a node on the current path
func (w *World) CalculateLayout(root Entity, available Rect) error {
	s := &solver{
		world:  w,
		sizes:  make(map[Entity]intrinsic),
		rects:  make(map[Entity]Rect),
		onPath: make(map[Entity]bool),
	}
	if _, err := s.measure(root); err != nil {
		return err
	}
	if err := s.arrange(root, available); err != nil {
		return err
	}
	for e, r := range s.rects {
		*compRect.Get(w.ecs.Entry(e)) = r
	}
	return nil
}

// measure computes the intrinsic size of e's subtree. Grow axes report
// zero; they have no demand of their own.
func (s *solver) measure(e Entity) (intrinsic, error) {
	if s.onPath[e] {
		return intrinsic{}, fmt.Errorf("entity %d: %w", e.Id(), ErrCycle)
	}
	entry, err := s.world.entry(e)
	if err != nil {
		return intrinsic{}, err
	}
	s.onPath[e] = true
	defer delete(s.onPath, e)

	width := Size(*compWidth.Get(entry))
	height := Size(*compHeight.Get(entry))
	dir := *compDirection.Get(entry)
	pad := *compPadding.Get(entry)
	gap := int(*compGap.Get(entry))
	kids := *compChildren.Get(entry)
	widget := compWidget.Get(entry).widget

	var fitW, fitH int
	if len(kids) == 0 {
		if widget != nil {
			fitW, fitH = widget.IntrinsicSize()
		}
		fitW += pad.Horizontal()
		fitH += pad.Vertical()
	} else {
		var sumMain, maxCross int
		for _, c := range kids {
			ci, err := s.measure(c)
			if err != nil {
				return intrinsic{}, err
			}
			m, x := axisSplit(dir, ci.w, ci.h)
			sumMain += m
			if x > maxCross {
				maxCross = x
			}
		}
		sumMain += gap * (len(kids) - 1)
		if dir == Horizontal {
			fitW = sumMain + pad.Horizontal()
			fitH = maxCross + pad.Vertical()
		} else {
			fitW = maxCross + pad.Horizontal()
			fitH = sumMain + pad.Vertical()
		}
	}

	sz := intrinsic{
		w: resolveIntrinsic(width, fitW),
		h: resolveIntrinsic(height, fitH),
	}
	s.sizes[e] = sz
	return sz, nil
}

func resolveIntrinsic(policy Size, fit int) int {
	switch policy.Kind {
	case SizeFixed:
		return policy.Cells
	case SizeGrow:
		return 0
	default:
		return fit
	}
}

// axisSplit maps a (w, h) pair onto (main, cross) for the given direction.
func axisSplit(d Direction, w, h int) (main, cross int) {
	if d == Horizontal {
		return w, h
	}
	return h, w
}

// arrange assigns r to e and lays out e's children inside r's content box.
func (s *solver) arrange(e Entity, r Rect) error {
	if s.onPath[e] {
		return fmt.Errorf("entity %d: %w", e.Id(), ErrCycle)
	}
	entry, err := s.world.entry(e)
	if err != nil {
		return err
	}
	s.onPath[e] = true
	defer delete(s.onPath, e)
	s.rects[e] = r

	dir := *compDirection.Get(entry)
	pad := *compPadding.Get(entry)
	gap := int(*compGap.Get(entry))
	justify := *compJustify.Get(entry)
	kids := *compChildren.Get(entry)
	if len(kids) == 0 {
		return nil
	}

	content := r.Inset(pad)
	contentMain, contentCross := axisSplit(dir, content.W, content.H)

	mains := make([]int, len(kids))
	weights := make([]float64, len(kids))
	sumFixed := 0
	for i, c := range kids {
		centry, err := s.world.entry(c)
		if err != nil {
			return err
		}
		main, _ := axisPolicies(dir, centry)
		switch main.Kind {
		case SizeFixed:
			mains[i] = main.Cells
		case SizeGrow:
			weights[i] = main.Weight
		default:
			m, _ := axisSplit(dir, s.sizes[c].w, s.sizes[c].h)
			mains[i] = m
		}
		sumFixed += mains[i]
	}
	remaining := contentMain - sumFixed - gap*(len(kids)-1)
	if remaining < 0 {
		return fmt.Errorf("entity %d: children need %d cells beyond the %d available: %w",
			e.Id(), -remaining, contentMain, ErrOverflow)
	}

	var totalWeight float64
	for _, wt := range weights {
		totalWeight += wt
	}

	offset, between, ticks := 0, 0, 0
	if totalWeight > 0 {
		// Floor each weighted share, then hand leftover cells out one at a
		// time left to right so the split is deterministic.
		distributed := 0
		for i := range kids {
			if weights[i] > 0 {
				share := int(math.Floor(float64(remaining)*weights[i]/totalWeight + 1e-9))
				mains[i] = share
				distributed += share
			}
		}
		leftover := remaining - distributed
		for i := range kids {
			if leftover == 0 {
				break
			}
			if weights[i] > 0 {
				mains[i]++
				leftover--
			}
		}
	} else if remaining > 0 {
		offset, between, ticks = justifySplit(justify, remaining, len(kids))
	}

	cursorX, cursorY := content.X, content.Y
	if dir == Horizontal {
		cursorX += offset
	} else {
		cursorY += offset
	}
	for i, c := range kids {
		centry, _ := s.world.entry(c)
		_, cross := axisPolicies(dir, centry)
		var crossSize int
		switch cross.Kind {
		case SizeFixed:
			crossSize = cross.Cells
		case SizeGrow:
			crossSize = contentCross
		default:
			_, x := axisSplit(dir, s.sizes[c].w, s.sizes[c].h)
			crossSize = x
		}

		var cr Rect
		if dir == Horizontal {
			cr = Rect{X: cursorX, Y: content.Y, W: mains[i], H: crossSize}
		} else {
			cr = Rect{X: content.X, Y: cursorY, W: crossSize, H: mains[i]}
		}
		if err := s.arrange(c, cr); err != nil {
			return err
		}

		advance := mains[i] + gap + between
		if ticks > 0 {
			advance++
			ticks--
		}
		if dir == Horizontal {
			cursorX += advance
		} else {
			cursorY += advance
		}
	}
	return nil
}

// axisPolicies reads a child's sizing policies as (main, cross) for the
// parent's direction.
func axisPolicies(d Direction, entry *donburi.Entry) (main, cross Size) {
	w := Size(*compWidth.Get(entry))
	h := Size(*compHeight.Get(entry))
	if d == Horizontal {
		return w, h
	}
	return h, w
}

// justifySplit converts leftover main-axis space into a leading offset, a
// per-slot spacer and a count of single cells distributed after the first
// children. It only applies when no child grows; a Grow child absorbs the
// slack before justification is consulted.
func justifySplit(j Justify, remaining, n int) (offset, between, ticks int) {
	switch j {
	case JustifyCenter:
		return remaining / 2, 0, 0
	case JustifyEnd:
		return remaining, 0, 0
	case JustifySpaceBetween:
		if n < 2 {
			return 0, 0, 0
		}
		return 0, remaining / (n - 1), remaining % (n - 1)
	case JustifySpaceAround:
		slots := 2 * n
		space := remaining / slots
		return space, 2 * space, remaining % slots
	case JustifySpaceEvenly:
		slots := 2*n + 2
		space := remaining / slots
		return 2 * space, 2 * space, 0
	default:
		return 0, 0, 0
	}
}
