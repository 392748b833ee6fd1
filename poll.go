package zoomer

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	maxTouches          = 10
	doubleClickInterval = 500 * time.Millisecond
	doubleClickSlop     = 8.0 // pixels between the two clicks
)

// inputSource is the slice of Ebitengine's input API that Input polls.
type inputSource interface {
	CursorPosition() (x, y int)
	IsMouseButtonPressed(b ebiten.MouseButton) bool
	Wheel() (xoff, yoff float64)
	AppendTouchIDs(ids []ebiten.TouchID) []ebiten.TouchID
	TouchPosition(id ebiten.TouchID) (x, y int)
}

type ebitenSource struct{}

func (ebitenSource) CursorPosition() (int, int) { return ebiten.CursorPosition() }
func (ebitenSource) IsMouseButtonPressed(b ebiten.MouseButton) bool {
	return ebiten.IsMouseButtonPressed(b)
}
func (ebitenSource) Wheel() (float64, float64) { return ebiten.Wheel() }
func (ebitenSource) AppendTouchIDs(ids []ebiten.TouchID) []ebiten.TouchID {
	return ebiten.AppendTouchIDs(ids)
}
func (ebitenSource) TouchPosition(id ebiten.TouchID) (int, int) { return ebiten.TouchPosition(id) }

// Input polls Ebitengine each frame and turns its state into Zoomer events:
// presses, moves, releases and leaves for the mouse, wheel scrolls, double
// clicks and touch start, move and end.
//
// Mouse presses reach the zoomer before the host sees them, so call
// Input.Update before running any content input handling.
type Input struct {
	z        *Zoomer
	viewport Viewport
	src      inputSource
	now      func() time.Time

	// Mouse
	mouseDown   bool
	mouseInside bool
	lastCursor  Vec2
	lastRelease time.Time
	lastClickAt Vec2
	pendingDbl  bool

	// Touch
	touchIDs  []ebiten.TouchID
	touchPos  map[ebiten.TouchID]Vec2
	touchBuf  []Vec2
	touchPrev []ebiten.TouchID
	tapping   bool // a lone contact has stayed within doubleClickSlop
	tapAt     Vec2

	injectQueue []Event
	testRunner  *TestRunner
	screenshots []string
}

// NewInput creates an Input feeding z from Ebitengine. Hit testing uses vp,
// which is normally the zoomer's own viewport.
func NewInput(z *Zoomer, vp Viewport) *Input {
	return &Input{
		z:        z,
		viewport: vp,
		src:      ebitenSource{},
		now:      time.Now,
		touchPos: make(map[ebiten.TouchID]Vec2, maxTouches),
	}
}

// Update polls input for one frame. Queued synthetic events take priority:
// while any are pending, one is delivered per frame and real input is
// skipped.
func (in *Input) Update() {
	if in.testRunner != nil {
		in.testRunner.step(in)
	}
	if in.processInjected() {
		return
	}
	in.processMouse()
	in.processWheel()
	in.processTouches()
}

func (in *Input) dispatch(ev Event) bool {
	return in.z.HandleEvent(ev)
}

// processMouse handles the primary mouse button and cursor.
func (in *Input) processMouse() {
	mx, my := in.src.CursorPosition()
	p := Vec2{float64(mx), float64(my)}
	inside := in.viewport.Contains(p.X, p.Y)
	pressed := in.src.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	if in.mouseInside && !inside {
		in.dispatch(Event{Type: EventMouseLeave, X: p.X, Y: p.Y})
	}

	switch {
	case pressed && !in.mouseDown:
		in.mouseDown = true
		if inside {
			in.dispatch(Event{Type: EventMouseDown, X: p.X, Y: p.Y})
		}
	case !pressed && in.mouseDown:
		in.mouseDown = false
		if inside {
			in.dispatch(Event{Type: EventMouseUp, X: p.X, Y: p.Y})
			in.click(p)
		}
	case inside && p != in.lastCursor:
		in.dispatch(Event{Type: EventMouseMove, X: p.X, Y: p.Y})
	}

	in.mouseInside = inside
	in.lastCursor = p
}

// click records a completed click and dispatches a double click when it
// closely follows the previous one.
func (in *Input) click(p Vec2) {
	t := in.now()
	if in.pendingDbl && t.Sub(in.lastRelease) <= doubleClickInterval &&
		distance(p, in.lastClickAt) <= doubleClickSlop {
		in.pendingDbl = false
		in.dispatch(Event{Type: EventDoubleClick, X: p.X, Y: p.Y})
		return
	}
	in.pendingDbl = true
	in.lastRelease = t
	in.lastClickAt = p
}

// processWheel converts Ebitengine's wheel offset, where positive y scrolls
// up, into a wheel event with DOM-style DeltaY.
func (in *Input) processWheel() {
	xoff, yoff := in.src.Wheel()
	if xoff == 0 && yoff == 0 {
		return
	}
	if !in.viewport.Contains(in.lastCursor.X, in.lastCursor.Y) {
		return
	}
	in.dispatch(Event{Type: EventWheel, DeltaX: -xoff, DeltaY: -yoff})
}

// processTouches diffs this frame's contacts against the previous frame.
// Contacts only join the gesture if they go down inside the viewport. A lone
// contact that lifts near where it went down counts as a click, so two quick
// taps make a double click.
func (in *Input) processTouches() {
	ids := in.src.AppendTouchIDs(in.touchPrev[:0])
	in.touchPrev = ids

	var ended, started, moved bool
	kept := in.touchIDs[:0]
	for _, id := range in.touchIDs {
		if containsID(ids, id) {
			kept = append(kept, id)
		} else {
			delete(in.touchPos, id)
			ended = true
		}
	}
	in.touchIDs = kept

	for _, id := range ids {
		tx, ty := in.src.TouchPosition(id)
		p := Vec2{float64(tx), float64(ty)}
		prev, known := in.touchPos[id]
		switch {
		case !known && len(in.touchIDs) < maxTouches && in.viewport.Contains(p.X, p.Y):
			in.touchIDs = append(in.touchIDs, id)
			in.touchPos[id] = p
			started = true
		case known && prev != p:
			in.touchPos[id] = p
			moved = true
		}
	}

	switch {
	case len(in.touchIDs) > 1:
		in.tapping = false
	case len(in.touchIDs) == 1:
		p := in.touchPos[in.touchIDs[0]]
		if started {
			in.tapping = true
			in.tapAt = p
		} else if in.tapping && distance(p, in.tapAt) > doubleClickSlop {
			in.tapping = false
		}
	}

	if ended {
		in.dispatch(Event{Type: EventTouchEnd, Touches: in.touches()})
		if len(in.touchIDs) == 0 && in.tapping {
			in.tapping = false
			in.click(in.tapAt)
		}
	}
	if started {
		in.dispatch(Event{Type: EventTouchStart, Touches: in.touches()})
	} else if moved {
		in.dispatch(Event{Type: EventTouchMove, Touches: in.touches()})
	}
}

// touches returns the tracked contact positions in arrival order. The slice
// is reused between frames.
func (in *Input) touches() []Vec2 {
	in.touchBuf = in.touchBuf[:0]
	for _, id := range in.touchIDs {
		in.touchBuf = append(in.touchBuf, in.touchPos[id])
	}
	return in.touchBuf
}

func containsID(ids []ebiten.TouchID, id ebiten.TouchID) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
