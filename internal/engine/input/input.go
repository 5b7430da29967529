// Package input turns SDL2 events into renderer events.
package input

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/skyfountain/pkg/math"
)

// EventType identifies a processed input event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventKeyUp
	EventDrag
)

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Key    sdl.Scancode
	Width  int
	Height int

	// Drag delta in window pixels.
	Delta math.Vec2
}

// touchMouseID marks mouse events SDL synthesizes from touches.
const touchMouseID = ^uint32(0)

// Input handles all input processing.
type Input struct {
	events []Event

	leftDown bool

	// Window size in points, used to scale normalized touch deltas.
	width, height int
}

// New creates a new input handler for a window of the given size.
func New(width, height int) *Input {
	return &Input{
		events: make([]Event, 0, 16),
		width:  width,
		height: height,
	}
}

// Update polls SDL events and converts them to renderer events.
// Returns true if the application should quit.
func (i *Input) Update() bool {
	i.events = i.events[:0]

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		if i.handle(event) {
			return true
		}
	}

	return false
}

// handle appends the events for one SDL event and reports whether it asks to quit.
func (i *Input) handle(event sdl.Event) bool {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		i.events = append(i.events, Event{Type: EventQuit})
		return true

	case *sdl.WindowEvent:
		// SDL follows every RESIZED with a SIZE_CHANGED, which also covers
		// size changes the program makes itself.
		if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
			i.width, i.height = int(e.Data1), int(e.Data2)
			i.events = append(i.events, Event{
				Type:   EventWindowResize,
				Width:  i.width,
				Height: i.height,
			})
		}

	case *sdl.KeyboardEvent:
		switch e.Type {
		case sdl.KEYDOWN:
			if e.Repeat != 0 {
				return false
			}
			i.events = append(i.events, Event{Type: EventKeyDown, Key: e.Keysym.Scancode})
		case sdl.KEYUP:
			i.events = append(i.events, Event{Type: EventKeyUp, Key: e.Keysym.Scancode})
		}

	case *sdl.MouseButtonEvent:
		if e.Button == sdl.BUTTON_LEFT {
			i.leftDown = e.State == sdl.PRESSED
		}

	case *sdl.MouseMotionEvent:
		// Touch input also arrives as synthetic mouse events; the finger
		// events below already cover it.
		if i.leftDown && e.Which != touchMouseID && (e.XRel != 0 || e.YRel != 0) {
			i.events = append(i.events, Event{
				Type:  EventDrag,
				Delta: math.Vec2{X: float32(e.XRel), Y: float32(e.YRel)},
			})
		}

	case *sdl.TouchFingerEvent:
		if e.Type == sdl.FINGERMOTION {
			i.events = append(i.events, Event{
				Type:  EventDrag,
				Delta: math.Vec2{X: e.DX * float32(i.width), Y: e.DY * float32(i.height)},
			})
		}
	}

	return false
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}
