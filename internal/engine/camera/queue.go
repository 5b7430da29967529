package camera

import (
	"sync/atomic"

	"github.com/Faultbox/skyfountain/pkg/math"
)

// DragQueue carries drag deltas from the input side to the render thread.
// Push never blocks; when the queue is full the delta is dropped and counted.
type DragQueue struct {
	ch      chan math.Vec2
	dropped atomic.Uint64
}

// NewDragQueue creates a queue holding up to size pending drags.
func NewDragQueue(size int) *DragQueue {
	return &DragQueue{ch: make(chan math.Vec2, size)}
}

// Push enqueues a drag delta in input units. It reports false if the drag was dropped.
func (q *DragQueue) Push(delta math.Vec2) bool {
	select {
	case q.ch <- delta:
		return true
	default:
		q.dropped.Add(1)
		return false
	}
}

// Drain applies every pending drag to cam in arrival order and returns how many were applied.
func (q *DragQueue) Drain(cam *Camera) int {
	n := 0
	for {
		select {
		case d := <-q.ch:
			cam.HandleDrag(d.X, d.Y)
			n++
		default:
			return n
		}
	}
}

// Dropped returns the number of drags discarded because the queue was full.
func (q *DragQueue) Dropped() uint64 {
	return q.dropped.Load()
}
