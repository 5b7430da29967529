package camera

import (
	"testing"

	"github.com/chewxy/math32"

	"github.com/Faultbox/skyfountain/pkg/math"
)

func TestZeroRotationViewIsTranslation(t *testing.T) {
	c := New(16, 1.5, 5)

	if got, want := c.View(), math.Translate(0, -1.5, -5); got != want {
		t.Errorf("View() = %v, want %v", got, want)
	}
	if got := c.SkyboxView(); got != math.Identity() {
		t.Errorf("SkyboxView() = %v, want identity", got)
	}
}

func TestHandleDragScales(t *testing.T) {
	c := New(16, 1.5, 5)
	c.HandleDrag(32, -8)

	if c.Yaw != 2 {
		t.Errorf("Yaw = %v, want 2", c.Yaw)
	}
	if c.Pitch != -0.5 {
		t.Errorf("Pitch = %v, want -0.5", c.Pitch)
	}
}

func TestPitchSaturates(t *testing.T) {
	c := New(16, 1.5, 5)
	for i := 0; i < 100; i++ {
		c.HandleDrag(0, 97)
		if c.Pitch > MaxPitch {
			t.Fatalf("pitch overshot: %v", c.Pitch)
		}
	}
	if c.Pitch != 90 {
		t.Errorf("Pitch = %v, want 90", c.Pitch)
	}

	for i := 0; i < 100; i++ {
		c.HandleDrag(0, -113)
		if c.Pitch < MinPitch {
			t.Fatalf("pitch overshot: %v", c.Pitch)
		}
	}
	if c.Pitch != -90 {
		t.Errorf("Pitch = %v, want -90", c.Pitch)
	}
}

func TestYawIsUnbounded(t *testing.T) {
	c := New(16, 1.5, 5)
	for i := 0; i < 10; i++ {
		c.HandleDrag(16*90, 0)
	}
	if c.Yaw != 900 {
		t.Errorf("Yaw = %v, want 900", c.Yaw)
	}
}

func TestSkyboxViewHasNoTranslation(t *testing.T) {
	c := New(16, 1.5, 5)
	drags := [][2]float32{{100, 40}, {-333, 12}, {5, -900}, {1200, 1200}}

	for _, d := range drags {
		c.HandleDrag(d[0], d[1])

		if tr := c.SkyboxView().Translation(); tr != (math.Vec3{}) {
			t.Errorf("skybox view translation = %v, want zero", tr)
		}
		if tr := c.View().Translation(); tr == (math.Vec3{}) {
			t.Error("scene view should carry the eye translation")
		}
		// scene view = skybox view * T(0, -1.5, -5)
		want := c.SkyboxView().Mul(math.Translate(0, -1.5, -5))
		if c.View() != want {
			t.Errorf("View() = %v, want %v", c.View(), want)
		}
	}
}

func TestViewRotationOrder(t *testing.T) {
	c := New(16, 0, 0)
	c.HandleDrag(90*16, 30*16) // yaw 90, pitch 30

	want := math.RotateX(-30).Mul(math.RotateY(-90))
	got := c.SkyboxView()
	for i := range got {
		if math32.Abs(got[i]-want[i]) > 1e-6 {
			t.Fatalf("SkyboxView() = %v, want Rx(-pitch)*Ry(-yaw) = %v", got, want)
		}
	}
}

func TestDragQueueDrain(t *testing.T) {
	q := NewDragQueue(4)
	c := New(16, 1.5, 5)

	q.Push(math.Vec2{X: 16, Y: 0})
	q.Push(math.Vec2{X: 16, Y: 16})
	if n := q.Drain(c); n != 2 {
		t.Errorf("Drain applied %d drags, want 2", n)
	}
	if c.Yaw != 2 || c.Pitch != 1 {
		t.Errorf("camera = (yaw %v, pitch %v), want (2, 1)", c.Yaw, c.Pitch)
	}
	if n := q.Drain(c); n != 0 {
		t.Errorf("second Drain applied %d drags, want 0", n)
	}
}

func TestDragQueueDropsWhenFull(t *testing.T) {
	q := NewDragQueue(2)
	if !q.Push(math.Vec2{X: 1, Y: 1}) || !q.Push(math.Vec2{X: 1, Y: 1}) {
		t.Fatal("pushes within capacity should succeed")
	}
	if q.Push(math.Vec2{X: 1, Y: 1}) {
		t.Error("push past capacity should be dropped")
	}
	if q.Dropped() != 1 {
		t.Errorf("Dropped() = %d, want 1", q.Dropped())
	}
}

func TestDragQueueConcurrentPush(t *testing.T) {
	q := NewDragQueue(1000)
	done := make(chan struct{})
	for g := 0; g < 4; g++ {
		go func() {
			for i := 0; i < 100; i++ {
				q.Push(math.Vec2{X: 16, Y: 0})
			}
			done <- struct{}{}
		}()
	}
	for g := 0; g < 4; g++ {
		<-done
	}

	c := New(16, 1.5, 5)
	if n := q.Drain(c); n != 400 {
		t.Errorf("Drain applied %d drags, want 400", n)
	}
	if c.Yaw != 400 {
		t.Errorf("Yaw = %v, want 400", c.Yaw)
	}
}
