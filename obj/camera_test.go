package obj

import "testing"

func TestCameraFollowClosesHalfTheDistance(t *testing.T) {
	c := NewCamera(5)
	c.SetBounds(0, 10000, 0, 10000)

	// smoothing*dt = 0.5, so each step closes half of what remains
	c.Follow(1512, 884, 0.1) // unclamped target top-left is (1000, 500)
	if c.X != 500 || c.Y != 250 {
		t.Fatalf("after one step expected (500, 250), got (%v, %v)", c.X, c.Y)
	}
	c.Follow(1512, 884, 0.1)
	if c.X != 750 || c.Y != 375 {
		t.Fatalf("after two steps expected (750, 375), got (%v, %v)", c.X, c.Y)
	}
}

func TestCameraSnapClampsToBounds(t *testing.T) {
	c := NewCamera(5)
	c.SetBounds(0, 1600, 0, 800)

	c.Snap(0, 0)
	if c.X != 0 || c.Y != 0 {
		t.Fatalf("expected clamp to top-left corner, got (%v, %v)", c.X, c.Y)
	}

	c.Snap(1600, 800)
	if c.X != 576 || c.Y != 32 {
		t.Fatalf("expected clamp to bottom-right corner (576, 32), got (%v, %v)", c.X, c.Y)
	}

	c.Snap(800, 400)
	if c.X != 288 || c.Y != 16 {
		t.Fatalf("expected centered snap (288, 16), got (%v, %v)", c.X, c.Y)
	}
}
