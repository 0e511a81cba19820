package game

import "testing"

func TestGameClock(t *testing.T) {
	c := NewGameClock()
	if c.Now() != 0 {
		t.Errorf("initial Now(): got %v, want 0", c.Now())
	}

	c.Advance(0.25)
	c.Advance(-1)
	c.Advance(0.5)

	if c.Now() != 0.75 {
		t.Errorf("Now(): got %v, want 0.75", c.Now())
	}
}
