package core

import (
	"testing"

	"github.com/vovakirdan/tui-snake/internal/grid"
)

func TestRectContains(t *testing.T) {
	r := NewRect(2, 3, 4, 5)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"top-left corner", 2, 3, true},
		{"inside", 4, 5, true},
		{"last cell", 5, 7, true},
		{"right edge (exclusive)", 6, 5, false},
		{"bottom edge (exclusive)", 4, 8, false},
		{"left of rect", 1, 5, false},
		{"above rect", 4, 2, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestCenteredRect(t *testing.T) {
	outer := NewRect(0, 0, 20, 10)
	r := CenteredRect(outer, 6, 4)

	if r.X != 7 || r.Y != 3 || r.W != 6 || r.H != 4 {
		t.Errorf("CenteredRect() = %+v, expected {7 3 6 4}", r)
	}
	if r.Right() != 13 || r.Bottom() != 7 {
		t.Errorf("edges = (%d, %d), expected (13, 7)", r.Right(), r.Bottom())
	}
}

func TestRectFits(t *testing.T) {
	r := NewRect(0, 0, 80, 24)
	if !r.Fits(80, 24) {
		t.Error("exact size should fit")
	}
	if r.Fits(81, 24) || r.Fits(80, 25) {
		t.Error("larger size should not fit")
	}
}

func TestMinMax(t *testing.T) {
	if Min(3, 5) != 3 || Min(5, 3) != 3 {
		t.Error("Min returned the larger value")
	}
	if Max(3, 5) != 5 || Max(5, 3) != 5 {
		t.Error("Max returned the smaller value")
	}
}

func TestActionDirection(t *testing.T) {
	tests := []struct {
		action Action
		dir    grid.Direction
	}{
		{ActionUp, grid.Up},
		{ActionDown, grid.Down},
		{ActionLeft, grid.Left},
		{ActionRight, grid.Right},
		{ActionPause, grid.None},
		{ActionRestart, grid.None},
		{ActionQuit, grid.None},
		{ActionNone, grid.None},
	}

	for _, tc := range tests {
		t.Run(tc.action.String(), func(t *testing.T) {
			if got := tc.action.Direction(); got != tc.dir {
				t.Errorf("Direction() = %v, expected %v", got, tc.dir)
			}
			if tc.action.IsMove() != (tc.dir != grid.None) {
				t.Errorf("IsMove() disagrees with Direction()")
			}
		})
	}
}

func TestPacer(t *testing.T) {
	p := NewPacer(3)

	var fired []int
	for frame := 1; frame <= 9; frame++ {
		if p.Frame() {
			fired = append(fired, frame)
		}
	}
	if len(fired) != 3 || fired[0] != 3 || fired[1] != 6 || fired[2] != 9 {
		t.Errorf("pacer fired on frames %v, expected [3 6 9]", fired)
	}

	p.Frame()
	p.Reset()
	if p.Frame() || p.Frame() {
		t.Error("pacer should wait a full period after Reset")
	}
	if !p.Frame() {
		t.Error("pacer should fire a full period after Reset")
	}
}

func TestPacerEveryFrame(t *testing.T) {
	p := NewPacer(0)
	if p.MoveEvery() != 1 {
		t.Errorf("MoveEvery() = %d, expected 1", p.MoveEvery())
	}
	for i := 0; i < 5; i++ {
		if !p.Frame() {
			t.Fatal("pacer with period 1 should fire on every frame")
		}
	}
}
