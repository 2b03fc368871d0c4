package render

import (
	"math"
	"testing"

	"github.com/lixenwraith/asparagus/constants"
)

func TestLayoutGeometry(t *testing.T) {
	artW, artH := ArtSize()
	l := NewLayout(80, 24, artW, artH)

	if l.CenterX != 40 || l.CenterY != 18 {
		t.Errorf("Expected plank centre (40, 18), got (%v, %v)", l.CenterX, l.CenterY)
	}
	if l.PlankHalf != 28 {
		t.Errorf("Expected half plank 28, got %v", l.PlankHalf)
	}
	if l.Rocks.Y != 19 || l.Rocks.W < constants.RocksMinWidth {
		t.Errorf("Expected rocks under the plank, got %+v", l.Rocks)
	}

	if l.LeftControl != (Rect{X: 0, Y: 21, W: 26, H: 3}) {
		t.Errorf("Unexpected left control %+v", l.LeftControl)
	}
	if l.RightControl != (Rect{X: 54, Y: 21, W: 26, H: 3}) {
		t.Errorf("Unexpected right control %+v", l.RightControl)
	}
	if l.Retry.X != (80-l.Retry.W)/2 || l.Retry.W == 0 {
		t.Errorf("Expected centred retry, got %+v", l.Retry)
	}

	if l.Character.Height != float64(artH) || l.Character.Width != float64(artW) {
		t.Errorf("Expected native art size, got %+v", l.Character)
	}
}

func TestLayoutRescalesPivot(t *testing.T) {
	artW, artH := ArtSize()
	l := NewLayout(80, 24, artW, artH)
	l.Resize(80, 8)

	box := l.Character
	if box.Height != 8*constants.CharacterHeightRatio {
		t.Errorf("Expected height capped by screen, got %v", box.Height)
	}
	if math.Abs(box.PivotX-box.Width*constants.CharacterPivotX) > 1e-9 {
		t.Errorf("Expected pivot x %v, got %v", box.Width*constants.CharacterPivotX, box.PivotX)
	}
	if math.Abs(box.PivotY-box.Height*constants.CharacterPivotY) > 1e-9 {
		t.Errorf("Expected pivot y %v, got %v", box.Height*constants.CharacterPivotY, box.PivotY)
	}
}

func TestLayoutIgnoresNonFiniteScale(t *testing.T) {
	tests := []struct {
		name                string
		width, height       int
		artWidth, artHeight int
	}{
		{"empty art", 80, 24, 0, 0},
		{"zero screen", 0, 0, 15, 10},
		{"negative screen", -5, -5, 15, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLayout(tt.width, tt.height, tt.artWidth, tt.artHeight)
			l.Resize(tt.width, tt.height)
			l.Resize(80, 24)

			box := l.Character
			for _, v := range []float64{box.Width, box.Height, box.PivotX, box.PivotY} {
				if math.IsNaN(v) || math.IsInf(v, 0) {
					t.Fatalf("Expected finite character box, got %+v", box)
				}
			}
			if l.Width < 0 || l.Height < 0 {
				t.Errorf("Expected non-negative size, got %dx%d", l.Width, l.Height)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 2, Y: 3, W: 4, H: 2}
	if !r.Contains(2, 3) || !r.Contains(5, 4) {
		t.Error("Expected corners inside")
	}
	if r.Contains(6, 3) || r.Contains(2, 5) || r.Contains(1, 3) {
		t.Error("Expected outside cells rejected")
	}
}
