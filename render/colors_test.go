package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestPlankColor(t *testing.T) {
	calm := PlankColor(0, 0.5)
	if calm != tcell.NewRGBColor(0xaa, 0x80, 0x8d) {
		t.Errorf("Expected calm plank color at level, got %v", calm)
	}

	// Symmetric in the tilt direction
	if PlankColor(0.3, 0.5) != PlankColor(-0.3, 0.5) {
		t.Error("Expected the same color for mirrored tilts")
	}

	// Saturates at and beyond the fall angle
	if PlankColor(0.5, 0.5) != PlankColor(2, 0.5) {
		t.Error("Expected the color to saturate at the fall angle")
	}

	r0, _, _ := calm.RGB()
	r1, _, _ := PlankColor(0.5, 0.5).RGB()
	if r1 <= r0 {
		t.Errorf("Expected more red at the fall angle, got %d vs %d", r1, r0)
	}

	if PlankColor(0.4, 0) != calm {
		t.Error("Expected non-positive fall angle to fall back to the calm color")
	}
}
