package render

import (
	"strings"
	"testing"
)

func TestFramesShareSize(t *testing.T) {
	w, h := ArtSize()
	all := append(IdleFrames(), FallFrames(1)...)
	all = append(all, FallFrames(-1)...)

	for i, f := range all {
		if len(f) != h {
			t.Fatalf("Frame %d: expected %d rows, got %d", i, h, len(f))
		}
		for r, row := range f {
			if n := runeCount(row); n != w {
				t.Errorf("Frame %d row %d: expected width %d, got %d", i, r, w, n)
			}
		}
	}
}

func TestFallFramesLeanTowardSide(t *testing.T) {
	right := FallFrames(1)
	left := FallFrames(-1)

	if right[0][0] != IdleFrames()[0][0] {
		t.Errorf("Expected the fall to start from the idle drawing, got %q", right[0][0])
	}

	tipCol := func(row string) int { return strings.IndexRune(row, '▲') }
	first, last := tipCol(right[0][0]), tipCol(right[len(right)-1][0])
	if last <= first {
		t.Errorf("Expected tip to move right, got %d then %d", first, last)
	}
	if l := tipCol(left[len(left)-1][0]); l >= first {
		t.Errorf("Expected tip to move left, got %d then %d", first, l)
	}

	// Feet stay on the pivot
	bottom := len(right[0]) - 1
	if right[len(right)-1][bottom] != right[0][bottom] {
		t.Errorf("Expected bottom row fixed, got %q", right[len(right)-1][bottom])
	}
}
