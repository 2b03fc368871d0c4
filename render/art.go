package render

import (
	"math"
	"strings"
)

// Frame is one drawing of the character, rows of equal rune width
type Frame []string

// spear is the idle drawing, the pivot sits under the bottom row
var spear = Frame{
	"   ▲   ",
	"  ╱█╲  ",
	"   █   ",
	"  ╲█╱  ",
	"   █   ",
	"  ╱█╲  ",
	"   █   ",
	"   █   ",
	"  ▐█▌  ",
	"  ╯ ╰  ",
}

// spearSway is the second idle frame, tip and leaves lean slightly
var spearSway = Frame{
	"    ▲  ",
	"  ╱█╲  ",
	"   █   ",
	"  ╲█╱  ",
	"   █   ",
	"  ╱█╲  ",
	"   █   ",
	"   █   ",
	"  ▐█▌  ",
	"  ╯ ╰  ",
}

// fallLean is the widest shift of the top row in a fall animation
const fallLean = 4

// fallFrameCount is the number of frames in a fall animation
const fallFrameCount = 6

// mirrored swaps direction-bearing glyphs
var mirrored = strings.NewReplacer(
	"╱", "╲", "╲", "╱",
	"╯", "╰", "╰", "╯",
	"▐", "▌", "▌", "▐",
	"(", ")", ")", "(",
	"<", ">", ">", "<",
)

// IdleFrames returns the looping idle animation, padded to the fall width
func IdleFrames() []Frame {
	return []Frame{pad(spear, fallLean), pad(spearSway, fallLean)}
}

// FallFrames returns the fall animation toward right (dir > 0) or left
// Each frame bends the spear further, rows shift in proportion to their height
func FallFrames(dir int) []Frame {
	frames := make([]Frame, fallFrameCount)
	rows := len(spear)
	for k := range frames {
		progress := float64(k) / float64(fallFrameCount-1)
		f := make(Frame, rows)
		for r, row := range spear {
			height := float64(rows-1-r) / float64(rows-1)
			shift := int(math.Round(progress * fallLean * height * height))
			if dir < 0 {
				row = reverse(mirrored.Replace(row))
				shift = -shift
			}
			f[r] = shiftRow(row, shift, fallLean)
		}
		frames[k] = f
	}
	return frames
}

// ArtSize returns the width and height shared by all frames
func ArtSize() (int, int) {
	return runeCount(spear[0]) + 2*fallLean, len(spear)
}

func pad(f Frame, n int) Frame {
	out := make(Frame, len(f))
	for i, row := range f {
		out[i] = shiftRow(row, 0, n)
	}
	return out
}

// shiftRow pads a row by margin on both sides and moves it by shift columns
func shiftRow(row string, shift, margin int) string {
	left := margin + shift
	right := margin - shift
	return strings.Repeat(" ", left) + row + strings.Repeat(" ", right)
}

func reverse(s string) string {
	r := []rune(s)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r)
}

func runeCount(s string) int {
	return len([]rune(s))
}
