package render

import (
	"math"

	"github.com/lixenwraith/asparagus/constants"
	"github.com/mattn/go-runewidth"
)

// Rect is a screen region in cells
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell lies inside the rect
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// CharacterBox is the laid out character art
type CharacterBox struct {
	Width, Height  float64 // cells
	PivotX, PivotY float64 // pivot within the box, cells
}

// Scale returns the art scale factor for an art of the given height
func (c CharacterBox) Scale(artHeight int) float64 {
	if artHeight <= 0 || c.Height <= 0 {
		return 1
	}
	return c.Height / float64(artHeight)
}

// Layout places every scene element for a terminal size
type Layout struct {
	Width, Height int

	CenterX, CenterY float64 // plank pivot
	PlankHalf        float64 // half plank length, columns

	Rocks     Rect
	Character CharacterBox

	LeftControl  Rect
	RightControl Rect
	Retry        Rect

	artWidth, artHeight int
}

// NewLayout creates a layout for a screen and an art size
func NewLayout(width, height, artWidth, artHeight int) *Layout {
	l := &Layout{artWidth: artWidth, artHeight: artHeight}
	l.Resize(width, height)
	return l
}

// Resize recomputes the layout
// The character pivot is rescaled with the art, non-finite scale factors leave it untouched
func (l *Layout) Resize(width, height int) {
	l.Width, l.Height = max(width, 0), max(height, 0)
	w, h := float64(l.Width), float64(l.Height)

	l.CenterX = math.Floor(w / 2)
	l.CenterY = math.Round(h * constants.BoardYRatio)
	l.PlankHalf = math.Round(w*constants.PlankLengthRatio) / 2

	rocksW := max(constants.RocksMinWidth, int(l.PlankHalf*2*0.2*constants.RocksScale))
	rocksH := max(1, l.Height-int(l.CenterY)-1)
	l.Rocks = Rect{X: int(l.CenterX) - rocksW/2, Y: int(l.CenterY) + 1, W: rocksW, H: rocksH}

	l.layoutCharacter()
	l.layoutControls()
}

func (l *Layout) layoutCharacter() {
	prev := l.Character

	// Native art size unless the screen is too short, never narrower than the minimum
	height := math.Min(float64(l.artHeight), float64(l.Height)*constants.CharacterHeightRatio)
	width := height * float64(l.artWidth) / math.Max(1, float64(l.artHeight))
	if width < constants.CharacterMinWidth && l.artWidth > 0 {
		width = constants.CharacterMinWidth
		height = width * float64(l.artHeight) / float64(l.artWidth)
	}
	l.Character.Width, l.Character.Height = width, height

	sx, sy := width/prev.Width, height/prev.Height
	if isFinite(sx) {
		l.Character.PivotX = prev.PivotX * sx
	}
	if isFinite(sy) {
		l.Character.PivotY = prev.PivotY * sy
	}
	// First layout, or recovery from a degenerate size
	if prev.Width == 0 || prev.Height == 0 {
		l.Character.PivotX = width * constants.CharacterPivotX
		l.Character.PivotY = height * constants.CharacterPivotY
	}
}

func (l *Layout) layoutControls() {
	third := l.Width / 3
	top := max(0, l.Height-3)
	rows := l.Height - top

	l.LeftControl = Rect{X: 0, Y: top, W: third, H: rows}
	l.RightControl = Rect{X: l.Width - third, Y: top, W: third, H: rows}

	retryW := min(l.Width, runewidth.StringWidth(constants.RetryLabel)+2)
	l.Retry = Rect{X: (l.Width - retryW) / 2, Y: top, W: retryW, H: rows}
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
