package render

import (
	"fmt"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/asparagus/constants"
	"github.com/lixenwraith/asparagus/core"
	"github.com/lixenwraith/asparagus/engine"
)

// Renderer draws the scene on a tcell screen
// Implements engine.Presenter, accessed only from the frame loop
type Renderer struct {
	screen    tcell.Screen
	layout    *Layout
	ui        *UI
	fallAngle float64

	base  *Animation
	right *Animation
	left  *Animation
}

// NewRenderer creates a renderer laid out for the screen's current size
func NewRenderer(screen tcell.Screen, fallAngle float64) *Renderer {
	w, h := screen.Size()
	artW, artH := ArtSize()
	layout := NewLayout(w, h, artW, artH)

	return &Renderer{
		screen:    screen,
		layout:    layout,
		ui:        NewUI(layout),
		fallAngle: fallAngle,
		base:      NewAnimation(IdleFrames(), constants.IdleFrameDuration, true),
		right:     NewAnimation(FallFrames(1), constants.FallFrameDuration, false),
		left:      NewAnimation(FallFrames(-1), constants.FallFrameDuration, false),
	}
}

// Presentation returns the three character animations for the game
func (r *Renderer) Presentation() engine.Presentation {
	return engine.Presentation{Base: r.base, Right: r.right, Left: r.left}
}

func (r *Renderer) UI() *UI         { return r.ui }
func (r *Renderer) Layout() *Layout { return r.layout }

// Resize relayouts after a terminal resize
func (r *Renderer) Resize() {
	w, h := r.screen.Size()
	r.layout.Resize(w, h)
	r.screen.Sync()
}

// Sync advances the animations and draws one frame
func (r *Renderer) Sync(snap engine.Snapshot, dt time.Duration) {
	r.base.Step(dt)
	r.right.Step(dt)
	r.left.Step(dt)

	bg := tcell.StyleDefault.Background(RgbBackground)
	r.screen.Fill(' ', bg)

	r.drawRocks(bg)
	r.drawPlank(snap.Angle, bg)
	r.drawCharacter(snap, bg)
	r.drawHUD(snap, bg)
	r.drawAffordances(bg)

	r.screen.Show()
}

// drawRocks draws a pile widening toward the bottom under the plank pivot
func (r *Renderer) drawRocks(bg tcell.Style) {
	rocks := r.layout.Rocks
	body := bg.Foreground(RgbRocks)
	shade := bg.Foreground(RgbRocksShade)
	cx := rocks.X + rocks.W/2

	for i := 0; i < rocks.H; i++ {
		half := max(1, rocks.W*(i+1)/(2*rocks.H))
		y := rocks.Y + i
		for x := cx - half; x <= cx+half; x++ {
			if x < cx {
				r.screen.SetContent(x, y, '▓', nil, body)
			} else {
				r.screen.SetContent(x, y, '▒', nil, shade)
			}
		}
	}
}

// drawPlank draws the plank rotated about its centre
func (r *Renderer) drawPlank(angle float64, bg tcell.Style) {
	style := bg.Foreground(PlankColor(angle, r.fallAngle))
	cos, sin := math.Cos(angle), math.Sin(angle)

	glyph := '━'
	if slope := math.Tan(angle) * constants.CellAspect; math.Abs(slope) > 0.5 {
		glyph = '╲'
		if slope < 0 {
			glyph = '╱'
		}
	}

	half := r.layout.PlankHalf
	for d := -half; d <= half; d += 0.5 {
		x := int(math.Floor(r.layout.CenterX + 0.5 + d*cos))
		y := int(math.Floor(r.layout.CenterY + 0.5 + d*sin*constants.CellAspect))
		r.screen.SetContent(x, y, glyph, nil, style)
	}
}

// drawCharacter samples the active frame through the inverse rotation about the pivot
// The base pose turns by angle+inner so it can stay upright, posed sides turn with the plank
func (r *Renderer) drawCharacter(snap engine.Snapshot, bg tcell.Style) {
	anim, theta := r.base, snap.Angle+snap.Inner
	if snap.Pose.Posed() {
		anim, theta = r.right, snap.Angle
		if snap.Pose.Side() == core.SideLeft {
			anim = r.left
		}
	}
	frame := anim.Current()
	if len(frame) == 0 {
		return
	}

	rows := make([][]rune, len(frame))
	for i, row := range frame {
		rows[i] = []rune(row)
	}

	box := r.layout.Character
	scale := box.Scale(len(rows))
	ax, ay := r.layout.CenterX+0.5, r.layout.CenterY
	cos, sin := math.Cos(theta), math.Sin(theta)
	aspect := constants.CellAspect

	reach := math.Hypot(box.Width, box.Height/aspect) + 1
	x0, x1 := int(ax-reach), int(ax+reach)
	y0, y1 := int(ay-reach*aspect)-1, int(ay+reach*aspect)+1

	spearStyle := bg.Foreground(RgbSpear)
	tipStyle := bg.Foreground(RgbSpearTip)

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			ux := float64(x) + 0.5 - ax
			uy := (float64(y) + 0.5 - ay) / aspect
			bx := ux*cos + uy*sin
			by := -ux*sin + uy*cos

			col := int(math.Floor((box.PivotX + bx) / scale))
			row := int(math.Floor((box.PivotY + by*aspect) / scale))
			if row < 0 || row >= len(rows) || col < 0 || col >= len(rows[row]) {
				continue
			}
			ch := rows[row][col]
			if ch == ' ' {
				continue
			}
			style := spearStyle
			if row == 0 {
				style = tipStyle
			}
			r.screen.SetContent(x, y, ch, nil, style)
		}
	}
}

// drawHUD draws the round time, best time and the loss message
func (r *Renderer) drawHUD(snap engine.Snapshot, bg tcell.Style) {
	hud := bg.Foreground(RgbHUD)
	r.drawText(1, 0, fmt.Sprintf("TIME %5.1fs", snap.Score.Seconds()), hud)

	best := fmt.Sprintf("BEST %5.1fs", snap.Best.Seconds())
	r.drawText(r.layout.Width-runewidth.StringWidth(best)-1, 0, best, bg.Foreground(RgbBest))

	if !snap.Alive && !snap.Recovering && snap.LastLossSide != core.SideNone {
		r.drawCentered(1, "fell "+snap.LastLossSide.String(), bg.Foreground(RgbLoss).Bold(true))
	}
}

func (r *Renderer) drawAffordances(bg tcell.Style) {
	if r.ui.ControlsVisible() {
		style := bg.Foreground(RgbControlFg).Background(RgbControlBg)
		r.drawButton(r.layout.LeftControl, constants.ControlLeftLabel, style)
		r.drawButton(r.layout.RightControl, constants.ControlRightLabel, style)
	}
	if r.ui.RetryVisible() {
		style := bg.Foreground(RgbControlFg).Background(RgbRetryBg).Bold(true)
		r.drawButton(r.layout.Retry, constants.RetryLabel, style)
	}
}

// drawButton fills rect and centres label on its middle row
func (r *Renderer) drawButton(rect Rect, label string, style tcell.Style) {
	if rect.W <= 0 || rect.H <= 0 {
		return
	}
	for y := rect.Y; y < rect.Y+rect.H; y++ {
		for x := rect.X; x < rect.X+rect.W; x++ {
			r.screen.SetContent(x, y, ' ', nil, style)
		}
	}
	x := rect.X + (rect.W-runewidth.StringWidth(label))/2
	r.drawText(max(rect.X, x), rect.Y+rect.H/2, label, style)
}

func (r *Renderer) drawCentered(y int, s string, style tcell.Style) {
	r.drawText((r.layout.Width-runewidth.StringWidth(s))/2, y, s, style)
}

func (r *Renderer) drawText(x, y int, s string, style tcell.Style) {
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, nil, style)
		x += runewidth.RuneWidth(ch)
	}
}
