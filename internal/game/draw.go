package game

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/gear-clock/internal/clockwork"
	"github.com/iburimskiy/gear-clock/internal/config"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(config.Background)

	g.drawFace(screen)
	g.drawPanel(screen)
	g.drawStatus(screen)
}

// toScreen maps face coordinates (y up, origin at the face center) to
// screen pixels.
func (g *Game) toScreen(v clockwork.Vec) (float32, float32) {
	cx, cy := float64(g.width)/2, float64(g.height)/2
	return float32(cx + v.X), float32(cy - v.Y)
}

func (g *Game) drawFace(screen *ebiten.Image) {
	radius := clockwork.FaceRadius(float64(g.width), float64(g.height))
	cx, cy := g.toScreen(clockwork.Vec{})

	for _, h := range clockwork.Compute(*g.state, radius) {
		vector.StrokeCircle(screen, cx, cy, float32(h.RingRadius), config.RingStroke, config.SlateBlue, true)
		g.drawArrow(screen, h.Tail, h.Tip, h.Stroke, h.HeadWidth, config.MintCream)
	}

	if g.sound != nil {
		if level := g.sound.Level(); level > 0 {
			r := config.PivotRadius + level/config.ClickGain*config.PivotFlash
			vector.DrawFilledCircle(screen, cx, cy, float32(r), config.SlateBlue, true)
		}
	}
}

// drawArrow draws a shaft from tail to tip ending in a triangular head.
func (g *Game) drawArrow(screen *ebiten.Image, tail, tip clockwork.Vec, stroke, headWidth float64, clr color.Color) {
	dir := clockwork.Vec{X: tip.X - tail.X, Y: tip.Y - tail.Y}
	length := dir.Len()
	if length == 0 {
		return
	}
	unit := dir.Scale(1 / length)
	headLen := math.Min(headWidth, length)
	base := clockwork.Vec{X: tip.X - unit.X*headLen, Y: tip.Y - unit.Y*headLen}

	x0, y0 := g.toScreen(tail)
	x1, y1 := g.toScreen(base)
	vector.StrokeLine(screen, x0, y0, x1, y1, float32(stroke), clr, true)

	// The head is never narrower than the shaft it caps.
	half := math.Max(headWidth, stroke) / 2
	normal := clockwork.Vec{X: -unit.Y, Y: unit.X}
	tx, ty := g.toScreen(tip)
	lx, ly := g.toScreen(clockwork.Vec{X: base.X + normal.X*half, Y: base.Y + normal.Y*half})
	rx, ry := g.toScreen(clockwork.Vec{X: base.X - normal.X*half, Y: base.Y - normal.Y*half})

	var path vector.Path
	path.MoveTo(tx, ty)
	path.LineTo(lx, ly)
	path.LineTo(rx, ry)
	path.Close()
	fillPath(screen, &path, clr)
}

func fillPath(screen *ebiten.Image, path *vector.Path, clr color.Color) {
	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	r, gr, b, a := clr.RGBA()
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(r) / 0xffff
		vs[i].ColorG = float32(gr) / 0xffff
		vs[i].ColorB = float32(b) / 0xffff
		vs[i].ColorA = float32(a) / 0xffff
	}
	screen.DrawTriangles(vs, is, whiteSubImage, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

func drawRect(screen *ebiten.Image, r image.Rectangle, clr color.Color) {
	vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), clr, false)
}

func (g *Game) drawPanel(screen *ebiten.Image) {
	p := g.panel
	b := p.Bounds()
	drawRect(screen, b, config.PanelFill)
	drawRect(screen, p.TitleBar(), config.TitleFill)
	vector.StrokeRect(screen, float32(b.Min.X), float32(b.Min.Y), float32(b.Dx()), float32(b.Dy()), 1, config.PanelBorder, false)
	ebitenutil.DebugPrintAt(screen, p.Title, b.Min.X+config.PanelPadding, b.Min.Y+2)

	for i, s := range p.Sliders {
		label := p.LabelAt(i)
		ebitenutil.DebugPrintAt(screen, s.Label, label.X, label.Y)

		track := config.TrackFill
		if p.Focused() == i {
			track = config.TrackFocus
		}
		drawRect(screen, s.Track(), track)

		knob := config.KnobFill
		if s.Dragging() {
			knob = config.KnobActive
		}
		drawRect(screen, s.Knob(), knob)

		value := p.ValueAt(i)
		ebitenutil.DebugPrintAt(screen, s.Text(), value.X, value.Y-2)
	}
}

func (g *Game) drawStatus(screen *ebiten.Image) {
	status := fmt.Sprintf("%s  spring %.2f", formatDuration(g.now().Sub(g.started)), g.state.Mainspring)
	if g.state.Paused {
		status += "  paused"
	}
	switch {
	case g.sound == nil:
		status += "  silent"
	case g.muted:
		status += "  muted"
	}
	x := g.width - len(status)*config.GlyphWidth - config.TextMargin
	ebitenutil.DebugPrintAt(screen, status, max(x, 0), config.TextMargin)
}
