package ui

import (
	"image"

	"github.com/samber/lo"

	"github.com/iburimskiy/gear-clock/internal/config"
)

const valueWidth = 48

// Panel is a movable window of labelled sliders.
type Panel struct {
	Title   string
	Sliders []*Slider

	origin   image.Point
	width    int
	focus    int
	moving   bool
	grab     image.Point
	captures bool
}

func NewPanel(title string, sliders ...*Slider) *Panel {
	p := &Panel{
		Title:   title,
		Sliders: sliders,
		origin:  image.Pt(config.PanelX, config.PanelY),
		width:   config.PanelWidth,
		focus:   -1,
	}
	p.layout()
	return p
}

// Bounds is the whole panel including the title bar.
func (p *Panel) Bounds() image.Rectangle {
	h := config.TitleHeight + 2*config.PanelPadding
	if n := len(p.Sliders); n > 0 {
		h += n*(config.LabelHeight+config.SliderHeight) + (n-1)*config.SliderSpacing
	}
	return image.Rect(p.origin.X, p.origin.Y, p.origin.X+p.width, p.origin.Y+h)
}

func (p *Panel) TitleBar() image.Rectangle {
	return image.Rect(p.origin.X, p.origin.Y, p.origin.X+p.width, p.origin.Y+config.TitleHeight)
}

// LabelAt is the top-left corner of the label above slider i.
func (p *Panel) LabelAt(i int) image.Point {
	return image.Pt(p.Sliders[i].track.Min.X, p.Sliders[i].track.Min.Y-config.LabelHeight)
}

// ValueAt is the top-left corner of the value text right of slider i.
func (p *Panel) ValueAt(i int) image.Point {
	return image.Pt(p.Sliders[i].track.Max.X+config.PanelPadding, p.Sliders[i].track.Min.Y)
}

// Focused returns the slider receiving keyboard steps, or -1.
func (p *Panel) Focused() int { return p.focus }

// Captures reports whether the last Update consumed the pointer.
func (p *Panel) Captures() bool { return p.captures }

func (p *Panel) layout() {
	x := p.origin.X + config.PanelPadding
	y := p.origin.Y + config.TitleHeight + config.PanelPadding
	w := p.width - 2*config.PanelPadding - valueWidth
	for _, s := range p.Sliders {
		y += config.LabelHeight
		s.track = image.Rect(x, y, x+w, y+config.SliderHeight)
		y += config.SliderHeight + config.SliderSpacing
	}
}

// moveTo places the panel at pt, kept inside a w x h screen.
func (p *Panel) moveTo(pt image.Point, w, h int) {
	b := p.Bounds()
	p.origin.X = lo.Clamp(pt.X, 0, max(0, w-b.Dx()))
	p.origin.Y = lo.Clamp(pt.Y, 0, max(0, h-b.Dy()))
	p.layout()
}

// Update applies one tick of input. w and h are the screen size.
func (p *Panel) Update(in Input, w, h int) {
	pt := image.Pt(in.X, in.Y)

	if in.Pressed {
		switch {
		case pt.In(p.TitleBar()):
			p.moving = true
			p.grab = pt.Sub(p.origin)
		case pt.In(p.Bounds()):
			for i, s := range p.Sliders {
				if pt.In(s.track) {
					p.focus = i
					s.dragging = true
					s.setFromX(in.X)
					break
				}
			}
		default:
			p.focus = -1
		}
	}

	if in.Down {
		if p.moving {
			p.moveTo(pt.Sub(p.grab), w, h)
		}
		for _, s := range p.Sliders {
			if s.dragging {
				s.setFromX(in.X)
			}
		}
	}

	dragging := p.moving
	for _, s := range p.Sliders {
		dragging = dragging || s.dragging
	}
	p.captures = dragging || pt.In(p.Bounds())

	if in.Released || !in.Down {
		p.moving = false
		for _, s := range p.Sliders {
			s.dragging = false
		}
	}

	if p.focus >= 0 && p.focus < len(p.Sliders) {
		s := p.Sliders[p.focus]
		if in.Left {
			s.step(-1)
		}
		if in.Right {
			s.step(1)
		}
	}

	// Keep the panel on screen when the window shrinks.
	p.moveTo(p.origin, w, h)
}
