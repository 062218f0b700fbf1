// Package wheelimg renders the wheel display into an image. It is a
// raster implementation of wheel.Surface built on basicfont glyphs,
// suitable for snapshot tests and for hosts that want frames as images
// rather than terminal cells.
package wheelimg

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/go-drift/flipclock/pkg/animation"
	"github.com/go-drift/flipclock/pkg/wheel"
)

// Options configures the raster surface.
type Options struct {
	// CellWidth and CellHeight are the pixel dimensions of one digit
	// cell. Zero means 16x24.
	CellWidth  int
	CellHeight int

	// Foreground and Background are the glyph and fill colors.
	// Nil means white on black.
	Foreground color.Color
	Background color.Color
}

func (o Options) withDefaults() Options {
	if o.CellWidth <= 0 {
		o.CellWidth = 16
	}
	if o.CellHeight <= 0 {
		o.CellHeight = 24
	}
	if o.Foreground == nil {
		o.Foreground = color.White
	}
	if o.Background == nil {
		o.Background = color.Black
	}
	return o
}

const (
	cellGap  = 2
	unitGap  = 8
	labelPad = 4
)

// Surface is a wheel.Surface that rasterizes its state on demand.
// Attach units through the scheduler as usual, then call [Surface.Render]
// whenever a frame is wanted.
type Surface struct {
	opts     Options
	units    []*unitView
	detached bool
}

// New creates an empty raster surface.
func New(opts Options) *Surface {
	return &Surface{opts: opts.withDefaults()}
}

// AttachUnit adds a unit to the rendered row, left to right in attach
// order.
func (s *Surface) AttachUnit(unit wheel.Unit, label string) wheel.UnitView {
	v := &unitView{surface: s, unit: unit, label: label}
	s.units = append(s.units, v)
	return v
}

// Detach marks the surface released. Render returns an empty image
// afterwards.
func (s *Surface) Detach() {
	s.detached = true
	s.units = nil
}

// slotState is what one digit cell currently shows: either a resting
// digit or one frame of a roll.
type slotState struct {
	digit    rune
	rolling  bool
	from     rune
	to       rune
	dir      wheel.Direction
	progress float64
}

type unitView struct {
	surface  *Surface
	unit     wheel.Unit
	label    string
	slots    [2]slotState
	detached bool
}

func (v *unitView) SetDigit(slot wheel.Slot, d rune) {
	if v.detached {
		return
	}
	v.slots[slot] = slotState{digit: d}
}

func (v *unitView) ShowTransition(slot wheel.Slot, from, to rune, dir wheel.Direction, progress float64) {
	if v.detached {
		return
	}
	v.slots[slot] = slotState{
		rolling:  true,
		from:     from,
		to:       to,
		dir:      dir,
		progress: progress,
	}
}

func (v *unitView) Detach() {
	v.detached = true
}

// Render draws the current state of every attached unit into a new
// image. Rolling cells show both digits sliding through the cell window
// in the transition's direction.
func (s *Surface) Render() *image.RGBA {
	o := s.opts
	unitWidth := 2*o.CellWidth + cellGap
	width := len(s.units)*(unitWidth+unitGap) - unitGap
	if width <= 0 {
		width = 1
	}
	height := o.CellHeight + labelPad + basicfont.Face7x13.Height

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(o.Background), image.Point{}, draw.Src)

	x := 0
	for _, v := range s.units {
		if v.detached {
			x += unitWidth + unitGap
			continue
		}
		s.drawCell(img, x, 0, v.slots[wheel.SlotTens])
		s.drawCell(img, x+o.CellWidth+cellGap, 0, v.slots[wheel.SlotOnes])
		s.drawLabel(img, x, o.CellHeight+labelPad, unitWidth, v.label)
		x += unitWidth + unitGap
	}
	return img
}

// drawCell rasterizes one digit cell into its own buffer so slide
// offsets clip naturally at the cell edges.
func (s *Surface) drawCell(dst *image.RGBA, x, y int, st slotState) {
	o := s.opts
	cell := image.NewRGBA(image.Rect(0, 0, o.CellWidth, o.CellHeight))
	draw.Draw(cell, cell.Bounds(), image.NewUniform(o.Background), image.Point{}, draw.Src)

	if !st.rolling {
		s.drawGlyph(cell, st.digit, 0)
	} else {
		// The outgoing digit slides out while the incoming one slides
		// in behind it, offset by one cell height.
		slide := animation.TweenFloat64(0, float64(o.CellHeight))
		offset := int(slide.Evaluate(st.progress))
		if st.dir == wheel.DirectionUp {
			s.drawGlyph(cell, st.from, -offset)
			s.drawGlyph(cell, st.to, o.CellHeight-offset)
		} else {
			s.drawGlyph(cell, st.from, offset)
			s.drawGlyph(cell, st.to, offset-o.CellHeight)
		}
	}

	rect := image.Rect(x, y, x+o.CellWidth, y+o.CellHeight)
	draw.Draw(dst, rect, cell, image.Point{}, draw.Src)
}

// drawGlyph draws one digit centered in the cell, shifted vertically by
// dy pixels.
func (s *Surface) drawGlyph(cell *image.RGBA, r rune, dy int) {
	if r == 0 {
		return
	}
	face := basicfont.Face7x13
	o := s.opts
	gx := (o.CellWidth - face.Advance) / 2
	gy := (o.CellHeight+face.Ascent)/2 + dy
	d := font.Drawer{
		Dst:  cell,
		Src:  image.NewUniform(o.Foreground),
		Face: face,
		Dot:  fixed.P(gx, gy),
	}
	d.DrawString(string(r))
}

func (s *Surface) drawLabel(dst *image.RGBA, x, y, width int, label string) {
	if label == "" {
		return
	}
	face := basicfont.Face7x13
	textWidth := face.Advance * len(label)
	gx := x + (width-textWidth)/2
	if gx < x {
		gx = x
	}
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(s.opts.Foreground),
		Face: face,
		Dot:  fixed.P(gx, y+face.Ascent),
	}
	d.DrawString(label)
}
