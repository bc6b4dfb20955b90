package appstate

import (
	"context"
	"image"
	"image/color"
	"image/draw"
	"log"
	"sync"

	"golang.org/x/exp/shiny/screen"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// paintState is everything the paint goroutine needs. The frame is already
// composed on the event loop, so the goroutine never reads the session.
type paintState struct {
	frame   *image.RGBA
	message string
}

// painter uploads frames on its own goroutine. Queueing a frame cancels
// the one in flight, at most frameDropThreshold times in a row, and
// replaces any frame still waiting.
type painter struct {
	draw func(context.Context, paintState)
	ch   chan paintState
	done chan struct{}

	mu     sync.Mutex
	cancel context.CancelFunc
	drops  int
}

func newPainter(draw func(context.Context, paintState)) *painter {
	p := &painter{
		draw: draw,
		ch:   make(chan paintState, 1),
		done: make(chan struct{}),
	}
	go p.run()
	return p
}

func (p *painter) run() {
	defer close(p.done)
	for st := range p.ch {
		ctx, cancel := context.WithCancel(context.Background())
		p.mu.Lock()
		p.cancel = cancel
		p.mu.Unlock()
		p.draw(ctx, st)
		p.mu.Lock()
		p.cancel = nil
		if ctx.Err() == nil {
			p.drops = 0
		}
		p.mu.Unlock()
		cancel()
	}
}

// queue must only be called from the event loop.
func (p *painter) queue(st paintState) {
	p.mu.Lock()
	if p.cancel != nil && p.drops < frameDropThreshold {
		p.cancel()
		p.drops++
	}
	p.mu.Unlock()
	select {
	case p.ch <- st:
	default:
		select {
		case <-p.ch:
		default:
		}
		p.ch <- st
	}
}

// stop drops the waiting frame, cancels the one in flight and returns once
// the goroutine has exited. The window may be released afterwards.
func (p *painter) stop() {
	select {
	case <-p.ch:
	default:
	}
	close(p.ch)
	p.mu.Lock()
	if p.cancel != nil {
		p.cancel()
	}
	p.mu.Unlock()
	<-p.done
}

func drawFrame(ctx context.Context, s screen.Screen, w screen.Window, st paintState) {
	b, err := s.NewBuffer(st.frame.Bounds().Size())
	if err != nil {
		log.Printf("new buffer: %v", err)
		return
	}
	defer b.Release()

	draw.Draw(b.RGBA(), b.Bounds(), st.frame, image.Point{}, draw.Src)
	if ctx.Err() != nil {
		return
	}
	if st.message != "" {
		drawMessage(b.RGBA(), st.message)
	}
	if ctx.Err() != nil {
		return
	}
	w.Upload(image.Point{}, b, b.Bounds())
	w.Publish()
}

// drawMessage centers msg in a framed box.
func drawMessage(dst *image.RGBA, msg string) {
	face := basicfont.Face7x13
	d := &font.Drawer{Dst: dst, Src: image.Black, Face: face}
	wmsg := d.MeasureString(msg).Ceil()
	ascent := face.Metrics().Ascent.Ceil()
	descent := face.Metrics().Descent.Ceil()
	b := dst.Bounds()
	px := b.Min.X + (b.Dx()-wmsg)/2
	py := b.Min.Y + (b.Dy()-ascent-descent)/2 + ascent
	rect := image.Rect(px-8, py-ascent-8, px+wmsg+8, py+descent+8)
	draw.Draw(dst, rect, image.NewUniform(color.NRGBA{255, 255, 255, 230}), image.Point{}, draw.Over)
	drawRect(dst, rect, color.Black, 2)
	d.Dot = fixed.P(px, py)
	d.DrawString(msg)
}

func drawRect(dst *image.RGBA, r image.Rectangle, c color.Color, thick int) {
	u := image.NewUniform(c)
	draw.Draw(dst, image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+thick), u, image.Point{}, draw.Src)
	draw.Draw(dst, image.Rect(r.Min.X, r.Max.Y-thick, r.Max.X, r.Max.Y), u, image.Point{}, draw.Src)
	draw.Draw(dst, image.Rect(r.Min.X, r.Min.Y, r.Min.X+thick, r.Max.Y), u, image.Point{}, draw.Src)
	draw.Draw(dst, image.Rect(r.Max.X-thick, r.Min.Y, r.Max.X, r.Max.Y), u, image.Point{}, draw.Src)
}
