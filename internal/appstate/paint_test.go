package appstate

import (
	"context"
	"sync"
	"testing"
	"time"
)

func TestPainterStopCancelsAndWaits(t *testing.T) {
	started := make(chan struct{})
	var finished bool
	var cancelled bool
	p := newPainter(func(ctx context.Context, st paintState) {
		close(started)
		<-ctx.Done()
		time.Sleep(10 * time.Millisecond)
		cancelled = ctx.Err() != nil
		finished = true
	})
	p.queue(paintState{message: "a"})
	<-started
	p.stop()
	if !finished {
		t.Fatalf("stop returned before the frame in flight finished")
	}
	if !cancelled {
		t.Fatalf("frame in flight was not cancelled")
	}
}

func TestPainterReplacesWaitingFrame(t *testing.T) {
	gate := make(chan struct{})
	started := make(chan struct{}, 1)
	drawn := make(chan string, 4)
	var once sync.Once
	p := newPainter(func(ctx context.Context, st paintState) {
		once.Do(func() {
			started <- struct{}{}
			<-gate
		})
		drawn <- st.message
	})
	p.queue(paintState{message: "first"})
	<-started
	p.queue(paintState{message: "second"})
	p.queue(paintState{message: "third"})
	close(gate)
	var got []string
	for len(got) < 2 {
		select {
		case m := <-drawn:
			got = append(got, m)
		case <-time.After(time.Second):
			t.Fatalf("timed out, drew %v", got)
		}
	}
	p.stop()
	if got[0] != "first" || got[1] != "third" {
		t.Fatalf("drew %v, want [first third]", got)
	}
	if len(drawn) != 0 {
		t.Fatalf("unexpected extra frame %q", <-drawn)
	}
}

func TestPainterStopWhenIdle(t *testing.T) {
	p := newPainter(func(context.Context, paintState) {})
	p.stop()
	select {
	case <-p.done:
	default:
		t.Fatalf("goroutine still running after stop")
	}
}
