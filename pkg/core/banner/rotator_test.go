package banner

import (
	"context"
	"testing"
	"time"
)

func TestRotatorStartsOnFirstSlide(t *testing.T) {
	r := NewRotator(Slides, 0)

	slide, index, ok := r.Current()
	if !ok || index != 0 || slide.Title != "Top Gadget Deals" {
		t.Errorf("Current() = %+v, %d, %v", slide, index, ok)
	}
	if r.Interval() != DefaultInterval {
		t.Errorf("Interval() = %v, want %v", r.Interval(), DefaultInterval)
	}
}

func TestRotatorNextWraps(t *testing.T) {
	r := NewRotator(Slides, time.Second)

	want := []int{1, 2, 0, 1}
	for i, w := range want {
		r.Next()
		if got := r.Index(); got != w {
			t.Errorf("step %d: Index() = %d, want %d", i, got, w)
		}
	}
}

func TestRotatorJump(t *testing.T) {
	r := NewRotator(Slides, time.Second)

	if err := r.Jump(2); err != nil {
		t.Fatalf("Jump(2): %v", err)
	}
	if r.Index() != 2 {
		t.Errorf("Index() = %d, want 2", r.Index())
	}

	for _, i := range []int{-1, 3} {
		if err := r.Jump(i); err == nil {
			t.Errorf("Jump(%d) should fail", i)
		}
	}
	if r.Index() != 2 {
		t.Error("a rejected jump must not move the rotator")
	}
}

func TestRotatorEmpty(t *testing.T) {
	r := NewRotator(nil, time.Second)
	r.Next()
	if _, _, ok := r.Current(); ok {
		t.Error("empty rotator should report no slide")
	}
}

func TestRotatorRunAdvancesUntilCancelled(t *testing.T) {
	r := NewRotator(Slides, 10*time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		r.Run(ctx)
		close(done)
	}()

	deadline := time.After(2 * time.Second)
	for r.Index() == 0 {
		select {
		case <-deadline:
			t.Fatal("rotator never advanced")
		case <-time.After(5 * time.Millisecond):
		}
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestSlidesReturnsCopy(t *testing.T) {
	r := NewRotator(Slides, time.Second)
	s := r.Slides()
	s[0].Title = "changed"
	if slide, _, _ := r.Current(); slide.Title == "changed" {
		t.Error("Slides() exposed internal state")
	}
}
