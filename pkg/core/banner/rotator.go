package banner

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// DefaultInterval is how long each slide stays up
const DefaultInterval = 4000 * time.Millisecond

// Slide is one promotional banner
type Slide struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Image    string `json:"image"`
}

// Slides is the fixed banner set shown on the storefront
var Slides = []Slide{
	{
		ID:       1,
		Title:    "Top Gadget Deals",
		Subtitle: "Latest offers from our trusted affiliate partners.",
		Image:    "https://images.pexels.com/photos/325153/pexels-photo-325153.jpeg?auto=compress&cs=tinysrgb&w=1200",
	},
	{
		ID:       2,
		Title:    "Work From Home Essentials",
		Subtitle: "Upgrade your setup with curated accessories.",
		Image:    "https://images.pexels.com/photos/4145354/pexels-photo-4145354.jpeg?auto=compress&cs=tinysrgb&w=1200",
	},
	{
		ID:       3,
		Title:    "Courses & Software Tools",
		Subtitle: "Learn and grow with the best online resources.",
		Image:    "https://images.pexels.com/photos/1181671/pexels-photo-1181671.jpeg?auto=compress&cs=tinysrgb&w=1200",
	},
}

// Rotator cycles through slides on a fixed interval
type Rotator struct {
	mu       sync.RWMutex
	slides   []Slide
	index    int
	interval time.Duration
}

// NewRotator starts on the first slide. A non-positive interval falls back
// to DefaultInterval.
func NewRotator(slides []Slide, interval time.Duration) *Rotator {
	if interval <= 0 {
		interval = DefaultInterval
	}
	cp := make([]Slide, len(slides))
	copy(cp, slides)
	return &Rotator{slides: cp, interval: interval}
}

// Run advances the rotator every interval until ctx is done.
func (r *Rotator) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.Next()
		}
	}
}

// Next moves to the following slide, wrapping after the last one.
func (r *Rotator) Next() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.slides) == 0 {
		return
	}
	r.index = (r.index + 1) % len(r.slides)
}

// Jump selects slide i directly.
func (r *Rotator) Jump(i int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if i < 0 || i >= len(r.slides) {
		return fmt.Errorf("slide %d out of range [0,%d)", i, len(r.slides))
	}
	r.index = i
	return nil
}

// Index is the position of the current slide.
func (r *Rotator) Index() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.index
}

// Current returns the slide on display and its position. ok is false when
// the rotator has no slides.
func (r *Rotator) Current() (slide Slide, index int, ok bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if len(r.slides) == 0 {
		return Slide{}, 0, false
	}
	return r.slides[r.index], r.index, true
}

// Slides returns a copy of the slide set.
func (r *Rotator) Slides() []Slide {
	cp := make([]Slide, len(r.slides))
	copy(cp, r.slides)
	return cp
}

// Interval is the time each slide stays up.
func (r *Rotator) Interval() time.Duration {
	return r.interval
}
