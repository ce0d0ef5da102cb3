package carousel

import "time"

// AutoPlayInterval is how long each slide stays before advancing.
const AutoPlayInterval = 3 * time.Second

// Slides is the state of an image carousel.
type Slides struct {
	Count int
	Index int
}

// NewSlides returns slides positioned at index, falling back to the first
// slide when index is out of range.
func NewSlides(count, index int) Slides {
	s := Slides{Count: max(0, count)}
	return s.GoTo(index)
}

// Next moves to the following slide, wrapping to the first.
func (s Slides) Next() Slides {
	if s.Count == 0 {
		return s
	}
	s.Index = (s.Index + 1) % s.Count
	return s
}

// Prev moves to the preceding slide, wrapping to the last.
func (s Slides) Prev() Slides {
	if s.Count == 0 {
		return s
	}
	s.Index = (s.Index - 1 + s.Count) % s.Count
	return s
}

// GoTo jumps to index; out-of-range indexes leave the position unchanged.
func (s Slides) GoTo(index int) Slides {
	if index >= 0 && index < s.Count {
		s.Index = index
	}
	return s
}

// AutoPlay reports whether the carousel should advance on its own.
func (s Slides) AutoPlay(enabled, playing bool) bool {
	return enabled && playing && s.Count > 1
}

// HasMultiple reports whether navigation controls are needed.
func (s Slides) HasMultiple() bool {
	return s.Count > 1
}
