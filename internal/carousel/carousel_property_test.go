package carousel

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestPagerProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(4242)
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("page stays within bounds after any step", prop.ForAll(
		func(items, perPage, steps int, forward bool) bool {
			p := NewPager(items, perPage, false)
			for i := 0; i < steps; i++ {
				if forward {
					p = p.Next()
				} else {
					p = p.Prev()
				}
				if p.Page < 0 || p.Page > p.MaxPage() {
					return false
				}
			}
			return true
		},
		gen.IntRange(0, 40),
		gen.IntRange(1, 3),
		gen.IntRange(0, 100),
		gen.Bool(),
	))

	properties.Property("page count steps of next return to start", prop.ForAll(
		func(items, perPage, start int) bool {
			p := NewPager(items, perPage, true).At(start)
			origin := p.Page
			for i := 0; i < p.PageCount(); i++ {
				p = p.Next()
			}
			return p.Page == origin
		},
		gen.IntRange(0, 40),
		gen.IntRange(1, 3),
		gen.IntRange(0, 40),
	))

	properties.Property("prev undoes next", prop.ForAll(
		func(items, perPage, start int) bool {
			p := NewPager(items, perPage, false).At(start)
			return p.Next().Prev().Page == p.Page
		},
		gen.IntRange(0, 40),
		gen.IntRange(1, 3),
		gen.IntRange(0, 40),
	))

	properties.Property("progress is within (0, 100]", prop.ForAll(
		func(items, perPage, start int) bool {
			progress := NewPager(items, perPage, false).At(start).Progress()
			return progress > 0 && progress <= 100
		},
		gen.IntRange(0, 40),
		gen.IntRange(1, 3),
		gen.IntRange(0, 40),
	))

	properties.Property("page at scroll offset is identity", prop.ForAll(
		func(items, page, card, gap int) bool {
			p := NewPager(items, 3, false).At(page)
			return p.PageAt(float64(ScrollOffset(p.Page, card, gap)), card, gap) == p.Page
		},
		gen.IntRange(0, 40),
		gen.IntRange(0, 40),
		gen.IntRange(1, 600),
		gen.IntRange(0, 48),
	))

	properties.TestingRun(t)
}

func TestSlidesProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(1337)
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("index stays within slide count", prop.ForAll(
		func(count, index, steps int) bool {
			s := NewSlides(count, index)
			for i := 0; i < steps; i++ {
				s = s.Next()
				if s.Index < 0 || s.Index >= s.Count {
					return false
				}
			}
			return true
		},
		gen.IntRange(1, 12),
		gen.IntRange(-5, 20),
		gen.IntRange(0, 50),
	))

	properties.Property("count steps of prev return to start", prop.ForAll(
		func(count, index int) bool {
			s := NewSlides(count, index)
			origin := s.Index
			for i := 0; i < count; i++ {
				s = s.Prev()
			}
			return s.Index == origin
		},
		gen.IntRange(1, 12),
		gen.IntRange(0, 11),
	))

	properties.TestingRun(t)
}
