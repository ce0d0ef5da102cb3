// Package carousel holds the paging arithmetic behind the card and image
// carousels. The server uses it to render the initial window and the
// no-script navigation links; the bundled script mirrors the same rules.
package carousel

import "math"

// Breakpoints in CSS pixels.
const (
	TabletWidth  = 768
	DesktopWidth = 1024

	// DefaultViewport is assumed when the client width is unknown.
	DefaultViewport = 1280
)

// ItemsPerPage returns how many cards fit side by side at width.
func ItemsPerPage(width int) int {
	switch {
	case width < TabletWidth:
		return 1
	case width < DesktopWidth:
		return 2
	default:
		return 3
	}
}

// Gap returns the spacing between cards at width.
func Gap(width int) int {
	switch {
	case width < TabletWidth:
		return 24
	case width < DesktopWidth:
		return 32
	default:
		return 48
	}
}

// Pager tracks the first visible card of a horizontally scrolling row.
// Each page advances the row by a single card.
type Pager struct {
	Total   int
	PerPage int
	Page    int
}

// NewPager returns a pager over items cards; seeAll appends the trailing
// "see all" card. Page starts at zero.
func NewPager(items, perPage int, seeAll bool) Pager {
	if items < 0 {
		items = 0
	}
	if seeAll {
		items++
	}
	if perPage < 1 {
		perPage = 1
	}
	return Pager{Total: items, PerPage: perPage}
}

// At returns p moved to page, clamped to [0, MaxPage].
func (p Pager) At(page int) Pager {
	p.Page = clamp(page, 0, p.MaxPage())
	return p
}

// MaxPage is the last page index.
func (p Pager) MaxPage() int {
	return max(0, p.Total-p.PerPage)
}

// PageCount is the number of distinct pages, at least one.
func (p Pager) PageCount() int {
	return max(1, p.Total-p.PerPage+1)
}

// ShowNavigation reports whether there is anything to page through.
func (p Pager) ShowNavigation() bool {
	return p.Total > p.PerPage
}

// Next advances one page, wrapping to the first after the last.
func (p Pager) Next() Pager {
	if p.Page >= p.MaxPage() {
		p.Page = 0
	} else {
		p.Page++
	}
	return p
}

// Prev goes back one page, wrapping to the last before the first.
func (p Pager) Prev() Pager {
	if p.Page <= 0 {
		p.Page = p.MaxPage()
	} else {
		p.Page--
	}
	return p
}

// Progress is the position through the pages as a percentage.
func (p Pager) Progress() float64 {
	return float64(p.Page+1) / float64(p.PageCount()) * 100
}

// Window returns the half-open range of visible card indexes.
func (p Pager) Window() (start, end int) {
	start = clamp(p.Page, 0, p.Total)
	end = min(start+p.PerPage, p.Total)
	return start, end
}

// Visible reports whether card index i is inside the window.
func (p Pager) Visible(i int) bool {
	start, end := p.Window()
	return i >= start && i < end
}

// ScrollOffset is the horizontal scroll position that shows page.
func ScrollOffset(page, cardWidth, gap int) int {
	return page * (cardWidth + gap)
}

// PageAt maps a scroll position back to a page, rounding to the nearest
// card and clamping to the pager's range.
func (p Pager) PageAt(scrollLeft float64, cardWidth, gap int) int {
	step := cardWidth + gap
	if step <= 0 {
		return 0
	}
	page := int(math.Round(scrollLeft / float64(step)))
	return clamp(page, 0, p.MaxPage())
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
