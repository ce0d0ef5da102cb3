// Package content assembles the static sections of the home page.
package content

import (
	"math"
	"strconv"
	"strings"
	"time"

	"mazee-site/internal/i18n"
)

// Count-up animation defaults.
const (
	CountUpDuration = 2 * time.Second
	CountUpFPS      = 60
)

// Stat is a headline figure on the stats band.
type Stat struct {
	Value  string
	Target int
	Label  string
}

// Stats returns the stats band entries.
func Stats(t i18n.Translator) []Stat {
	return []Stat{
		{Value: "100+", Target: 100, Label: t.T("stats.completedProjects")},
		{Value: "50+", Target: 50, Label: t.T("stats.globalPartners")},
		{Value: "24/7", Target: 24, Label: t.T("stats.supportAvailable")},
		{Value: "100%", Target: 100, Label: t.T("stats.clientSatisfaction")},
	}
}

// EaseOutCubic maps linear progress in [0, 1] onto a decelerating curve.
func EaseOutCubic(progress float64) float64 {
	progress = math.Max(0, math.Min(1, progress))
	return 1 - math.Pow(1-progress, 3)
}

// CountUpFrames returns the value shown on each frame of a count-up from
// zero to target. The last frame is always exactly target.
func CountUpFrames(target int, duration time.Duration, fps int) []int {
	total := int(math.Round(duration.Seconds() * float64(fps)))
	if total < 1 {
		return []int{target}
	}

	frames := make([]int, total)
	for i := 1; i <= total; i++ {
		eased := EaseOutCubic(float64(i) / float64(total))
		frames[i-1] = int(math.Floor(eased * float64(target)))
	}
	frames[total-1] = target
	return frames
}

// FormatStat renders an animated value using the suffix of its final
// form: "100+" gives "N+", "100%" gives "N%" and "24/7" scales the second
// number along with the first.
func FormatStat(value int, final string) string {
	n := strconv.Itoa(value)
	switch {
	case strings.Contains(final, "+"):
		return n + "+"
	case strings.Contains(final, "%"):
		return n + "%"
	case strings.Contains(final, "/"):
		second := int(math.Floor(float64(value) / 24 * 7))
		return n + "/" + strconv.Itoa(second)
	default:
		return n
	}
}
