// Package scoring is the single source of truth for lead temperature.
// The thresholds used to be restated in every admin view; keep them here
// and nowhere else.
package scoring

const (
	// HotThreshold and WarmThreshold are inclusive lower bounds.
	HotThreshold  = 61
	WarmThreshold = 31

	MinScore = 0
	MaxScore = 100
)

type Category string

const (
	Hot  Category = "Hot"
	Warm Category = "Warm"
	Cold Category = "Cold"
)

// Classify maps a 0-100 score to its temperature category:
// Hot >= 61, Warm 31..60, Cold <= 30.
func Classify(score int) Category {
	switch {
	case score >= HotThreshold:
		return Hot
	case score >= WarmThreshold:
		return Warm
	default:
		return Cold
	}
}

func (c Category) String() string { return string(c) }

// Clamp bounds a computed score into the valid range.
func Clamp(score int) int {
	if score < MinScore {
		return MinScore
	}
	if score > MaxScore {
		return MaxScore
	}
	return score
}

// CaptureInput carries the signals available at lead capture time.
type CaptureInput struct {
	Source      string
	HasPhone    bool
	HasMessage  bool
	HasWishlist bool
	HasUTM      bool
}

var sourceWeights = map[string]int{
	"wishlist_share": 25,
	"contact_form":   15,
	"product_page":   15,
	"newsletter":     5,
}

// Compute derives the backend-owned score for a freshly captured lead.
// The admin side only ever reads it.
func Compute(in CaptureInput) int {
	score := 10 // every lead starts warm-ish, not zero
	if w, ok := sourceWeights[in.Source]; ok {
		score += w
	}
	if in.HasPhone {
		score += 15
	}
	if in.HasMessage {
		score += 15
	}
	if in.HasWishlist {
		score += 25
	}
	if in.HasUTM {
		score += 5
	}
	return Clamp(score)
}
