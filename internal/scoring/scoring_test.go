package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyBoundaries(t *testing.T) {
	cases := []struct {
		score int
		want  Category
	}{
		{0, Cold},
		{30, Cold},
		{31, Warm},
		{45, Warm},
		{60, Warm},
		{61, Hot},
		{80, Hot},
		{100, Hot},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Classify(tc.score), "score %d", tc.score)
	}
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0, Clamp(-5))
	assert.Equal(t, 100, Clamp(140))
	assert.Equal(t, 42, Clamp(42))
}

func TestComputeNeverExceedsRange(t *testing.T) {
	score := Compute(CaptureInput{
		Source:      "wishlist_share",
		HasPhone:    true,
		HasMessage:  true,
		HasWishlist: true,
		HasUTM:      true,
	})
	assert.LessOrEqual(t, score, MaxScore)
	assert.GreaterOrEqual(t, score, MinScore)
	assert.Equal(t, Hot, Classify(score))
}

func TestComputeBareLeadIsCold(t *testing.T) {
	score := Compute(CaptureInput{Source: "unknown"})
	assert.Equal(t, Cold, Classify(score))
}
