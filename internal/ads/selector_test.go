package ads

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// scriptedRand replays a fixed sequence of draws.
type scriptedRand struct {
	draws []int
	next  int
}

func (r *scriptedRand) IntN(n int) int {
	if len(r.draws) == 0 {
		return 0
	}
	v := r.draws[r.next%len(r.draws)] % n
	r.next++
	return v
}

func newTestSelector(rand Rand) *Selector {
	return NewSelector(NewCatalog(), rand, zap.NewNop())
}

func TestSelectConcatenatesMatchesInKeywordOrder(t *testing.T) {
	t.Parallel()

	s := newTestSelector(&scriptedRand{})
	picked, matched := s.Select([]string{"cycling", "cookware"})

	require.True(t, matched)
	require.Len(t, picked, 2)
	require.Equal(t, "/product/9SIQT8TOJO", picked[0].RedirectURL)
	require.Equal(t, "/product/1YMWWN1N4O", picked[1].RedirectURL)
}

func TestSelectVintageReturnsRegisteredAdsOnly(t *testing.T) {
	t.Parallel()

	s := newTestSelector(&scriptedRand{})
	picked, matched := s.Select([]string{"vintage"})

	require.True(t, matched)
	require.Equal(t, s.catalog.AdsByKeyword("vintage"), picked)
}

func TestSelectPreservesDuplicatesAcrossKeywords(t *testing.T) {
	t.Parallel()

	s := newTestSelector(&scriptedRand{})
	picked, matched := s.Select([]string{"photography", "vintage"})

	require.True(t, matched)
	require.Len(t, picked, 5)
	// camera and lens are listed under both keywords and appear twice.
	require.Equal(t, picked[0], picked[2])
	require.Equal(t, picked[1], picked[3])
}

func TestSelectIsDeterministicForMatchingKeywords(t *testing.T) {
	t.Parallel()

	s := newTestSelector(&scriptedRand{})
	first, _ := s.Select([]string{"gardening", "photography"})
	second, _ := s.Select([]string{"gardening", "photography"})
	require.Equal(t, first, second)
}

func TestSelectEmptyKeywordsReturnsMaxAdsToServe(t *testing.T) {
	t.Parallel()

	s := newTestSelector(&scriptedRand{draws: []int{0, 5}})
	picked, matched := s.Select(nil)

	require.False(t, matched)
	require.Len(t, picked, MaxAdsToServe)
	for _, ad := range picked {
		require.Contains(t, s.catalog.All(), ad)
	}
}

func TestSelectUnknownKeywordsFallBackToRandom(t *testing.T) {
	t.Parallel()

	s := newTestSelector(&scriptedRand{draws: []int{3, 7}})
	picked, matched := s.Select([]string{"holograms", "submarines"})

	require.False(t, matched)
	require.Len(t, picked, MaxAdsToServe)
	for _, ad := range picked {
		require.Contains(t, s.catalog.All(), ad)
	}
}

func TestSelectRandomSamplesWithReplacement(t *testing.T) {
	t.Parallel()

	// Both draws hit the same index, so the same ad must appear twice.
	s := newTestSelector(&scriptedRand{draws: []int{4}})
	picked, matched := s.Select(nil)

	require.False(t, matched)
	require.Len(t, picked, MaxAdsToServe)
	require.Equal(t, picked[0], picked[1])
}
