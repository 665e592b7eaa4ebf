package ads

import "go.uber.org/zap"

// Selector picks ads for a set of context keywords. It is stateless per
// call and safe for concurrent use as long as its Rand source is.
type Selector struct {
	catalog *Catalog
	rand    Rand
	logger  *zap.Logger
}

// NewSelector constructs a Selector over the given catalog and randomness
// source.
func NewSelector(catalog *Catalog, rand Rand, logger *zap.Logger) *Selector {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Selector{catalog: catalog, rand: rand, logger: logger}
}

// Select returns the concatenation, in keyword order, of the index hits for
// the given context keywords, with duplicates across keywords preserved.
// When no keywords are given or none match, it instead returns exactly
// MaxAdsToServe ads drawn uniformly at random, with replacement, from the
// full ad population. The second return value reports whether the
// contextual path produced the result.
func (s *Selector) Select(contextKeys []string) ([]Ad, bool) {
	var picked []Ad
	for _, key := range contextKeys {
		hits := s.catalog.AdsByKeyword(key)
		if len(hits) == 0 {
			s.logger.Info("context keyword not found in catalog", zap.String("keyword", key))
			continue
		}
		picked = append(picked, hits...)
	}
	if len(picked) > 0 {
		return picked, true
	}
	return s.randomAds(), false
}

// randomAds samples with replacement, so one response may repeat an ad.
func (s *Selector) randomAds() []Ad {
	population := s.catalog.All()
	picked := make([]Ad, 0, MaxAdsToServe)
	for i := 0; i < MaxAdsToServe; i++ {
		picked = append(picked, population[s.rand.IntN(len(population))])
	}
	return picked
}
