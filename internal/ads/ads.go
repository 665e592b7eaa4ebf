// Package ads holds the advertisement catalog and the selection logic
// behind the GetAds RPC.
package ads

// Ad is an immutable advertisement: an opaque redirect target plus the
// display text shown to the shopper. Ads have no identity beyond value
// equality; the same ad may be indexed under several keywords.
type Ad struct {
	RedirectURL string
	Text        string
}

// Rand is the randomness source used for fallback selection. Injecting it
// keeps the random path deterministic under test.
type Rand interface {
	// IntN returns a uniform int in [0, n). n must be > 0.
	IntN(n int) int
}
