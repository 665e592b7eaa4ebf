package ads

// MaxAdsToServe bounds the number of ads returned on the random fallback
// path. Contextual matches are not bounded.
const MaxAdsToServe = 2

// Catalog is the order-preserving keyword-to-ads index. It is built once at
// startup and never mutated afterwards, so concurrent reads need no
// synchronization.
type Catalog struct {
	keywords []string
	index    map[string][]Ad
	all      []Ad
}

type catalogEntry struct {
	keyword string
	ads     []Ad
}

// NewCatalog builds the fixed boutique catalog. Construction cannot fail;
// malformed literal data is a build-time defect.
func NewCatalog() *Catalog {
	camera := Ad{RedirectURL: "/product/2ZYFJ3GM2N", Text: "Film camera for sale. 50% off."}
	lens := Ad{RedirectURL: "/product/66VCHSJNUP", Text: "Vintage Camera Lens for sale. 20% off."}
	recordPlayer := Ad{RedirectURL: "/product/0PUK6V6EV0", Text: "Vintage Record Player for sale. 30% off."}
	bike := Ad{RedirectURL: "/product/9SIQT8TOJO", Text: "City Bike for sale. 10% off."}
	baristaKit := Ad{RedirectURL: "/product/1YMWWN1N4O", Text: "Home Barista kitchen kit for sale. Buy one, get second kit for free"}
	airPlant := Ad{RedirectURL: "/product/6E92ZMYYFZ", Text: "Air Plants for sale. Buy two, get third one for free"}
	terrarium := Ad{RedirectURL: "/product/L9ECAV7KIM", Text: "Terrarium for sale. Buy one, get second one for free"}

	return newCatalog(
		catalogEntry{keyword: "photography", ads: []Ad{camera, lens}},
		catalogEntry{keyword: "vintage", ads: []Ad{camera, lens, recordPlayer}},
		catalogEntry{keyword: "cycling", ads: []Ad{bike}},
		catalogEntry{keyword: "cookware", ads: []Ad{baristaKit}},
		catalogEntry{keyword: "gardening", ads: []Ad{airPlant, terrarium}},
	)
}

// newCatalog indexes the given entries. Keywords are only ever inserted
// with ads attached, which upholds the non-empty-sequence invariant.
func newCatalog(entries ...catalogEntry) *Catalog {
	c := &Catalog{index: make(map[string][]Ad, len(entries))}
	for _, e := range entries {
		if len(e.ads) == 0 {
			continue
		}
		c.keywords = append(c.keywords, e.keyword)
		c.index[e.keyword] = e.ads
		c.all = append(c.all, e.ads...)
	}
	return c
}

// AdsByKeyword returns the ads registered under the keyword, in
// registration order, or nil when the keyword is unknown.
func (c *Catalog) AdsByKeyword(keyword string) []Ad {
	return c.index[keyword]
}

// Keywords returns the registered keywords in registration order.
func (c *Catalog) Keywords() []string {
	return c.keywords
}

// All returns the full ad population across all keywords, one entry per
// index listing; an ad indexed under two keywords appears twice. This is
// the population the random fallback samples from.
func (c *Catalog) All() []Ad {
	return c.all
}
