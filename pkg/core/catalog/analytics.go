package catalog

import (
	"encoding/json"
	"hash/fnv"
	"slices"

	"github.com/dgraph-io/ristretto"
	"github.com/rs/zerolog/log"

	"github.com/wadjakorntonsri/go-affiliate-storefront/pkg/core/domain"
)

// Summarize computes the admin analytics for products. Categories appear in
// first-seen order; empty categories are grouped as "Uncategorized".
func Summarize(products []domain.Product) domain.Analytics {
	a := domain.Analytics{
		TotalProducts: len(products),
		PerCategory:   []domain.CategoryStats{},
	}

	index := make(map[string]int)
	for _, p := range products {
		if p.IsActive {
			a.ActiveProducts++
		}
		a.TotalClicks += p.Clicks

		name := p.Category
		if name == "" {
			name = domain.UncategorizedLabel
		}
		i, ok := index[name]
		if !ok {
			i = len(a.PerCategory)
			index[name] = i
			a.PerCategory = append(a.PerCategory, domain.CategoryStats{Name: name})
		}
		a.PerCategory[i].Count++
		a.PerCategory[i].Clicks += p.Clicks
	}
	a.InactiveProducts = a.TotalProducts - a.ActiveProducts
	return a
}

// Snapshot is an immutable copy of a product list with a content key.
type Snapshot struct {
	products []domain.Product
	key      uint64
}

// NewSnapshot copies products and fingerprints their content.
func NewSnapshot(products []domain.Product) Snapshot {
	cp := slices.Clone(products)
	h := fnv.New64a()
	// Encoding a []domain.Product cannot fail.
	_ = json.NewEncoder(h).Encode(cp)
	return Snapshot{products: cp, key: h.Sum64()}
}

// Products returns a copy of the snapshot's products.
func (s Snapshot) Products() []domain.Product {
	return slices.Clone(s.products)
}

// Len is the number of products in the snapshot.
func (s Snapshot) Len() int {
	return len(s.products)
}

// Key is the content fingerprint; equal lists share a key.
func (s Snapshot) Key() uint64 {
	return s.key
}

// Aggregator memoizes Summarize per snapshot content.
type Aggregator struct {
	cache *ristretto.Cache
}

// NewAggregator keeps up to maxEntries summaries.
func NewAggregator(maxEntries int64) (*Aggregator, error) {
	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: maxEntries * 10,
		MaxCost:     maxEntries,
		BufferItems: 64,
	})
	if err != nil {
		return nil, err
	}
	return &Aggregator{cache: cache}, nil
}

// Summarize returns the analytics for s, computing them at most once per
// distinct content while the entry stays cached.
func (a *Aggregator) Summarize(s Snapshot) domain.Analytics {
	if a == nil || a.cache == nil {
		return Summarize(s.products)
	}

	if v, ok := a.cache.Get(s.key); ok {
		if cached, ok := v.(domain.Analytics); ok {
			cached.PerCategory = slices.Clone(cached.PerCategory)
			return cached
		}
	}

	res := Summarize(s.products)
	stored := res
	stored.PerCategory = slices.Clone(res.PerCategory)
	if !a.cache.Set(s.key, stored, 1) {
		log.Debug().Uint64("key", s.key).Msg("analytics summary not admitted to cache")
	}
	return res
}

// Wait blocks until pending cache writes are applied.
func (a *Aggregator) Wait() {
	if a != nil && a.cache != nil {
		a.cache.Wait()
	}
}

// Close releases the cache.
func (a *Aggregator) Close() {
	if a != nil && a.cache != nil {
		a.cache.Close()
	}
}
