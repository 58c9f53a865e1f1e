package curve

import (
	"fmt"
	"os"

	lru "github.com/hashicorp/golang-lru/v2"
)

// defaultCacheCapacity bounds the number of distinct curve files kept
// resident; curves are small, but a world may reference many JSON files
// across a long-running process.
const defaultCacheCapacity = 512

// Registry loads curve JSON files once and hands out the same *Curve
// pointer for the same source path on every subsequent lookup, so that
// devices sharing a curve (e.g. every AirConditioner's efficiency curve)
// compare equal by identity, not merely by value.
type Registry struct {
	cache *lru.Cache[string, *Curve]
}

// NewRegistry creates a Registry with the default cache capacity.
func NewRegistry() *Registry {
	return NewRegistryWithCapacity(defaultCacheCapacity)
}

// NewRegistryWithCapacity creates a Registry bounded to the given number
// of distinct curves.
func NewRegistryWithCapacity(capacity int) *Registry {
	c, err := lru.New[string, *Curve](capacity)
	if err != nil {
		panic(fmt.Errorf("curve: failed to create registry cache: %v", err))
	}
	return &Registry{cache: c}
}

// Load returns the Curve parsed from path, reading and parsing it only on
// the first request for that path.
func (r *Registry) Load(path string) (*Curve, error) {
	if c, ok := r.cache.Get(path); ok {
		return c, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("curve: reading %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("curve: parsing %s: %w", path, err)
	}
	r.cache.Add(path, c)
	return c, nil
}

// Purge clears every cached curve.
func (r *Registry) Purge() {
	r.cache.Purge()
}
