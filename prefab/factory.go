package prefab

import (
	"fmt"
	"sync"

	"github.com/ic10vm/simulator/gas"
	"golang.org/x/exp/maps"
)

// FactoryFn builds a Filter for one registered prefab hash.
type FactoryFn func() *Filter

// Meta is the human-facing metadata registered alongside a prefab's
// factory, mirroring the reference implementation's (display_name,
// item_type) pair.
type Meta struct {
	DisplayName string
	ItemType    string
}

// itemFactoryRegistry mirrors tosca's global interpreter registry: a
// mutex-protected map of prefab hash to factory function, populated once
// by init-time registration.
type itemFactoryRegistry struct {
	mu        sync.Mutex
	factories map[uint32]FactoryFn
	metas     map[uint32]Meta
}

var globalRegistry = &itemFactoryRegistry{
	factories: make(map[uint32]FactoryFn),
	metas:     make(map[uint32]Meta),
}

func init() {
	registerFilterPrefabs()
}

// registerFilterPrefabs registers one factory per gas-type/size
// combination, matching item_factory.rs's initialize_item_factory: every
// gas type except Hydrogen, which the reference implementation notes does
// not support filters.
func registerFilterPrefabs() {
	gasTypes := []gas.Species{
		gas.Oxygen, gas.Nitrogen, gas.CarbonDioxide, gas.Volatiles,
		gas.Pollutant, gas.NitrousOxide, gas.Water, gas.Steam,
	}
	sizes := []FilterSize{FilterSmall, FilterMedium, FilterLarge, FilterInfinite}

	for _, g := range gasTypes {
		for _, s := range sizes {
			g, s := g, s
			hash := FilterPrefabHash(g, s)
			RegisterFactory(hash, func() *Filter { return NewFilter(0, g, s) })
			RegisterMeta(hash, Meta{
				DisplayName: fmt.Sprintf("%s Filter (%s)", filterGasName[g], s),
				ItemType:    "Filter",
			})
		}
	}
}

// RegisterFactory registers a factory function under prefabHash, panicking
// if one is already registered — the reference registry silently
// overwrites, but this module follows the teacher's stricter
// registration-uniqueness convention (tosca.RegisterInterpreterFactory
// returns an error on collision; construction-time collisions here are
// always a programming error, so panic fits the device.PropertyRegistry
// precedent better than a silently swallowed error).
func RegisterFactory(prefabHash uint32, factory FactoryFn) {
	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()
	if _, found := globalRegistry.factories[prefabHash]; found {
		panic(fmt.Sprintf("prefab: factory already registered for hash %d", prefabHash))
	}
	globalRegistry.factories[prefabHash] = factory
}

// RegisterMeta registers display metadata for prefabHash.
func RegisterMeta(prefabHash uint32, meta Meta) {
	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()
	globalRegistry.metas[prefabHash] = meta
}

// Create builds a new Filter for prefabHash, or reports false if no
// factory is registered.
func Create(prefabHash uint32) (*Filter, bool) {
	globalRegistry.mu.Lock()
	factory, ok := globalRegistry.factories[prefabHash]
	globalRegistry.mu.Unlock()
	if !ok {
		return nil, false
	}
	return factory(), true
}

// MetaFor returns the registered metadata for prefabHash.
func MetaFor(prefabHash uint32) (Meta, bool) {
	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()
	m, ok := globalRegistry.metas[prefabHash]
	return m, ok
}

// RegisteredPrefabs returns every prefab hash with a registered factory.
func RegisteredPrefabs() []uint32 {
	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()
	return maps.Keys(globalRegistry.factories)
}
