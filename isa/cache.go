package isa

import (
	"crypto/sha256"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// programCacheCapacity bounds the number of distinct parsed programs kept
// resident, mirroring the decoded-bytecode cache of the teacher
// interpreter.
const programCacheCapacity = 4096

// ProgramCache parses assembly source text only once per distinct source,
// keyed by its content hash.
type ProgramCache struct {
	cache *lru.Cache[[32]byte, *Program]
}

// NewProgramCache creates an empty ProgramCache.
func NewProgramCache() *ProgramCache {
	c, err := lru.New[[32]byte, *Program](programCacheCapacity)
	if err != nil {
		panic(fmt.Errorf("isa: failed to create program cache: %v", err))
	}
	return &ProgramCache{cache: c}
}

// Parse returns the Program for source, parsing and caching it on first
// use.
func (pc *ProgramCache) Parse(source string) (*Program, error) {
	key := sha256.Sum256([]byte(source))
	if p, ok := pc.cache.Get(key); ok {
		return p, nil
	}
	p, err := Parse(source)
	if err != nil {
		return nil, err
	}
	pc.cache.Add(key, p)
	return p, nil
}

// Purge clears every cached program.
func (pc *ProgramCache) Purge() {
	pc.cache.Purge()
}
