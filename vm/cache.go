package vm

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// defaultCacheSize bounds how many distinct program sources the decode
// cache retains (spec §4.6 "Decode cache"). Schematics commonly place many
// processors running the exact same source text (copy-pasted logic), so a
// modest LRU avoids re-decoding identical programs on every load.
const defaultCacheSize = 256

// DecodeCache decodes processor source text once per distinct string and
// hands out the same immutable *Program to every caller asking for it
// again, the way a schematic loader shares one decoded program across many
// placed processors running identical code.
type DecodeCache struct {
	globals *Globals
	cache   *lru.Cache[string, *Program]
}

// NewDecodeCache builds a decode cache backed by globals, with room for
// size distinct program sources (0 or negative selects the default).
func NewDecodeCache(globals *Globals, size int) (*DecodeCache, error) {
	if size <= 0 {
		size = defaultCacheSize
	}
	c, err := lru.New[string, *Program](size)
	if err != nil {
		return nil, err
	}
	return &DecodeCache{globals: globals, cache: c}, nil
}

// Decode returns the Program for source, decoding and caching it on first
// use. Every subsequent call with the same source text (exact byte match)
// returns the same *Program instance.
func (c *DecodeCache) Decode(source string) (*Program, error) {
	if prog, ok := c.cache.Get(source); ok {
		return prog, nil
	}
	prog, err := decode(source, c.globals)
	if err != nil {
		return nil, err
	}
	c.cache.Add(source, prog)
	return prog, nil
}

// Len reports how many distinct programs are currently cached.
func (c *DecodeCache) Len() int { return c.cache.Len() }
