package qa

import (
	"regexp"
	"sync"
)

// PatternCache memoizes compiled case-insensitive matchers keyed by their
// source expression. Entries are never evicted; the cache lives as long as the
// engine that owns it, and the same expression always yields the same
// *regexp.Regexp instance.
type PatternCache struct {
	mu       sync.RWMutex
	patterns map[string]*regexp.Regexp
}

func NewPatternCache() *PatternCache {
	return &PatternCache{patterns: make(map[string]*regexp.Regexp)}
}

// Get returns the compiled case-insensitive matcher for expr, compiling it on
// first use. All expressions are fixed literals owned by this package, never
// user input, so a malformed expression is a configuration error and panics.
func (c *PatternCache) Get(expr string) *regexp.Regexp {
	c.mu.RLock()
	re, ok := c.patterns[expr]
	c.mu.RUnlock()
	if ok {
		return re
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if re, ok := c.patterns[expr]; ok {
		return re
	}
	re = regexp.MustCompile(`(?i)` + expr)
	c.patterns[expr] = re
	return re
}

// Len reports how many patterns have been compiled so far.
func (c *PatternCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.patterns)
}
