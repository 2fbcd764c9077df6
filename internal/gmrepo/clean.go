package gmrepo

import (
	"strings"
	"sync"
)

// Cleaner normalizes string values coming off the wire: GMrepo responses
// carry stray carriage returns and newlines inside text fields. Results are
// memoized because the same taxon and phenotype names repeat across
// thousands of rows.
type Cleaner struct {
	mu   sync.RWMutex
	memo map[string]string
}

// NewCleaner creates a Cleaner with an empty memo.
func NewCleaner() *Cleaner {
	return &Cleaner{memo: make(map[string]string)}
}

// Clean removes \r and \n and trims surrounding whitespace. Safe for
// concurrent use.
func (c *Cleaner) Clean(s string) string {
	c.mu.RLock()
	v, ok := c.memo[s]
	c.mu.RUnlock()
	if ok {
		return v
	}

	v = strings.ReplaceAll(s, "\r", "")
	v = strings.ReplaceAll(v, "\n", "")
	v = strings.TrimSpace(v)

	c.mu.Lock()
	c.memo[s] = v
	c.mu.Unlock()
	return v
}

// Size returns the number of memoized strings.
func (c *Cleaner) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.memo)
}
