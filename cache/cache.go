// Package cache memoizes loaded tables so repeated opens of the same
// file do not re-read it. Tables are immutable, so a cached reader is
// safe to hand to any number of callers.
package cache

import (
	"strconv"

	"github.com/dgraph-io/ristretto"

	"csvtable/table"
)

// TableCache is an in-memory cache of readers keyed by the loading
// triple (path, delimiter, header flag). Nothing is persisted.
type TableCache struct {
	cache *ristretto.Cache
}

func NewTableCache() (*TableCache, error) {
	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 1e3,
		MaxCost:     1 << 7,
		BufferItems: 64,
	})
	if err != nil {
		return nil, err
	}
	return &TableCache{cache: cache}, nil
}

func cacheKey(path string, delimiter string, header bool) string {
	return path + "\x00" + delimiter + "\x00" + strconv.FormatBool(header)
}

// Get returns the cached reader for the triple, loading and caching it
// on a miss. Ristretto admission may decline to keep a table; that
// only costs a reload on the next call.
func (c *TableCache) Get(path string, delimiter string, header bool) (*table.Reader, error) {
	key := cacheKey(path, delimiter, header)
	if cached, found := c.cache.Get(key); found {
		return cached.(*table.Reader), nil
	}
	reader, err := table.OpenFile(path, delimiter, header)
	if err != nil {
		return nil, err
	}
	c.cache.Set(key, reader, 1)
	return reader, nil
}
