// Package cache provides a sharded LRU cache for shaped runs. Documents
// repeat short spans of text (numbers, headers, references) at the same
// font and size, so caching shaping output removes most engine calls from
// a layout pass.
package cache

import (
	"encoding/binary"
	"hash/fnv"
	"math"
	"sync"
	"sync/atomic"

	"github.com/mozeal/PDFMathTranslate/text"
)

const (
	// shardCount must be a power of two so shard selection is a mask.
	shardCount = 16
	shardMask  = shardCount - 1

	// DefaultCapacity is the default maximum entries per shard.
	DefaultCapacity = 256
)

// Key identifies one shaping result. Every parameter that changes the
// output of shaping must be part of the key.
type Key struct {
	// TextHash is the FNV-1a hash of the run's stripped text.
	TextHash uint64
	// FontHash is the FNV-1a hash of the font path.
	FontHash uint64
	// LangHash is the FNV-1a hash of the shaping language subtag.
	LangHash uint64
	// SizeBits is the IEEE 754 bit pattern of the font size, which gives
	// exact matching without float comparison.
	SizeBits uint64
	// Direction and Script complete the shaping parameters.
	Direction uint8
	Script    uint8
}

// NewKey builds a Key from shaping parameters.
func NewKey(stripped, fontPath, lang string, size float64, dir text.Direction, script text.Script) Key {
	return Key{
		TextHash:  hashString(stripped),
		FontHash:  hashString(fontPath),
		LangHash:  hashString(lang),
		SizeBits:  math.Float64bits(size),
		Direction: uint8(dir),
		Script:    uint8(script),
	}
}

func hashString(s string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s))
	return h.Sum64()
}

// shardIndex hashes all key fields to pick a shard.
func (k *Key) shardIndex() uint64 {
	var buf [34]byte
	binary.LittleEndian.PutUint64(buf[0:], k.TextHash)
	binary.LittleEndian.PutUint64(buf[8:], k.FontHash)
	binary.LittleEndian.PutUint64(buf[16:], k.LangHash)
	binary.LittleEndian.PutUint64(buf[24:], k.SizeBits)
	buf[32] = k.Direction
	buf[33] = k.Script
	h := fnv.New64a()
	_, _ = h.Write(buf[:])
	return h.Sum64() & shardMask
}

type entry struct {
	value *text.ShapedRun
	node  *lruNode[Key]
}

type shard struct {
	mu      sync.RWMutex
	entries map[Key]*entry
	lru     *lruList[Key]
}

// ShapingCache is a thread-safe sharded LRU cache mapping Keys to shaped
// runs. Values are shared, not copied; callers must treat them as
// read-only.
type ShapingCache struct {
	shards   [shardCount]*shard
	capacity int

	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

// NewShapingCache creates a cache holding up to capacity entries per shard.
// capacity <= 0 selects DefaultCapacity.
func NewShapingCache(capacity int) *ShapingCache {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	c := &ShapingCache{capacity: capacity}
	for i := range c.shards {
		c.shards[i] = &shard{
			entries: make(map[Key]*entry),
			lru:     newLRUList[Key](),
		}
	}
	return c
}

func (c *ShapingCache) shardFor(key *Key) *shard {
	return c.shards[key.shardIndex()]
}

// Get returns the cached run for key and refreshes its recency.
func (c *ShapingCache) Get(key Key) (*text.ShapedRun, bool) {
	s := c.shardFor(&key)

	s.mu.RLock()
	_, exists := s.entries[key]
	s.mu.RUnlock()
	if !exists {
		c.misses.Add(1)
		return nil, false
	}

	s.mu.Lock()
	e, ok := s.entries[key]
	if !ok {
		s.mu.Unlock()
		c.misses.Add(1)
		return nil, false
	}
	s.lru.MoveToFront(e.node)
	v := e.value
	s.mu.Unlock()

	c.hits.Add(1)
	return v, true
}

// Set stores value under key, evicting least recently used entries when the
// shard is full.
func (c *ShapingCache) Set(key Key, value *text.ShapedRun) {
	if value == nil {
		return
	}
	s := c.shardFor(&key)

	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.entries[key]; ok {
		e.value = value
		s.lru.MoveToFront(e.node)
		return
	}
	c.evictLocked(s)
	node := s.lru.PushFront(key)
	s.entries[key] = &entry{value: value, node: node}
}

// GetOrCreate returns the cached run for key, calling create on a miss. The
// create function runs with the shard lock held so concurrent callers for
// the same key shape at most once.
func (c *ShapingCache) GetOrCreate(key Key, create func() *text.ShapedRun) *text.ShapedRun {
	s := c.shardFor(&key)

	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.entries[key]; ok {
		s.lru.MoveToFront(e.node)
		c.hits.Add(1)
		return e.value
	}

	c.misses.Add(1)
	value := create()
	if value == nil {
		return nil
	}
	c.evictLocked(s)
	node := s.lru.PushFront(key)
	s.entries[key] = &entry{value: value, node: node}
	return value
}

func (c *ShapingCache) evictLocked(s *shard) {
	for s.lru.Len() >= c.capacity {
		oldest, ok := s.lru.RemoveOldest()
		if !ok {
			break
		}
		delete(s.entries, oldest)
		c.evictions.Add(1)
	}
}

// Delete removes the entry for key.
func (c *ShapingCache) Delete(key Key) bool {
	s := c.shardFor(&key)
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		return false
	}
	s.lru.Remove(e.node)
	delete(s.entries, key)
	return true
}

// Clear removes all entries.
func (c *ShapingCache) Clear() {
	for _, s := range c.shards {
		s.mu.Lock()
		s.entries = make(map[Key]*entry)
		s.lru.Clear()
		s.mu.Unlock()
	}
}

// Len returns the number of cached entries across all shards.
func (c *ShapingCache) Len() int {
	total := 0
	for _, s := range c.shards {
		s.mu.RLock()
		total += len(s.entries)
		s.mu.RUnlock()
	}
	return total
}

// Stats reports the cache counters.
type Stats struct {
	Len       int
	Hits      uint64
	Misses    uint64
	Evictions uint64
	HitRate   float64
}

// Stats returns a snapshot of the cache counters.
func (c *ShapingCache) Stats() Stats {
	hits := c.hits.Load()
	misses := c.misses.Load()
	var rate float64
	if total := hits + misses; total > 0 {
		rate = float64(hits) / float64(total)
	}
	return Stats{
		Len:       c.Len(),
		Hits:      hits,
		Misses:    misses,
		Evictions: c.evictions.Load(),
		HitRate:   rate,
	}
}
