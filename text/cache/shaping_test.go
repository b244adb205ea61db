package cache

import (
	"fmt"
	"sync"
	"testing"

	"github.com/mozeal/PDFMathTranslate/text"
)

func testKey(s string) Key {
	return NewKey(s, "/fonts/test.ttf", "en", 12, text.DirectionLTR, text.ScriptLatin)
}

func testRun(advance float64) *text.ShapedRun {
	return &text.ShapedRun{Advance: advance}
}

func TestCacheSetGet(t *testing.T) {
	c := NewShapingCache(8)
	key := testKey("hello")

	if _, ok := c.Get(key); ok {
		t.Fatal("unexpected hit on empty cache")
	}

	want := testRun(42)
	c.Set(key, want)
	got, ok := c.Get(key)
	if !ok || got != want {
		t.Fatalf("Get = %v, %v; want the stored run", got, ok)
	}
}

func TestCacheKeyDiscriminates(t *testing.T) {
	a := NewKey("same", "f.ttf", "en", 12, text.DirectionLTR, text.ScriptLatin)
	variants := []Key{
		NewKey("other", "f.ttf", "en", 12, text.DirectionLTR, text.ScriptLatin),
		NewKey("same", "g.ttf", "en", 12, text.DirectionLTR, text.ScriptLatin),
		NewKey("same", "f.ttf", "th", 12, text.DirectionLTR, text.ScriptLatin),
		NewKey("same", "f.ttf", "en", 13, text.DirectionLTR, text.ScriptLatin),
		NewKey("same", "f.ttf", "en", 12, text.DirectionRTL, text.ScriptLatin),
		NewKey("same", "f.ttf", "en", 12, text.DirectionLTR, text.ScriptThai),
	}
	for i, v := range variants {
		if v == a {
			t.Errorf("variant %d collides with base key", i)
		}
	}
}

func TestCacheGetOrCreate(t *testing.T) {
	c := NewShapingCache(8)
	key := testKey("text")

	calls := 0
	create := func() *text.ShapedRun {
		calls++
		return testRun(1)
	}
	first := c.GetOrCreate(key, create)
	second := c.GetOrCreate(key, create)
	if calls != 1 {
		t.Errorf("create called %d times, want 1", calls)
	}
	if first != second {
		t.Error("GetOrCreate returned different values for the same key")
	}

	stats := c.Stats()
	if stats.Hits != 1 || stats.Misses != 1 {
		t.Errorf("stats = %+v, want 1 hit 1 miss", stats)
	}
}

func TestCacheEviction(t *testing.T) {
	c := NewShapingCache(2)

	// Overfill well past total capacity so every shard evicts.
	n := shardCount * 8
	for i := 0; i < n; i++ {
		c.Set(testKey(fmt.Sprintf("entry-%d", i)), testRun(float64(i)))
	}
	if got, max := c.Len(), shardCount*2; got > max {
		t.Errorf("Len = %d, want at most %d", got, max)
	}
	if c.Stats().Evictions == 0 {
		t.Error("expected evictions after overfilling")
	}
}

func TestCacheLRUOrder(t *testing.T) {
	c := NewShapingCache(4)
	keys := make([]Key, 0, 4)
	// Find keys landing in the same shard so eviction order is observable.
	probe := testKey("probe")
	shardIdx := probe.shardIndex()
	for i := 0; len(keys) < 4; i++ {
		k := testKey(fmt.Sprintf("k%d", i))
		if k.shardIndex() == shardIdx {
			keys = append(keys, k)
		}
	}
	for i, k := range keys {
		c.Set(k, testRun(float64(i)))
	}
	// Touch the oldest, then insert a new entry into the same shard; the
	// second oldest must be evicted instead.
	c.Get(keys[0])
	extra := testKey("probe")
	c.Set(extra, testRun(99))

	if _, ok := c.Get(keys[0]); !ok {
		t.Error("recently used entry was evicted")
	}
	if _, ok := c.Get(keys[1]); ok {
		t.Error("least recently used entry survived eviction")
	}
}

func TestCacheDeleteClear(t *testing.T) {
	c := NewShapingCache(8)
	key := testKey("x")
	c.Set(key, testRun(1))

	if !c.Delete(key) {
		t.Error("Delete returned false for existing key")
	}
	if c.Delete(key) {
		t.Error("Delete returned true for missing key")
	}

	c.Set(key, testRun(1))
	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len after Clear = %d", c.Len())
	}
}

func TestCacheConcurrent(t *testing.T) {
	c := NewShapingCache(16)
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				key := testKey(fmt.Sprintf("g%d-%d", g, i%32))
				c.GetOrCreate(key, func() *text.ShapedRun { return testRun(1) })
				c.Get(key)
			}
		}(g)
	}
	wg.Wait()
}
