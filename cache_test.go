package depot

import (
	"errors"
	"testing"
)

// TestCacheBasicOperations tests the basic operations of the SimpleCache
func TestCacheBasicOperations(t *testing.T) {
	const capacity = 10
	cache := FactoryNewCache[string](capacity)

	items := []string{"item1", "item2", "item3", "item4", "item5"}
	for i, item := range items {
		index, err := cache.Register(item, item)
		if err != nil {
			t.Errorf("Failed to register item %s: %v", item, err)
		}
		// Indices are dense and start at zero
		if index != i {
			t.Errorf("Index for item %s is %d, expected %d", item, index, i)
		}
	}

	for i, item := range items {
		index, found := cache.GetIndex(item)
		if !found {
			t.Errorf("Item %s not found in cache", item)
		}
		if index != i {
			t.Errorf("Index for item %s is %d, expected %d", item, index, i)
		}
		if got := *cache.GetItem(index); got != item {
			t.Errorf("Item at index %d is %s, expected %s", index, got, item)
		}
	}

	if _, found := cache.GetIndex("nonexistent"); found {
		t.Errorf("Found non-existent item in cache")
	}
	if cache.Len() != len(items) {
		t.Errorf("Len() = %d, expected %d", cache.Len(), len(items))
	}
}

// TestCacheCapacity tests the cache capacity limits
func TestCacheCapacity(t *testing.T) {
	const capacity = 5
	cache := FactoryNewCache[int](capacity)

	for i := 1; i <= capacity; i++ {
		key := "item" + string(rune(i+'0'))
		if _, err := cache.Register(key, i); err != nil {
			t.Errorf("Failed to register item %s: %v", key, err)
		}
	}

	_, err := cache.Register("overflow", 100)
	var full CacheFullError
	if !errors.As(err, &full) {
		t.Fatalf("Expected CacheFullError when exceeding capacity, got %v", err)
	}
	if full.Capacity != capacity {
		t.Errorf("Capacity = %d, expected %d", full.Capacity, capacity)
	}
}

func TestCacheDuplicateKey(t *testing.T) {
	cache := FactoryNewCache[int](5)

	if _, err := cache.Register("a", 1); err != nil {
		t.Fatal(err)
	}
	if _, err := cache.Register("a", 2); !errors.As(err, &CacheKeyExistsError{}) {
		t.Errorf("Register() error = %v, expected CacheKeyExistsError", err)
	}
	index, _ := cache.GetIndex("a")
	if got := *cache.GetItem(index); got != 1 {
		t.Errorf("Item = %d, expected the first registration", got)
	}
}

// TestCacheWithComplexTypes tests the cache with more complex data types
func TestCacheWithComplexTypes(t *testing.T) {
	cache := FactoryNewCache[Location](10)

	locations := []Location{
		{X: 1.0, Y: 2.0},
		{X: 3.0, Y: 4.0},
		{X: 5.0, Y: 6.0},
	}
	keys := []string{"loc1", "loc2", "loc3"}

	for i, loc := range locations {
		if _, err := cache.Register(keys[i], loc); err != nil {
			t.Errorf("Failed to register location %v: %v", loc, err)
		}
	}

	for i, key := range keys {
		index, found := cache.GetIndex(key)
		if !found {
			t.Errorf("Location with key %s not found", key)
			continue
		}
		loc := cache.GetItem(index)
		if *loc != locations[i] {
			t.Errorf("Location at index %d is %v, expected %v", index, *loc, locations[i])
		}
	}
}
