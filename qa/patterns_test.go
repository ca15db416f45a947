package qa

import "testing"

func TestPatternCacheReturnsSameInstance(t *testing.T) {
	cache := NewPatternCache()

	first := cache.Get(`is defined as`)
	second := cache.Get(`is defined as`)

	if first != second {
		t.Error("Get() returned different instances for the same expression")
	}
	if cache.Len() != 1 {
		t.Errorf("cache.Len() = %d, want 1", cache.Len())
	}

	other := cache.Get(`refers to`)
	if other == first {
		t.Error("Get() returned the same instance for different expressions")
	}
	if cache.Len() != 2 {
		t.Errorf("cache.Len() = %d, want 2", cache.Len())
	}
}

func TestPatternCacheCaseInsensitive(t *testing.T) {
	cache := NewPatternCache()

	re := cache.Get(`for example`)
	if !re.MatchString("For Example, sunflowers track the sun") {
		t.Error("cached pattern should match case-insensitively")
	}
	if re.MatchString("for instance") {
		t.Error("cached pattern matched unrelated text")
	}
}
