package cache

import (
	"testing"
	"time"
)

func TestCacheSetGet(t *testing.T) {
	c := New[string](0)
	c.Set("org.mpris.MediaPlayer2.vlc", "VLC")

	val, exists := c.Get("org.mpris.MediaPlayer2.vlc")
	if !exists {
		t.Fatal("key should exist")
	}
	if val != "VLC" {
		t.Fatalf("expected 'VLC', got '%s'", val)
	}
}

func TestCacheGetMissing(t *testing.T) {
	c := New[string](0)

	_, exists := c.Get("missing")
	if exists {
		t.Fatal("missing key should not exist")
	}
}

func TestCacheTTL(t *testing.T) {
	c := New[string](50 * time.Millisecond)
	c.Set("key1", "value1")

	if _, exists := c.Get("key1"); !exists {
		t.Fatal("key1 should exist immediately after set")
	}

	time.Sleep(80 * time.Millisecond)

	if _, exists := c.Get("key1"); exists {
		t.Fatal("key1 should be expired after TTL")
	}
}

func TestCacheZeroTTLNeverExpires(t *testing.T) {
	c := New[string](0)
	c.Set("key1", "value1")

	time.Sleep(50 * time.Millisecond)

	if _, exists := c.Get("key1"); !exists {
		t.Fatal("key1 should never expire with TTL=0")
	}
}

func TestCacheDelete(t *testing.T) {
	c := New[int](0)
	c.Set("a", 1)
	c.Set("b", 2)

	c.Delete("a")

	if _, exists := c.Get("a"); exists {
		t.Error("deleted key should not exist")
	}
	if v, exists := c.Get("b"); !exists || v != 2 {
		t.Error("other key should be untouched")
	}
}

func TestCacheClear(t *testing.T) {
	c := New[int](0)
	c.Set("a", 1)
	c.Set("b", 2)

	c.Clear()

	if _, exists := c.Get("a"); exists {
		t.Error("cache should be empty after Clear")
	}
	if _, exists := c.Get("b"); exists {
		t.Error("cache should be empty after Clear")
	}
}
