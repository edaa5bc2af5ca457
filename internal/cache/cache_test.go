package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTTLCache_SetGet(t *testing.T) {
	c := New()
	defer c.Close()

	c.Set("top_products:1:iFood", []string{"pizza"}, time.Minute)

	value, ok := c.Get("top_products:1:iFood")
	assert.True(t, ok)
	assert.Equal(t, []string{"pizza"}, value)

	_, ok = c.Get("outra_chave")
	assert.False(t, ok)
}

func TestTTLCache_Expiration(t *testing.T) {
	c := New()
	defer c.Close()

	c.Set("efemera", 42, 10*time.Millisecond)
	time.Sleep(20 * time.Millisecond)

	_, ok := c.Get("efemera")
	assert.False(t, ok)
}

func TestTTLCache_DeleteAndClear(t *testing.T) {
	c := New()
	defer c.Close()

	c.Set("a", 1, time.Minute)
	c.Set("b", 2, time.Minute)

	c.Delete("a")
	_, ok := c.Get("a")
	assert.False(t, ok)

	c.Clear()
	_, ok = c.Get("b")
	assert.False(t, ok)
}

func TestKey(t *testing.T) {
	key := Key("top_products", int64(3), "iFood", 4, 19, 23)
	assert.Equal(t, "top_products:3:iFood:4:19:23", key)

	// Parâmetros diferentes nunca colidem na mesma chave
	other := Key("top_products", int64(3), "iFood", 4, 19, 22)
	assert.NotEqual(t, key, other)
}
