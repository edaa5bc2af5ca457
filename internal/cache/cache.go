// Package cache implementa a memoização de resultados de consulta por
// (nome da operação, tupla de parâmetros) com tempo de vida limitado.
// É apenas uma otimização: entradas podem expirar ou ser invalidadas a
// qualquer momento sem afetar a correção dos resultados.
package cache

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

type entry struct {
	value     interface{}
	expiresAt time.Time
}

func (e entry) expired() bool {
	return time.Now().After(e.expiresAt)
}

type TTLCache struct {
	mu      sync.RWMutex
	entries map[string]entry
	stop    chan struct{}
}

// New cria o cache e inicia a limpeza periódica de entradas expiradas.
func New() *TTLCache {
	c := &TTLCache{
		entries: make(map[string]entry),
		stop:    make(chan struct{}),
	}

	go c.cleanupLoop()

	return c
}

func (c *TTLCache) Get(key string) (interface{}, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[key]
	if !ok || e.expired() {
		return nil, false
	}

	return e.value, true
}

func (c *TTLCache) Set(key string, value interface{}, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = entry{
		value:     value,
		expiresAt: time.Now().Add(ttl),
	}
}

func (c *TTLCache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, key)
}

func (c *TTLCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]entry)
}

// Close encerra a goroutine de limpeza.
func (c *TTLCache) Close() {
	close(c.stop)
}

func (c *TTLCache) cleanupLoop() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.mu.Lock()
			for key, e := range c.entries {
				if e.expired() {
					delete(c.entries, key)
				}
			}
			c.mu.Unlock()
		case <-c.stop:
			return
		}
	}
}

// Key monta uma chave de cache a partir do nome da operação e dos
// parâmetros, na ordem em que afetam o resultado.
func Key(operation string, params ...interface{}) string {
	parts := make([]string, 0, len(params)+1)
	parts = append(parts, operation)
	for _, param := range params {
		parts = append(parts, fmt.Sprintf("%v", param))
	}
	return strings.Join(parts, ":")
}
