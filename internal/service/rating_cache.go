package service

import (
	"sync"
	"time"

	"procook-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

// RatingSummaryCache keeps recent per-recipe rating aggregates. A nil cache
// is valid and never hits.
//
// Every invalidation bumps a per-recipe version. Readers take a CacheTicket
// before going to the database and their result is stored only while the
// version is unchanged, so a read that raced a write is never cached.
type RatingSummaryCache struct {
	lru *expirable.LRU[uuid.UUID, models.RatingSummary]

	mu       sync.Mutex
	epoch    uint64
	versions map[uuid.UUID]uint64
}

// CacheTicket records the cache state a reader observed before its database read
type CacheTicket struct {
	recipeID uuid.UUID
	epoch    uint64
	version  uint64
}

// NewRatingSummaryCache creates a cache holding up to size summaries for ttl
func NewRatingSummaryCache(size int, ttl time.Duration) *RatingSummaryCache {
	if size <= 0 {
		return nil
	}
	return &RatingSummaryCache{
		lru:      expirable.NewLRU[uuid.UUID, models.RatingSummary](size, nil, ttl),
		versions: make(map[uuid.UUID]uint64),
	}
}

// Lookup returns the cached summary, or a ticket to hand to Store after reading it
func (c *RatingSummaryCache) Lookup(recipeID uuid.UUID) (models.RatingSummary, CacheTicket, bool) {
	if c == nil {
		return models.RatingSummary{}, CacheTicket{}, false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if summary, ok := c.lru.Get(recipeID); ok {
		return summary, CacheTicket{}, true
	}
	return models.RatingSummary{}, CacheTicket{recipeID: recipeID, epoch: c.epoch, version: c.versions[recipeID]}, false
}

// Store caches summary unless the recipe was invalidated since ticket was taken.
// It reports whether the summary was kept.
func (c *RatingSummaryCache) Store(ticket CacheTicket, summary models.RatingSummary) bool {
	if c == nil || ticket.recipeID != summary.RecipeID {
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if ticket.epoch != c.epoch || ticket.version != c.versions[ticket.recipeID] {
		return false
	}
	c.lru.Add(summary.RecipeID, summary)
	return true
}

// Invalidate drops the cached summaries of the given recipes. Call it after
// the write that changed them has committed.
func (c *RatingSummaryCache) Invalidate(recipeIDs ...uuid.UUID) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, id := range recipeIDs {
		c.versions[id]++
		c.lru.Remove(id)
	}
}

// Purge drops every cached summary
func (c *RatingSummaryCache) Purge() {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.epoch++
	c.versions = make(map[uuid.UUID]uint64)
	c.lru.Purge()
}
