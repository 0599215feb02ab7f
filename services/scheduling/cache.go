package scheduling

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"bookhive/models"

	lru "github.com/hashicorp/golang-lru/v2"
)

// CacheConfig tunes the availability cache. Zero values fall back to the
// defaults below. Now is injectable so tests can advance time past a TTL.
type CacheConfig struct {
	SlotTTL   time.Duration
	RosterTTL time.Duration
	Size      int
	Now       func() time.Time
}

const (
	defaultSlotTTL   = 2 * time.Minute
	defaultRosterTTL = 5 * time.Minute
	defaultCacheSize = 4096
)

type slotEntry struct {
	slots    []string
	storedAt time.Time
}

type rosterEntry struct {
	roster   []models.AvailableStaff
	storedAt time.Time
}

// AvailabilityCache is a process-local cache for generated slot lists and
// skill-matched rosters. It is an explicit instance injected into the
// engine rather than package state, so tests and tenants can isolate it.
// It is strictly an optimization: losing it changes latency, never
// observable behavior, because write paths always re-check live data.
type AvailabilityCache struct {
	mu        sync.RWMutex
	slots     *lru.Cache[string, slotEntry]
	rosters   *lru.Cache[string, rosterEntry]
	slotTTL   time.Duration
	rosterTTL time.Duration
	now       func() time.Time
}

// NewAvailabilityCache builds a cache with the given tuning.
func NewAvailabilityCache(cfg CacheConfig) (*AvailabilityCache, error) {
	if cfg.SlotTTL <= 0 {
		cfg.SlotTTL = defaultSlotTTL
	}
	if cfg.RosterTTL <= 0 {
		cfg.RosterTTL = defaultRosterTTL
	}
	if cfg.Size <= 0 {
		cfg.Size = defaultCacheSize
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	slots, err := lru.New[string, slotEntry](cfg.Size)
	if err != nil {
		return nil, fmt.Errorf("init slot cache: %w", err)
	}
	rosters, err := lru.New[string, rosterEntry](cfg.Size)
	if err != nil {
		return nil, fmt.Errorf("init roster cache: %w", err)
	}

	return &AvailabilityCache{
		slots:     slots,
		rosters:   rosters,
		slotTTL:   cfg.SlotTTL,
		rosterTTL: cfg.RosterTTL,
		now:       cfg.Now,
	}, nil
}

func slotKey(tenantID, staffID, date string, duration int) string {
	return fmt.Sprintf("%s|%s|%s|%d", tenantID, staffID, date, duration)
}

func rosterKey(tenantID, serviceID string) string {
	return fmt.Sprintf("%s|%s", tenantID, serviceID)
}

// GetSlots returns a cached slot list if it is still live.
func (c *AvailabilityCache) GetSlots(tenantID, staffID, date string, duration int) ([]string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.slots.Get(slotKey(tenantID, staffID, date, duration))
	if !ok || c.now().Sub(entry.storedAt) >= c.slotTTL {
		return nil, false
	}
	return entry.slots, true
}

// PutSlots stores a freshly generated slot list.
func (c *AvailabilityCache) PutSlots(tenantID, staffID, date string, duration int, slots []string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.slots.Add(slotKey(tenantID, staffID, date, duration), slotEntry{
		slots:    slots,
		storedAt: c.now(),
	})
}

// GetRoster returns a cached skill-matched roster if it is still live.
func (c *AvailabilityCache) GetRoster(tenantID, serviceID string) ([]models.AvailableStaff, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.rosters.Get(rosterKey(tenantID, serviceID))
	if !ok || c.now().Sub(entry.storedAt) >= c.rosterTTL {
		return nil, false
	}
	return entry.roster, true
}

// PutRoster stores a skill-matched roster.
func (c *AvailabilityCache) PutRoster(tenantID, serviceID string, roster []models.AvailableStaff) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.rosters.Add(rosterKey(tenantID, serviceID), rosterEntry{
		roster:   roster,
		storedAt: c.now(),
	})
}

// InvalidateStaff drops the slot entries of one staff member along with the
// tenant's roster entries. Invalidation is deliberately coarse: dropping a
// little too much costs a recomputation, never correctness.
func (c *AvailabilityCache) InvalidateStaff(tenantID, staffID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	prefix := tenantID + "|" + staffID + "|"
	for _, key := range c.slots.Keys() {
		if strings.HasPrefix(key, prefix) {
			c.slots.Remove(key)
		}
	}
	c.dropTenantRostersLocked(tenantID)
}

// InvalidateTenant drops every entry belonging to a tenant. Used for
// bookings with no staff assignment and for roster-affecting writes whose
// staff scope is unknown.
func (c *AvailabilityCache) InvalidateTenant(tenantID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	prefix := tenantID + "|"
	for _, key := range c.slots.Keys() {
		if strings.HasPrefix(key, prefix) {
			c.slots.Remove(key)
		}
	}
	c.dropTenantRostersLocked(tenantID)
}

func (c *AvailabilityCache) dropTenantRostersLocked(tenantID string) {
	prefix := tenantID + "|"
	for _, key := range c.rosters.Keys() {
		if strings.HasPrefix(key, prefix) {
			c.rosters.Remove(key)
		}
	}
}
