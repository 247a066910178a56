package summary

import (
	"sync"

	"github.com/mitchellh/hashstructure/v2"
	"github.com/theirongolddev/finsimples/internal/model"
)

// settingsKey is the hashable projection of UserSettings. decimal.Decimal
// has unexported fields, so amounts go in as strings.
type settingsKey struct {
	UserName    string
	SavingsGoal string
	Age         string
	Profession  string
}

type cacheKey struct {
	month    string
	today    model.Date
	settings uint64
	version  uint64
}

// Cache memoizes Compute for a ledger version. Any mutation of the ledger,
// goals or settings must bump the version passed to Get.
type Cache struct {
	mu      sync.Mutex
	entries map[cacheKey]model.FinancialSummary
	version uint64
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[cacheKey]model.FinancialSummary)}
}

// Get returns the summary for ref's month, computing it on a miss. monthTxs
// is only read on a miss.
func (c *Cache) Get(version uint64, monthTxs []model.Transaction, settings model.UserSettings, ref, today model.Date) model.FinancialSummary {
	h, err := hashstructure.Hash(settingsKey{
		UserName:    settings.UserName,
		SavingsGoal: settings.SavingsGoal.String(),
		Age:         settings.Age,
		Profession:  settings.Profession,
	}, hashstructure.FormatV2, nil)
	if err != nil {
		return Compute(monthTxs, settings, ref, today)
	}

	key := cacheKey{month: ref.MonthKey(), today: today, settings: h, version: version}

	c.mu.Lock()
	defer c.mu.Unlock()

	// Entries from older versions can never be hit again.
	if version != c.version {
		c.entries = make(map[cacheKey]model.FinancialSummary)
		c.version = version
	}
	if s, ok := c.entries[key]; ok {
		return s
	}
	s := Compute(monthTxs, settings, ref, today)
	c.entries[key] = s
	return s
}
