package catalog

import (
	"fmt"
	"sort"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Entries is a concurrent safe map of public data entries keyed by ID.
// A loaded catalog never mutates its entries, so readers can share one
// Entries value freely.
type Entries struct {
	mu      sync.RWMutex
	entries map[string]*PublicDataEntry
}

// NewEntries creates a new Entries map.
func NewEntries() *Entries {
	return &Entries{
		entries: make(map[string]*PublicDataEntry),
	}
}

// Get returns an entry by id and whether it exists.
func (e *Entries) Get(id string) (*PublicDataEntry, bool) {
	e.mu.RLock()
	entry, ok := e.entries[id]
	e.mu.RUnlock()
	return entry, ok
}

// Set sets an entry by id. Returns an error if entry is nil.
func (e *Entries) Set(id string, entry *PublicDataEntry) error {
	if entry == nil {
		return fmt.Errorf("entry cannot be nil")
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.entries[id] = entry
	return nil
}

// Exists checks if an entry exists without returning it.
func (e *Entries) Exists(id string) bool {
	e.mu.RLock()
	_, exists := e.entries[id]
	e.mu.RUnlock()
	return exists
}

// Len returns the number of entries.
func (e *Entries) Len() int {
	e.mu.RLock()
	length := len(e.entries)
	e.mu.RUnlock()
	return length
}

// IDs returns the sorted entry identifiers.
func (e *Entries) IDs() []string {
	e.mu.RLock()
	ids := make([]string, 0, len(e.entries))
	for id := range e.entries {
		ids = append(ids, id)
	}
	e.mu.RUnlock()

	sort.Strings(ids)
	return ids
}

// List returns all entries ordered by display name using English collation,
// so listings match what a catalog browser would show.
func (e *Entries) List() []PublicDataEntry {
	e.mu.RLock()
	entries := make([]PublicDataEntry, 0, len(e.entries))
	for _, entry := range e.entries {
		entries = append(entries, *entry)
	}
	e.mu.RUnlock()

	c := collate.New(language.English)
	sort.Slice(entries, func(i, j int) bool {
		if cmp := c.CompareString(entries[i].Name, entries[j].Name); cmp != 0 {
			return cmp < 0
		}
		return entries[i].ID < entries[j].ID
	})
	return entries
}

// Searchable returns the entries flagged for the search subsystem, in the
// same display order as List.
func (e *Entries) Searchable() []PublicDataEntry {
	all := e.List()
	searchable := make([]PublicDataEntry, 0, len(all))
	for _, entry := range all {
		if entry.Search {
			searchable = append(searchable, entry)
		}
	}
	return searchable
}
