package domain

import (
	"sort"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type ReferenceUnit string

const (
	UnitMass  ReferenceUnit = "g"
	UnitCount ReferenceUnit = "unit"
)

// ParseReferenceUnit accepts the stored form plus a few spellings people type.
func ParseReferenceUnit(raw string) (ReferenceUnit, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "g", "gram", "grams", "mass":
		return UnitMass, nil
	case "unit", "units", "count", "u":
		return UnitCount, nil
	default:
		return "", invalid("unit", "unsupported unit %q (use g or unit)", raw)
	}
}

func (u ReferenceUnit) Valid() bool {
	switch u {
	case UnitMass, UnitCount:
		return true
	default:
		return false
	}
}

// ReferenceAmount is the canonical amount nutrients are expressed per:
// 100 for mass-based entries, 1 for count-based entries.
func (u ReferenceUnit) ReferenceAmount() float64 {
	if u == UnitCount {
		return 1
	}
	return 100
}

func (u ReferenceUnit) Label() string {
	if u == UnitCount {
		return "unit"
	}
	return "100g"
}

type CatalogEntry struct {
	ID               string
	Name             string
	Unit             ReferenceUnit
	Nutrients        Nutrients
	LastUsedAt       time.Time
	LastLoggedAmount float64
}

// PrefillAmount is the amount offered when the entry is picked for logging.
func (e CatalogEntry) PrefillAmount() float64 {
	if e.LastLoggedAmount > 0 {
		return e.LastLoggedAmount
	}
	return e.Unit.ReferenceAmount()
}

func (e CatalogEntry) Validate() error {
	if strings.TrimSpace(e.Name) == "" {
		return invalid("name", "is required")
	}
	if !e.Unit.Valid() {
		return invalid("unit", "unsupported unit %q", e.Unit)
	}

	return e.Nutrients.Validate()
}

type Catalog []CatalogEntry

// Lookup finds an entry by exact name.
func (c Catalog) Lookup(name string) (CatalogEntry, bool) {
	if i := c.index(name); i >= 0 {
		return c[i], true
	}
	return CatalogEntry{}, false
}

func (c Catalog) index(name string) int {
	for i := range c {
		if c[i].Name == name {
			return i
		}
	}
	return -1
}

// Upsert returns a catalog where the entry named name carries the given unit and
// per-reference nutrients. A new entry gets id; an existing one keeps its id and
// usage fields.
func (c Catalog) Upsert(id, name string, unit ReferenceUnit, nutrients Nutrients) Catalog {
	next := make(Catalog, len(c), len(c)+1)
	copy(next, c)

	if i := next.index(name); i >= 0 {
		next[i].Unit = unit
		next[i].Nutrients = nutrients
		return next
	}

	return append(next, CatalogEntry{
		ID:        id,
		Name:      name,
		Unit:      unit,
		Nutrients: nutrients,
	})
}

func (c Catalog) markUsed(name string, at time.Time, amount float64) Catalog {
	next := make(Catalog, len(c))
	copy(next, c)

	if i := next.index(name); i >= 0 {
		next[i].LastUsedAt = at
		next[i].LastLoggedAmount = amount
	}

	return next
}

// Sorted orders entries by most recent use, then by name. Entries that were never
// used sort after every used entry.
func (c Catalog) Sorted() Catalog {
	sorted := make(Catalog, len(c))
	copy(sorted, c)

	collator := collate.New(language.English)
	sort.SliceStable(sorted, func(i, j int) bool {
		left, right := sorted[i].LastUsedAt, sorted[j].LastUsedAt
		if !left.Equal(right) {
			return usedAfter(left, right)
		}
		return collator.CompareString(sorted[i].Name, sorted[j].Name) < 0
	})

	return sorted
}

// Search keeps entries whose name contains query, ignoring case, in Sorted order.
func (c Catalog) Search(query string) Catalog {
	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return c.Sorted()
	}

	matches := make(Catalog, 0, len(c))
	for _, entry := range c {
		if strings.Contains(strings.ToLower(entry.Name), needle) {
			matches = append(matches, entry)
		}
	}

	return matches.Sorted()
}

func usedAfter(left, right time.Time) bool {
	if left.IsZero() {
		return false
	}
	if right.IsZero() {
		return true
	}
	return left.After(right)
}
