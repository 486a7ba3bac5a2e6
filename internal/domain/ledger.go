package domain

import (
	"strings"
	"time"
)

// LogEntry is a frozen snapshot of what was eaten. Nutrients are the contribution
// of Amount, already scaled.
type LogEntry struct {
	ID        string
	Name      string
	Amount    float64
	Unit      ReferenceUnit
	Category  string
	Nutrients Nutrients
}

func (e LogEntry) Calories() int {
	return e.Nutrients.Calories()
}

type LogFoodCommand struct {
	Day      DayKey
	EntryID  string
	Name     string
	Amount   float64
	Unit     ReferenceUnit
	Category string
	// Nutrients are the as-eaten values for Amount. They are only read when Name
	// has no catalog entry yet.
	Nutrients Nutrients
	// CatalogID is used when a new catalog entry has to be created.
	CatalogID string
	// RebaseNewEntry stores a new catalog entry rebased from Amount to the
	// reference amount instead of storing Nutrients as-is.
	RebaseNewEntry bool
	At             time.Time
}

func (c LogFoodCommand) validate() error {
	if c.Day == "" {
		return invalid("date", "is required")
	}
	if strings.TrimSpace(c.Name) == "" {
		return invalid("name", "is required")
	}
	if !isFinite(c.Amount) || c.Amount <= 0 {
		return invalid("amount", "must be greater than zero, got %v", c.Amount)
	}
	if c.Unit != "" && !c.Unit.Valid() {
		return invalid("unit", "unsupported unit %q", c.Unit)
	}
	return c.Nutrients.Validate()
}

// LogFood records amount of the named food on cmd.Day. A known catalog entry is
// forward-scaled; an unknown name is logged with the entered values and added to
// the catalog. The matched entry's usage fields are updated either way.
func LogFood(s State, cmd LogFoodCommand) (State, LogEntry, error) {
	if err := cmd.validate(); err != nil {
		return s, LogEntry{}, err
	}

	name := strings.TrimSpace(cmd.Name)
	next := s.clone()

	entry := LogEntry{
		ID:       cmd.EntryID,
		Name:     name,
		Amount:   cmd.Amount,
		Category: strings.TrimSpace(cmd.Category),
	}

	if known, ok := next.Library.Lookup(name); ok {
		entry.Unit = known.Unit
		entry.Nutrients = ScaleToAmount(known, cmd.Amount)
	} else {
		unit := cmd.Unit
		if unit == "" {
			unit = UnitMass
		}
		entry.Unit = unit
		entry.Nutrients = cmd.Nutrients.Round()

		canonical := entry.Nutrients
		if cmd.RebaseNewEntry {
			amount := cmd.Amount
			rebased, err := Rebase(cmd.Nutrients, unit, &amount)
			if err != nil {
				return s, LogEntry{}, err
			}
			canonical = rebased
		}
		next.Library = next.Library.Upsert(cmd.CatalogID, name, unit, canonical)
	}

	next.Library = next.Library.markUsed(name, cmd.At, cmd.Amount)
	next.History[cmd.Day] = prepend(s.History[cmd.Day], entry)

	return next, entry, nil
}

// DeleteFood removes the log entry with id from day. It reports whether anything
// was removed; a missing id leaves the state untouched.
func DeleteFood(s State, day DayKey, id string) (State, bool) {
	entries := s.History[day]
	kept := make([]LogEntry, 0, len(entries))
	for _, entry := range entries {
		if entry.ID != id {
			kept = append(kept, entry)
		}
	}
	if len(kept) == len(entries) {
		return s, false
	}

	next := s.clone()
	next.History[day] = kept
	return next, true
}

type UpsertCatalogCommand struct {
	ID        string
	Name      string
	Unit      ReferenceUnit
	Nutrients Nutrients
}

// UpsertCatalogEntry inserts or replaces per-reference nutrients for a name.
func UpsertCatalogEntry(s State, cmd UpsertCatalogCommand) (State, CatalogEntry, error) {
	candidate := CatalogEntry{Name: strings.TrimSpace(cmd.Name), Unit: cmd.Unit, Nutrients: cmd.Nutrients}
	if err := candidate.Validate(); err != nil {
		return s, CatalogEntry{}, err
	}

	next := s.clone()
	next.Library = next.Library.Upsert(cmd.ID, candidate.Name, candidate.Unit, candidate.Nutrients.Round())
	saved, _ := next.Library.Lookup(candidate.Name)
	return next, saved, nil
}

type EditCatalogCommand struct {
	Name    string
	NewName string
	Unit    ReferenceUnit
	// ServingSize is the amount Nutrients were asserted for; nil means the
	// reference amount of Unit.
	ServingSize *float64
	Nutrients   Nutrients
}

// EditCatalogEntry re-normalizes an entry from values the user asserts for a
// serving. Switching unit discards the old values; nothing converts between mass
// and count. Existing log entries are snapshots and are not touched.
func EditCatalogEntry(s State, cmd EditCatalogCommand) (State, CatalogEntry, error) {
	i := s.Library.index(cmd.Name)
	if i < 0 {
		return s, CatalogEntry{}, ErrCatalogEntryNotFound
	}

	unit := cmd.Unit
	if unit == "" {
		unit = s.Library[i].Unit
	}
	canonical, err := Rebase(cmd.Nutrients, unit, cmd.ServingSize)
	if err != nil {
		return s, CatalogEntry{}, err
	}

	newName := strings.TrimSpace(cmd.NewName)
	if newName == "" {
		newName = s.Library[i].Name
	}
	if newName != s.Library[i].Name {
		if _, taken := s.Library.Lookup(newName); taken {
			return s, CatalogEntry{}, invalid("name", "%q already exists", newName)
		}
	}

	next := s.clone()
	next.Library[i].Name = newName
	next.Library[i].Unit = unit
	next.Library[i].Nutrients = canonical

	return next, next.Library[i], nil
}

func prepend[T any](items []T, item T) []T {
	next := make([]T, 0, len(items)+1)
	next = append(next, item)
	return append(next, items...)
}
