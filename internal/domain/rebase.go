package domain

// ScaleToAmount converts an entry's per-reference nutrients into the contribution
// of amount, in the entry's unit.
func ScaleToAmount(entry CatalogEntry, amount float64) Nutrients {
	return entry.Nutrients.Scale(amount / entry.Unit.ReferenceAmount())
}

// Rebase converts nutrients asserted for servingSize of unit back to the unit's
// canonical reference amount. A nil servingSize means the reference amount itself.
func Rebase(asserted Nutrients, unit ReferenceUnit, servingSize *float64) (Nutrients, error) {
	if !unit.Valid() {
		return Nutrients{}, invalid("unit", "unsupported unit %q", unit)
	}
	if err := asserted.Validate(); err != nil {
		return Nutrients{}, err
	}

	serving := unit.ReferenceAmount()
	if servingSize != nil {
		serving = *servingSize
	}
	if !isFinite(serving) || serving <= 0 {
		return Nutrients{}, invalid("serving size", "must be greater than zero, got %v", serving)
	}

	return asserted.Scale(unit.ReferenceAmount() / serving), nil
}
