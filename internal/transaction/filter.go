package transaction

// FilterAll is the sentinel accepted for the type and category filters
// meaning "no restriction". An empty string means the same.
const FilterAll = "all"

// Filter narrows a ledger listing. All fields are optional and conjunctive:
// a transaction must satisfy every filter that is set. No combination is
// invalid; an empty result is a valid outcome.
type Filter struct {
	// Month matches the transaction date's YYYY-MM prefix.
	Month string

	// StartDate and EndDate bound the date range, inclusive on both ends.
	StartDate Date
	EndDate   Date

	Type     Type
	Category string
}

// Match reports whether tx satisfies every filter that is set.
func (f Filter) Match(tx *Transaction) bool {
	if f.Month != "" && tx.Date.Month() != f.Month {
		return false
	}

	if f.StartDate != "" && tx.Date < f.StartDate {
		return false
	}

	if f.EndDate != "" && tx.Date > f.EndDate {
		return false
	}

	if f.Type != "" && string(f.Type) != FilterAll && tx.Type != f.Type {
		return false
	}

	if f.Category != "" && f.Category != FilterAll && tx.Category != f.Category {
		return false
	}

	return true
}

// Apply returns the transactions matching f, preserving ledger order
// (newest first).
func Apply(txs []*Transaction, f Filter) []*Transaction {
	matches := make([]*Transaction, 0, len(txs))

	for _, tx := range txs {
		if f.Match(tx) {
			matches = append(matches, tx)
		}
	}

	return matches
}
