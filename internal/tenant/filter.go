package tenant

// Filter is an equality constraint on a column. A nil Value marks the
// filter as unresolved and it is skipped when building queries, so
// callers can declare filters before their inputs are known.
type Filter struct {
	Field string
	Value any
}

// Order declares the sort column for fetches.
type Order struct {
	Field     string
	Ascending bool
}

// ActiveFilters returns the filters with resolved values, preserving
// declaration order.
func ActiveFilters(filters []Filter) []Filter {
	var active []Filter
	for _, f := range filters {
		if f.Value != nil {
			active = append(active, f)
		}
	}
	return active
}
