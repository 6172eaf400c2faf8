package fleetbook

import "fmt"

// MergePolicy defines how an imported document is reconciled with the
// current store.
type MergePolicy int

const (
	// Replace discards the current records and adopts the normalized import.
	Replace MergePolicy = iota
	// Merge keeps the current records and appends the normalized import,
	// re-keying any id collision.
	Merge
)

func (p MergePolicy) String() string {
	switch p {
	case Replace:
		return "replace"
	case Merge:
		return "merge"
	default:
		return "unknown"
	}
}

// ParseMergePolicy parses a string into a MergePolicy.
func ParseMergePolicy(s string) (MergePolicy, error) {
	switch s {
	case "replace":
		return Replace, nil
	case "merge":
		return Merge, nil
	default:
		return 0, fmt.Errorf("unknown merge policy: %q", s)
	}
}
