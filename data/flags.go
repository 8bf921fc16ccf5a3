package data

import "strings"

// Flag is one outstanding-validation marker on a data node.
type Flag uint8

const (
	// FlagMandatory marks pending cardinality, key, and obsolete checks.
	FlagMandatory Flag = 1 << iota
	// FlagUnique marks a pending declared-unique check on a list instance.
	FlagUnique
	// FlagDup marks a pending sibling-duplicate check.
	FlagDup
	// FlagLeafref marks a pending leafref target resolution.
	FlagLeafref
)

// String returns the flag name.
func (f Flag) String() string {
	switch f {
	case FlagMandatory:
		return "mandatory"
	case FlagUnique:
		return "unique"
	case FlagDup:
		return "dup"
	case FlagLeafref:
		return "leafref"
	default:
		return "unknown"
	}
}

// allFlags enumerates every defined flag, used by String and AllPending.
var allFlags = []Flag{FlagMandatory, FlagUnique, FlagDup, FlagLeafref}

// FlagSet is the set of checks still outstanding on a node. The zero value
// is the empty set, meaning the node is structurally validated.
type FlagSet uint8

// AllPending is the flag set a freshly attached node starts with.
const AllPending = FlagSet(FlagMandatory | FlagUnique | FlagDup | FlagLeafref)

// Has reports whether f is in the set.
func (s FlagSet) Has(f Flag) bool { return s&FlagSet(f) != 0 }

// Empty reports whether no checks remain.
func (s FlagSet) Empty() bool { return s == 0 }

// Set arms f.
func (s *FlagSet) Set(f Flag) { *s |= FlagSet(f) }

// Clear disarms f. Clearing is monotonic within one validation attempt:
// no validator component re-arms a flag it cleared.
func (s *FlagSet) Clear(f Flag) { *s &^= FlagSet(f) }

// String returns the set as a comma-joined list of flag names, or "none".
func (s FlagSet) String() string {
	var names []string
	for _, f := range allFlags {
		if s.Has(f) {
			names = append(names, f.String())
		}
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, ",")
}
