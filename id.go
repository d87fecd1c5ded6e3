package egraph

import "fmt"

// Id is an opaque e-class identifier. Ids are stable under [EGraph.Find]
// but may cease to be canonical after a merge; callers must always
// re-canonicalize an Id through Find before using it as a key into
// anything outside this package.
//
// The zero Id (0) never denotes a real class; an EGraph allocates class
// ids starting at 1, so a zero Id in a field means "unset".
type Id int

func (id Id) String() string {
	return fmt.Sprintf("e%d", int(id))
}
