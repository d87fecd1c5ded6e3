package egraph

import (
	"fmt"
	"io"
	"sort"

	"github.com/janvaclavik/govar"
)

// snapshot is a plain-data view of an EGraph's classes, built fresh on
// every Dump/Sdump call, since govar walks ordinary Go values by
// reflection and has no notion of this package's internal tables.
type snapshot struct {
	Classes []classSnapshot
	Root    Id
}

type classSnapshot struct {
	Id       Id
	Nodes    []string
	Parents  []string
	Analyses map[string]any
}

func (e *EGraph) snapshot() snapshot {
	ids := e.classes.Ids()
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	s := snapshot{Root: e.Root()}
	for _, id := range ids {
		cs := classSnapshot{Id: id}
		for _, n := range e.classes.Nodes(id) {
			cs.Nodes = append(cs.Nodes, fmt.Sprintf("%v", n))
		}
		for _, p := range e.parents.Parents(id) {
			cs.Parents = append(cs.Parents, fmt.Sprintf("%v -> %s", p.Node, p.Class))
		}
		for _, st := range e.analyses {
			if v, ok := st.get(id); ok {
				if cs.Analyses == nil {
					cs.Analyses = make(map[string]any)
				}
				cs.Analyses[st.analysis.Name()] = v
			}
		}
		s.Classes = append(s.Classes, cs)
	}
	return s
}

// Dump prints a full, colored rendering of the e-graph's classes,
// member nodes, parents and analysis values to stdout, using
// github.com/janvaclavik/govar the same way its own Dump wraps
// NewDumper(DefaultConfig).
func (e *EGraph) Dump() {
	govar.Dump(e.snapshot())
}

// Sdump returns the same rendering Dump prints, as a string.
func (e *EGraph) Sdump() string {
	return govar.Sdump(e.snapshot())
}

// Fdump writes the same rendering Dump prints to w, without colors.
func (e *EGraph) Fdump(w io.Writer) {
	govar.FdumpNoColors(w, e.snapshot())
}

// String returns a short, single-line summary: the class and node
// counts. Unlike Sdump, it deliberately doesn't use govar, since %v in
// an error message or test failure diff needs to stay terse rather than
// a multi-line structural dump.
func (e *EGraph) String() string {
	nodes := 0
	for _, id := range e.classes.Ids() {
		nodes += len(e.classes.Nodes(id))
	}
	return fmt.Sprintf("egraph{classes:%d nodes:%d}", e.classes.Len(), nodes)
}
