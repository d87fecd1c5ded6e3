package egraph_test

import (
	"encoding/binary"
	"fmt"
	"hash/maphash"

	"github.com/egraph-go/egraph"
)

// Sym is a leaf e-node: a symbol or numeric literal with no children.
type Sym struct {
	Name string
}

func (s Sym) IsLeaf() bool              { return true }
func (s Sym) Children() []egraph.Id     { return nil }
func (s Sym) WithChildren(_ []egraph.Id) egraph.Node { return s }

func (s Sym) Equal(other egraph.Node) bool {
	o, ok := other.(Sym)
	return ok && o.Name == s.Name
}

func (s Sym) Hash(h *maphash.Hash) {
	h.WriteString("sym:")
	h.WriteString(s.Name)
}

func (s Sym) String() string { return s.Name }

// App is an application e-node: an operator applied, in order, to zero
// or more child e-class ids.
type App struct {
	Op   string
	Args []egraph.Id
}

func (a App) IsLeaf() bool          { return len(a.Args) == 0 }
func (a App) Children() []egraph.Id { return a.Args }

func (a App) WithChildren(newChildren []egraph.Id) egraph.Node {
	cp := a
	cp.Args = append([]egraph.Id(nil), newChildren...)
	return cp
}

func (a App) Equal(other egraph.Node) bool {
	o, ok := other.(App)
	if !ok || o.Op != a.Op || len(o.Args) != len(a.Args) {
		return false
	}
	for i := range a.Args {
		if a.Args[i] != o.Args[i] {
			return false
		}
	}
	return true
}

func (a App) Hash(h *maphash.Hash) {
	h.WriteString("app:")
	h.WriteString(a.Op)
	var buf [8]byte
	for _, c := range a.Args {
		binary.LittleEndian.PutUint64(buf[:], uint64(c))
		h.Write(buf[:])
	}
}

func (a App) String() string {
	return fmt.Sprintf("%s%v", a.Op, a.Args)
}
