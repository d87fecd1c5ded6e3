// Package egraph implements an e-graph: a compact representation of
// congruence-closed equivalence classes over terms of an algebraic
// language.
//
// An e-graph supports incremental insertion of terms ([EGraph.Add],
// [EGraph.AddExpr]), assertion of equalities between existing terms
// ([EGraph.Merge]), and restoration of the congruence invariant after a
// batch of merges ([EGraph.Rebuild]). Optional [Analysis] values attach a
// monotone lattice value to every class and refine it as the graph grows.
//
// The core data structures are a union-find over class ids
// (internal/unionfind), a hashcons from canonical e-nodes to class ids
// (internal/hashcons), a class-membership table (internal/classmem), a
// parent back-index (internal/parentindex) and a dirty worklist
// (internal/dirty) drained by [EGraph.Rebuild]. None of this is exposed
// directly; callers interact with the graph entirely through the EGraph
// methods and the [Node] and [Analysis] interfaces they implement.
//
// The surface term/AST type, pattern-match/rewrite drivers and
// cost-model extraction are not part of this package; see [Node], [Term]
// and [EGraph.AddExpr] for the hooks a host language implements to plug
// them in.
package egraph
