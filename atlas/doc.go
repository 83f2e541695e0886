// Package atlas is the graph model and edge weight resolver.
//
// An Atlas joins the three loaded tables: the border graph decides which
// countries exist and which borders may be crossed, the code table maps each
// country to its code, and the distance table weighs a border by the
// distance between the two capitals.
//
// Resolve returns a tagged Resolution that keeps "unknown country" apart
// from "unknown distance". Distance collapses both to the legacy sentinel
// Unknown (-1). Weight plugs Resolve into dijkstra.WithWeightFunc so that
// unresolved borders are skipped by the search.
//
// An Atlas never changes after New and is safe for concurrent use.
package atlas
