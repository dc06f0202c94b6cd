// Package topology provides the directed, Feynman-like graphs that quantum
// numbers are assigned on.
//
// A Topology has interaction nodes and edges. Unlike a graph in the strict
// sense, edges may be open: an edge without an origin node enters the
// topology (an initial state), an edge without an end node leaves it (a final
// state), and an edge connecting two nodes is an intermediate state.
//
//	   -1          0
//	  ───►(0)──┬──►
//	           │ 2       1
//	           └──►(1)──►
//	                 └──► 3
//
// Core Methods:
//
//	AddNode(id) / AddEdge(id)                O(1)
//	AttachIngoing(node, edges...)            O(k)
//	AttachOutgoing(node, edges...)           O(k)
//	Nodes() / Edges()                        sorted snapshots
//	IngoingEdgeIDs(node) / OutgoingEdgeIDs   O(E log E)
//	InitialStateEdgeIDs / FinalStateEdgeIDs / IntermediateEdgeIDs
//	Verify()                                 dangling edges, isolated nodes, cycles
//	FindCycle()                              three-color DFS, O(V + E)
//	Clone()                                  deep copy
//
// Builders NBody(nIn, nOut), TwoBodyDecay() and IsobarChain(nFinal) number
// edges the canonical way: initial states -1, -2, ...; final states 0..n-1;
// intermediate states continue from n.
//
// Concurrency:
//
//	A single sync.RWMutex guards nodes and edges. All queries return copies
//	sorted ascending, so output never depends on map iteration order.
package topology
