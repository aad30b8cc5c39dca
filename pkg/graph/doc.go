// Package graph derives the nodes of a JSON document and tracks which one is
// selected.
//
// [Build] walks a document in key order and produces one [node.Node] per
// object and per scalar array element, linked by edges from the enclosing
// node. Arrays do not get a node of their own: their elements hang off the
// node that holds the array.
//
// [Selection] is the selection store read by the node dialog. Loading a new
// revision of the document rebuilds the graph and re-selects the node at the
// previously selected path, so the dialog sees a new node pointer whenever
// the document changes.
package graph
