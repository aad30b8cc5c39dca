// Package pkg provides the core libraries for nodeedit, the node content
// dialog of a JSON graph editor.
//
// # Overview
//
// A JSON document is derived into graph nodes. Each node carries flattened
// rows and the structural path of the value it came from. The dialog shows a
// selected node's content and path and replaces the node's JSON value in the
// document on save.
//
// # Architecture
//
// The typical data flow through nodeedit:
//
//	Document store (file, memory, Redis, MongoDB)
//	         ↓
//	    [graph] package (derive nodes, track the selection)
//	         ↓
//	    [modal] package (view, edit, save)
//	         ↓
//	    [document.Replace] (assign the value at the node's path)
//	         ↓
//	    Document store (one whole-document write)
//
// # Quick Start
//
// Edit a node programmatically:
//
//	import (
//	    "context"
//	    "github.com/matzehuels/nodeedit/pkg/document"
//	    "github.com/matzehuels/nodeedit/pkg/graph"
//	    "github.com/matzehuels/nodeedit/pkg/modal"
//	    "github.com/matzehuels/nodeedit/pkg/node"
//	)
//
//	store := document.NewMemoryStore(`{"customer": [{"name": "Ada"}]}`)
//	text, _ := store.Contents(ctx)
//
//	sel := graph.NewSelection()
//	sel.Load([]byte(text))
//	sel.Select(node.Path{node.Key("customer"), node.Index(0)})
//
//	m := modal.New(sel, store, modal.Options{})
//	m.Edit(ctx)
//	m.SetDraft(`{"name": "Grace"}`)
//	err := m.Save(ctx)
//
// # Main Packages
//
// [node] - Node rows and structural paths, and the formatter that turns rows
// into the dialog's text.
//
// [graph] - Derives nodes and edges from a JSON document, preserving key
// order, and holds the current selection.
//
// [ordered] - JSON decoding and encoding that keeps key order and number
// literals.
//
// [modal] - The dialog state machine (viewing, editing) with save and the
// replacement cache.
//
// [document] - Document stores and [document.Replace], the save
// transformation on an order-preserving tree.
//
// ## Infrastructure
//
// [config] - TOML configuration for the store backend and the editor.
//
// [errors] - Structured errors with machine-readable codes.
//
// [observability] - Hooks for dialog and store events.
//
// [buildinfo] - Version information injected at build time.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...                    # All tests
//	go test -run Example ./pkg/...       # Examples only
//	go test -tags integration ./pkg/...  # Include Redis and MongoDB tests
package pkg
