package graph

import (
	"sync"

	"github.com/matzehuels/nodeedit/pkg/errors"
	"github.com/matzehuels/nodeedit/pkg/node"
)

// Selection holds the current graph and the selected node.
// It is safe for concurrent use.
type Selection struct {
	mu       sync.RWMutex
	graph    *Graph
	selected *node.Node
}

// NewSelection creates an empty selection store.
func NewSelection() *Selection {
	return &Selection{graph: &Graph{byPath: map[string]*node.Node{}}}
}

// Load rebuilds the graph from doc. If a node was selected, the node at the
// same path in the new graph becomes selected; if it no longer exists the
// selection is cleared. On error the previous graph is kept.
func (s *Selection) Load(doc []byte) error {
	g, err := Build(doc)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var reselected *node.Node
	if s.selected != nil {
		reselected, _ = g.Lookup(s.selected.Path)
	}
	s.graph = g
	s.selected = reselected
	return nil
}

// Graph returns the current graph.
func (s *Selection) Graph() *Graph {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.graph
}

// Select selects the node at path p.
func (s *Selection) Select(p node.Path) (*node.Node, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, ok := s.graph.Lookup(p)
	if !ok {
		return nil, errors.New(errors.ErrCodePathNotFound, "no node at %s", p)
	}
	s.selected = n
	return n, nil
}

// SelectNode selects n, which should come from the current graph.
func (s *Selection) SelectNode(n *node.Node) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = n
}

// Selected returns the selected node, or nil.
func (s *Selection) Selected() *node.Node {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selected
}

// Clear drops the selection.
func (s *Selection) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = nil
}
