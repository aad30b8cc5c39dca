package graph

import (
	"encoding/json"

	"github.com/matzehuels/nodeedit/pkg/errors"
	"github.com/matzehuels/nodeedit/pkg/node"
	"github.com/matzehuels/nodeedit/pkg/ordered"
)

// Edge links a node to a node derived from one of its nested values.
type Edge struct {
	From *node.Node
	To   *node.Node
}

// Graph is the set of nodes derived from one revision of a document.
type Graph struct {
	nodes  []*node.Node
	edges  []Edge
	byPath map[string]*node.Node
}

// Build derives the nodes of doc.
//
// Objects become nodes whose rows are their fields; nested objects and arrays
// appear as container rows and are derived further. Scalar array elements
// become single-row nodes at their index. A scalar document becomes a single
// node at the root.
func Build(doc []byte) (*Graph, error) {
	v, err := ordered.Decode(doc)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "document is not valid JSON")
	}

	g := &Graph{byPath: make(map[string]*node.Node)}
	g.walk(v, node.Path{}, nil)
	return g, nil
}

// Nodes returns the derived nodes in document order.
func (g *Graph) Nodes() []*node.Node { return g.nodes }

// Edges returns parent-to-child links in document order.
func (g *Graph) Edges() []Edge { return g.edges }

// Len returns the number of nodes.
func (g *Graph) Len() int { return len(g.nodes) }

// Lookup returns the node at path p.
func (g *Graph) Lookup(p node.Path) (*node.Node, bool) {
	n, ok := g.byPath[p.String()]
	return n, ok
}

// Children returns the nodes linked from n.
func (g *Graph) Children(n *node.Node) []*node.Node {
	var out []*node.Node
	for _, e := range g.edges {
		if e.From == n {
			out = append(out, e.To)
		}
	}
	return out
}

func (g *Graph) add(n *node.Node, parent *node.Node) {
	g.nodes = append(g.nodes, n)
	g.byPath[n.Path.String()] = n
	if parent != nil {
		g.edges = append(g.edges, Edge{From: parent, To: n})
	}
}

func (g *Graph) walk(v any, path node.Path, parent *node.Node) {
	switch v := v.(type) {
	case *ordered.Object:
		n := &node.Node{Path: path, Rows: make([]node.Row, 0, v.Len())}
		for _, k := range v.Keys() {
			child, _ := v.Get(k)
			t := typeOf(child)
			value := child
			if t.IsContainer() {
				value = size(child)
			}
			n.Rows = append(n.Rows, node.Keyed(k, value, t))
		}
		g.add(n, parent)
		for _, k := range v.Keys() {
			child, _ := v.Get(k)
			if typeOf(child).IsContainer() {
				g.walk(child, path.Child(node.Key(k)), n)
			}
		}
	case []any:
		for i, item := range v {
			p := path.Child(node.Index(i))
			if typeOf(item).IsContainer() {
				g.walk(item, p, parent)
				continue
			}
			g.add(&node.Node{Path: p, Rows: []node.Row{node.Unkeyed(item, typeOf(item))}}, parent)
		}
	default:
		g.add(&node.Node{Path: path, Rows: []node.Row{node.Unkeyed(v, typeOf(v))}}, parent)
	}
}

func typeOf(v any) node.Type {
	switch v.(type) {
	case *ordered.Object:
		return node.TypeObject
	case []any:
		return node.TypeArray
	case string:
		return node.TypeString
	case json.Number:
		return node.TypeNumber
	case bool:
		return node.TypeBoolean
	default:
		return node.TypeNull
	}
}

func size(v any) int {
	switch v := v.(type) {
	case *ordered.Object:
		return v.Len()
	case []any:
		return len(v)
	}
	return 0
}
