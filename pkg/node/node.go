package node

// Type tags the JSON kind of a row's value.
type Type string

// Row types.
const (
	TypeString  Type = "string"
	TypeNumber  Type = "number"
	TypeBoolean Type = "boolean"
	TypeNull    Type = "null"
	TypeArray   Type = "array"
	TypeObject  Type = "object"
)

// IsContainer reports whether rows of this type stand for nested structure
// rather than scalar content.
func (t Type) IsContainer() bool {
	return t == TypeArray || t == TypeObject
}

// Row is one flattened field of a node.
//
// A leaf node has a single row with Keyed unset. An object node has one keyed
// row per field; container fields keep their row (typed array or object) so
// the graph can show them, but their Value is only a summary.
type Row struct {
	Key   string `json:"key,omitempty"`
	Keyed bool   `json:"keyed"`
	Value any    `json:"value"`
	Type  Type   `json:"type"`
}

// Keyed returns a row for the object field key.
func Keyed(key string, value any, t Type) Row {
	return Row{Key: key, Keyed: true, Value: value, Type: t}
}

// Unkeyed returns a row for a bare value.
func Unkeyed(value any, t Type) Row {
	return Row{Value: value, Type: t}
}

// Node is a selected element of the visualized graph.
//
// Nodes are compared by pointer: a store that re-derives its nodes hands out
// new pointers even when the path is unchanged.
type Node struct {
	Rows []Row `json:"rows"`
	Path Path  `json:"path"`
}

// Text returns the node's display text as formatted by FormatRows.
func (n *Node) Text() string {
	if n == nil {
		return FormatRows(nil)
	}
	return FormatRows(n.Rows)
}

// IsLeaf reports whether the node stands for a single bare value.
func (n *Node) IsLeaf() bool {
	return n != nil && len(n.Rows) == 1 && !n.Rows[0].Keyed
}
