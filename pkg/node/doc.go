// Package node defines the selected-node model shown by the node dialog and
// the formatting rules used to present it.
//
// A [Node] is one element of the visualized graph. It carries the flattened
// [Row]s of the JSON value it represents and the [Path] locating that value in
// the root document.
//
// # Formatting
//
// [FormatRows] turns a node's rows into the text shown in the dialog:
//
//	node.FormatRows(nil)                                        // {}
//	node.FormatRows([]node.Row{node.Unkeyed("hi", node.TypeString)}) // hi
//	node.FormatRows([]node.Row{node.Keyed("a", 1, node.TypeNumber)})
//	// {
//	//   "a": 1
//	// }
//
// Rows typed [TypeArray] or [TypeObject] describe nested structure and are left
// out of the object form.
//
// # Paths
//
// [Path.String] renders the bracket form used in the dialog, and [ParsePath]
// reads it back:
//
//	node.Path{node.Key("customer"), node.Index(0), node.Key("name")}.String()
//	// $["customer"][0]["name"]
package node
