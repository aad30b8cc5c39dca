package graph

import (
	"encoding/json"
	"testing"

	"github.com/matzehuels/nodeedit/pkg/errors"
	"github.com/matzehuels/nodeedit/pkg/node"
)

const sampleDoc = `{
  "name": "Acme",
  "active": true,
  "customer": [
    {"name": "Ada", "id": 1},
    {"name": "Grace", "id": 2}
  ],
  "tags": ["a", "b"],
  "meta": {}
}`

func TestBuildNodes(t *testing.T) {
	g, err := Build([]byte(sampleDoc))
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	wantPaths := []string{
		`$`,
		`$["customer"][0]`,
		`$["customer"][1]`,
		`$["tags"][0]`,
		`$["tags"][1]`,
		`$["meta"]`,
	}
	if g.Len() != len(wantPaths) {
		t.Fatalf("Len() = %d, want %d", g.Len(), len(wantPaths))
	}
	for i, n := range g.Nodes() {
		if got := n.Path.String(); got != wantPaths[i] {
			t.Errorf("node %d path = %s, want %s", i, got, wantPaths[i])
		}
	}
}

func TestBuildRootRows(t *testing.T) {
	g, err := Build([]byte(sampleDoc))
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	root, ok := g.Lookup(node.Path{})
	if !ok {
		t.Fatal("root node missing")
	}

	want := []node.Row{
		node.Keyed("name", "Acme", node.TypeString),
		node.Keyed("active", true, node.TypeBoolean),
		node.Keyed("customer", 2, node.TypeArray),
		node.Keyed("tags", 2, node.TypeArray),
		node.Keyed("meta", 0, node.TypeObject),
	}
	if len(root.Rows) != len(want) {
		t.Fatalf("rows = %d, want %d", len(root.Rows), len(want))
	}
	for i := range want {
		if root.Rows[i] != want[i] {
			t.Errorf("row %d = %+v, want %+v", i, root.Rows[i], want[i])
		}
	}

	wantText := "{\n  \"name\": \"Acme\",\n  \"active\": true\n}"
	if got := root.Text(); got != wantText {
		t.Errorf("Text() = %q, want %q", got, wantText)
	}
}

func TestBuildLeafAndEmptyNodes(t *testing.T) {
	g, err := Build([]byte(sampleDoc))
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	tag, ok := g.Lookup(node.Path{node.Key("tags"), node.Index(1)})
	if !ok {
		t.Fatal("tag node missing")
	}
	if got := tag.Text(); got != "b" {
		t.Errorf("tag Text() = %q, want %q", got, "b")
	}

	meta, _ := g.Lookup(node.Path{node.Key("meta")})
	if got := meta.Text(); got != "{}" {
		t.Errorf("meta Text() = %q, want %q", got, "{}")
	}

	ada, _ := g.Lookup(node.Path{node.Key("customer"), node.Index(0)})
	if id := ada.Rows[1].Value; id != json.Number("1") {
		t.Errorf("id value = %#v, want json.Number(\"1\")", id)
	}
}

func TestBuildEdges(t *testing.T) {
	g, err := Build([]byte(sampleDoc))
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	root, _ := g.Lookup(node.Path{})
	children := g.Children(root)
	if len(children) != 5 {
		t.Fatalf("root children = %d, want 5", len(children))
	}
	if len(g.Edges()) != 5 {
		t.Errorf("edges = %d, want 5", len(g.Edges()))
	}
}

func TestBuildScalarAndArrayRoots(t *testing.T) {
	g, err := Build([]byte(`42`))
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if g.Len() != 1 || g.Nodes()[0].Text() != "42" || len(g.Nodes()[0].Path) != 0 {
		t.Errorf("scalar root = %+v", g.Nodes())
	}

	g, err = Build([]byte(`[1, [2, {"x": null}]]`))
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	want := []string{`$[0]`, `$[1][0]`, `$[1][1]`}
	if g.Len() != len(want) {
		t.Fatalf("Len() = %d, want %d", g.Len(), len(want))
	}
	for i, n := range g.Nodes() {
		if n.Path.String() != want[i] {
			t.Errorf("node %d = %s, want %s", i, n.Path, want[i])
		}
	}
}

func TestBuildDuplicateKeys(t *testing.T) {
	g, err := Build([]byte(`{"a": 1, "b": 2, "a": 3}`))
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	rows := g.Nodes()[0].Rows
	if len(rows) != 2 || rows[0].Key != "a" || rows[0].Value != json.Number("3") {
		t.Errorf("rows = %+v", rows)
	}
}

func TestBuildInvalid(t *testing.T) {
	for _, doc := range []string{``, `{`, `{"a":}`, `{"a":1} {"b":2}`, `[1,]`} {
		if _, err := Build([]byte(doc)); !errors.Is(err, errors.ErrCodeInvalidDocument) {
			t.Errorf("Build(%q) error = %v, want %s", doc, err, errors.ErrCodeInvalidDocument)
		}
	}
}
