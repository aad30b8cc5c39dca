package document

import (
	"strconv"

	jsonpatch "github.com/evanphx/json-patch/v5"

	"github.com/matzehuels/nodeedit/pkg/errors"
	"github.com/matzehuels/nodeedit/pkg/node"
	"github.com/matzehuels/nodeedit/pkg/ordered"
)

// Indent is the indentation used when a document is re-serialized.
const Indent = "  "

// Replace returns doc with the value at path replaced by the JSON in draft,
// re-serialized with 2-space indentation. Key order and number literals are
// preserved, and HTML characters are not escaped.
//
// The container holding the last segment must exist. Object fields are set
// whether or not they already exist; array elements must already exist. An
// empty path replaces the whole document.
//
// Errors carry ErrCodeInvalidDocument, ErrCodeInvalidDraft or
// ErrCodePathNotFound. doc is never modified.
func Replace(doc []byte, path node.Path, draft string) ([]byte, error) {
	root, err := ordered.Decode(doc)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "document is not valid JSON")
	}
	value, err := ordered.Decode([]byte(draft))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidDraft, err, "draft is not valid JSON")
	}

	if len(path) == 0 {
		root = value
	} else if err := assign(root, path, value); err != nil {
		return nil, err
	}

	out, err := ordered.Marshal(root, Indent)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode document")
	}
	want, err := ordered.Marshal(value, "")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode draft")
	}
	if err := verify(out, path, want); err != nil {
		return nil, err
	}
	return out, nil
}

// assign stores value at the last segment of path inside root.
func assign(root any, path node.Path, value any) error {
	container, err := walk(root, path.Parent())
	if err != nil {
		return err
	}

	last, _ := path.Last()
	switch c := container.(type) {
	case *ordered.Object:
		c.Set(objectKey(last), value)
		return nil
	case []any:
		if !last.IsIndex() {
			return errors.New(errors.ErrCodePathNotFound, "%s: key %s on an array", path, last)
		}
		if last.Index() >= len(c) {
			return errors.New(errors.ErrCodePathNotFound, "%s: index %d out of range (len %d)", path, last.Index(), len(c))
		}
		c[last.Index()] = value
		return nil
	default:
		return errors.New(errors.ErrCodePathNotFound, "%s: parent is not an object or array", path)
	}
}

// verify checks that the encoded document holds want at path.
func verify(out []byte, path node.Path, want []byte) error {
	root, err := ordered.Decode(out)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "re-read document")
	}
	got, err := walk(root, path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "re-read %s", path)
	}
	raw, err := ordered.Marshal(got, "")
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode %s", path)
	}
	if !jsonpatch.Equal(raw, want) {
		return errors.New(errors.ErrCodeInternal, "value at %s does not match the draft after replace", path)
	}
	return nil
}

// objectKey is the field name a segment addresses in an object. Numeric
// segments address objects by their decimal key.
func objectKey(seg node.Segment) string {
	if seg.IsIndex() {
		return strconv.Itoa(seg.Index())
	}
	return seg.Key()
}

// walk follows path from root and returns the value it reaches.
func walk(root any, path node.Path) (any, error) {
	cur := root
	for i, seg := range path {
		switch c := cur.(type) {
		case *ordered.Object:
			key := objectKey(seg)
			next, ok := c.Get(key)
			if !ok {
				return nil, errors.New(errors.ErrCodePathNotFound, "%s: no key %q", path[:i+1], key)
			}
			cur = next
		case []any:
			if !seg.IsIndex() || seg.Index() >= len(c) {
				return nil, errors.New(errors.ErrCodePathNotFound, "%s: no element %s", path[:i+1], seg)
			}
			cur = c[seg.Index()]
		default:
			return nil, errors.New(errors.ErrCodePathNotFound, "%s: cannot descend into a scalar", path[:i+1])
		}
	}
	return cur, nil
}
