package node

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/matzehuels/nodeedit/pkg/errors"
)

// rootSymbol prefixes every rendered path.
const rootSymbol = "$"

// Segment is one step of a Path: an object key or an array index.
type Segment struct {
	key     string
	index   int
	isIndex bool
}

// Key returns an object-key segment.
func Key(k string) Segment { return Segment{key: k} }

// Index returns an array-index segment.
func Index(i int) Segment { return Segment{index: i, isIndex: true} }

// IsIndex reports whether s addresses an array element.
func (s Segment) IsIndex() bool { return s.isIndex }

// Key returns the object key. It is empty for index segments.
func (s Segment) Key() string { return s.key }

// Index returns the array index. It is zero for key segments.
func (s Segment) Index() int { return s.index }

// String renders the segment as it appears between brackets: keys are
// JSON-quoted, indexes are bare.
func (s Segment) String() string {
	if s.isIndex {
		return strconv.Itoa(s.index)
	}
	return encode(s.key, "")
}

// token renders the segment as an RFC 6901 reference token.
func (s Segment) token() string {
	if s.isIndex {
		return strconv.Itoa(s.index)
	}
	return strings.NewReplacer("~", "~0", "/", "~1").Replace(s.key)
}

// MarshalJSON encodes keys as strings and indexes as numbers.
func (s Segment) MarshalJSON() ([]byte, error) {
	if s.isIndex {
		return []byte(strconv.Itoa(s.index)), nil
	}
	return json.Marshal(s.key)
}

// UnmarshalJSON accepts a string or a non-negative integer.
func (s *Segment) UnmarshalJSON(data []byte) error {
	var key string
	if err := json.Unmarshal(data, &key); err == nil {
		*s = Key(key)
		return nil
	}
	var i int
	if err := json.Unmarshal(data, &i); err != nil || i < 0 {
		return errors.New(errors.ErrCodeInvalidPath, "path segment must be a string or a non-negative integer: %s", data)
	}
	*s = Index(i)
	return nil
}

// Path locates a value inside the root document.
type Path []Segment

// String renders the path in bracket form: "$" for the root, otherwise
// `$["key"][0]...`. The result is purely presentational.
func (p Path) String() string {
	var b strings.Builder
	b.WriteString(rootSymbol)
	for _, s := range p {
		b.WriteByte('[')
		b.WriteString(s.String())
		b.WriteByte(']')
	}
	return b.String()
}

// Pointer renders the path as an RFC 6901 JSON Pointer.
func (p Path) Pointer() string {
	var b strings.Builder
	for _, s := range p {
		b.WriteByte('/')
		b.WriteString(s.token())
	}
	return b.String()
}

// Parent returns the path without its last segment.
func (p Path) Parent() Path {
	if len(p) == 0 {
		return nil
	}
	return p[:len(p)-1]
}

// Last returns the final segment, if any.
func (p Path) Last() (Segment, bool) {
	if len(p) == 0 {
		return Segment{}, false
	}
	return p[len(p)-1], true
}

// Child returns a new path with s appended. p is never modified.
func (p Path) Child(s Segment) Path {
	out := make(Path, len(p), len(p)+1)
	copy(out, p)
	return append(out, s)
}

// Equal reports whether both paths have the same segments.
func (p Path) Equal(other Path) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}
	return true
}

// ParsePath reads the bracket form produced by Path.String.
//
//	node.ParsePath(`$["customer"][0]["name"]`)
//
// An empty string or "$" is the root path.
func ParsePath(s string) (Path, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == rootSymbol {
		return Path{}, nil
	}
	if !strings.HasPrefix(s, rootSymbol) {
		return nil, errors.New(errors.ErrCodeInvalidPath, "path must start with %q: %s", rootSymbol, s)
	}

	var p Path
	i := len(rootSymbol)
	for i < len(s) {
		if s[i] != '[' {
			return nil, errors.New(errors.ErrCodeInvalidPath, "expected '[' at offset %d: %s", i, s)
		}
		i++
		if i >= len(s) {
			return nil, errors.New(errors.ErrCodeInvalidPath, "unterminated segment: %s", s)
		}

		if s[i] == '"' {
			end := closingQuote(s, i)
			if end < 0 {
				return nil, errors.New(errors.ErrCodeInvalidPath, "unterminated key at offset %d: %s", i, s)
			}
			var key string
			if err := json.Unmarshal([]byte(s[i:end+1]), &key); err != nil {
				return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "invalid key at offset %d", i)
			}
			p = append(p, Key(key))
			i = end + 1
		} else {
			start := i
			for i < len(s) && s[i] >= '0' && s[i] <= '9' {
				i++
			}
			if start == i {
				return nil, errors.New(errors.ErrCodeInvalidPath, "expected key or index at offset %d: %s", start, s)
			}
			n, err := strconv.Atoi(s[start:i])
			if err != nil {
				return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "invalid index at offset %d", start)
			}
			p = append(p, Index(n))
		}

		if i >= len(s) || s[i] != ']' {
			return nil, errors.New(errors.ErrCodeInvalidPath, "expected ']' at offset %d: %s", i, s)
		}
		i++
	}
	return p, nil
}

// closingQuote returns the offset of the quote ending the JSON string that
// starts at open, or -1.
func closingQuote(s string, open int) int {
	for i := open + 1; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '"':
			return i
		}
	}
	return -1
}
