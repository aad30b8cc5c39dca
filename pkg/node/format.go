package node

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

const indent = "  "

// FormatRows converts a node's rows into the canonical text shown by the
// dialog.
//
//   - no rows yields "{}"
//   - a single unkeyed row yields the value's string form, not JSON-quoted
//   - otherwise every keyed, non-container row becomes a field of an object
//     serialized as 2-space indented JSON, in row order
//
// A key that appears twice keeps its first position and its last value.
// Malformed rows never fail; they produce a best-effort object.
func FormatRows(rows []Row) string {
	if len(rows) == 0 {
		return "{}"
	}
	if len(rows) == 1 && !rows[0].Keyed {
		return scalarString(rows[0].Value)
	}

	var keys []string
	values := make(map[string]any, len(rows))
	for _, r := range rows {
		if !r.Keyed || r.Type.IsContainer() {
			continue
		}
		if _, seen := values[r.Key]; !seen {
			keys = append(keys, r.Key)
		}
		values[r.Key] = r.Value
	}
	if len(keys) == 0 {
		return "{}"
	}

	var b bytes.Buffer
	b.WriteString("{\n")
	for i, k := range keys {
		b.WriteString(indent)
		b.WriteString(encode(k, indent))
		b.WriteString(": ")
		b.WriteString(encode(values[k], indent))
		if i < len(keys)-1 {
			b.WriteByte(',')
		}
		b.WriteByte('\n')
	}
	b.WriteByte('}')
	return b.String()
}

// encode marshals v as JSON with nested lines prefixed by prefix.
// Values that cannot be represented in JSON become null.
func encode(v any, prefix string) string {
	var b bytes.Buffer
	enc := json.NewEncoder(&b)
	enc.SetEscapeHTML(false)
	enc.SetIndent(prefix, indent)
	if err := enc.Encode(v); err != nil {
		return "null"
	}
	return string(bytes.TrimRight(b.Bytes(), "\n"))
}

// scalarString returns the display form of a bare value.
func scalarString(v any) string {
	switch v := v.(type) {
	case nil:
		return "null"
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case json.Number:
		return v.String()
	case float64:
		return formatFloat(v)
	case float32:
		return formatFloat(float64(v))
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprint(v)
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(data)
	}
}

func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	if abs := math.Abs(f); abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
