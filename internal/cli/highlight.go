package cli

import (
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
)

// highlight renders node code with JSON syntax colors for a 256-color
// terminal. Text chroma cannot lex is returned unchanged.
func highlight(code, theme string) string {
	var b strings.Builder
	if err := quick.Highlight(&b, code, "json", "terminal256", theme); err != nil {
		return code
	}
	return strings.TrimRight(b.String(), "\n")
}

// numberLines prefixes every line of s with its 1-based line number.
func numberLines(s string) string {
	lines := strings.Split(s, "\n")
	width := len(fmt.Sprint(len(lines)))
	for i, line := range lines {
		lines[i] = StyleDim.Render(fmt.Sprintf("%*d ", width, i+1)) + line
	}
	return strings.Join(lines, "\n")
}
