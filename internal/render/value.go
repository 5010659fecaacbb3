package render

import (
	"regexp"
	"strings"

	"github.com/ma-chengcheng/LaTeX-Workshop/internal/bib"
	"github.com/ma-chengcheng/LaTeX-Workshop/internal/config"
)

// lineBreak matches any line-break convention found in source values.
var lineBreak = regexp.MustCompile(`\r\n|\r|\n`)

// Value renders a field value. indent is the continuation prefix applied to
// every line after the first of a multi-line text value; pass "" for
// single-line contexts such as building a sort string, which also skips the
// line splitting entirely.
func Value(v bib.FieldValue, cfg config.Config, indent string) string {
	switch val := v.(type) {
	case bib.NumberValue:
		return string(val)
	case bib.AbbreviationValue:
		return string(val)
	case bib.TextValue:
		if indent == "" {
			return cfg.Left + string(val) + cfg.Right
		}
		lines := lineBreak.Split(string(val), -1)
		for i := 1; i < len(lines); i++ {
			// Continuation lines lose their source indentation and take
			// the computed prefix instead. The first line is untouched.
			lines[i] = strings.TrimLeft(lines[i], " \t")
		}
		return cfg.Left + strings.Join(lines, "\n"+indent) + cfg.Right
	case bib.ConcatValue:
		parts := make([]string, len(val))
		for i, sub := range val {
			parts[i] = Value(sub, cfg, indent)
		}
		return strings.Join(parts, " # ")
	default:
		// Unknown kinds render empty rather than failing: one odd value
		// must not block formatting of the rest of the collection.
		return ""
	}
}
