// Package render converts parsed bibliography entries back into canonical
// source text.
//
// Rendering is defined for real entries only; definition entries (@string,
// @preamble, @comment) are passed through verbatim by the caller. Rendering
// never alters literal field content - multi-line values keep their line
// breaks, re-indented so continuation lines stay aligned under the = of
// their field.
package render

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/ma-chengcheng/LaTeX-Workshop/internal/bib"
	"github.com/ma-chengcheng/LaTeX-Workshop/internal/config"
)

// Entry renders one real entry. When cfg.SortFields is set the entry's
// Fields slice is reordered IN PLACE before rendering; callers that need
// the original order must copy first.
func Entry(e *bib.RealEntry, cfg config.Config) string {
	if cfg.SortFields {
		SortFields(e.Fields, cfg.FieldsOrder)
	}

	// Widths count runes, not bytes, so non-ASCII field names align.
	longest := 0
	if cfg.AlignOnEqual {
		for _, f := range e.Fields {
			if n := utf8.RuneCountInString(fieldName(f.Name, cfg)); n > longest {
				longest = n
			}
		}
	}

	var b strings.Builder
	b.WriteString("@")
	b.WriteString(e.EntryType)
	b.WriteString("{")
	b.WriteString(e.InternalKey)

	for _, f := range e.Fields {
		name := fieldName(f.Name, cfg)
		nameWidth := utf8.RuneCountInString(name)
		width := nameWidth
		if cfg.AlignOnEqual {
			width = longest
		}

		b.WriteString(",\n")
		b.WriteString(cfg.Tab)
		b.WriteString(name)
		b.WriteString(strings.Repeat(" ", width-nameWidth))
		b.WriteString(" = ")

		// The continuation indent depends on this field's emitted name
		// width, so multi-line values in different fields of one entry may
		// be indented differently. That keeps every continuation line
		// aligned under its own opening bracket.
		indent := cfg.Tab + strings.Repeat(" ", width+len(" = ")+len(cfg.Left))
		b.WriteString(Value(f.Value, cfg, indent))
	}

	if cfg.TrailingComma {
		b.WriteString(",")
	}
	b.WriteString("\n}")
	return b.String()
}

// fieldName applies the configured case policy. Only UPPERCASE transforms;
// lowercase mode preserves the name exactly as stored.
func fieldName(name string, cfg config.Config) string {
	if cfg.Case == config.CaseUpper {
		return strings.ToUpper(name)
	}
	return name
}

// SortFields stable-sorts fields in place: fields named in order sort by
// their list index, everything else sorts after the listed fields,
// alphabetically by name. Two unlisted fields are never left in source
// order.
func SortFields(fields []bib.Field, order []string) {
	sort.SliceStable(fields, func(i, j int) bool {
		return CompareFieldNames(fields[i].Name, fields[j].Name, order) < 0
	})
}

// CompareFieldNames is the three-way comparison behind SortFields. Names
// match the order list case-insensitively, as field names do everywhere
// else.
func CompareFieldNames(a, b string, order []string) int {
	ia := indexFold(order, a)
	ib := indexFold(order, b)
	switch {
	case ia >= 0 && ib >= 0:
		return ia - ib
	case ia >= 0:
		return -1
	case ib >= 0:
		return 1
	default:
		return strings.Compare(a, b)
	}
}

// indexFold is slices.Index under case folding.
func indexFold(list []string, s string) int {
	for i, v := range list {
		if strings.EqualFold(v, s) {
			return i
		}
	}
	return -1
}
