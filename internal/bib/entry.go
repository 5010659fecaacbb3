package bib

import "strings"

// Entry is a sealed interface over the two entry forms a bibliography file
// contains. Only *RealEntry and *StringEntry implement this.
type Entry interface {
	// Type returns the entry type ("article", "book", "string", ...)
	// without the leading @.
	Type() string

	entry() // Sealed - only these types implement it
}

// Field is one name/value pair inside a real entry.
type Field struct {
	Name  string
	Value FieldValue
}

// RealEntry is a bibliography record such as @article or @book. Only real
// entries carry a citation key and fields, and only real entries participate
// in field-based comparison and duplicate tracking.
type RealEntry struct {
	EntryType   string
	InternalKey string  // citation key; empty when the source omits it
	Fields      []Field // source order, until a renderer field sort reorders it
}

func (e *RealEntry) Type() string { return e.EntryType }

func (*RealEntry) entry() {}

// Field returns the value of the named field, or nil if the entry has no
// such field. Names match case-insensitively, as BibTeX field names are
// case-insensitive.
func (e *RealEntry) Field(name string) FieldValue {
	for _, f := range e.Fields {
		if strings.EqualFold(f.Name, name) {
			return f.Value
		}
	}
	return nil
}

// StringEntry is a definition entry: @string, @preamble, or @comment. It
// carries no citation key and no field list. Raw preserves the entry's
// source text so callers can emit it unchanged - definition entries are
// outside the renderer's contract.
type StringEntry struct {
	EntryType string
	Raw       string
}

func (e *StringEntry) Type() string { return e.EntryType }

func (*StringEntry) entry() {}
