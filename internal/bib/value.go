package bib

// FieldValue is a sealed interface representing the value forms a field can
// take. Only TextValue, NumberValue, AbbreviationValue, and ConcatValue
// implement this.
type FieldValue interface {
	fieldValue() // Sealed - only these types implement it
}

// TextValue is a braced or quoted literal. Content excludes the surrounding
// brackets and may span multiple lines; line breaks are preserved verbatim
// as they appeared in source.
type TextValue string

func (TextValue) fieldValue() {}

// NumberValue is a bare all-digit token such as a year or volume number.
// Rendered verbatim, without brackets.
type NumberValue string

func (NumberValue) fieldValue() {}

// AbbreviationValue is a bare non-numeric token, typically a reference to a
// @string abbreviation. Rendered verbatim, without brackets.
type AbbreviationValue string

func (AbbreviationValue) fieldValue() {}

// ConcatValue is an ordered sequence of sub-values joined by # in source.
type ConcatValue []FieldValue

func (ConcatValue) fieldValue() {}
