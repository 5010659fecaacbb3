package parser

import (
	"fmt"
	"strings"

	"github.com/ma-chengcheng/LaTeX-Workshop/internal/bib"
)

// ParseError reports a syntax problem with the source line it was detected
// on.
type ParseError struct {
	Line    int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Message)
}

// Block is a sealed interface over document fragments. Only EntryBlock and
// TextBlock implement this.
type Block interface {
	block() // Sealed - only these types implement it
}

// EntryBlock wraps one parsed entry.
type EntryBlock struct {
	Entry bib.Entry
}

func (EntryBlock) block() {}

// TextBlock is free text found outside entries, kept so formatting can
// write it back. Text is trimmed of surrounding whitespace; interior line
// breaks are preserved.
type TextBlock struct {
	Text string
}

func (TextBlock) block() {}

// Document is a parsed bibliography file: entries in order, interleaved
// with the free text around them.
type Document struct {
	Blocks []Block
}

// Entries returns the document's entries in order.
func (d *Document) Entries() []bib.Entry {
	var entries []bib.Entry
	for _, b := range d.Blocks {
		if eb, ok := b.(EntryBlock); ok {
			entries = append(entries, eb.Entry)
		}
	}
	return entries
}

// Parse reads bibliography source into its entry sequence, discarding free
// text. Use ParseDocument when the surrounding text must be kept.
func Parse(src string) ([]bib.Entry, error) {
	doc, err := ParseDocument(src)
	if err != nil {
		return nil, err
	}
	return doc.Entries(), nil
}

// ParseDocument reads bibliography source into entry and free-text blocks.
// An @ that does not begin an entry (an email address in prose, say) is
// ordinary text; the first syntax error inside a recognized entry aborts
// the parse.
func ParseDocument(src string) (*Document, error) {
	s := &scanner{src: src, line: 1}
	var blocks []Block
	textStart := 0

	flushText := func(end int) {
		if t := strings.TrimSpace(s.src[textStart:end]); t != "" {
			blocks = append(blocks, TextBlock{Text: t})
		}
	}

	for !s.eof() {
		if s.peek() != '@' || !s.atEntryStart() {
			s.advance()
			continue
		}
		flushText(s.pos)
		e, err := s.parseEntry()
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, EntryBlock{Entry: e})
		textStart = s.pos
	}
	flushText(len(s.src))

	return &Document{Blocks: blocks}, nil
}

// scanner walks the source byte by byte, tracking the current line for
// error reporting. Value content is sliced out of src verbatim, never
// rebuilt, so parsing cannot alter literal text.
type scanner struct {
	src  string
	pos  int
	line int
}

func (s *scanner) eof() bool {
	return s.pos >= len(s.src)
}

func (s *scanner) peek() byte {
	return s.src[s.pos]
}

// advance consumes one byte, keeping the line count current.
func (s *scanner) advance() byte {
	c := s.src[s.pos]
	s.pos++
	if c == '\n' {
		s.line++
	}
	return c
}

func (s *scanner) skipSpace() {
	for !s.eof() && isSpace(s.peek()) {
		s.advance()
	}
}

func (s *scanner) errorf(format string, args ...any) error {
	return &ParseError{Line: s.line, Message: fmt.Sprintf(format, args...)}
}

// atEntryStart reports whether the @ at the current position begins an
// entry: @, an entry type, optional whitespace, then {. It looks ahead
// without consuming anything.
func (s *scanner) atEntryStart() bool {
	i := s.pos + 1
	start := i
	for i < len(s.src) && isAlpha(s.src[i]) {
		i++
	}
	if i == start {
		return false
	}
	for i < len(s.src) && isSpace(s.src[i]) {
		i++
	}
	return i < len(s.src) && s.src[i] == '{'
}

// parseEntry consumes one entry. The caller has already checked
// atEntryStart, so the type and opening brace are present.
func (s *scanner) parseEntry() (bib.Entry, error) {
	start := s.pos
	s.advance() // @

	entryType := s.takeWhile(isAlpha)
	s.skipSpace()

	if isDefinitionType(entryType) {
		if err := s.skipBalanced(); err != nil {
			return nil, err
		}
		return &bib.StringEntry{
			EntryType: entryType,
			Raw:       s.src[start:s.pos],
		}, nil
	}
	return s.parseRealEntry(entryType)
}

func (s *scanner) parseRealEntry(entryType string) (bib.Entry, error) {
	s.advance() // {
	s.skipSpace()

	// The citation key may be empty - a keyless entry is well-formed - but
	// it cannot contain whitespace or =, so a field in key position is
	// reported rather than swallowed.
	key := s.takeWhile(func(c byte) bool {
		return c != ',' && c != '}' && c != '=' && !isSpace(c)
	})
	s.skipSpace()
	if !s.eof() && s.peek() != ',' && s.peek() != '}' {
		return nil, s.errorf("expected , or } after citation key %q", key)
	}

	entry := &bib.RealEntry{EntryType: entryType, InternalKey: key}
	for {
		s.skipSpace()
		if s.eof() {
			return nil, s.errorf("unterminated entry @%s{%s", entryType, key)
		}
		switch s.peek() {
		case '}':
			s.advance()
			return entry, nil
		case ',':
			s.advance()
			continue
		}

		f, err := s.parseField()
		if err != nil {
			return nil, err
		}
		entry.Fields = append(entry.Fields, f)
	}
}

func (s *scanner) parseField() (bib.Field, error) {
	name := strings.TrimSpace(s.takeWhile(func(c byte) bool {
		return c != '=' && c != ',' && c != '{' && c != '}' && c != '"' && c != '\n'
	}))
	if name == "" {
		return bib.Field{}, s.errorf("field name expected")
	}
	s.skipSpace()
	if s.eof() || s.peek() != '=' {
		return bib.Field{}, s.errorf("expected = after field name %q", name)
	}
	s.advance() // =

	v, err := s.parseValue()
	if err != nil {
		return bib.Field{}, err
	}
	return bib.Field{Name: name, Value: v}, nil
}

// parseValue parses one value, which may be a #-joined concatenation of
// sub-values.
func (s *scanner) parseValue() (bib.FieldValue, error) {
	first, err := s.parseSingleValue()
	if err != nil {
		return nil, err
	}

	parts := []bib.FieldValue{first}
	for {
		s.skipSpace()
		if s.eof() || s.peek() != '#' {
			break
		}
		s.advance() // #
		next, err := s.parseSingleValue()
		if err != nil {
			return nil, err
		}
		parts = append(parts, next)
	}

	if len(parts) == 1 {
		return first, nil
	}
	return bib.ConcatValue(parts), nil
}

func (s *scanner) parseSingleValue() (bib.FieldValue, error) {
	s.skipSpace()
	if s.eof() {
		return nil, s.errorf("field value expected")
	}

	switch s.peek() {
	case '{':
		return s.parseBracedValue()
	case '"':
		return s.parseQuotedValue()
	}

	token := s.takeWhile(func(c byte) bool {
		return c != ',' && c != '}' && c != '#' && !isSpace(c)
	})
	if token == "" {
		return nil, s.errorf("field value expected")
	}
	if isDigits(token) {
		return bib.NumberValue(token), nil
	}
	return bib.AbbreviationValue(token), nil
}

// parseBracedValue captures the content between balanced braces, nested
// braces and line breaks included.
func (s *scanner) parseBracedValue() (bib.FieldValue, error) {
	openLine := s.line
	s.advance() // {
	start := s.pos
	depth := 1
	for !s.eof() {
		switch s.peek() {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				content := s.src[start:s.pos]
				s.advance() // }
				return bib.TextValue(content), nil
			}
		}
		s.advance()
	}
	return nil, &ParseError{Line: openLine, Message: "unterminated braced value"}
}

// parseQuotedValue captures the content of a "..." value. A closing quote
// only counts at brace depth zero, so braced groups inside the value can
// protect literal quotes.
func (s *scanner) parseQuotedValue() (bib.FieldValue, error) {
	openLine := s.line
	s.advance() // "
	start := s.pos
	depth := 0
	for !s.eof() {
		switch s.peek() {
		case '{':
			depth++
		case '}':
			depth--
		case '"':
			if depth == 0 {
				content := s.src[start:s.pos]
				s.advance() // "
				return bib.TextValue(content), nil
			}
		}
		s.advance()
	}
	return nil, &ParseError{Line: openLine, Message: "unterminated quoted value"}
}

// skipBalanced consumes a balanced {...} group starting at the current {.
func (s *scanner) skipBalanced() error {
	openLine := s.line
	depth := 0
	for !s.eof() {
		switch s.peek() {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				s.advance()
				return nil
			}
		}
		s.advance()
	}
	return &ParseError{Line: openLine, Message: "unterminated definition entry"}
}

func (s *scanner) takeWhile(pred func(byte) bool) string {
	start := s.pos
	for !s.eof() && pred(s.peek()) {
		s.advance()
	}
	return s.src[start:s.pos]
}

// isDefinitionType reports whether the entry type names a definition entry
// rather than a bibliography record.
func isDefinitionType(t string) bool {
	return strings.EqualFold(t, "string") ||
		strings.EqualFold(t, "preamble") ||
		strings.EqualFold(t, "comment")
}

// isDigits reports whether s is a non-empty run of ASCII digits, which
// classifies a bare token as a number rather than an abbreviation.
func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return len(s) > 0
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

func isAlpha(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}
