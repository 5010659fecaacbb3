// Package config holds the formatting and sorting options shared by the
// sorter and renderer.
//
// A Config is built once per formatting session and passed explicitly to
// every operation that needs it - there is no process-wide configuration
// state. Validation never fails: malformed raw options degrade to documented
// defaults and surface as Diagnostic values the caller can report.
package config

import (
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

// Case selects the letter case applied to field names on output.
type Case string

const (
	// CaseUpper forces field names to upper case.
	CaseUpper Case = "UPPERCASE"
	// CaseLower leaves field names exactly as stored. The name is historical:
	// lowercase mode does NOT force-lowercase, it preserves source casing.
	CaseLower Case = "lowercase"
)

// Surround selects the bracket pair wrapped around text field values.
type Surround string

const (
	// SurroundBraces wraps text values in curly braces.
	SurroundBraces Surround = "braces"
	// SurroundQuotes wraps text values in double quotes.
	SurroundQuotes Surround = "quotes"
)

// DefaultTab is the indent substituted when the tab spec cannot be parsed.
const DefaultTab = "  "

// Raw carries option values as read from a configuration source, before
// validation. Field names follow the settings contract of the surrounding
// tool.
type Raw struct {
	Tab           string   `yaml:"tab"`
	Surround      string   `yaml:"surround"`
	Case          string   `yaml:"case"`
	TrailingComma bool     `yaml:"trailingComma"`
	SortBy        []string `yaml:"sortby"`
	AlignOnEqual  bool     `yaml:"alignOnEqual"`
	SortFields    bool     `yaml:"sortFields"`
	FieldsOrder   []string `yaml:"fieldsOrder"`
	FirstEntries  []string `yaml:"firstEntries"`
}

// Config is the validated, immutable option set. Construct via New or
// Default; share read-only between the sorter and the renderer.
type Config struct {
	// Tab is the literal indent string: spaces or a single tab character.
	Tab string
	// Left and Right are the bracket pair wrapped around text values.
	Left  string
	Right string
	// Case is the field-name case policy.
	Case Case
	// TrailingComma appends a comma after the last field of an entry.
	TrailingComma bool
	// SortBy is the prioritized key chain for entry comparison. Values are
	// "key", "year-desc", "type", or an arbitrary field name.
	SortBy []string
	// AlignOnEqual pads field names so the = signs of an entry line up.
	AlignOnEqual bool
	// SortFields reorders each entry's fields per FieldsOrder before
	// rendering.
	SortFields bool
	// FieldsOrder is the explicit field ordering; unlisted fields sort
	// after listed ones.
	FieldsOrder []string
	// FirstEntries lists entry types pinned before all others, in order.
	FirstEntries []string
}

// Diagnostic reports a recovered configuration problem. Recovery is always
// local - the offending option is replaced by its default - so diagnostics
// are warnings, never failures.
type Diagnostic struct {
	Code    string
	Option  string
	Message string
}

// Diagnostic codes.
const (
	DiagBadTab      = "BAD_TAB"
	DiagBadSurround = "BAD_SURROUND"
	DiagBadCase     = "BAD_CASE"
)

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: option %q: %s", d.Code, d.Option, d.Message)
}

// Default returns the configuration used when no options are supplied:
// two-space indent, curly braces, source field-name casing, sort by
// citation key.
func Default() Config {
	cfg, _ := New(Raw{})
	return cfg
}

// New validates raw options into a Config. It never fails: every malformed
// value degrades to its documented default and is reported as a Diagnostic.
func New(raw Raw) (Config, []Diagnostic) {
	var diags []Diagnostic

	tab, ok := ParseTab(raw.Tab)
	if !ok {
		diags = append(diags, Diagnostic{
			Code:    DiagBadTab,
			Option:  "tab",
			Message: fmt.Sprintf("unrecognized tab spec %q, using %d spaces", raw.Tab, len(DefaultTab)),
		})
		tab = DefaultTab
	}

	left, right := "{", "}"
	switch Surround(raw.Surround) {
	case SurroundBraces, "":
	case SurroundQuotes:
		left, right = `"`, `"`
	default:
		diags = append(diags, Diagnostic{
			Code:    DiagBadSurround,
			Option:  "surround",
			Message: fmt.Sprintf("unrecognized surround %q, using braces", raw.Surround),
		})
	}

	letterCase := CaseLower
	switch Case(raw.Case) {
	case CaseLower, "":
	case CaseUpper:
		letterCase = CaseUpper
	default:
		diags = append(diags, Diagnostic{
			Code:    DiagBadCase,
			Option:  "case",
			Message: fmt.Sprintf("unrecognized case %q, keeping source casing", raw.Case),
		})
	}

	sortBy := raw.SortBy
	if len(sortBy) == 0 {
		sortBy = []string{"key"}
	}

	return Config{
		Tab:           tab,
		Left:          left,
		Right:         right,
		Case:          letterCase,
		TrailingComma: raw.TrailingComma,
		SortBy:        slices.Clone(sortBy),
		AlignOnEqual:  raw.AlignOnEqual,
		SortFields:    raw.SortFields,
		FieldsOrder:   slices.Clone(raw.FieldsOrder),
		FirstEntries:  slices.Clone(raw.FirstEntries),
	}, diags
}

// tabSpec matches "<digits>" or "<digits> spaces".
var tabSpec = regexp.MustCompile(`^(\d+)(?: spaces)?$`)

// ParseTab converts a textual tab spec into a literal indent string. The
// two valid forms are the token "tab" (a single tab character) and
// "<digits>" or "<digits> spaces" (that many spaces). An empty spec means
// the default. Reports ok=false for anything else; the caller substitutes
// DefaultTab.
func ParseTab(spec string) (string, bool) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return DefaultTab, true
	}
	if spec == "tab" {
		return "\t", true
	}
	m := tabSpec.FindStringSubmatch(spec)
	if m == nil {
		return "", false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n == 0 {
		// The indent string must be non-empty.
		return "", false
	}
	return strings.Repeat(" ", n), true
}
