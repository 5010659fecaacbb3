package sorter

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/ma-chengcheng/LaTeX-Workshop/internal/bib"
	"github.com/ma-chengcheng/LaTeX-Workshop/internal/config"
	"github.com/ma-chengcheng/LaTeX-Workshop/internal/render"
)

// Sort key names with dedicated semantics. Any other sortby value is
// treated as a field name.
const (
	// KeyCitation compares by internal citation key.
	KeyCitation = "key"
	// KeyYearDesc compares by the year field, descending.
	KeyYearDesc = "year-desc"
	// KeyType compares by entry type.
	KeyType = "type"
)

// braceStripper removes brace characters from rendered field text before
// collation, so {The} and The compare equal.
var braceStripper = strings.NewReplacer("{", "", "}", "")

// Sorter compares entries under one configuration and records entries that
// tie on the full key chain into Duplicates.
type Sorter struct {
	cfg config.Config
	col *collate.Collator

	// Duplicates collects real entries that compared equal on every key,
	// including the pin rule. Populated as a side effect of Compare; see
	// Sort for the completing post-pass.
	Duplicates *DuplicateSet
}

// New builds a Sorter for one sort pass over one configuration. The
// collator uses the undetermined locale root so ordering is locale-aware
// yet independent of the host environment.
func New(cfg config.Config) *Sorter {
	return &Sorter{
		cfg:        cfg,
		col:        collate.New(language.Und),
		Duplicates: NewDuplicateSet(),
	}
}

// Compare is a total three-way comparison over entries. The pin rule is
// evaluated once per pair and dominates the configured key chain; the key
// chain then runs left to right until one key breaks the tie.
//
// A full-chain tie records the first argument into Duplicates when it is a
// real entry. Generic sort algorithms call the comparator with arguments in
// either order and may repeat or skip pairs, so this side effect alone is
// best-effort; Sort completes it with an explicit post-sort scan.
func (s *Sorter) Compare(a, b bib.Entry) int {
	if r := s.comparePinned(a, b); r != 0 {
		return r
	}

	for _, key := range s.cfg.SortBy {
		var r int
		switch key {
		case KeyCitation:
			r = s.compareKey(a, b)
		case KeyYearDesc:
			r = -s.compareField(a, b, "year")
		case KeyType:
			r = s.col.CompareString(a.Type(), b.Type())
		default:
			r = s.compareField(a, b, key)
		}
		if r != 0 {
			return sign(r)
		}
	}

	if re, ok := a.(*bib.RealEntry); ok {
		s.Duplicates.Add(re)
	}
	return 0
}

// Sort stable-sorts entries in place with Compare, then scans adjacent
// pairs so BOTH sides of every tie end up in Duplicates, not only the
// comparator's first argument. The scan makes duplicate detection
// independent of the sort algorithm's comparison pattern.
func (s *Sorter) Sort(entries []bib.Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return s.Compare(entries[i], entries[j]) < 0
	})
	for i := 1; i < len(entries); i++ {
		if s.Compare(entries[i-1], entries[i]) != 0 {
			continue
		}
		// Compare already recorded entries[i-1]; record the other side.
		if re, ok := entries[i].(*bib.RealEntry); ok {
			s.Duplicates.Add(re)
		}
	}
}

// comparePinned applies the firstEntries pin rule: an entry whose type
// appears in the pin list sorts before one whose type does not, and two
// pinned types order by list index. Types absent from the list on both
// sides, or the same pinned index on both sides, fall through to the key
// chain.
func (s *Sorter) comparePinned(a, b bib.Entry) int {
	ia := indexFold(s.cfg.FirstEntries, a.Type())
	ib := indexFold(s.cfg.FirstEntries, b.Type())
	switch {
	case ia < 0 && ib < 0:
		return 0
	case ib < 0:
		return -1
	case ia < 0:
		return 1
	default:
		return sign(ia - ib)
	}
}

// compareKey orders by citation key. An entry without a key (definition
// entries always, real entries when the source omitted one) sorts before
// any entry that has one; two keyless entries tie.
func (s *Sorter) compareKey(a, b bib.Entry) int {
	ka := internalKey(a)
	kb := internalKey(b)
	switch {
	case ka == "" && kb == "":
		return 0
	case ka == "":
		return -1
	case kb == "":
		return 1
	default:
		return s.col.CompareString(ka, kb)
	}
}

// compareField orders by the named field's rendered text. Absent fields
// and definition entries contribute the empty string, producing a tie that
// falls through to later keys rather than an error.
func (s *Sorter) compareField(a, b bib.Entry, name string) int {
	return s.col.CompareString(s.fieldText(a, name), s.fieldText(b, name))
}

// fieldText renders the named field with an empty continuation indent and
// strips brace characters, yielding the plain text the collator compares.
func (s *Sorter) fieldText(e bib.Entry, name string) string {
	re, ok := e.(*bib.RealEntry)
	if !ok {
		return ""
	}
	v := re.Field(name)
	if v == nil {
		return ""
	}
	return braceStripper.Replace(render.Value(v, s.cfg, ""))
}

func internalKey(e bib.Entry) string {
	if re, ok := e.(*bib.RealEntry); ok {
		return re.InternalKey
	}
	return ""
}

func indexFold(list []string, s string) int {
	for i, v := range list {
		if strings.EqualFold(v, s) {
			return i
		}
	}
	return -1
}

func sign(r int) int {
	switch {
	case r < 0:
		return -1
	case r > 0:
		return 1
	default:
		return 0
	}
}
