package sorter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ma-chengcheng/LaTeX-Workshop/internal/bib"
)

func TestDuplicateSetAddIsIdempotent(t *testing.T) {
	set := NewDuplicateSet()
	e := &bib.RealEntry{EntryType: "article", InternalKey: "k"}

	set.Add(e)
	set.Add(e)
	set.Add(e)

	assert.Equal(t, 1, set.Len())
	assert.True(t, set.Has(e))
}

func TestDuplicateSetIdentityNotValue(t *testing.T) {
	set := NewDuplicateSet()
	a := &bib.RealEntry{EntryType: "article", InternalKey: "k"}
	b := &bib.RealEntry{EntryType: "article", InternalKey: "k"}

	set.Add(a)

	assert.True(t, set.Has(a))
	assert.False(t, set.Has(b), "membership is by entry identity")
}

func TestDuplicateSetEntriesInsertionOrder(t *testing.T) {
	set := NewDuplicateSet()
	a := &bib.RealEntry{InternalKey: "a"}
	b := &bib.RealEntry{InternalKey: "b"}

	set.Add(b)
	set.Add(a)
	set.Add(b)

	got := set.Entries()
	assert.Equal(t, []*bib.RealEntry{b, a}, got)

	// The returned slice is a copy.
	got[0] = nil
	assert.Equal(t, b, set.Entries()[0])
}
