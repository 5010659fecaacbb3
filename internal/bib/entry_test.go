package bib

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFieldLookup(t *testing.T) {
	e := &RealEntry{
		EntryType:   "article",
		InternalKey: "k",
		Fields: []Field{
			{Name: "Title", Value: TextValue("A Title")},
			{Name: "year", Value: NumberValue("2020")},
		},
	}

	assert.Equal(t, TextValue("A Title"), e.Field("title"), "lookup is case-insensitive")
	assert.Equal(t, NumberValue("2020"), e.Field("YEAR"))
	assert.Nil(t, e.Field("author"), "absent field yields nil, not an error")
}

func TestEntryTypes(t *testing.T) {
	var real Entry = &RealEntry{EntryType: "book"}
	var def Entry = &StringEntry{EntryType: "string", Raw: `@string{x = "y"}`}

	assert.Equal(t, "book", real.Type())
	assert.Equal(t, "string", def.Type())
}
