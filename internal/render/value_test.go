package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ma-chengcheng/LaTeX-Workshop/internal/bib"
	"github.com/ma-chengcheng/LaTeX-Workshop/internal/config"
)

func TestValueBareTokens(t *testing.T) {
	cfg := config.Default()

	assert.Equal(t, "2020", Value(bib.NumberValue("2020"), cfg, ""))
	assert.Equal(t, "jgr", Value(bib.AbbreviationValue("jgr"), cfg, ""))
}

func TestValueTextBrackets(t *testing.T) {
	cfg := config.Default()
	assert.Equal(t, "{hello}", Value(bib.TextValue("hello"), cfg, ""))

	quoted, _ := config.New(config.Raw{Surround: "quotes"})
	assert.Equal(t, `"hello"`, Value(bib.TextValue("hello"), quoted, ""))
}

func TestValueEmptyIndentIsVerbatim(t *testing.T) {
	// With no continuation indent the content passes through untouched,
	// line breaks included. This is the sort-string path.
	cfg := config.Default()
	assert.Equal(t, "{a\n   b}", Value(bib.TextValue("a\n   b"), cfg, ""))
}

func TestValueMultiLineReindents(t *testing.T) {
	cfg := config.Default()

	got := Value(bib.TextValue("line1\n  line2"), cfg, "    ")
	assert.Equal(t, "{line1\n    line2}", got)
}

func TestValueNormalizesLineBreaks(t *testing.T) {
	cfg := config.Default()

	got := Value(bib.TextValue("a\r\nb\rc\nd"), cfg, "  ")
	assert.Equal(t, "{a\n  b\n  c\n  d}", got)
}

func TestValueConcat(t *testing.T) {
	cfg := config.Default()
	v := bib.ConcatValue{bib.NumberValue("1"), bib.TextValue("a")}

	assert.Equal(t, "1 # {a}", Value(v, cfg, ""))
}

func TestValueConcatNested(t *testing.T) {
	cfg := config.Default()
	v := bib.ConcatValue{
		bib.AbbreviationValue("jgr"),
		bib.ConcatValue{bib.TextValue("x"), bib.NumberValue("3")},
	}

	assert.Equal(t, "jgr # {x} # 3", Value(v, cfg, ""))
}

func TestValueUnknownKindRendersEmpty(t *testing.T) {
	cfg := config.Default()
	assert.Equal(t, "", Value(nil, cfg, "  "))
}
