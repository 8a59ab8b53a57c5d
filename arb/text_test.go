package arb

import (
	"strings"
	"testing"
	"unicode"
	"unicode/utf8"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//
// -----------------------------------------------------------------------------
// String
// -----------------------------------------------------------------------------

// TestString_ValidUTF8Bounded verifies code-point strings are valid and bounded by 16*size runes.
func TestString_ValidUTF8Bounded(t *testing.T) {
	t.Parallel()

	r := NewRand(40)
	for size := range 12 {
		for range 50 {
			s := String(r, size)
			require.True(t, utf8.ValidString(s))
			require.LessOrEqual(t, utf8.RuneCountInString(s), 16*size)
		}
	}
}

// TestString_ZeroSizeEmpty verifies size 0 yields "".
func TestString_ZeroSizeEmpty(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", String(NewRand(41), 0))
}

// TestString_RuneCountMatchesDraw verifies exactly SmallCount(size) code points are drawn.
func TestString_RuneCountMatchesDraw(t *testing.T) {
	t.Parallel()

	a, b := NewRand(42), NewRand(42)
	for range 100 {
		want := SmallCount(b, 6)
		for range want {
			Char(b, 6)
		}
		assert.Equal(t, want, utf8.RuneCountInString(String(a, 6)))
	}
}

// TestBytes_Bounded verifies byte strings honour the size clamp.
func TestBytes_Bounded(t *testing.T) {
	t.Parallel()

	r := NewRand(43)
	for range 100 {
		assert.LessOrEqual(t, len(Bytes(r, 3)), 48)
	}
}

//
// -----------------------------------------------------------------------------
// SampleText / Unicode
// -----------------------------------------------------------------------------

// TestSampleText_LengthLowerBound verifies output is at least n bytes for any n.
func TestSampleText_LengthLowerBound(t *testing.T) {
	t.Parallel()

	properties := gopter.NewProperties(nil)
	properties.Property("len(sample) >= n", prop.ForAll(
		func(n int, seed uint64) bool {
			s := SampleText(NewRand(seed), n)
			return len(s) >= n && utf8.ValidString(s)
		},
		gen.IntRange(0, 2000),
		gen.UInt64(),
	))
	properties.TestingRun(t)
}

// TestSampleText_ZeroIsEmpty verifies n=0 returns "".
func TestSampleText_ZeroIsEmpty(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", SampleText(NewRand(44), 0))
}

// TestSampleText_OnlyCorpusWords verifies output is built from corpus tokens only.
func TestSampleText_OnlyCorpusWords(t *testing.T) {
	t.Parallel()

	words := make(map[string]struct{}, len(sampleWords))
	for _, w := range sampleWords {
		words[w] = struct{}{}
	}

	s := SampleText(NewRand(45), 5000)
	for _, w := range strings.Fields(s) {
		// adjacent words are concatenated without separators, so each field
		// must split back into corpus words
		require.True(t, splitsIntoWords(w, words), "unexpected token %q", w)
	}
}

// TestSampleText_MultiScript verifies the corpus spans at least four scripts.
func TestSampleText_MultiScript(t *testing.T) {
	t.Parallel()

	scripts := map[string]*unicode.RangeTable{
		"Latin":    unicode.Latin,
		"Greek":    unicode.Greek,
		"Cyrillic": unicode.Cyrillic,
		"Thai":     unicode.Thai,
		"Katakana": unicode.Katakana,
	}
	found := 0
	for _, table := range scripts {
		if strings.IndexFunc(sampleText, func(c rune) bool { return unicode.Is(table, c) }) >= 0 {
			found++
		}
	}
	assert.GreaterOrEqual(t, found, 4)
	assert.Contains(t, sampleWords, "\n")
}

// TestUnicode_ZeroSizeEmpty verifies Unicode at size 0 is empty.
func TestUnicode_ZeroSizeEmpty(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Unicode(""), Value[Unicode](NewRand(46), 0))
}

func splitsIntoWords(s string, words map[string]struct{}) bool {
	if s == "" {
		return true
	}
	for i := 1; i <= len(s); i++ {
		if _, ok := words[s[:i]]; ok && splitsIntoWords(s[i:], words) {
			return true
		}
	}
	return false
}
