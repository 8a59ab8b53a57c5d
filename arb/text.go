package arb

import (
	"math/rand/v2"
	"strings"
)

// String draws SmallCount(size) code points, each a valid Unicode scalar value.
func String(r *rand.Rand, size int) string {
	n := SmallCount(r, size)
	var b strings.Builder
	b.Grow(n)
	for range n {
		b.WriteRune(Char(r, size))
	}
	return b.String()
}

// Bytes draws SmallCount(size) uniform bytes.
func Bytes(r *rand.Rand, size int) []byte {
	return SliceOf(Uint8)(r, size)
}

// sampleText mixes scripts, symbols and punctuation so consumers hit
// multi-byte boundaries.
const sampleText = `a b c 0 $ ⇌ [ˈʏpsilɔn] \ " ‚dsch‘ „füh“ ‡ € ⁿ ２ � 🈘
ἀπὸ состоится ทรงนับถือขันทีเป็นที่พึ่ง Hello world Καλημέρα κόσμε コンニチハ`

// sampleWords is the corpus split into words plus separator tokens.
// The newline is listed once against two spaces.
var sampleWords = append(strings.Fields(sampleText), " ", " ", "\n")

// SampleText appends corpus words chosen uniformly at random, with no added
// separators, until the result is at least n bytes long. It may overshoot n.
func SampleText(r *rand.Rand, n int) string {
	var b strings.Builder
	for b.Len() < n {
		b.WriteString(sampleWords[r.IntN(len(sampleWords))])
	}
	return b.String()
}

// Unicode is text assembled from a multi-script sample corpus rather than
// from raw code points.
type Unicode string

// Arbitrary implements [Arbitrary] with a SmallCount(size) length bound.
func (Unicode) Arbitrary(r *rand.Rand, size int) Unicode {
	return Unicode(SampleText(r, SmallCount(r, size)))
}
