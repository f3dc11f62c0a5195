package textsplit

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitEmptyInput(t *testing.T) {
	assert.Nil(t, Split("", 1575))
}

func TestSplitShortInput(t *testing.T) {
	segs := Split("hello", 1575)
	require.Len(t, segs, 1)
	assert.Equal(t, "hello", segs[0])
}

func TestSplitRoundTrips(t *testing.T) {
	inputs := []string{
		"hello",
		strings.Repeat("a", 5000),
		strings.Repeat("line one\nline two\n", 400),
		strings.Repeat("x", 1574) + "\n" + strings.Repeat("y", 3000),
		"\n\n\n" + strings.Repeat("z\n", 2500),
	}
	for _, in := range inputs {
		segs := Split(in, 1575)
		require.NotEmpty(t, segs)
		assert.Equal(t, in, strings.Join(segs, ""), "segments must concatenate to the input")
		for _, s := range segs {
			assert.LessOrEqual(t, len(s), 1575)
		}
	}
}

func TestSplitCutsAtNewlineWhenOverLimit(t *testing.T) {
	// More than 2000 chars total, with a newline inside the first slice:
	// the first segment must end just before that newline.
	in := strings.Repeat("a", 1000) + "\n" + strings.Repeat("b", 2000)
	segs := Split(in, 1575)
	require.Greater(t, len(segs), 1)
	assert.Equal(t, strings.Repeat("a", 1000), segs[0])
	assert.True(t, strings.HasPrefix(segs[1], "\n"))
}

func TestSplitLongUnbrokenLine(t *testing.T) {
	// No newline anywhere: full-length slices, never split further.
	in := strings.Repeat("a", 4000)
	segs := Split(in, 1575)
	require.Len(t, segs, 3)
	assert.Equal(t, 1575, len(segs[0]))
	assert.Equal(t, 1575, len(segs[1]))
	assert.Equal(t, 850, len(segs[2]))
}

func TestSplitUnderProtocolLimitKeepsNewlines(t *testing.T) {
	// Total under 2000: no newline trimming, one segment.
	in := "one\ntwo\nthree"
	segs := Split(in, 1575)
	require.Len(t, segs, 1)
	assert.Equal(t, in, segs[0])
}
