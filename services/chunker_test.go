package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitShortTextReturnsSingleTrimmedChunk(t *testing.T) {
	c := NewChunker(1000, 100)

	chunks := c.Split("  A short note about nothing in particular.  ")

	require.Len(t, chunks, 1)
	assert.Equal(t, "A short note about nothing in particular.", chunks[0])
}

func TestSplitEmptyTextReturnsNothing(t *testing.T) {
	c := NewChunker(1000, 100)

	assert.Empty(t, c.Split(""))
	assert.Empty(t, c.Split("   \n\t  "))
}

func TestSplit1200CharsYieldsTwoChunks(t *testing.T) {
	text := strings.Repeat("a", 1200)
	c := NewChunker(1000, 100)

	chunks := c.Split(text)

	require.Len(t, chunks, 2)
	assert.Equal(t, strings.Repeat("a", 1000), chunks[0])
	// Second chunk starts at offset end-overlap = 900.
	assert.Equal(t, strings.Repeat("a", 300), chunks[1])
}

func TestSplitSnapsToSentenceBoundary(t *testing.T) {
	// Period at offset 994 sits inside the window's final 100 characters, so
	// the first chunk ends just after it instead of mid-filler.
	text := strings.Repeat("a", 994) + "." + strings.Repeat("b", 500)
	c := NewChunker(1000, 100)

	chunks := c.Split(text)

	require.NotEmpty(t, chunks)
	assert.True(t, strings.HasSuffix(chunks[0], "."), "first chunk should end at the sentence boundary")
	assert.Len(t, chunks[0], 995)
}

func TestSplitIgnoresEarlyPeriods(t *testing.T) {
	// The only period is at offset 100, well before the final 100 characters
	// of the window, so no snapping happens.
	text := strings.Repeat("a", 100) + "." + strings.Repeat("b", 1100)
	c := NewChunker(1000, 100)

	chunks := c.Split(text)

	require.NotEmpty(t, chunks)
	assert.Len(t, chunks[0], 1000)
}

func TestSplitStartOffsetsStrictlyIncrease(t *testing.T) {
	// Distinct 10-char tokens so every chunk's position in the source is
	// unambiguous.
	var sb strings.Builder
	for i := 0; i < 500; i++ {
		sb.WriteString("tok")
		sb.WriteByte(byte('0' + i/100%10))
		sb.WriteByte(byte('0' + i/10%10))
		sb.WriteByte(byte('0' + i%10))
		sb.WriteString("xyz ")
	}
	text := sb.String()

	cases := []struct {
		name      string
		chunkSize int
		overlap   int
	}{
		{"defaults", 1000, 100},
		{"small window", 120, 30},
		{"no overlap", 200, 0},
		{"overlap equals size", 100, 100},
		{"overlap exceeds size", 100, 150},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			chunks := NewChunker(tc.chunkSize, tc.overlap).Split(text)
			require.NotEmpty(t, chunks)

			prev := -1
			search := 0
			for i, chunk := range chunks {
				pos := strings.Index(text[search:], chunk)
				require.GreaterOrEqual(t, pos, 0, "chunk %d not found in source", i)
				start := search + pos
				assert.Greater(t, start, prev, "chunk %d start did not advance", i)
				prev = start
				search = start + 1
			}
		})
	}
}

func TestSplitCoversWholeText(t *testing.T) {
	text := strings.Repeat("some words here and there ", 100) // 2600 chars
	c := NewChunker(1000, 100)

	chunks := c.Split(text)
	require.NotEmpty(t, chunks)

	trimmed := strings.TrimSpace(text)
	assert.True(t, strings.HasPrefix(trimmed, chunks[0][:50]), "first chunk should open the text")
	last := chunks[len(chunks)-1]
	assert.True(t, strings.HasSuffix(trimmed, last[len(last)-50:]), "last chunk should close the text")
}
