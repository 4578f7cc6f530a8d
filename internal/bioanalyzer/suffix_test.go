package bioanalyzer

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSuffixArray(t *testing.T) {
	s, err := BuildSuffixArray("GTA", 0)
	require.NoError(t, err)

	assert.Equal(t, "GTA$", s.Text())
	assert.Equal(t, []int{3, 2, 0, 1}, s.Positions())

	// lowercase input builds the same array
	lower, err := BuildSuffixArray("gta", 0)
	require.NoError(t, err)
	assert.Equal(t, s.Positions(), lower.Positions())

	// the sentinel suffix always sorts first
	longer, err := BuildSuffixArray("ATGCGATCGATCGC", 0)
	require.NoError(t, err)
	assert.Equal(t, 14, longer.Positions()[0])
}

func TestBuildSuffixArray_bounds(t *testing.T) {
	_, err := BuildSuffixArray(strings.Repeat("A", 11), 10)
	assert.True(t, errors.Is(err, ErrUnsupported))

	_, err = BuildSuffixArray("ACG$T", 0)
	assert.True(t, errors.Is(err, ErrInvalidInput))

	// the default bound admits a text right at the configured limit
	_, err = BuildSuffixArray(strings.Repeat("A", 10), 10)
	assert.NoError(t, err)
}

// suffix-array search finds exactly what a direct scan finds
func TestSuffixArray_Search(t *testing.T) {
	text := "ATGCGATCGATCGC"
	s, err := BuildSuffixArray(text, 0)
	require.NoError(t, err)

	for _, pattern := range []string{"TCG", "ATCG", "GC", "T", "ATGCGATCGATCGC", "TTT"} {
		assert.Equal(t, NaiveMatch(text, pattern), s.Search(pattern), "pattern %q", pattern)
	}

	assert.Nil(t, s.Search(""))
	assert.Nil(t, s.Search("A$"))
}

func TestSuffixArray_Rows(t *testing.T) {
	s, err := BuildSuffixArray("GTA", 0)
	require.NoError(t, err)

	assert.Equal(t, []SuffixRow{
		{Rank: 0, Pos: 3, Suffix: "$"},
		{Rank: 1, Pos: 2, Suffix: "A$"},
		{Rank: 2, Pos: 0, Suffix: "GTA$"},
		{Rank: 3, Pos: 1, Suffix: "TA$"},
	}, s.Rows())
}

func TestRankTable(t *testing.T) {
	// one round per doubling until ranks are distinct
	assert.Equal(t, [][]int{
		{1, 2, 1, 2, 0},
		{1, 3, 1, 2, 0},
		{2, 4, 1, 3, 0},
	}, RankTable("ACAC"))

	// distinct characters rank in a single round
	assert.Equal(t, [][]int{{2, 3, 1, 0}}, RankTable("GTA"))
}

// the final rank round induces the same suffix order as the direct sort
func TestRankTable_inducesSuffixOrder(t *testing.T) {
	for _, text := range []string{"GTA", "ACAC", "ATGCGATCGATCGC", "AAAA", "N"} {
		s, err := BuildSuffixArray(text, 0)
		require.NoError(t, err)

		table := RankTable(text)
		final := table[len(table)-1]
		for rank, pos := range s.Positions() {
			assert.Equal(t, rank, final[pos], "text %q position %d", text, pos)
		}
	}
}
