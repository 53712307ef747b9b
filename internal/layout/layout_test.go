package layout

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_UnknownPattern(t *testing.T) {
	_, err := Generate(Pattern("DOME"))
	assert.True(t, errors.Is(err, ErrUnknownPattern))
}

func TestGenerate_Deterministic(t *testing.T) {
	for _, p := range Patterns() {
		first, err := Generate(p)
		require.NoError(t, err)

		second, err := Generate(p)
		require.NoError(t, err)

		assert.Empty(t, cmp.Diff(first, second), "pattern %s not deterministic", p)
	}
}

func TestGenerate_NonEmptyAndUniqueLabels(t *testing.T) {
	for _, p := range Patterns() {
		seats, err := Generate(p)
		require.NoError(t, err)
		require.NotEmpty(t, seats, "pattern %s generated no seats", p)

		labels := make(map[string]bool, len(seats))
		for _, s := range seats {
			assert.False(t, labels[s.Label], "pattern %s has duplicate label %s", p, s.Label)
			labels[s.Label] = true
		}
	}
}

func TestGenerate_StandardGrid(t *testing.T) {
	seats, err := Generate(PatternStandard)
	require.NoError(t, err)

	assert.Len(t, seats, 80)

	// Front row aisle seats are accessible, interior front seats are not.
	assert.Equal(t, "A-01", seats[0].Label)
	assert.Equal(t, SeatTypeAccessible, seats[0].Type)
	assert.Equal(t, SeatTypeRegular, seats[1].Type)
	assert.Equal(t, SeatTypeAccessible, seats[9].Type)

	// The back row is VIP.
	last := seats[len(seats)-1]
	assert.Equal(t, "H-10", last.Label)
	assert.Equal(t, SeatTypeVIP, last.Type)
}

func TestGenerate_VIPLayoutIsAllVIP(t *testing.T) {
	seats, err := Generate(PatternVIP)
	require.NoError(t, err)

	for _, s := range seats {
		assert.Equal(t, SeatTypeVIP, s.Type, "seat %s", s.Label)
	}
}

func TestParsePattern(t *testing.T) {
	p, err := ParsePattern("IMAX")
	require.NoError(t, err)
	assert.Equal(t, PatternIMAX, p)

	_, err = ParsePattern("imax")
	assert.True(t, errors.Is(err, ErrUnknownPattern))
}

func TestRowName(t *testing.T) {
	tests := []struct {
		row  int
		want string
	}{
		{1, "A"},
		{8, "H"},
		{26, "Z"},
		{27, "AA"},
		{28, "AB"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, rowName(tt.row))
	}
}
