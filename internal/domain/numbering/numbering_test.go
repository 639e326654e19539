package numbering_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glanzwerk/rechnung-api/internal/domain"
	"github.com/glanzwerk/rechnung-api/internal/domain/numbering"
)

func TestNext_FirstInvoiceOfLineage(t *testing.T) {
	got, err := numbering.Next("", 2025)
	require.NoError(t, err)
	assert.Equal(t, "2025-1001", got)
}

func TestNext_IncrementsSequence(t *testing.T) {
	got, err := numbering.Next("2025-1001", 2025)
	require.NoError(t, err)
	assert.Equal(t, "2025-1002", got)
}

func TestNext_YearChangesButSequenceContinues(t *testing.T) {
	// The year part follows the clock; the sequence never resets.
	got, err := numbering.Next("2025-1042", 2026)
	require.NoError(t, err)
	assert.Equal(t, "2026-1043", got)
}

func TestNext_SequenceGrowsPastFourDigits(t *testing.T) {
	got, err := numbering.Next("2025-9999", 2026)
	require.NoError(t, err)
	assert.Equal(t, "2026-10000", got)
}

func TestNext_MalformedLatest(t *testing.T) {
	cases := []struct {
		name   string
		latest string
	}{
		{"no separator", "20251001"},
		{"year not numeric", "abcd-1001"},
		{"sequence not numeric", "2025-10x1"},
		{"empty sequence", "2025-"},
		{"signed sequence", "2025--5"},
		{"plus-signed sequence", "2025-+5"},
		{"signed year", "-2025-1001"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := numbering.Next(tc.latest, 2025)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrBadNumberFormat)
		})
	}
}

func TestParse_RoundTrip(t *testing.T) {
	year, seq, err := numbering.Parse("2025-1001")
	require.NoError(t, err)
	assert.Equal(t, 2025, year)
	assert.Equal(t, 1001, seq)
}
