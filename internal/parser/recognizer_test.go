package parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"temporal-intent-engine/pkg/datemath"
)

func TestRecognizer_Dates(t *testing.T) {
	r := newDateRecognizer()
	base := time.Date(2025, time.January, 13, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		text string
		want []string
	}{
		{"vendredi", []string{"2025-01-17"}},
		{"dimanche", []string{"2025-01-19"}},
		{"lundi prochain", []string{"2025-01-20"}},
		{"dimanche suivant", []string{"2025-01-26"}},
		{"29 février", []string{}},
		{"29 février 2028", []string{"2028-02-29"}},
		{"le premier décembre", []string{"2025-12-01"}},
		{"le 1er aout", []string{"2025-08-01"}},
		{"20/01 et 2025-02-03", []string{"2025-01-20", "2025-02-03"}},
		{"13/13", []string{}},
		{"mardi 15 janvier", []string{"2025-01-15"}},
		{"15 janvier mardi", []string{"2025-01-15"}},
		{"15/01/2124", []string{"2124-01-15"}},
		{"15/01/2400", []string{}},
		{"2400-01-15", []string{}},
		{"1er mars 9999", []string{}},
		{"rien du tout", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			hits, err := r.scan(tt.text, base)
			require.NoError(t, err)

			got := make([]string, 0, len(hits))
			for _, h := range hits {
				got = append(got, datemath.FromTime(h).String())
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRecognizer_Times(t *testing.T) {
	r := newTimeRecognizer()
	base := time.Date(2025, time.January, 13, 0, 0, 0, 0, time.UTC)

	hits, err := r.scan("de 9:15 à 17:45 sauf 25:00", base)
	require.NoError(t, err)
	require.Len(t, hits, 2)
	assert.Equal(t, "09:15", hits[0].Format("15:04"))
	assert.Equal(t, "17:45", hits[1].Format("15:04"))
}

func TestAlternation_LongestFirst(t *testing.T) {
	got := alternation(map[string]int{"mai": 1, "mars": 2, "m": 3})
	assert.Equal(t, "mars|mai|m", got)
}

func TestIsoIndex(t *testing.T) {
	assert.Equal(t, 0, isoIndex(time.Monday))
	assert.Equal(t, 6, isoIndex(time.Sunday))
}
