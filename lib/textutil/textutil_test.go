package textutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeName(t *testing.T) {
	require.Equal(t, "calculo 1", NormalizeName("  CÁLCULO   1 "))
	require.Equal(t, "introducao a ciencia da computacao", NormalizeName("INTRODUÇÃO À CIÊNCIA DA COMPUTAÇÃO"))
}

func TestMatchName(t *testing.T) {
	require.True(t, MatchName("CÁLCULO 1", []string{"algebra", "calculo"}))
	require.False(t, MatchName("FÍSICA 1", []string{"algebra", "calculo"}))
}

func TestRank(t *testing.T) {
	offered := map[string]string{
		"113034": "CÁLCULO 1",
		"113042": "CÁLCULO 2",
		"116301": "COMPUTAÇÃO BÁSICA",
		"116343": "LINGUAGENS DE PROGRAMAÇÃO",
	}

	matches := Rank("calculo", offered, 2)
	require.Len(t, matches, 2)
	require.Equal(t, "113034", matches[0].Key)
	require.Equal(t, "113042", matches[1].Key)
	require.Greater(t, matches[0].Similarity, 1.0)

	matches = Rank("Computacao basica", offered, 0)
	require.Len(t, matches, len(offered))
	require.Equal(t, "116301", matches[0].Key)

	require.Empty(t, Rank("calculo", map[string]string{}, 3))
}
