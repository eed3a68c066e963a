package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel(" Graduacao ")
	require.NoError(t, err)
	require.Equal(t, Graduacao, level)

	level, err = ParseLevel("posgraduacao")
	require.NoError(t, err)
	require.Equal(t, PosGraduacao, level)

	_, err = ParseLevel("mestrado")
	require.Error(t, err)
}

func TestParseCodes(t *testing.T) {
	testCases := []struct {
		name     string
		parse    func(string) (int, error)
		input    string
		expected int
		fails    bool
	}{
		{name: "campus by name", parse: wrap(ParseCampus), input: "gama", expected: 4},
		{name: "campus by code", parse: wrap(ParseCampus), input: "2", expected: 2},
		{name: "department by name", parse: wrap(ParseDepartment), input: "CIC", expected: 116},
		{name: "department by unnamed code", parse: wrap(ParseDepartment), input: "192", expected: 192},
		{name: "habilitation by name", parse: wrap(ParseHabilitation), input: "bcc", expected: 1856},
		{name: "negative code", parse: wrap(ParseDepartment), input: "-1", fails: true},
		{name: "unknown name", parse: wrap(ParseCampus), input: "asa norte", fails: true},
	}

	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {
			n, err := test.parse(test.input)
			if test.fails {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, test.expected, n)
		})
	}
}

func wrap[T ~int](parse func(string) (T, error)) func(string) (int, error) {
	return func(s string) (int, error) {
		v, err := parse(s)
		return int(v), err
	}
}

func TestCodes(t *testing.T) {
	require.Equal(t, "1", DarcyRibeiro.Code())
	require.Equal(t, "650", FGA.Code())
	require.Equal(t, "6912", MEC.Code())
	require.Equal(t, "ceilandia", Ceilandia.String())
	require.Equal(t, "999", Department(999).String())
	require.True(t, Department(0).IsZero())
	require.False(t, CIC.IsZero())
}
