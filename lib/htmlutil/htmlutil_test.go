package htmlutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestText(t *testing.T) {
	testCases := []struct {
		name     string
		fragment string
		expected string
	}{
		{name: "plain", fragment: "  MARIA  DA SILVA ", expected: "MARIA DA SILVA"},
		{name: "link", fragment: `<a href=docente.aspx?cod=1>JOÃO</a>`, expected: "JOÃO"},
		{name: "nested", fragment: `<b><font color=red>A distribuir</font></b>`, expected: "A distribuir"},
		{name: "entities", fragment: `C&aacute;lculo &amp; &Aacute;lgebra`, expected: "Cálculo & Álgebra"},
		{name: "empty", fragment: "", expected: ""},
	}

	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {
			require.Equal(t, test.expected, Text(test.fragment))
		})
	}
}
