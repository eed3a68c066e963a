package patterns

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func values(captures []Capture) [][]string {
	var out [][]string
	for _, c := range captures {
		out = append(out, c.Values)
	}
	return out
}

func TestExtract(t *testing.T) {
	rule := NewRule("test.pair", `(\d+)=(\w*)(;)?`, "key", "value", "end")

	testCases := []struct {
		name     string
		text     string
		expected [][]string
	}{
		{name: "empty text", text: "", expected: nil},
		{name: "no match", text: "nothing to see", expected: nil},
		{
			name: "optional group absent",
			text: "1=a; 2=b",
			expected: [][]string{
				{"1", "a", ";"},
				{"2", "b", ""},
			},
		},
		{name: "empty value", text: "3=", expected: [][]string{{"3", "", ""}}},
	}

	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {
			captures := Extract(rule, test.text)
			diff := cmp.Diff(test.expected, values(captures))
			if diff != "" {
				t.Fatal(diff)
			}
		})
	}
}

func TestExtractDoesNotCrossLines(t *testing.T) {
	rule := NewRule("test.span", `<b>(.*?)</b>`, "text")
	require.Empty(t, Extract(rule, "<b>first\nsecond</b>"))
	require.Equal(t, []string{"one"}, Strings(Extract(rule, "<b>one</b>\n<b>two\n</b>"), "text"))
}

func TestCaptureField(t *testing.T) {
	rule := NewRule("test.pair", `(\d+)=(\w+)`, "key", "value")
	captures := Extract(rule, "10=x")
	require.Len(t, captures, 1)
	require.Equal(t, "10", captures[0].Field("key"))
	require.Equal(t, "x", captures[0].Field("value"))
	require.Panics(t, func() { captures[0].Field("missing") })
}

func TestNewRulePanicsOnFieldMismatch(t *testing.T) {
	require.Panics(t, func() { NewRule("bad", `(\d+)(\d+)`, "only_one") })
	require.Panics(t, func() { NewRule("bad", `(`, "x") })
}

func TestRegistryFallsBackToNextRule(t *testing.T) {
	registry := Registry{
		"kind": {
			NewRule("new-layout", `<span id=cod>(\d+)</span>`, "code"),
			NewRule("old-layout", `cod=(\d+)`, "code"),
		},
	}

	captures := registry.Extract("kind", "a cod=123 b cod=456")
	require.Equal(t, []string{"123", "456"}, Strings(captures, "code"))
	require.Equal(t, "old-layout", captures[0].Rule.Name)

	captures = registry.Extract("kind", "<span id=cod>789</span> cod=1")
	require.Equal(t, []string{"789"}, Strings(captures, "code"))

	require.Nil(t, registry.Extract("unknown", "cod=1"))
}

func TestExtractEach(t *testing.T) {
	registry := Registry{
		"outer": {NewRule("outer", `\[(.*?)\]`, "body")},
		"inner": {NewRule("inner", `(\d)`, "digit")},
	}

	outer := registry.Extract("outer", "[12] [] [3]")
	inner := registry.ExtractEach(outer, "body", "inner")
	require.Len(t, inner, 3)
	require.Equal(t, []string{"1", "2"}, Strings(inner[0], "digit"))
	require.Empty(t, inner[1])
	require.Equal(t, []string{"3"}, Strings(inner[2], "digit"))
}

func TestDefaultSatisfiesRequired(t *testing.T) {
	require.NoError(t, Default.Validate(Required))

	broken := Registry{Course: {NewRule("course", `(\d+)`, "code")}}
	require.Error(t, broken.Validate(Required))
	require.Error(t, Registry{}.Validate(map[Kind][]string{Course: {"code"}}))
}

func TestDefaultRules(t *testing.T) {
	testCases := []struct {
		name     string
		kind     Kind
		text     string
		expected [][]string
	}{
		{
			name: "curriculum discipline",
			kind: CurriculumDiscipline,
			text: `<td><a href=disciplina.aspx?cod=113034><b>113034</b> - CALCULO 1</a></td>` +
				`<td><b>&nbsp;</b></td><td>4 2 0 6</td><td>MAT</td></tr>`,
			expected: [][]string{{"113034", "CALCULO 1", "&nbsp;", "4", "2", "0", "6", "MAT"}},
		},
		{
			name:     "prerequisite codes",
			kind:     PrerequisiteCode,
			text:     "MAT-113034 Cálculo 1 E<br>CIC-116301",
			expected: [][]string{{"113034"}, {"116301"}},
		},
		{
			name:     "flow discipline",
			kind:     FlowDiscipline,
			text:     `<a href=disciplina.aspx?cod=113034>113034</a><a href=disciplina.aspx?cod=116301>116301</a>`,
			expected: [][]string{{"113034"}, {"116301"}},
		},
		{
			name: "offering class",
			kind: OfferingClass,
			text: `<b>Segunda</b><br><font size=1 color=black><b>08:00</font> ` +
				`<font size=1 color=brown>09:50</b></font><br><i><img src=/imagens/subseta_dir.gif align=top> PJC BT 073</i>`,
			expected: [][]string{{"Segunda", "08:00", "09:50", "PJC BT 073"}},
		},
		{
			name: "reservation",
			kind: OfferingRes,
			text: `<td align=left>Ciência da Computação</td><td align=center>10</td><td align=center>5</td>`,
			expected: [][]string{{"Ciência da Computação", "10", "5"}},
		},
		{
			name:     "offered discipline",
			kind:     OfferedDiscipline,
			text:     `<a href=oferta_dados.aspx?cod=116301&dep=116>ESTRUTURAS DE DADOS</a>`,
			expected: [][]string{{"116301", "ESTRUTURAS DE DADOS"}},
		},
	}

	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {
			diff := cmp.Diff(test.expected, values(Default.Extract(test.kind, test.text)))
			if diff != "" {
				t.Fatal(diff)
			}
		})
	}
}
