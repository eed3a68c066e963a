package assemble

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/Matheusmno/MWebCrawler/internal/patterns"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestInt(t *testing.T) {
	n, err := Int("seats", " 42 ")
	require.NoError(t, err)
	require.Equal(t, 42, n)

	for _, text := range []string{"12a", "", "4.0", "um", "-3", "+3", " -0"} {
		_, err := Int("seats", text)
		require.ErrorIs(t, err, ErrMalformedNumber, text)

		var parseErr *ParseError
		require.True(t, errors.As(err, &parseErr))
		require.Equal(t, "seats", parseErr.Field)
		require.Equal(t, text, parseErr.Text)
	}
}

func TestCreditsRejectNegative(t *testing.T) {
	_, err := NewCredits("4", "-2", "0", "4")
	require.ErrorIs(t, err, ErrMalformedNumber)

	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
	require.Equal(t, "credits.practice", parseErr.Field)
}

func TestCreditsRoundTrip(t *testing.T) {
	credits, err := NewCredits("3", "2", "0", "1")
	require.NoError(t, err)
	require.Equal(t, Credits{Theory: 3, Practice: 2, Extension: 0, Study: 1}, credits)
	require.Equal(t, 6, credits.Total())

	encoded, err := json.Marshal(credits)
	require.NoError(t, err)
	require.JSONEq(t, `{"Teoria":3,"Prática":2,"Extensão":0,"Estudo":1}`, string(encoded))

	encoded, err = json.Marshal(Credits{})
	require.NoError(t, err)
	require.JSONEq(t, `{"Teoria":0,"Prática":0,"Extensão":0,"Estudo":0}`, string(encoded))

	var decoded Credits
	require.NoError(t, json.Unmarshal(encoded, &decoded))
	require.Equal(t, Credits{}, decoded)
}

func TestCreditsMalformed(t *testing.T) {
	_, err := NewCredits("4", "12a", "0", "0")
	require.ErrorIs(t, err, ErrMalformedNumber)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "credits.practice", parseErr.Field)
}

func TestNormalize(t *testing.T) {
	testCases := []struct {
		name     string
		fn       func(string) string
		input    string
		expected string
	}{
		{name: "name line break", fn: Name, input: " MAT-113034 Cálculo 1<br>E<br>CIC-116301 ", expected: "MAT-113034 Cálculo 1 E CIC-116301"},
		{name: "name entities", fn: Name, input: "ALGORITMOS &amp; ESTRUTURAS&nbsp;DE DADOS", expected: "ALGORITMOS & ESTRUTURAS DE DADOS"},
		{name: "name whitespace", fn: Name, input: "CALCULO   1\n", expected: "CALCULO 1"},
		{name: "long text", fn: LongText, input: "Limites.<br />Derivadas.<br />  Integrais. ", expected: "Limites.\nDerivadas.\nIntegrais."},
		{name: "long text entities", fn: LongText, input: "1. Introdu&ccedil;&atilde;o<br>2. Fim", expected: "1. Introdução\n2. Fim"},
		{name: "empty", fn: LongText, input: "", expected: ""},
	}

	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {
			require.Equal(t, test.expected, test.fn(test.input))
		})
	}
}

var classRule = patterns.NewRule("test.class", `(\S+) (\S+)-(\S+) (\S+);`, "day", "start", "end", "location")

func TestScheduleGroupsByDay(t *testing.T) {
	captures := patterns.Extract(classRule, "Segunda 08:00-09:50 A1; Segunda 10:00-11:50 A2; Terça 08:00-09:50 B1;")
	schedule := NewSchedule(captures)

	require.Equal(t, []string{"Segunda", "Terça"}, schedule.Days())
	require.Equal(t, 2, schedule.Len())

	diff := cmp.Diff([]Class{
		{Day: "Segunda", Start: "08:00", End: "09:50", Location: "A1"},
		{Day: "Segunda", Start: "10:00", End: "11:50", Location: "A2"},
	}, schedule.On("Segunda"))
	if diff != "" {
		t.Fatal(diff)
	}
	require.Len(t, schedule.On("Terça"), 1)
	require.Empty(t, schedule.On("Domingo"))
	require.Len(t, schedule.Classes(), 3)
}

func TestScheduleJSONKeepsDayOrder(t *testing.T) {
	var schedule Schedule
	schedule.Add(Class{Day: "Sexta", Start: "14:00", End: "15:50", Location: "PAT AT 021"})
	schedule.Add(Class{Day: "Quarta", Start: "14:00", End: "15:50", Location: "PAT AT 021"})

	encoded, err := json.Marshal(schedule)
	require.NoError(t, err)
	require.Equal(t,
		`{"Sexta":[{"Início":"14:00","Fim":"15:50","Local":"PAT AT 021"}],`+
			`"Quarta":[{"Início":"14:00","Fim":"15:50","Local":"PAT AT 021"}]}`,
		string(encoded),
	)

	encoded, err = json.Marshal(Schedule{})
	require.NoError(t, err)
	require.Equal(t, `{}`, string(encoded))
}

var reservationRule = patterns.NewRule("test.reservation", `(\w+)=(\w+)/(\w+)`, "course", "seats", "freshmen")

func TestNewReservations(t *testing.T) {
	reservations, err := NewReservations(patterns.Extract(reservationRule, "BCC=10/5 ENC=4/0"))
	require.NoError(t, err)
	require.Equal(t, map[string]Reservation{
		"BCC": {Seats: 10, Freshmen: 5},
		"ENC": {Seats: 4, Freshmen: 0},
	}, reservations)

	reservations, err = NewReservations(nil)
	require.NoError(t, err)
	require.Nil(t, reservations)

	_, err = NewReservations(patterns.Extract(reservationRule, "BCC=1x/5"))
	require.ErrorIs(t, err, ErrMalformedNumber)
}
