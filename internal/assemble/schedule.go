package assemble

import (
	"bytes"
	"encoding/json"

	"github.com/Matheusmno/MWebCrawler/internal/patterns"
)

// Class is one weekly meeting of a turma.
type Class struct {
	Day      string `json:"-"`
	Start    string `json:"Início"`
	End      string `json:"Fim"`
	Location string `json:"Local"`
}

// Schedule groups classes by day. Days keep the order they were first seen
// in and classes keep the order they were added in.
type Schedule struct {
	days  []string
	byDay map[string][]Class
}

func (s *Schedule) Add(c Class) {
	if s.byDay == nil {
		s.byDay = map[string][]Class{}
	}
	if _, ok := s.byDay[c.Day]; !ok {
		s.days = append(s.days, c.Day)
	}
	s.byDay[c.Day] = append(s.byDay[c.Day], c)
}

func (s Schedule) Days() []string {
	return s.days
}

func (s Schedule) On(day string) []Class {
	return s.byDay[day]
}

// Len is the number of days with at least one class.
func (s Schedule) Len() int {
	return len(s.days)
}

// Classes returns every class, grouped by day.
func (s Schedule) Classes() []Class {
	var out []Class
	for _, d := range s.days {
		out = append(out, s.byDay[d]...)
	}
	return out
}

// MarshalJSON writes the schedule as an object keyed by day, in day order.
func (s Schedule) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, d := range s.days {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(d)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(s.byDay[d])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// NewSchedule builds a schedule from captures with "day", "start", "end"
// and "location" fields.
func NewSchedule(captures []patterns.Capture) Schedule {
	var s Schedule
	for _, c := range captures {
		s.Add(Class{
			Day:      c.Field("day"),
			Start:    Name(c.Field("start")),
			End:      Name(c.Field("end")),
			Location: Name(c.Field("location")),
		})
	}
	return s
}

type Reservation struct {
	Seats    int `json:"Vagas"`
	Freshmen int `json:"Calouros"`
}

// NewReservations builds the reserved seats per course from captures with
// "course", "seats" and "freshmen" fields. It returns nil when there are
// no captures.
func NewReservations(captures []patterns.Capture) (map[string]Reservation, error) {
	if len(captures) == 0 {
		return nil, nil
	}
	out := make(map[string]Reservation, len(captures))
	for _, c := range captures {
		seats, err := IntField(c, "seats")
		if err != nil {
			return nil, err
		}
		freshmen, err := IntField(c, "freshmen")
		if err != nil {
			return nil, err
		}
		out[Name(c.Field("course"))] = Reservation{Seats: seats, Freshmen: freshmen}
	}
	return out, nil
}
