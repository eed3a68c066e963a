// Package catalog holds the closed sets of institutional codes that select
// what Matrícula Web returns: academic level, campus, department and
// habilitation.
package catalog

import (
	"fmt"
	"strconv"
	"strings"
)

// Level is the academic level, it is also the first path segment of every
// Matrícula Web page.
type Level string

const (
	Graduacao    Level = "graduacao"
	PosGraduacao Level = "posgraduacao"
)

func (l Level) String() string {
	return string(l)
}

func (l Level) Valid() bool {
	return l == Graduacao || l == PosGraduacao
}

func ParseLevel(value string) (Level, error) {
	level := Level(strings.ToLower(strings.TrimSpace(value)))
	if !level.Valid() {
		return "", fmt.Errorf("unknown level %q (expected %s or %s)", value, Graduacao, PosGraduacao)
	}
	return level, nil
}

type Campus int

const (
	DarcyRibeiro Campus = 1
	Planaltina   Campus = 2
	Ceilandia    Campus = 3
	Gama         Campus = 4
)

var campusNames = map[Campus]string{
	DarcyRibeiro: "darcy_ribeiro",
	Planaltina:   "planaltina",
	Ceilandia:    "ceilandia",
	Gama:         "gama",
}

// Code is the value sent in the `cod` query parameter.
func (c Campus) Code() string {
	return strconv.Itoa(int(c))
}

func (c Campus) String() string {
	name, ok := campusNames[c]
	if !ok {
		return c.Code()
	}
	return name
}

// ParseCampus accepts either the campus name or its numeric code.
func ParseCampus(value string) (Campus, error) {
	return parseCode(value, campusNames, "campus")
}

// Department is the code of a department that offers disciplines. The
// named constants are the ones this tool is usually pointed at, any other
// numeric code is accepted as well.
type Department int

const (
	CIC  Department = 116
	ENE  Department = 163
	ENM  Department = 164
	EST  Department = 115
	FGA  Department = 650
	IFD  Department = 550
	MAT  Department = 113
	none Department = 0
)

var departmentNames = map[Department]string{
	CIC: "cic",
	ENE: "ene",
	ENM: "enm",
	EST: "est",
	FGA: "gama",
	IFD: "ifd",
	MAT: "mat",
}

func (d Department) Code() string {
	return strconv.Itoa(int(d))
}

// IsZero reports whether no department was given.
func (d Department) IsZero() bool {
	return d == none
}

func (d Department) String() string {
	name, ok := departmentNames[d]
	if !ok {
		return d.Code()
	}
	return name
}

func ParseDepartment(value string) (Department, error) {
	return parseCode(value, departmentNames, "department")
}

// Habilitation is the code of one of the degree options of a course.
type Habilitation int

const (
	BCC Habilitation = 1856
	LIC Habilitation = 1899
	ENC Habilitation = 1741
	MEC Habilitation = 6912
)

var habilitationNames = map[Habilitation]string{
	BCC: "bcc",
	LIC: "lic",
	ENC: "enc",
	MEC: "enm",
}

func (h Habilitation) Code() string {
	return strconv.Itoa(int(h))
}

func (h Habilitation) String() string {
	name, ok := habilitationNames[h]
	if !ok {
		return h.Code()
	}
	return name
}

func ParseHabilitation(value string) (Habilitation, error) {
	return parseCode(value, habilitationNames, "habilitation")
}

func parseCode[T ~int](value string, names map[T]string, kind string) (T, error) {
	trimmed := strings.ToLower(strings.TrimSpace(value))
	for code, name := range names {
		if name == trimmed {
			return code, nil
		}
	}
	n, err := strconv.Atoi(trimmed)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("unknown %s %q", kind, value)
	}
	return T(n), nil
}
