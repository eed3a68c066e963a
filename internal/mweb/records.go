package mweb

import (
	"github.com/Matheusmno/MWebCrawler/internal/assemble"
	"github.com/Matheusmno/MWebCrawler/internal/requirement"
)

type Discipline struct {
	ID      string           `json:"Código"`
	Name    string           `json:"Nome"`
	Credits assemble.Credits `json:"Créditos"`
	Area    string           `json:"Área"`
}

// DisciplineGroup is a set of disciplines that must all be taken.
type DisciplineGroup []Discipline

// Curriculum lists the disciplines of a course. Each selective chain is a
// list of groups where taking any one group completes the chain.
type Curriculum struct {
	Mandatory map[string]Discipline        `json:"obrigatórias"`
	Chains    map[string][]DisciplineGroup `json:"cadeias"`
	Elective  map[string]Discipline        `json:"optativas"`
}

func newCurriculum() Curriculum {
	return Curriculum{
		Mandatory: map[string]Discipline{},
		Chains:    map[string][]DisciplineGroup{},
		Elective:  map[string]Discipline{},
	}
}

func (c Curriculum) Empty() bool {
	return len(c.Mandatory) == 0 && len(c.Chains) == 0 && len(c.Elective) == 0
}

// Requirement converts a chain into its OR-of-AND form.
func (c Curriculum) Requirement(chain string) requirement.Chain {
	groups := c.Chains[chain]
	out := make(requirement.Chain, 0, len(groups))
	for _, g := range groups {
		group := make(requirement.Group, len(g))
		for i, d := range g {
			group[i] = requirement.Item{ID: d.ID, Label: d.Name}
		}
		out = append(out, group)
	}
	return out
}

type Period struct {
	Credits     int      `json:"Créditos"`
	Disciplines []string `json:"Disciplinas"`
}

// Flow maps a period number to the disciplines suggested for it.
type Flow map[int]Period

type Habilitation struct {
	Name                 string `json:"Nome"`
	Degree               string `json:"Grau"`
	MinTerms             int    `json:"Limite mínimo de permanência"`
	MaxTerms             int    `json:"Limite máximo de permanência"`
	GraduationCredits    int    `json:"Créditos para Formatura"`
	ConcentrationCredits int    `json:"Mínimo de Créditos Optativos na Área de Concentração"`
	RelatedCredits       int    `json:"Quantidade mínima de Créditos Optativos na Área Conexa"`
	FreeCredits          int    `json:"Quantidade máxima de Créditos no Módulo Livre"`
}

type Course struct {
	Modality string `json:"Modalidade"`
	Name     string `json:"Denominação"`
	Shift    string `json:"Turno"`
}

type DisciplineInfo struct {
	DepartmentAcronym string `json:"Sigla do Departamento"`
	DepartmentName    string `json:"Nome do Departamento"`
	Name              string `json:"Denominação"`
	Level             string `json:"Nível"`
	ValidFrom         string `json:"Vigência"`
	Prerequisites     string `json:"Pré-requisitos"`
	Syllabus          string `json:"Ementa"`
	// Program is only present on pages that have it.
	Program      string `json:"Programa,omitempty"`
	Bibliography string `json:"Bibliografia"`
}

func (d DisciplineInfo) Empty() bool {
	return d == DisciplineInfo{}
}

type Department struct {
	Acronym string `json:"Sigla"`
	Name    string `json:"Denominação"`
}

type Turma struct {
	Seats       int               `json:"Vagas"`
	Enrolled    int               `json:"Alunos Matriculados"`
	Instructors []string          `json:"Professores"`
	Schedule    assemble.Schedule `json:"Aulas"`
	// Reserved is nil when the turma has no reserved seats.
	Reserved map[string]assemble.Reservation `json:"Turma Reservada,omitempty"`
}

type Offering struct {
	Department string            `json:"Departamento,omitempty"`
	Name       string            `json:"Nome,omitempty"`
	Credits    *assemble.Credits `json:"Créditos,omitempty"`
	Turmas     map[string]Turma  `json:"Turmas"`
}

func (o Offering) Empty() bool {
	return o.Department == "" && o.Name == "" && o.Credits == nil && len(o.Turmas) == 0
}
