package patterns

const (
	CurriculumSections   Kind = "curriculum.sections"
	CurriculumChain      Kind = "curriculum.chain"
	CurriculumDiscipline Kind = "curriculum.discipline"

	FlowPeriod     Kind = "flow.period"
	FlowDiscipline Kind = "flow.discipline"

	Habilitation Kind = "course.habilitation"
	Course       Kind = "course.listing"

	DisciplineInfo    Kind = "discipline.info"
	PrerequisiteBlock Kind = "discipline.prerequisites"
	PrerequisiteCode  Kind = "discipline.prerequisite_code"

	Department        Kind = "offer.department"
	OfferedDiscipline Kind = "offer.discipline"
	WaitlistTable     Kind = "offer.waitlist_table"
	WaitlistTurma     Kind = "offer.waitlist_turma"
	OfferingInfo      Kind = "offer.info"
	OfferingTurma     Kind = "offer.turma"
	OfferingClass     Kind = "offer.class"
	OfferingRes       Kind = "offer.reservation"
)

var curriculumDiscipline = NewRule(
	"curriculum.discipline/v1",
	`disciplina.aspx\?cod=(\d+)>.*?</b> - (.*?)</a></td>`+
		`<td><b>(.*?)</b></td><td>(\d+) (\d+) (\d+) (\d+)</td>`+
		`<td>(.*?)</td></tr>`,
	"code", "name", "marker", "theory", "practice", "extension", "study", "area",
)

// Default is the rule set for the Matrícula Web pages as they are currently
// served.
var Default = Registry{
	CurriculumSections: {NewRule(
		"curriculum.sections/v1",
		`DISCIPLINAS OBRIGATÓRIAS (.*?)</table></td>(.*?)`+
			`DISCIPLINAS OPTATIVAS (.*?)</table></td>`,
		"mandatory", "chains", "elective",
	)},
	CurriculumChain: {NewRule(
		"curriculum.chain/v1",
		`CADEIA: (\d+)(.*?)</table>`,
		"chain", "body",
	)},
	CurriculumDiscipline: {curriculumDiscipline},

	FlowPeriod: {NewRule(
		"flow.period/v1",
		`<b>PERÍODO: (\d+).*?CRÉDITOS:</b> (\d+)</td>(.*?)</tr></table>`,
		"period", "credits", "body",
	)},
	FlowDiscipline: {NewRule(
		"flow.discipline/v1",
		`disciplina.aspx\?cod=\d+>(\d+)</a>`,
		"code",
	)},

	Habilitation: {NewRule(
		"course.habilitation/v1",
		`<a name=\d+></a><tr .*?><td  colspan=3><b>(\d+) - (.*?)</b></td></tr>.*?`+
			`Grau: </td><td .*?>(.*?)</td></tr>.*?`+
			`Limite mínimo de permanência: </td><td align=right>(\d+)</td>.*?`+
			`Limite máximo de permanência: </td>.*?<td align=right>(\d+)</td>.*?`+
			`Quantidade de Créditos para Formatura: </td><td align=right>(\d+)</td>.*?`+
			`Quantidade mínima de Créditos Optativos na Área de Concentração: </td><td align=right>(\d+)</td>.*?`+
			`Quantidade mínima de Créditos Optativos na Área Conexa: </td><td align=right>(\d+)</td>.*?`+
			`Quantidade máxima de Créditos no Módulo Livre: </td><td align=right>(\d+)</td>`,
		"code", "name", "degree", "min_terms", "max_terms",
		"graduation_credits", "concentration_credits", "related_credits", "free_credits",
	)},
	Course: {NewRule(
		"course.listing/v1",
		`<tr CLASS=PadraoMenor bgcolor=.*?><td>(.*?)</td><td>\d+</td>`+
			`.*?aspx\?cod=(\d+)>(.*?)</a></td><td>(.*?)</td></tr>`,
		"modality", "code", "name", "shift",
	)},

	DisciplineInfo: {NewRule(
		"discipline.info/v1",
		`Órgão:</b> </td><td>(\w+) - (.*?)</td></tr>.*?`+
			`Denominação:</b> </td><td>(.*?)</td></tr>.*?`+
			`Nível:</b> </td><td>(.*?)</td></tr>.*?`+
			`Vigência:</b> </td><td>(.*?)</td></tr>.*?`+
			`Pré-req:</b> </td><td class=PadraoMenor>(.*?)</td></tr>.*?`+
			`Ementa:</b> </td><td class=PadraoMenor><p align=justify>(.*?)</P></td></tr>.*?`+
			`(?:.*Programa:</b> </td><td class=PadraoMenor><p align=justify>(.*?)</P></td></tr>)?.*?`+
			`Bibliografia:</b> </td><td class=PadraoMenor><p align=justify>(.*?)</P></td></tr>`,
		"department_acronym", "department_name", "name", "level", "valid_from",
		"prerequisites", "syllabus", "program", "bibliography",
	)},
	PrerequisiteBlock: {NewRule(
		"discipline.prerequisites/v1",
		`<td valign=top><b>Pré-req:</b> </td><td class=PadraoMenor>(.*?)</td></tr>`,
		"text",
	)},
	PrerequisiteCode: {NewRule(
		"discipline.prerequisite_code/v1",
		`(\d{6})`,
		"code",
	)},

	Department: {NewRule(
		"offer.department/v1",
		`<tr CLASS=PadraoMenor bgcolor=.*?><td>\d+</td><td>(\w+)</td>`+
			`.*?aspx\?cod=(\d+)>(.*?)</a></td></tr>`,
		"acronym", "code", "name",
	)},
	OfferedDiscipline: {NewRule(
		"offer.discipline/v1",
		`oferta_dados.aspx\?cod=(\d+).*?>(.*?)</a>`,
		"code", "name",
	)},
	WaitlistTable: {NewRule(
		"offer.waitlist_table/v1",
		`(<td><b>Turma</b></td>    <td><b>Vagas<br>Solicitadas</b></td>  </tr>`+
			`<tr CLASS=PadraoMenor bgcolor=.*?>  .*?</tr><tr CLASS=PadraoBranco>)`,
		"table",
	)},
	WaitlistTurma: {NewRule(
		"offer.waitlist_turma/v1",
		`<td align=center >(\w+)</td>  <td align=center >(\d+)</td></tr>`,
		"turma", "requested",
	)},
	OfferingInfo: {NewRule(
		"offer.info/v1",
		`Departamento: <strong><a href.*?>(.*?)</a></strong>.*?`+
			`Nome: <a title=.*?>(.*?)<img .*?></a>.*?`+
			`<b>Créditos</b><br>\(Teor-Prat-Ext-Est\)<br><font.*?>(\d+)-(\d+)-(\d+)-(\d+)`,
		"department", "name", "theory", "practice", "extension", "study",
	)},
	OfferingTurma: {NewRule(
		"offer.turma/v1",
		`<b>Turma</b>.*?<font size=4><b>(\w+)</b></font></div>.*?`+
			`<td>Total</td><td>Vagas</td><td><b>(\d+)</b>.*?`+
			`<td>Ocupadas</td><td><b><font color=(?:red|green)>(\d+)</font></b></td>`+
			`(.*?)<center>(.*?)(?:|<br>)</center>.*?`+
			`(Reserva para curso(.*?))?`+
			`<tr><td colspan=6 bgcolor=white height=20></td></tr>`,
		"turma", "seats", "enrolled", "schedule", "instructors", "reservation_section", "reservations",
	)},
	OfferingClass: {NewRule(
		"offer.class/v1",
		`<b>((?:Segunda|Terça|Quarta|Quinta|Sexta|Sábado|Domingo))</b>.*?`+
			`<font size=1 color=black><b>(.*?)</font>.*?`+
			`<font size=1 color=brown>(.*?)</b></font><br><i>`+
			`<img src=/imagens/subseta_dir.gif align=top> (.*?)</i>`,
		"day", "start", "end", "location",
	)},
	OfferingRes: {NewRule(
		"offer.reservation/v1",
		`<td align=left>(.*?)</td><td align=center>(\d+)</td><td align=center>(\d+)</td>`,
		"course", "seats", "freshmen",
	)},
}

// Required lists, for every kind the facade runs, the fields it reads from
// the captures. A registry handed to the facade must satisfy it.
var Required = map[Kind][]string{
	CurriculumSections:   {"mandatory", "chains", "elective"},
	CurriculumChain:      {"chain", "body"},
	CurriculumDiscipline: {"code", "name", "marker", "theory", "practice", "extension", "study", "area"},
	FlowPeriod:           {"period", "credits", "body"},
	FlowDiscipline:       {"code"},
	Habilitation: {
		"code", "name", "degree", "min_terms", "max_terms",
		"graduation_credits", "concentration_credits", "related_credits", "free_credits",
	},
	Course: {"modality", "code", "name", "shift"},
	DisciplineInfo: {
		"department_acronym", "department_name", "name", "level", "valid_from",
		"prerequisites", "syllabus", "program", "bibliography",
	},
	PrerequisiteBlock: {"text"},
	PrerequisiteCode:  {"code"},
	Department:        {"acronym", "code", "name"},
	OfferedDiscipline: {"code", "name"},
	WaitlistTable:     {"table"},
	WaitlistTurma:     {"turma", "requested"},
	OfferingInfo:      {"department", "name", "theory", "practice", "extension", "study"},
	OfferingTurma:     {"turma", "seats", "enrolled", "schedule", "instructors", "reservations"},
	OfferingClass:     {"day", "start", "end", "location"},
	OfferingRes:       {"course", "seats", "freshmen"},
}
