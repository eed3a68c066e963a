package mweb

import (
	"context"
	"slices"

	"github.com/Matheusmno/MWebCrawler/internal/assemble"
	"github.com/Matheusmno/MWebCrawler/internal/catalog"
	"github.com/Matheusmno/MWebCrawler/internal/patterns"
	"github.com/Matheusmno/MWebCrawler/internal/requirement"
	"github.com/Matheusmno/MWebCrawler/lib/platforms/matriculaweb"
)

const (
	report_curriculum_assemble   = "curriculum.assemble"
	report_flow_assemble         = "flow.assemble"
	report_habilitation_assemble = "habilitation.assemble"
)

func newDiscipline(c patterns.Capture) (Discipline, error) {
	credits, err := assemble.CreditsFrom(c)
	if err != nil {
		return Discipline{}, err
	}
	return Discipline{
		ID:      c.Field("code"),
		Name:    assemble.Name(c.Field("name")),
		Credits: credits,
		Area:    assemble.Name(c.Field("area")),
	}, nil
}

func (c *Client) disciplineMap(captures []patterns.Capture) (map[string]Discipline, error) {
	out := make(map[string]Discipline, len(captures))
	for _, capture := range captures {
		d, err := newDiscipline(capture)
		if err != nil {
			return nil, err
		}
		out[d.ID] = d
	}
	return out, nil
}

type markedDiscipline struct {
	Discipline
	marker string
}

// chainGroups assembles the disciplines of one selective chain and folds
// them into groups on their E/OU markers.
func (c *Client) chainGroups(cl *call, chain string, captures []patterns.Capture) ([]DisciplineGroup, error) {
	marked := make([]markedDiscipline, len(captures))
	for i, capture := range captures {
		d, err := newDiscipline(capture)
		if err != nil {
			return nil, err
		}
		marked[i] = markedDiscipline{Discipline: d, marker: capture.Field("marker")}
	}

	fold := requirement.GroupMarked(marked, func(m markedDiscipline) string {
		return m.marker
	})
	if pending := fold.Pending(); len(pending) > 0 {
		ids := make([]string, len(pending))
		for i, m := range pending {
			ids[i] = m.ID
		}
		c.tel.ReportDebug("dropping unterminated chain group", cl.code, chain, ids)
	}

	groups := make([]DisciplineGroup, 0, len(fold.Result()))
	for _, closed := range fold.Result() {
		group := make(DisciplineGroup, len(closed))
		for i, m := range closed {
			group[i] = m.Discipline
		}
		groups = append(groups, group)
	}
	return groups, nil
}

// Curriculum returns the mandatory, elective and selective chain
// disciplines of a course.
func (c *Client) Curriculum(ctx context.Context, course string, level catalog.Level, verbose bool) (Curriculum, error) {
	cl, err := c.begin(ctx, "curriculum", course, level, verbose)
	defer cl.end()
	if err != nil {
		return newCurriculum(), err
	}
	c.progress(cl, "fetching curriculum", "course", course)

	doc := c.fetch(cl, matriculaweb.PageCurriculum, codeParams(course))

	out := newCurriculum()
	for _, section := range c.rules.Extract(patterns.CurriculumSections, doc) {
		mandatory, err := c.disciplineMap(c.rules.Extract(patterns.CurriculumDiscipline, section.Field("mandatory")))
		if err != nil {
			return newCurriculum(), c.assembleFailed(cl, report_curriculum_assemble, err)
		}
		out.Mandatory = mandatory

		for _, chain := range c.rules.Extract(patterns.CurriculumChain, section.Field("chains")) {
			number := chain.Field("chain")
			groups, err := c.chainGroups(cl, number, c.rules.Extract(patterns.CurriculumDiscipline, chain.Field("body")))
			if err != nil {
				return newCurriculum(), c.assembleFailed(cl, report_curriculum_assemble, err)
			}
			out.Chains[number] = groups
		}

		elective, err := c.disciplineMap(c.rules.Extract(patterns.CurriculumDiscipline, section.Field("elective")))
		if err != nil {
			return newCurriculum(), c.assembleFailed(cl, report_curriculum_assemble, err)
		}
		for code, d := range elective {
			out.Elective[code] = d
		}
	}

	return out, nil
}

// Flow returns the disciplines suggested for each period of a
// habilitation.
func (c *Client) Flow(ctx context.Context, habilitation string, level catalog.Level, verbose bool) (Flow, error) {
	cl, err := c.begin(ctx, "flow", habilitation, level, verbose)
	defer cl.end()
	if err != nil {
		return Flow{}, err
	}
	c.progress(cl, "fetching flow", "habilitation", habilitation)

	doc := c.fetch(cl, matriculaweb.PageFlow, codeParams(habilitation))

	out := Flow{}
	for _, period := range c.rules.Extract(patterns.FlowPeriod, doc) {
		number, err := assemble.IntField(period, "period")
		if err != nil {
			return Flow{}, c.assembleFailed(cl, report_flow_assemble, err)
		}
		credits, err := assemble.IntField(period, "credits")
		if err != nil {
			return Flow{}, c.assembleFailed(cl, report_flow_assemble, err)
		}

		disciplines := patterns.Strings(c.rules.Extract(patterns.FlowDiscipline, period.Field("body")), "code")
		if disciplines == nil {
			disciplines = []string{}
		}
		out[number] = Period{Credits: credits, Disciplines: disciplines}
	}
	return out, nil
}

// Habilitations returns the degree options of a course and their
// graduation requirements.
func (c *Client) Habilitations(ctx context.Context, course string, level catalog.Level, campus catalog.Campus, verbose bool) (map[string]Habilitation, error) {
	cl, err := c.begin(ctx, "habilitations", course, level, verbose)
	defer cl.end()
	if err != nil {
		return map[string]Habilitation{}, err
	}
	c.progress(cl, "fetching habilitations", "course", course, "campus", campus.String())

	doc := c.fetch(cl, matriculaweb.PageCourseData, codeParams(course))

	out := map[string]Habilitation{}
	for _, capture := range c.rules.Extract(patterns.Habilitation, doc) {
		h := Habilitation{
			Name:   assemble.Name(capture.Field("name")),
			Degree: assemble.Name(capture.Field("degree")),
		}
		numbers := []struct {
			field string
			dest  *int
		}{
			{"min_terms", &h.MinTerms},
			{"max_terms", &h.MaxTerms},
			{"graduation_credits", &h.GraduationCredits},
			{"concentration_credits", &h.ConcentrationCredits},
			{"related_credits", &h.RelatedCredits},
			{"free_credits", &h.FreeCredits},
		}
		for _, n := range numbers {
			*n.dest, err = assemble.IntField(capture, n.field)
			if err != nil {
				return map[string]Habilitation{}, c.assembleFailed(cl, report_habilitation_assemble, err)
			}
		}
		out[capture.Field("code")] = h
	}
	return out, nil
}

// Courses lists the courses offered in a campus.
func (c *Client) Courses(ctx context.Context, level catalog.Level, campus catalog.Campus, verbose bool) (map[string]Course, error) {
	if campus == 0 {
		campus = catalog.DarcyRibeiro
	}
	cl, err := c.begin(ctx, "courses", campus.Code(), level, verbose)
	defer cl.end()
	if err != nil {
		return map[string]Course{}, err
	}
	c.progress(cl, "fetching course list", "campus", campus.String())

	doc := c.fetch(cl, matriculaweb.PageCourseList, codeParams(campus.Code()))

	out := map[string]Course{}
	for _, capture := range c.rules.Extract(patterns.Course, doc) {
		out[capture.Field("code")] = Course{
			Modality: assemble.Name(capture.Field("modality")),
			Name:     assemble.Name(capture.Field("name")),
			Shift:    assemble.Name(capture.Field("shift")),
		}
	}
	return out, nil
}

// Periods returns the period numbers in ascending order.
func (f Flow) Periods() []int {
	keys := make([]int, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
