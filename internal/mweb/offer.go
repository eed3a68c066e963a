package mweb

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/Matheusmno/MWebCrawler/internal/assemble"
	"github.com/Matheusmno/MWebCrawler/internal/catalog"
	"github.com/Matheusmno/MWebCrawler/internal/patterns"
	"github.com/Matheusmno/MWebCrawler/lib/htmlutil"
	"github.com/Matheusmno/MWebCrawler/lib/platforms/matriculaweb"
)

const (
	report_waitlist_assemble = "waitlist.assemble"
	report_offering_assemble = "offering.assemble"
)

// AnyTurma matches every turma identifier.
const AnyTurma = `\w+`

// Departments lists the departments with offerings this semester in a
// campus.
func (c *Client) Departments(ctx context.Context, level catalog.Level, campus catalog.Campus, verbose bool) (map[string]Department, error) {
	if campus == 0 {
		campus = catalog.DarcyRibeiro
	}
	cl, err := c.begin(ctx, "departments", campus.Code(), level, verbose)
	defer cl.end()
	if err != nil {
		return map[string]Department{}, err
	}
	c.progress(cl, "fetching departments with offerings", "campus", campus.String())

	doc := c.fetch(cl, matriculaweb.PageOfferDepartments, codeParams(campus.Code()))

	out := map[string]Department{}
	for _, capture := range c.rules.Extract(patterns.Department, doc) {
		out[capture.Field("code")] = Department{
			Acronym: assemble.Name(capture.Field("acronym")),
			Name:    assemble.Name(capture.Field("name")),
		}
	}
	return out, nil
}

// OfferedDisciplines maps the code of every discipline a department offers
// this semester to its name.
func (c *Client) OfferedDisciplines(ctx context.Context, department catalog.Department, level catalog.Level, verbose bool) (map[string]string, error) {
	cl, err := c.begin(ctx, "offered_disciplines", department.Code(), level, verbose)
	defer cl.end()
	if err != nil {
		return map[string]string{}, err
	}
	c.progress(cl, "fetching offered disciplines", "department", department.String())

	doc := c.fetch(cl, matriculaweb.PageOfferDisciplines, codeParams(department.Code()))

	out := map[string]string{}
	for _, capture := range c.rules.Extract(patterns.OfferedDiscipline, doc) {
		out[capture.Field("code")] = assemble.Name(capture.Field("name"))
	}
	return out, nil
}

// Waitlist maps every turma of a discipline with a waiting list to the
// number of seats requested. `turma` is a regular expression that must
// match the whole turma identifier, "" means AnyTurma.
func (c *Client) Waitlist(ctx context.Context, discipline, turma string, level catalog.Level, verbose bool) (map[string]int, error) {
	cl, err := c.begin(ctx, "waitlist", discipline, level, verbose)
	defer cl.end()
	if err != nil {
		return map[string]int{}, err
	}
	if turma == "" {
		turma = AnyTurma
	}
	filter, err := regexp.Compile(fmt.Sprintf(`^(?:%s)$`, turma))
	if err != nil {
		return map[string]int{}, cl.fail(fmt.Errorf("turma filter: %w", err))
	}
	c.progress(cl, "fetching waitlist", "discipline", discipline, "turma", turma)

	doc := c.fetch(cl, matriculaweb.PageWaitlist, codeParams(discipline))

	out := map[string]int{}
	tables := c.rules.Extract(patterns.WaitlistTable, doc)
	for _, rows := range c.rules.ExtractEach(tables, "table", patterns.WaitlistTurma) {
		for _, row := range rows {
			id := row.Field("turma")
			if !filter.MatchString(id) {
				continue
			}
			requested, err := assemble.IntField(row, "requested")
			if err != nil {
				return map[string]int{}, c.assembleFailed(cl, report_waitlist_assemble, err)
			}
			if requested > 0 {
				out[id] = requested
			}
		}
	}
	return out, nil
}

// Offering returns the turmas of a discipline offered this semester.
// `department` narrows the query when the discipline is offered by more
// than one department, it can be left as zero.
func (c *Client) Offering(ctx context.Context, discipline string, department catalog.Department, level catalog.Level, verbose bool) (Offering, error) {
	cl, err := c.begin(ctx, "offering", discipline, level, verbose)
	defer cl.end()
	if err != nil {
		return Offering{Turmas: map[string]Turma{}}, err
	}
	c.progress(cl, "fetching offering", "discipline", discipline)

	params := url.Values{"cod": {discipline}}
	if !department.IsZero() {
		params.Set("dep", department.Code())
	}
	doc := c.fetch(cl, matriculaweb.PageOfferingDetails, params)

	out := Offering{Turmas: map[string]Turma{}}
	for _, info := range c.rules.Extract(patterns.OfferingInfo, doc) {
		credits, err := assemble.CreditsFrom(info)
		if err != nil {
			return Offering{Turmas: map[string]Turma{}}, c.assembleFailed(cl, report_offering_assemble, err)
		}
		out.Department = assemble.Name(info.Field("department"))
		out.Name = assemble.Name(info.Field("name"))
		out.Credits = &credits
	}

	for _, capture := range c.rules.Extract(patterns.OfferingTurma, doc) {
		turma, err := c.newTurma(capture)
		if err != nil {
			return Offering{Turmas: map[string]Turma{}}, c.assembleFailed(cl, report_offering_assemble, err)
		}
		out.Turmas[capture.Field("turma")] = turma
	}
	return out, nil
}

func (c *Client) newTurma(capture patterns.Capture) (Turma, error) {
	seats, err := assemble.IntField(capture, "seats")
	if err != nil {
		return Turma{}, err
	}
	enrolled, err := assemble.IntField(capture, "enrolled")
	if err != nil {
		return Turma{}, err
	}

	t := Turma{
		Seats:       seats,
		Enrolled:    enrolled,
		Instructors: instructors(capture.Field("instructors")),
		Schedule:    assemble.NewSchedule(c.rules.Extract(patterns.OfferingClass, capture.Field("schedule"))),
	}

	if reservations := capture.Field("reservations"); reservations != "" {
		t.Reserved, err = assemble.NewReservations(c.rules.Extract(patterns.OfferingRes, reservations))
		if err != nil {
			return Turma{}, err
		}
	}
	return t, nil
}

// instructors splits the instructor cell on line breaks, each entry can
// still carry inline markup such as links.
func instructors(cell string) []string {
	out := []string{}
	for _, entry := range strings.Split(cell, "<br>") {
		name := htmlutil.Text(entry)
		if name == "" {
			continue
		}
		out = append(out, name)
	}
	return out
}
