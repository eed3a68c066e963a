package mweb

import (
	"context"

	"github.com/Matheusmno/MWebCrawler/internal/assemble"
	"github.com/Matheusmno/MWebCrawler/internal/catalog"
	"github.com/Matheusmno/MWebCrawler/internal/patterns"
	"github.com/Matheusmno/MWebCrawler/internal/requirement"
	"github.com/Matheusmno/MWebCrawler/lib/platforms/matriculaweb"
)

// DisciplineInfo returns the description of a discipline: its department,
// syllabus, program and bibliography.
func (c *Client) DisciplineInfo(ctx context.Context, discipline string, level catalog.Level, verbose bool) (DisciplineInfo, error) {
	cl, err := c.begin(ctx, "discipline_info", discipline, level, verbose)
	defer cl.end()
	if err != nil {
		return DisciplineInfo{}, err
	}
	c.progress(cl, "fetching discipline info", "discipline", discipline)

	doc := c.fetch(cl, matriculaweb.PageDiscipline, codeParams(discipline))

	var out DisciplineInfo
	for _, capture := range c.rules.Extract(patterns.DisciplineInfo, doc) {
		out = DisciplineInfo{
			DepartmentAcronym: assemble.Name(capture.Field("department_acronym")),
			DepartmentName:    assemble.Name(capture.Field("department_name")),
			Name:              assemble.Name(capture.Field("name")),
			Level:             assemble.Name(capture.Field("level")),
			ValidFrom:         assemble.Name(capture.Field("valid_from")),
			Prerequisites:     assemble.Name(capture.Field("prerequisites")),
			Syllabus:          assemble.LongText(capture.Field("syllabus")),
			Program:           assemble.LongText(capture.Field("program")),
			Bibliography:      assemble.LongText(capture.Field("bibliography")),
		}
	}
	return out, nil
}

// Prerequisites returns the prerequisite chain of a discipline. Any one of
// the groups satisfies it.
func (c *Client) Prerequisites(ctx context.Context, discipline string, level catalog.Level, verbose bool) (requirement.Chain, error) {
	cl, err := c.begin(ctx, "prerequisites", discipline, level, verbose)
	defer cl.end()
	if err != nil {
		return requirement.Chain{}, err
	}
	c.progress(cl, "fetching prerequisites", "discipline", discipline)

	doc := c.fetch(cl, matriculaweb.PageDisciplinePopup, codeParams(discipline))

	codes := func(branch string) []string {
		return patterns.Strings(c.rules.Extract(patterns.PrerequisiteCode, branch), "code")
	}
	out := requirement.Chain{}
	for _, block := range c.rules.Extract(patterns.PrerequisiteBlock, doc) {
		out = append(out, requirement.SplitOR(block.Field("text"), requirement.OrSeparator, codes)...)
	}
	return out, nil
}
