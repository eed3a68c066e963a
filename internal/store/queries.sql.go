package store

import (
	"context"
)

const upsertDiscipline = `-- name: UpsertDiscipline :exec
insert into discipline (code, name, area, theory, practice, extension, study)
values (?, ?, ?, ?, ?, ?, ?)
on conflict (code) do update set
    name = excluded.name,
    area = excluded.area,
    theory = excluded.theory,
    practice = excluded.practice,
    extension = excluded.extension,
    study = excluded.study
`

type UpsertDisciplineParams struct {
	Code      string
	Name      string
	Area      string
	Theory    int64
	Practice  int64
	Extension int64
	Study     int64
}

func (q *Queries) UpsertDiscipline(ctx context.Context, arg UpsertDisciplineParams) error {
	_, err := q.db.ExecContext(ctx, upsertDiscipline,
		arg.Code,
		arg.Name,
		arg.Area,
		arg.Theory,
		arg.Practice,
		arg.Extension,
		arg.Study,
	)
	return err
}

const deleteCurriculumEntries = `-- name: DeleteCurriculumEntries :exec
delete from curriculum_entry where course = ?
`

func (q *Queries) DeleteCurriculumEntries(ctx context.Context, course string) error {
	_, err := q.db.ExecContext(ctx, deleteCurriculumEntries, course)
	return err
}

const deleteChainGroupMembers = `-- name: DeleteChainGroupMembers :exec
delete from chain_group_member where course = ?
`

func (q *Queries) DeleteChainGroupMembers(ctx context.Context, course string) error {
	_, err := q.db.ExecContext(ctx, deleteChainGroupMembers, course)
	return err
}

const insertCurriculumEntry = `-- name: InsertCurriculumEntry :exec
insert into curriculum_entry (course, discipline, bucket) values (?, ?, ?)
`

type InsertCurriculumEntryParams struct {
	Course     string
	Discipline string
	Bucket     string
}

func (q *Queries) InsertCurriculumEntry(ctx context.Context, arg InsertCurriculumEntryParams) error {
	_, err := q.db.ExecContext(ctx, insertCurriculumEntry, arg.Course, arg.Discipline, arg.Bucket)
	return err
}

const insertChainGroupMember = `-- name: InsertChainGroupMember :exec
insert into chain_group_member (course, chain, group_index, position, discipline)
values (?, ?, ?, ?, ?)
`

type InsertChainGroupMemberParams struct {
	Course     string
	Chain      string
	GroupIndex int64
	Position   int64
	Discipline string
}

func (q *Queries) InsertChainGroupMember(ctx context.Context, arg InsertChainGroupMemberParams) error {
	_, err := q.db.ExecContext(ctx, insertChainGroupMember,
		arg.Course,
		arg.Chain,
		arg.GroupIndex,
		arg.Position,
		arg.Discipline,
	)
	return err
}

const deletePrerequisites = `-- name: DeletePrerequisites :exec
delete from prerequisite where discipline = ?
`

func (q *Queries) DeletePrerequisites(ctx context.Context, discipline string) error {
	_, err := q.db.ExecContext(ctx, deletePrerequisites, discipline)
	return err
}

const insertPrerequisite = `-- name: InsertPrerequisite :exec
insert into prerequisite (discipline, group_index, position, required)
values (?, ?, ?, ?)
`

type InsertPrerequisiteParams struct {
	Discipline string
	GroupIndex int64
	Position   int64
	Required   string
}

func (q *Queries) InsertPrerequisite(ctx context.Context, arg InsertPrerequisiteParams) error {
	_, err := q.db.ExecContext(ctx, insertPrerequisite,
		arg.Discipline,
		arg.GroupIndex,
		arg.Position,
		arg.Required,
	)
	return err
}

const getDiscipline = `-- name: GetDiscipline :one
select code, name, area, theory, practice, extension, study from discipline
where code = ?
`

func (q *Queries) GetDiscipline(ctx context.Context, code string) (Discipline, error) {
	row := q.db.QueryRowContext(ctx, getDiscipline, code)
	var i Discipline
	err := row.Scan(
		&i.Code,
		&i.Name,
		&i.Area,
		&i.Theory,
		&i.Practice,
		&i.Extension,
		&i.Study,
	)
	return i, err
}

const listCurriculumEntries = `-- name: ListCurriculumEntries :many
select course, discipline, bucket from curriculum_entry
where course = ?
order by bucket, discipline
`

func (q *Queries) ListCurriculumEntries(ctx context.Context, course string) ([]CurriculumEntry, error) {
	rows, err := q.db.QueryContext(ctx, listCurriculumEntries, course)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []CurriculumEntry
	for rows.Next() {
		var i CurriculumEntry
		if err := rows.Scan(&i.Course, &i.Discipline, &i.Bucket); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const listChainGroupMembers = `-- name: ListChainGroupMembers :many
select course, chain, group_index, position, discipline from chain_group_member
where course = ?
order by chain, group_index, position
`

func (q *Queries) ListChainGroupMembers(ctx context.Context, course string) ([]ChainGroupMember, error) {
	rows, err := q.db.QueryContext(ctx, listChainGroupMembers, course)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ChainGroupMember
	for rows.Next() {
		var i ChainGroupMember
		if err := rows.Scan(
			&i.Course,
			&i.Chain,
			&i.GroupIndex,
			&i.Position,
			&i.Discipline,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const listPrerequisites = `-- name: ListPrerequisites :many
select discipline, group_index, position, required from prerequisite
where discipline = ?
order by group_index, position
`

func (q *Queries) ListPrerequisites(ctx context.Context, discipline string) ([]Prerequisite, error) {
	rows, err := q.db.QueryContext(ctx, listPrerequisites, discipline)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Prerequisite
	for rows.Next() {
		var i Prerequisite
		if err := rows.Scan(
			&i.Discipline,
			&i.GroupIndex,
			&i.Position,
			&i.Required,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
