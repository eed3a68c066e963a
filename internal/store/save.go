package store

import (
	"context"
	"fmt"
	"slices"

	"github.com/Matheusmno/MWebCrawler/internal/assemble"
	"github.com/Matheusmno/MWebCrawler/internal/mweb"
	"github.com/Matheusmno/MWebCrawler/internal/requirement"
)

func disciplineParams(d mweb.Discipline) UpsertDisciplineParams {
	return UpsertDisciplineParams{
		Code:      d.ID,
		Name:      d.Name,
		Area:      d.Area,
		Theory:    int64(d.Credits.Theory),
		Practice:  int64(d.Credits.Practice),
		Extension: int64(d.Credits.Extension),
		Study:     int64(d.Credits.Study),
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// SaveCurriculum replaces the stored curriculum of a course in a single
// transaction.
func SaveCurriculum(ctx context.Context, makeTx MakeTx, course string, curriculum mweb.Curriculum) error {
	tx, discard, commit, err := makeTx(ctx)
	if err != nil {
		return err
	}
	defer discard()

	err = tx.DeleteCurriculumEntries(ctx, course)
	if err != nil {
		return err
	}
	err = tx.DeleteChainGroupMembers(ctx, course)
	if err != nil {
		return err
	}

	buckets := []struct {
		bucket      Bucket
		disciplines map[string]mweb.Discipline
	}{
		{BucketMandatory, curriculum.Mandatory},
		{BucketElective, curriculum.Elective},
	}
	for _, b := range buckets {
		for _, code := range sortedKeys(b.disciplines) {
			d := b.disciplines[code]
			err = tx.UpsertDiscipline(ctx, disciplineParams(d))
			if err != nil {
				return fmt.Errorf("discipline %s: %w", code, err)
			}
			err = tx.InsertCurriculumEntry(ctx, InsertCurriculumEntryParams{
				Course:     course,
				Discipline: d.ID,
				Bucket:     string(b.bucket),
			})
			if err != nil {
				return fmt.Errorf("curriculum entry %s: %w", code, err)
			}
		}
	}

	for _, chain := range sortedKeys(curriculum.Chains) {
		for gi, group := range curriculum.Chains[chain] {
			for pos, d := range group {
				err = tx.UpsertDiscipline(ctx, disciplineParams(d))
				if err != nil {
					return fmt.Errorf("discipline %s: %w", d.ID, err)
				}
				err = tx.InsertChainGroupMember(ctx, InsertChainGroupMemberParams{
					Course:     course,
					Chain:      chain,
					GroupIndex: int64(gi),
					Position:   int64(pos),
					Discipline: d.ID,
				})
				if err != nil {
					return fmt.Errorf("chain %s: %w", chain, err)
				}
			}
		}
	}

	return commit()
}

// SavePrerequisites replaces the stored prerequisites of a discipline.
func SavePrerequisites(ctx context.Context, makeTx MakeTx, discipline string, chain requirement.Chain) error {
	tx, discard, commit, err := makeTx(ctx)
	if err != nil {
		return err
	}
	defer discard()

	err = tx.DeletePrerequisites(ctx, discipline)
	if err != nil {
		return err
	}
	for gi, group := range chain {
		for pos, item := range group {
			err = tx.InsertPrerequisite(ctx, InsertPrerequisiteParams{
				Discipline: discipline,
				GroupIndex: int64(gi),
				Position:   int64(pos),
				Required:   item.ID,
			})
			if err != nil {
				return fmt.Errorf("prerequisite %s of %s: %w", item.ID, discipline, err)
			}
		}
	}
	return commit()
}

// LoadPrerequisites reads a prerequisite chain back in its OR-of-AND form.
func LoadPrerequisites(ctx context.Context, q *Queries, discipline string) (requirement.Chain, error) {
	rows, err := q.ListPrerequisites(ctx, discipline)
	if err != nil {
		return nil, err
	}
	chain := requirement.Chain{}
	for _, row := range rows {
		for int64(len(chain)) <= row.GroupIndex {
			chain = append(chain, requirement.Group{})
		}
		chain[row.GroupIndex] = append(chain[row.GroupIndex], requirement.Item{ID: row.Required})
	}
	return chain, nil
}

// LoadDiscipline reads a stored discipline.
func LoadDiscipline(ctx context.Context, q *Queries, code string) (mweb.Discipline, error) {
	row, err := q.GetDiscipline(ctx, code)
	if err != nil {
		return mweb.Discipline{}, err
	}
	return mweb.Discipline{
		ID:   row.Code,
		Name: row.Name,
		Area: row.Area,
		Credits: assemble.Credits{
			Theory:    int(row.Theory),
			Practice:  int(row.Practice),
			Extension: int(row.Extension),
			Study:     int(row.Study),
		},
	}, nil
}
