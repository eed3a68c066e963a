package store

import (
	"context"
	"database/sql"
	"testing"

	"github.com/Matheusmno/MWebCrawler/internal/assemble"
	"github.com/Matheusmno/MWebCrawler/internal/mweb"
	"github.com/Matheusmno/MWebCrawler/internal/requirement"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func openTestDB(t testing.TB) *sql.DB {
	t.Helper()

	sqlite, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	// every connection to :memory: is a separate database
	sqlite.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlite.Close() })

	_, err = sqlite.Exec(Schema)
	require.NoError(t, err)
	return sqlite
}

func discipline(code, name string, theory int) mweb.Discipline {
	return mweb.Discipline{
		ID:      code,
		Name:    name,
		Area:    "AC",
		Credits: assemble.Credits{Theory: theory, Study: theory},
	}
}

func TestSaveCurriculum(t *testing.T) {
	ctx := context.Background()
	sqlite := openTestDB(t)
	makeTx := NewMakeTx(sqlite)
	q := New(sqlite)

	curriculum := mweb.Curriculum{
		Mandatory: map[string]mweb.Discipline{
			"113034": discipline("113034", "Cálculo 1", 4),
			"116301": discipline("116301", "Computação Básica", 4),
		},
		Elective: map[string]mweb.Discipline{
			"116343": discipline("116343", "Linguagens de Programação", 2),
		},
		Chains: map[string][]mweb.DisciplineGroup{
			"Cadeia 1": {
				{discipline("117251", "Sistemas Digitais", 4)},
				{discipline("116394", "Organização", 4), discipline("113042", "Cálculo 2", 4)},
			},
		},
	}
	require.NoError(t, SaveCurriculum(ctx, makeTx, "370", curriculum))

	entries, err := q.ListCurriculumEntries(ctx, "370")
	require.NoError(t, err)
	expectedEntries := []CurriculumEntry{
		{Course: "370", Discipline: "116343", Bucket: "elective"},
		{Course: "370", Discipline: "113034", Bucket: "mandatory"},
		{Course: "370", Discipline: "116301", Bucket: "mandatory"},
	}
	if diff := cmp.Diff(expectedEntries, entries); diff != "" {
		t.Fatal(diff)
	}

	members, err := q.ListChainGroupMembers(ctx, "370")
	require.NoError(t, err)
	expectedMembers := []ChainGroupMember{
		{Course: "370", Chain: "Cadeia 1", GroupIndex: 0, Position: 0, Discipline: "117251"},
		{Course: "370", Chain: "Cadeia 1", GroupIndex: 1, Position: 0, Discipline: "116394"},
		{Course: "370", Chain: "Cadeia 1", GroupIndex: 1, Position: 1, Discipline: "113042"},
	}
	if diff := cmp.Diff(expectedMembers, members); diff != "" {
		t.Fatal(diff)
	}

	d, err := LoadDiscipline(ctx, q, "116301")
	require.NoError(t, err)
	require.Equal(t, curriculum.Mandatory["116301"], d)

	// saving again replaces the previous snapshot
	curriculum.Elective = map[string]mweb.Discipline{}
	curriculum.Chains = map[string][]mweb.DisciplineGroup{}
	curriculum.Mandatory["113034"] = discipline("113034", "Cálculo I", 6)
	require.NoError(t, SaveCurriculum(ctx, makeTx, "370", curriculum))

	entries, err = q.ListCurriculumEntries(ctx, "370")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	members, err = q.ListChainGroupMembers(ctx, "370")
	require.NoError(t, err)
	require.Empty(t, members)

	d, err = LoadDiscipline(ctx, q, "113034")
	require.NoError(t, err)
	require.Equal(t, "Cálculo I", d.Name)
	require.Equal(t, 6, d.Credits.Theory)
}

func TestPrerequisites(t *testing.T) {
	ctx := context.Background()
	sqlite := openTestDB(t)
	makeTx := NewMakeTx(sqlite)
	q := New(sqlite)

	chain := requirement.Chain{
		{{ID: "117251"}},
		{{ID: "116394"}, {ID: "113042"}},
	}
	require.NoError(t, SavePrerequisites(ctx, makeTx, "116432", chain))

	loaded, err := LoadPrerequisites(ctx, q, "116432")
	require.NoError(t, err)
	require.Equal(t, chain.IDs(), loaded.IDs())
	require.Equal(t, "117251 OU (116394 E 113042)", loaded.String())

	require.NoError(t, SavePrerequisites(ctx, makeTx, "116432", requirement.Chain{}))
	loaded, err = LoadPrerequisites(ctx, q, "116432")
	require.NoError(t, err)
	require.Empty(t, loaded)

	loaded, err = LoadPrerequisites(ctx, q, "999999")
	require.NoError(t, err)
	require.Empty(t, loaded)
}

func TestLoadMissingDiscipline(t *testing.T) {
	sqlite := openTestDB(t)
	_, err := LoadDiscipline(context.Background(), New(sqlite), "000000")
	require.ErrorIs(t, err, sql.ErrNoRows)
}
