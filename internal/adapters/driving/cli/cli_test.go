package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/studyshelf/internal/core/domain"
	coreservices "github.com/custodia-labs/studyshelf/internal/core/services"
)

// setupServices wires the commands to an in-memory library built from local
// payloads, the same path the folder loader takes.
func setupServices(t *testing.T) {
	t.Helper()

	library := coreservices.NewLibraryService(nil, nil, nil)
	_, err := library.LoadLocal(context.Background(), []domain.RawSource{
		{
			ID:    "bbook",
			Label: "Big Book",
			Data: []byte(`{"id":"bbook","title":"Big Book","sections":[` +
				`{"id":"ch1","title":"Chapter One","content":["We found serenity and hope."]}]}`),
		},
		{
			ID:    "dictionary",
			Label: "Dictionary",
			Data: []byte(`{"id":"dictionary","title":"Dictionary","sections":[` +
				`{"id":"serenity","title":"Serenity","content":["Calmness of mind"]}]}`),
		},
		{
			ID:    "daily",
			Label: "Daily Reflections",
			Data: []byte(`[{"month":"January","day":1,"title":"First Things First",` +
				`"quote":"First things first.","reflection":"One day at a time."},` +
				`{"month":"January","day":2,"title":"Acceptance Is the Answer",` +
				`"quote":"Acceptance is the answer.","reflection":"Nothing happens by mistake."}]`),
		},
	})
	require.NoError(t, err)

	SetServices(Services{
		Library:    library,
		Search:     coreservices.NewSearchService(library),
		Annotation: coreservices.NewAnnotationResolver(library),
		Glossary:   coreservices.NewGlossaryService(library),
		Daily:      coreservices.NewDailyService(library),
	})
}

// execute runs a command RunE with a capture buffer.
func execute(t *testing.T, run func(*cobra.Command, []string) error, args []string) (string, error) {
	t.Helper()
	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	err := run(cmd, args)
	return buf.String(), err
}

func TestRunSearch(t *testing.T) {
	setupServices(t)

	out, err := execute(t, runSearch, []string{"serenity"})
	require.NoError(t, err)
	assert.Contains(t, out, "1 hits in 1 paragraphs.")
	assert.Contains(t, out, "Big Book — Chapter One")
	assert.Contains(t, out, "p-s0-0-0")
}

func TestRunSearchNoResults(t *testing.T) {
	setupServices(t)

	out, err := execute(t, runSearch, []string{"nothing-matches"})
	require.NoError(t, err)
	assert.Contains(t, out, "No results")
}

func TestRunSearchJSON(t *testing.T) {
	setupServices(t)
	searchJSON = true
	defer func() { searchJSON = false }()

	out, err := execute(t, runSearch, []string{"serenity"})
	require.NoError(t, err)
	assert.Contains(t, out, `"TotalHits": 1`)
}

func TestRunShowParagraph(t *testing.T) {
	setupServices(t)

	out, err := execute(t, runShow, []string{"p-s0-0-0"})
	require.NoError(t, err)
	assert.Contains(t, out, "Big Book — Chapter One")
	assert.Contains(t, out, "serenity")
}

func TestRunShowDocument(t *testing.T) {
	setupServices(t)

	out, err := execute(t, runShow, []string{"bbook"})
	require.NoError(t, err)
	assert.Contains(t, out, "Big Book")
	assert.Contains(t, out, "Chapter One")
}

func TestRunShowNoColor(t *testing.T) {
	setupServices(t)

	showNoColor = true
	t.Cleanup(func() { showNoColor = false })

	out, err := execute(t, runShow, []string{"p-s0-0-0"})
	require.NoError(t, err)
	assert.Contains(t, out, "We found serenity and hope.")
	assert.NotContains(t, out, "\x1b[")
}

func TestRunShowMissingDocumentHint(t *testing.T) {
	setupServices(t)

	_, err := execute(t, runShow, []string{"steps"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "twlvxtwlv.json")
}

func TestRunShowBadParagraphID(t *testing.T) {
	setupServices(t)

	_, err := execute(t, runShow, []string{"p-bogus"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRunDailyByDate(t *testing.T) {
	setupServices(t)

	out, err := execute(t, runDaily, []string{"January", "1"})
	require.NoError(t, err)
	assert.Contains(t, out, "First Things First")
	assert.Contains(t, out, "One day at a time.")
}

func TestRunDailyMonthListing(t *testing.T) {
	setupServices(t)

	out, err := execute(t, runDaily, []string{"January"})
	require.NoError(t, err)
	assert.Contains(t, out, "First Things First")

	_, err = execute(t, runDaily, []string{"Januberry"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRunDailyNext(t *testing.T) {
	setupServices(t)

	dailyNext = true
	t.Cleanup(func() { dailyNext = false })

	out, err := execute(t, runDaily, []string{"January", "1"})
	require.NoError(t, err)
	assert.Contains(t, out, "Acceptance Is the Answer")
}

func TestRunDailyPrevWraps(t *testing.T) {
	setupServices(t)

	dailyPrev = true
	t.Cleanup(func() { dailyPrev = false })

	// The entry before the first wraps around to the last one.
	out, err := execute(t, runDaily, []string{"January", "1"})
	require.NoError(t, err)
	assert.Contains(t, out, "Acceptance Is the Answer")
}

func TestRunDailyMissingDate(t *testing.T) {
	setupServices(t)

	_, err := execute(t, runDaily, []string{"January", "9"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRunDefine(t *testing.T) {
	setupServices(t)

	out, err := execute(t, runDefine, []string{"serenity"})
	require.NoError(t, err)
	assert.Contains(t, out, "Serenity")
	assert.Contains(t, out, "Calmness of mind")

	_, err = execute(t, runDefine, []string{"nirvana"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRunDefineList(t *testing.T) {
	setupServices(t)

	out, err := execute(t, runDefine, nil)
	require.NoError(t, err)
	assert.Contains(t, out, "S")
	assert.Contains(t, out, "Serenity")
}

func TestRunSources(t *testing.T) {
	setupServices(t)

	out, err := execute(t, runSources, nil)
	require.NoError(t, err)
	assert.Contains(t, out, "bbook")
	assert.Contains(t, out, "Big Book")
	// Known documents that are absent get their hint.
	assert.Contains(t, out, "steps")
	assert.Contains(t, out, "missing")
}

func TestRunRefresh(t *testing.T) {
	setupServices(t)

	// No fetcher configured: a forced load produces an empty library.
	_, err := execute(t, runRefresh, nil)
	assert.ErrorIs(t, err, domain.ErrNoSources)
}

func TestVersionCommand(t *testing.T) {
	var buf bytes.Buffer
	versionCmd.SetOut(&buf)
	versionCmd.Run(versionCmd, nil)
	assert.Contains(t, buf.String(), "studyshelf version")
}
