package versions

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-analyzer/resume/model"
)

func scoreOf(total int, grade string) model.Score {
	return model.Score{
		TotalScore:       total,
		Grade:            grade,
		ATSCompatibility: model.ATSCompatibility{Score: 100, Level: model.LevelExcellent, Issues: []string{}},
		CriticalIssues:   []string{},
		Recommendations:  []string{"Add your education history"},
	}
}

func docNamed(name string) model.ResumeDocument {
	return model.ResumeDocument{Contact: model.Contact{Name: name}, Skills: []string{"go"}}
}

// runStoreContract exercises the behavior every Store implementation shares.
// The store must be empty.
func runStoreContract(t *testing.T, store Store) {
	t.Helper()
	ctx := context.Background()

	first, err := store.Append(ctx, docNamed("first"), model.AnalysisResult{}, scoreOf(40, "F"))
	require.NoError(t, err)
	second, err := store.Append(ctx, docNamed("second"), model.AnalysisResult{}, scoreOf(85, "B"))
	require.NoError(t, err)
	third, err := store.Append(ctx, docNamed("third"), model.AnalysisResult{}, scoreOf(92, "A"))
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	all, err := store.List(ctx, 0, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{third.ID, second.ID, first.ID}, []string{all[0].ID, all[1].ID, all[2].ID})

	page, err := store.List(ctx, 1, 1)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, second.ID, page[0].ID)

	empty, err := store.List(ctx, 10, 5)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	got, err := store.Get(ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, "second", got.ParsedData.Contact.Name)
	assert.Equal(t, 85, got.Score.TotalScore)
	assert.Equal(t, []string{"Add your education history"}, got.Score.Recommendations)

	_, err = store.Get(ctx, "missing")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestMemoryStoreContract(t *testing.T) {
	runStoreContract(t, NewMemoryStore())
}

func TestMemoryStoreReturnsCopies(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	v, err := store.Append(ctx, docNamed("ada"), model.AnalysisResult{}, scoreOf(70, "C"))
	require.NoError(t, err)
	v.ParsedData.Skills[0] = "mutated"
	v.Score.Recommendations[0] = "mutated"

	got, err := store.Get(ctx, v.ID)
	require.NoError(t, err)
	assert.Equal(t, "go", got.ParsedData.Skills[0])
	assert.Equal(t, "Add your education history", got.Score.Recommendations[0])
}

func TestMemoryStoreUsesInjectedClockAndIDs(t *testing.T) {
	store := NewMemoryStore()
	fixed := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	n := 0
	store.Now = func() time.Time { return fixed }
	store.NewID = func() string {
		n++
		return fmt.Sprintf("v-%d", n)
	}

	v, err := store.Append(context.Background(), docNamed("ada"), model.AnalysisResult{}, scoreOf(70, "C"))
	require.NoError(t, err)
	assert.Equal(t, "v-1", v.ID)
	assert.True(t, fixed.Equal(v.Timestamp))
}

// runDuplicateIDCheck expects store to hand out the same id on every append.
func runDuplicateIDCheck(t *testing.T, store Store) {
	t.Helper()
	ctx := context.Background()

	first, err := store.Append(ctx, docNamed("first"), model.AnalysisResult{}, scoreOf(40, "F"))
	require.NoError(t, err)
	_, err = store.Append(ctx, docNamed("second"), model.AnalysisResult{}, scoreOf(85, "B"))
	require.ErrorIs(t, err, ErrDuplicateID)

	all, err := store.List(ctx, 0, 0)
	require.NoError(t, err)
	require.Len(t, all, 1)
	got, err := store.Get(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "first", got.ParsedData.Contact.Name)
}

func TestMemoryStoreRejectsDuplicateID(t *testing.T) {
	store := NewMemoryStore()
	store.NewID = func() string { return "fixed" }
	runDuplicateIDCheck(t, store)
}

func TestMemoryStoreConcurrentAppends(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	const writers = 32
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := store.Append(ctx, docNamed(fmt.Sprint(i)), model.AnalysisResult{}, scoreOf(i, "F"))
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	all, err := store.List(ctx, 0, 0)
	require.NoError(t, err)
	require.Len(t, all, writers)
	seen := make(map[string]bool, writers)
	for _, v := range all {
		assert.False(t, seen[v.ID])
		seen[v.ID] = true
	}
}

func TestMemoryStoreHonorsCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewMemoryStore().Append(ctx, model.ResumeDocument{}, model.AnalysisResult{}, model.Score{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestVersionSummary(t *testing.T) {
	ts := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	v := Version{ID: "abc", Timestamp: ts, Score: scoreOf(81, "B")}
	assert.Equal(t, Summary{ID: "abc", Timestamp: ts, TotalScore: 81, Grade: "B"}, v.Summary())
}
