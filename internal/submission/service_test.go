package submission

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pbaille/blueprint/internal/classifier"
	"github.com/pbaille/blueprint/internal/domain"
	"github.com/pbaille/blueprint/internal/providers"
	"github.com/pbaille/blueprint/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStore keeps rows in maps and only applies a transaction's writes when
// the callback succeeds.
type memStore struct {
	store.Reader
	charts      map[string]domain.Chart
	insights    map[string]domain.Insights
	chartErr    error
	insightsErr error
	nextID      int
}

func newMemStore() *memStore {
	return &memStore{charts: map[string]domain.Chart{}, insights: map[string]domain.Insights{}}
}

func (m *memStore) RunInTx(ctx context.Context, fn func(w store.Writer) error) error {
	w := &memWriter{m: m, charts: map[string]domain.Chart{}, insights: map[string]domain.Insights{}}
	if err := fn(w); err != nil {
		return err
	}
	for id, c := range w.charts {
		m.charts[id] = c
	}
	for id, i := range w.insights {
		m.insights[id] = i
	}
	return nil
}

func (m *memStore) Close() error { return nil }

type memWriter struct {
	m        *memStore
	charts   map[string]domain.Chart
	insights map[string]domain.Insights
}

func (w *memWriter) newID() string {
	w.m.nextID++
	return "id-" + string(rune('a'+w.m.nextID))
}

func (w *memWriter) InsertChart(_ context.Context, chart *domain.Chart) (string, error) {
	if w.m.chartErr != nil {
		return "", w.m.chartErr
	}
	chart.ID = w.newID()
	chart.CreatedAt = time.Now()
	w.charts[chart.ID] = *chart
	return chart.ID, nil
}

func (w *memWriter) InsertInsights(_ context.Context, in *domain.Insights) (string, error) {
	if w.m.insightsErr != nil {
		return "", w.m.insightsErr
	}
	if _, ok := w.charts[in.ChartID]; !ok {
		return "", errors.New("unknown chart")
	}
	in.ID = w.newID()
	in.CreatedAt = time.Now()
	w.insights[in.ID] = *in
	return in.ID, nil
}

type countingMetrics struct {
	submissions map[string]int
	failures    map[string]int
}

func newCountingMetrics() *countingMetrics {
	return &countingMetrics{submissions: map[string]int{}, failures: map[string]int{}}
}

func (c *countingMetrics) IncRequestsTotal(string, int)                 {}
func (c *countingMetrics) ObserveRequestDuration(string, time.Duration) {}
func (c *countingMetrics) IncSubmissions(sign string)                   { c.submissions[sign]++ }
func (c *countingMetrics) IncSubmissionFailures(stage string)           { c.failures[stage]++ }
func (c *countingMetrics) IncCacheHits()                                {}
func (c *countingMetrics) IncCacheMisses()                              {}

func newTestService() (*Service, *memStore, *countingMetrics) {
	st := newMemStore()
	m := newCountingMetrics()
	return NewService(st, providers.NewNopLogger(), m), st, m
}

func TestSubmit_StoresLinkedRecords(t *testing.T) {
	svc, st, m := newTestService()

	reading, err := svc.Submit(context.Background(), domain.BirthInput{
		FullName:  "Test User",
		BirthDate: "1990-05-15",
	})
	require.NoError(t, err)

	assert.Equal(t, "Taurus", reading.Chart.ZodiacSign)
	assert.Equal(t, 3, reading.Chart.LifePathNumber)
	assert.Nil(t, reading.Chart.BirthTime)
	assert.Nil(t, reading.Chart.BirthPlace)
	assert.NotEmpty(t, reading.Chart.ID)
	assert.Equal(t, reading.Chart.ID, reading.Insights.ChartID)

	assert.Equal(t, []string{"Emerald", "Sapphire", "Rose Quartz"}, reading.Insights.LuckyStones)
	assert.Contains(t, reading.Insights.CareerMatches, "Creative arts")
	assert.Len(t, reading.Insights.StyleSuggestions, 3)
	assert.Len(t, reading.Insights.LuckyCharms, 4)

	require.Len(t, st.charts, 1)
	require.Len(t, st.insights, 1)
	for _, in := range st.insights {
		assert.Equal(t, reading.Chart.ID, in.ChartID)
	}
	assert.Equal(t, 1, m.submissions["Taurus"])
}

func TestSubmit_TrimsAndKeepsOptionals(t *testing.T) {
	svc, st, _ := newTestService()

	reading, err := svc.Submit(context.Background(), domain.BirthInput{
		FullName:   "  Ada  ",
		BirthDate:  " 1815-12-10 ",
		BirthTime:  "07:30",
		BirthPlace: " London ",
	})
	require.NoError(t, err)

	assert.Equal(t, "Ada", reading.Chart.FullName)
	require.NotNil(t, reading.Chart.BirthTime)
	assert.Equal(t, "07:30", *reading.Chart.BirthTime)
	require.NotNil(t, reading.Chart.BirthPlace)
	assert.Equal(t, "London", *reading.Chart.BirthPlace)
	assert.Equal(t, classifier.Sagittarius.String(), reading.Chart.ZodiacSign)

	stored := st.charts[reading.Chart.ID]
	assert.Equal(t, "1815-12-10", stored.BirthDate.Format(classifier.DateLayout))
}

func TestSubmit_MissingFields(t *testing.T) {
	tests := []struct {
		name  string
		input domain.BirthInput
		field string
	}{
		{"no name", domain.BirthInput{BirthDate: "1990-05-15"}, "full_name"},
		{"blank name", domain.BirthInput{FullName: "   ", BirthDate: "1990-05-15"}, "full_name"},
		{"no date", domain.BirthInput{FullName: "X"}, "birth_date"},
		{"nothing", domain.BirthInput{}, "full_name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, st, m := newTestService()

			_, err := svc.Submit(context.Background(), tt.input)
			require.Error(t, err)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
			assert.ErrorIs(t, err, ErrMissingField)
			assert.Empty(t, st.charts)
			assert.Equal(t, 1, m.failures["validation"])
		})
	}
}

func TestSubmit_InvalidFields(t *testing.T) {
	svc, st, _ := newTestService()

	_, err := svc.Submit(context.Background(), domain.BirthInput{FullName: "X", BirthDate: "15/05/1990"})
	assert.ErrorIs(t, err, ErrInvalidField)
	assert.Equal(t, "Birth date is not valid", UserMessage(err))

	_, err = svc.Submit(context.Background(), domain.BirthInput{FullName: "X", BirthDate: "1990-02-30"})
	assert.ErrorIs(t, err, ErrInvalidField)

	_, err = svc.Submit(context.Background(), domain.BirthInput{FullName: "X", BirthDate: "1990-05-15", BirthTime: "25:99"})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "birth_time", verr.Field)

	assert.Empty(t, st.charts)
}

func TestSubmit_ChartWriteFailure(t *testing.T) {
	svc, st, m := newTestService()
	st.chartErr = errors.New("connection refused")

	reading, err := svc.Submit(context.Background(), domain.BirthInput{FullName: "X", BirthDate: "1990-05-15"})
	assert.Nil(t, reading)
	assert.ErrorIs(t, err, ErrRemoteWrite)
	assert.Equal(t, FailureNotice, UserMessage(err))
	assert.Empty(t, st.charts)
	assert.Empty(t, st.insights)
	assert.Equal(t, 1, m.failures["write"])
}

func TestSubmit_InsightsWriteFailureLeavesNoChart(t *testing.T) {
	svc, st, _ := newTestService()
	st.insightsErr = errors.New("disk full")

	_, err := svc.Submit(context.Background(), domain.BirthInput{FullName: "X", BirthDate: "1990-05-15"})
	assert.ErrorIs(t, err, ErrRemoteWrite)
	assert.Empty(t, st.charts)
	assert.Empty(t, st.insights)
}

func TestPreview(t *testing.T) {
	result, in, err := Preview("2000-01-01")
	require.NoError(t, err)
	assert.Equal(t, classifier.Capricorn, result.Sign)
	assert.Equal(t, 4, result.LifePath)
	assert.Empty(t, in.ChartID)
	assert.NotEmpty(t, in.LuckyStones)

	_, _, err = Preview("")
	assert.ErrorIs(t, err, ErrMissingField)

	_, _, err = Preview("nope")
	assert.ErrorIs(t, err, ErrInvalidField)
}

func TestUserMessage(t *testing.T) {
	assert.Equal(t, "Full name is required", UserMessage(&ValidationError{Field: "full_name", Err: ErrMissingField}))
	assert.Equal(t, FailureNotice, UserMessage(errors.New("anything else")))
}
