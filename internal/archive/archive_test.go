package archive

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/pbaille/blueprint/internal/classifier"
	"github.com/pbaille/blueprint/internal/domain"
	"github.com/pbaille/blueprint/internal/insights"
	"github.com/pbaille/blueprint/internal/providers"
	"github.com/pbaille/blueprint/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReader struct {
	store.Reader
	readings []domain.Reading
	err      error
}

func (f *fakeReader) AllReadings(context.Context) ([]domain.Reading, error) {
	return f.readings, f.err
}

func newTestExporter(t *testing.T, r store.Reader) *Exporter {
	t.Helper()
	c, err := NewZstdCompressor()
	require.NoError(t, err)
	e := NewExporter(r, c, providers.NewNopLogger())
	t.Cleanup(e.Close)
	return e
}

func TestZstdCompression_Roundtrip(t *testing.T) {
	c, err := NewZstdCompressor()
	require.NoError(t, err)
	defer c.Close()

	original := bytes.Repeat([]byte(`{"zodiac_sign":"Taurus"}`), 1000)
	compressed, err := c.Compress(original)
	require.NoError(t, err)
	assert.Less(t, len(compressed), len(original)/2)

	decompressed, err := c.Decompress(compressed)
	require.NoError(t, err)
	assert.Equal(t, original, decompressed)
}

func TestZstdCompression_Garbage(t *testing.T) {
	c, err := NewZstdCompressor()
	require.NoError(t, err)
	defer c.Close()

	_, err = c.Decompress([]byte("not zstd"))
	assert.Error(t, err)
}

func TestExport_RoundTrip(t *testing.T) {
	reading := domain.Reading{
		Chart:    domain.Chart{ID: "c1", FullName: "Test User", ZodiacSign: "Taurus", LifePathNumber: 3},
		Insights: insights.Compose(classifier.Taurus, 3),
	}
	reading.Insights.ChartID = "c1"

	e := newTestExporter(t, &fakeReader{readings: []domain.Reading{reading}})
	path := filepath.Join(t.TempDir(), "readings.json.zst")

	n, err := e.Export(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))

	snap, err := e.Load(path)
	require.NoError(t, err)
	require.Len(t, snap.Readings, 1)
	assert.False(t, snap.ExportedAt.IsZero())
	assert.Equal(t, "Test User", snap.Readings[0].Chart.FullName)
	assert.Equal(t, reading.Insights.LuckyCharms, snap.Readings[0].Insights.LuckyCharms)
}

func TestExport_Empty(t *testing.T) {
	e := newTestExporter(t, &fakeReader{})
	path := filepath.Join(t.TempDir(), "empty.json.zst")

	n, err := e.Export(context.Background(), path)
	require.NoError(t, err)
	assert.Zero(t, n)

	snap, err := e.Load(path)
	require.NoError(t, err)
	assert.NotNil(t, snap.Readings)
	assert.Empty(t, snap.Readings)
}

func TestExport_StoreError(t *testing.T) {
	e := newTestExporter(t, &fakeReader{err: errors.New("db gone")})
	path := filepath.Join(t.TempDir(), "fail.json.zst")

	_, err := e.Export(context.Background(), path)
	assert.Error(t, err)

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestExport_ReplacesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "readings.json.zst")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0644))

	e := newTestExporter(t, &fakeReader{})
	_, err := e.Export(context.Background(), path)
	require.NoError(t, err)

	_, err = e.Load(path)
	assert.NoError(t, err)
}
