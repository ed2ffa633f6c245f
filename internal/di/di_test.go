package di

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/pbaille/blueprint/internal/domain"
	"github.com/pbaille/blueprint/internal/structures"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFlags(t *testing.T) *structures.CliFlags {
	t.Helper()
	t.Setenv("BLUEPRINT_METRICS_ENABLED", "false")
	t.Setenv("BLUEPRINT_LOG_LEVEL", "error")
	return &structures.CliFlags{DBPath: filepath.Join(t.TempDir(), "di.db")}
}

func TestInitRuntime_SubmitAndExport(t *testing.T) {
	flags := testFlags(t)

	rt, cleanup, err := InitRuntime(flags)
	require.NoError(t, err)

	reading, err := rt.Service.Submit(context.Background(), domain.BirthInput{FullName: "Test User", BirthDate: "1990-05-15"})
	require.NoError(t, err)
	assert.Equal(t, "Taurus", reading.Chart.ZodiacSign)
	assert.Equal(t, "sqlite3", rt.Conf.Store.Driver)
	cleanup()

	exporter, cleanup, err := InitExporter(flags)
	require.NoError(t, err)
	defer cleanup()
	defer exporter.Close()

	out := filepath.Join(t.TempDir(), "readings.json.zst")
	n, err := exporter.Export(context.Background(), out)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestInitServer(t *testing.T) {
	srv, cleanup, err := InitServer(testFlags(t))
	require.NoError(t, err)
	defer cleanup()
	assert.NotNil(t, srv.Handler())
}

func TestInitRuntime_BadConfig(t *testing.T) {
	t.Setenv("BLUEPRINT_DB_DRIVER", "mongo")
	_, _, err := InitRuntime(&structures.CliFlags{})
	assert.Error(t, err)
}
