package archive

import (
	"context"
	"fmt"
	"os"
	"time"

	json "github.com/goccy/go-json"
	"github.com/pbaille/blueprint/internal/domain"
	"github.com/pbaille/blueprint/internal/providers"
	"github.com/pbaille/blueprint/internal/store"
)

// Snapshot is the archived form of every stored reading
type Snapshot struct {
	ExportedAt time.Time        `json:"exported_at"`
	Readings   []domain.Reading `json:"readings"`
}

type Exporter struct {
	store      store.Reader
	compressor Compressor
	logger     providers.Logger
}

func NewExporter(st store.Reader, compressor Compressor, logger providers.Logger) *Exporter {
	return &Exporter{
		store:      st,
		compressor: compressor,
		logger:     logger,
	}
}

// Export writes all readings to fileName as zstd-compressed JSON and
// returns how many were written. The file is replaced atomically.
func (e *Exporter) Export(ctx context.Context, fileName string) (int, error) {
	readings, err := e.store.AllReadings(ctx)
	if err != nil {
		return 0, fmt.Errorf("load readings: %w", err)
	}
	if readings == nil {
		readings = []domain.Reading{}
	}

	jsonData, err := json.Marshal(Snapshot{ExportedAt: time.Now().UTC(), Readings: readings})
	if err != nil {
		return 0, fmt.Errorf("encode snapshot: %w", err)
	}
	data, err := e.compressor.Compress(jsonData)
	if err != nil {
		return 0, fmt.Errorf("compress snapshot: %w", err)
	}

	if err := writeAtomic(fileName, data); err != nil {
		return 0, err
	}

	e.logger.Infof(providers.TypeStore, "exported %d readings to %s (%d bytes)", len(readings), fileName, len(data))
	return len(readings), nil
}

// Load reads a snapshot written by Export
func (e *Exporter) Load(fileName string) (*Snapshot, error) {
	data, err := os.ReadFile(fileName)
	if err != nil {
		return nil, fmt.Errorf("read archive: %w", err)
	}

	decompressedData, err := e.compressor.Decompress(data)
	if err != nil {
		return nil, fmt.Errorf("decompress archive: %w", err)
	}

	var snap Snapshot
	if err := json.Unmarshal(decompressedData, &snap); err != nil {
		return nil, fmt.Errorf("decode archive: %w", err)
	}
	return &snap, nil
}

func (e *Exporter) Close() {
	e.compressor.Close()
}

func writeAtomic(fileName string, data []byte) error {
	tmpFile := fileName + ".tmp"
	file, err := os.Create(tmpFile)
	if err != nil {
		return fmt.Errorf("create archive: %w", err)
	}

	if _, err = file.Write(data); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return fmt.Errorf("write archive: %w", err)
	}

	if err = file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return fmt.Errorf("sync archive: %w", err)
	}

	if err = file.Close(); err != nil {
		os.Remove(tmpFile)
		return fmt.Errorf("close archive: %w", err)
	}

	return os.Rename(tmpFile, fileName)
}
