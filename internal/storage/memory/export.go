// internal/storage/memory/export.go
package memory

import (
	"compress/gzip"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/armourforge/vehicle-builder/internal/storage"
)

// BuildsExport is the on-disk layout of the output file
type BuildsExport struct {
	Version int             `json:"version"`
	Builds  []storage.Build `json:"builds"`
}

const exportVersion = 1

// exportJSON writes all builds to the output file. Caller must hold the lock.
func (b *Backend) exportJSON() error {
	if dir := filepath.Dir(b.cfg.OutputFile); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	data := BuildsExport{Version: exportVersion, Builds: b.snapshot()}
	if b.cfg.CompressOutput {
		return b.writeGzipJSON(b.cfg.OutputFile, data)
	}
	return b.writeJSON(b.cfg.OutputFile, data)
}

// importJSON reads builds back from the output file.
func (b *Backend) importJSON() ([]storage.Build, error) {
	f, err := os.Open(b.cfg.OutputFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	if b.cfg.CompressOutput {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("failed to open gzip stream: %w", err)
		}
		defer gz.Close()
		r = gz
	}

	var data BuildsExport
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode builds: %w", err)
	}
	if data.Version != exportVersion {
		return nil, fmt.Errorf("unsupported export version %d", data.Version)
	}
	return data.Builds, nil
}

func (b *Backend) writeJSON(path string, data BuildsExport) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer closeFile(f, &err)

	return json.NewEncoder(f).Encode(data)
}

func (b *Backend) writeGzipJSON(path string, data BuildsExport) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer closeFile(f, &err)

	return encodeGzipJSON(f, data)
}

// encodeGzipJSON writes data as one gzip member. The footer is only written
// by Close, so its error is the one that reports a truncated export.
func encodeGzipJSON(w io.Writer, data BuildsExport) error {
	gzWriter := gzip.NewWriter(w)
	if err := json.NewEncoder(gzWriter).Encode(data); err != nil {
		_ = gzWriter.Close()
		return fmt.Errorf("failed to encode builds: %w", err)
	}
	if err := gzWriter.Close(); err != nil {
		return fmt.Errorf("failed to finish gzip stream: %w", err)
	}
	return nil
}

func closeFile(f *os.File, err *error) {
	if cerr := f.Close(); cerr != nil {
		*err = errors.Join(*err, fmt.Errorf("failed to close file: %w", cerr))
	}
}
