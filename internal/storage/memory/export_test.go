package memory

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// limitWriter accepts n bytes and fails every write after that.
type limitWriter struct {
	n   int
	buf bytes.Buffer
}

func (w *limitWriter) Write(p []byte) (int, error) {
	if w.buf.Len()+len(p) > w.n {
		return 0, errors.New("disk full")
	}
	return w.buf.Write(p)
}

func TestEncodeGzipJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, encodeGzipJSON(&buf, BuildsExport{Version: exportVersion}))

	gz, err := gzip.NewReader(&buf)
	require.NoError(t, err)
	var got BuildsExport
	require.NoError(t, json.NewDecoder(gz).Decode(&got))
	assert.Equal(t, exportVersion, got.Version)
}

func TestEncodeGzipJSON_FooterWriteFails(t *testing.T) {
	// room for the 10-byte gzip header only; the compressed body and footer
	// are flushed by Close
	w := &limitWriter{n: 10}

	err := encodeGzipJSON(w, BuildsExport{Version: exportVersion})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to finish gzip stream")
}
