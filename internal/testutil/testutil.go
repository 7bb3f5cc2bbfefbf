// Package testutil provides dataset fixtures for custsearch tests.
package testutil

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// WriteFile writes data to name inside a fresh temporary directory and
// returns the full path. The directory is removed when the test completes.
func WriteFile(t *testing.T, name string, data []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

// WriteDataset encodes records as a JSON array into customers.json and
// returns its path.
func WriteDataset(t *testing.T, records ...map[string]any) string {
	t.Helper()

	if records == nil {
		records = []map[string]any{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		t.Fatalf("failed to encode dataset: %v", err)
	}
	return WriteFile(t, "customers.json", data)
}

// SampleRecords returns a small dataset mixing string and numeric ids and a
// record with a null NIC.
func SampleRecords() []map[string]any {
	return []map[string]any{
		{"id": "1", "name": "John Doe", "nic": "852345678V", "address": "12 Galle Road"},
		{"id": 2, "name": "Jane Roe", "nic": "199012345678", "address": "44 Temple Lane"},
		{"id": "3", "name": "Johnny Silva", "nic": nil, "address": "7 Lake Drive"},
	}
}

// Gzip compresses data.
func Gzip(t *testing.T, data []byte) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write(data); err != nil {
		t.Fatalf("gzip write: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("gzip close: %v", err)
	}
	return buf.Bytes()
}

// Zstd compresses data.
func Zstd(t *testing.T, data []byte) []byte {
	t.Helper()

	enc, err := zstd.NewWriter(nil)
	if err != nil {
		t.Fatalf("zstd writer: %v", err)
	}
	defer enc.Close()
	return enc.EncodeAll(data, nil)
}
