package dataset

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/lysyi3m/social-pulse/app/post"
)

type Reader struct{}

func NewReader() *Reader {
	return &Reader{}
}

// Read loads the whole scraper dataset at path. It returns the records and
// the size of the file in bytes.
func (r *Reader) Read(path string) ([]post.RawPost, int64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: failed to read %s: %w", ErrInputAccess, path, err)
	}

	raws, err := r.Parse(data)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", path, err)
	}

	return raws, int64(len(data)), nil
}

// Parse decodes a JSON array of raw posts. Numbers are kept as json.Number so
// integer and float literals stay distinguishable.
func (r *Reader) Parse(data []byte) ([]post.RawPost, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, fmt.Errorf("%w: top-level value must be a JSON array", ErrMalformedInput)
	}

	var records []json.RawMessage
	if err := json.Unmarshal(trimmed, &records); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedInput, err)
	}

	raws := make([]post.RawPost, 0, len(records))
	for i, record := range records {
		raw, err := r.decodeRecord(record)
		if err != nil {
			return nil, fmt.Errorf("%w: record %d: %w", ErrMalformedInput, i, err)
		}
		raws = append(raws, raw)
	}

	return raws, nil
}

func (r *Reader) decodeRecord(record json.RawMessage) (post.RawPost, error) {
	record = bytes.TrimSpace(record)
	if len(record) == 0 || record[0] != '{' {
		return post.RawPost{}, fmt.Errorf("record must be a JSON object")
	}

	var fields map[string]any
	decoder := json.NewDecoder(bytes.NewReader(record))
	decoder.UseNumber()
	if err := decoder.Decode(&fields); err != nil {
		return post.RawPost{}, err
	}

	return post.ParseRawPost(fields)
}
