package dataset

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/lysyi3m/social-pulse/app/post"
)

type Writer struct{}

func NewWriter() *Writer {
	return &Writer{}
}

// Encode renders posts as a 2-space indented JSON array without a trailing
// newline. HTML characters in post content are written as-is.
func (w *Writer) Encode(posts []post.Post) ([]byte, error) {
	if posts == nil {
		posts = []post.Post{}
	}

	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(posts); err != nil {
		return nil, fmt.Errorf("failed to encode posts: %w", err)
	}

	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// Write stores an already encoded document at path.
func (w *Writer) Write(path string, data []byte) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: failed to create %s: %w", ErrOutputWrite, path, err)
	}

	if _, err := file.Write(data); err != nil {
		file.Close()
		return fmt.Errorf("%w: failed to write %s: %w", ErrOutputWrite, path, err)
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("%w: failed to close %s: %w", ErrOutputWrite, path, err)
	}

	return nil
}
