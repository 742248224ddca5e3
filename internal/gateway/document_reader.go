package gateway

import (
	"context"
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"bank-export-analyzer/internal/logger"
)

// Encoding names reported by Decode.
const (
	EncodingUTF8        = "utf-8"
	EncodingWindows1252 = "windows-1252"
)

// ErrEmptyPath is returned when no document path is given.
var ErrEmptyPath = errors.New("document path is empty")

// FileDocumentReader implements the DocumentReader interface for files on disk.
type FileDocumentReader struct{}

// NewFileDocumentReader creates a new reader instance.
func NewFileDocumentReader() *FileDocumentReader {
	return &FileDocumentReader{}
}

// ReadDocument reads a bank export and returns its content as UTF-8 text.
func (r *FileDocumentReader) ReadDocument(ctx context.Context, path string) (string, error) {
	if path == "" {
		return "", ErrEmptyPath
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read document %s: %w", path, err)
	}

	text, encoding, err := Decode(data)
	if err != nil {
		return "", fmt.Errorf("failed to decode document %s: %w", path, err)
	}

	log := logger.FromContext(ctx)
	log.Debug().
		Str("path", path).
		Int("bytes", len(data)).
		Str("encoding", encoding).
		Msg("document read")
	if encoding == EncodingWindows1252 {
		log.Warn().Str("path", path).Msg("document is not valid UTF-8, decoded as Windows-1252")
	}
	return text, nil
}

// Decode converts raw export bytes to UTF-8 text and names the source encoding.
// A UTF-8 or UTF-16 byte order mark is honored and removed. Content that is not
// valid UTF-8 is decoded as Windows-1252, the legacy encoding of French bank exports.
func Decode(data []byte) (string, string, error) {
	decoded, _, err := transform.Bytes(unicode.BOMOverride(transform.Nop), data)
	if err != nil {
		return "", "", err
	}
	if utf8.Valid(decoded) {
		return string(decoded), EncodingUTF8, nil
	}

	decoded, err = charmap.Windows1252.NewDecoder().Bytes(decoded)
	if err != nil {
		return "", "", err
	}
	return string(decoded), EncodingWindows1252, nil
}
