// Package dataset loads the three bundled JSON documents (elements, methods,
// keywords) into typed, read-only structures.
package dataset

import (
	"bytes"
	"encoding/json"
	"io/fs"
	"os"

	"github.com/poku-e/MopacAssistant/internal/errors"
)

var (
	// ErrFileNotFound marks a dataset whose file does not exist.
	ErrFileNotFound = errors.New("dataset file not found")
	// ErrParse marks a dataset file that is not valid JSON or does not have
	// the expected shape.
	ErrParse = errors.New("dataset parse error")
)

// ReadJSON reads path and decodes it into v. A document that is only
// `null` is a parse error.
func ReadJSON(path string, v any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return notFound(errors.Wrapf(err, "read %s", path))
		}
		return errors.Wrapf(err, "read %s", path)
	}
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		return parseError(errors.Newf("parse %s: document is null", path))
	}
	if err := json.Unmarshal(b, v); err != nil {
		return parseError(errors.Wrapf(err, "parse %s", path))
	}
	return nil
}

func notFound(err error) error {
	return errors.Mark(errors.Mark(err, errors.ErrNotFound), ErrFileNotFound)
}

func parseError(err error) error {
	return errors.Mark(errors.Mark(err, errors.ErrInvalid), ErrParse)
}

// IsFileNotFound reports whether err came from a missing dataset file.
func IsFileNotFound(err error) bool {
	return err != nil && errors.Is(err, ErrFileNotFound)
}

// IsParseError reports whether err came from malformed dataset content.
func IsParseError(err error) bool {
	return err != nil && errors.Is(err, ErrParse)
}
