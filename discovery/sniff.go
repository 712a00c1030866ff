package discovery

import (
	"io"

	"github.com/gabriel-vasile/mimetype"
)

// SniffContentType detects the content type of a stream by its magic bytes,
// for files with missing or lying extensions.
func SniffContentType(r io.Reader) (string, error) {
	m, err := mimetype.DetectReader(r)
	if err != nil {
		return "", err
	}
	return m.String(), nil
}

func SniffFileContentType(path string) (string, error) {
	m, err := mimetype.DetectFile(path)
	if err != nil {
		return "", err
	}
	return m.String(), nil
}
