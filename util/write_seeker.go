package util

import (
	"errors"
	"io"
)

// WriteSeeker is an in-memory io.WriteSeeker. The WAV encoder seeks back to
// the start of its output to fill in the header, which rules out a plain
// bytes.Buffer.
type WriteSeeker struct {
	buf []byte
	pos int
}

func NewWriteSeeker() *WriteSeeker {
	return &WriteSeeker{buf: make([]byte, 0)}
}

func (w *WriteSeeker) Write(p []byte) (int, error) {
	if w.pos+len(p) > len(w.buf) {
		grown := make([]byte, w.pos+len(p))
		copy(grown, w.buf)
		w.buf = grown
	}
	n := copy(w.buf[w.pos:], p)
	w.pos += n
	return n, nil
}

func (w *WriteSeeker) Seek(offset int64, whence int) (int64, error) {
	var next int
	switch whence {
	case io.SeekStart:
		next = int(offset)
	case io.SeekCurrent:
		next = w.pos + int(offset)
	case io.SeekEnd:
		next = len(w.buf) + int(offset)
	default:
		return 0, errors.New("write-seeker: invalid whence")
	}
	if next < 0 {
		return 0, errors.New("write-seeker: negative position")
	}
	w.pos = next
	return int64(next), nil
}

func (w *WriteSeeker) Bytes() []byte {
	return w.buf
}
